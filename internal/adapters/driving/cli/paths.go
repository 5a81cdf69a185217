package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pathsJSON bool

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every dotted path in the corpus",
	Long: `Lists every dotted path reachable from the root of any document in the
corpus, sorted and with duplicates across documents removed.`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "output paths as JSON")
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	service, err := serviceFor(ctx)
	if err != nil {
		return err
	}

	paths, err := service.Paths(ctx)
	if err != nil {
		return fmt.Errorf("list paths failed: %w", err)
	}

	if pathsJSON {
		return outputJSON(cmd, paths)
	}
	for _, path := range paths {
		cmd.Println(path)
	}
	return nil
}
