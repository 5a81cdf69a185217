package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	suggestJSON  bool
	suggestLimit int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Complete a partial dotted path",
	Long: `Suggests full paths for a partially typed input. Input without a dot is
matched as a keyword against every path in the corpus; input with dots
is completed below its parent path. Matching ignores case, and at least
two characters are required before anything is suggested.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum suggestions to display (0 shows all)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := serviceFor(ctx)
	if err != nil {
		return err
	}

	suggestions, err := service.Suggest(ctx, args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	// Display-side truncation only; the engine returns the full set.
	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	if suggestJSON {
		return outputJSON(cmd, suggestions)
	}
	for _, suggestion := range suggestions {
		cmd.Println(suggestion)
	}
	return nil
}
