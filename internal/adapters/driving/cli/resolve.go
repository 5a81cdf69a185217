package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Resolve a dotted path across the corpus",
	Long: `Resolves a dotted key path (root.child.property) against every document
in the corpus. Each match reports the document, the 1-based line where
the property name appears, and a one-line preview of its value.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := serviceFor(ctx)
	if err != nil {
		return err
	}

	results, err := service.Resolve(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveJSON {
		return outputJSON(cmd, results)
	}
	if plainOutput(cmd) {
		return outputResultsPlain(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

func outputResultsTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, result := range results {
		cmd.Printf("  [%d] %s:%d\n", i+1, result.URI, result.Line)
		cmd.Printf("      %s\n", result.Preview)
		cmd.Println()
	}
	return nil
}

func outputResultsPlain(cmd *cobra.Command, results []domain.SearchResult) error {
	for _, result := range results {
		cmd.Printf("%s:%d: %s\n", result.URI, result.Line, result.Preview)
	}
	return nil
}
