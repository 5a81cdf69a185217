package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	checkJSON  bool
	checkQuiet bool
)

// errNotFullPath makes an invalid candidate exit with status 1 for
// scripting. The human-readable verdict is already on stdout by the
// time it is returned, so cobra's own error printing is silenced.
var errNotFullPath = errors.New("path is not root-anchored")

var checkCmd = &cobra.Command{
	Use:   "check [candidate]",
	Short: "Check whether a string is a full root-anchored path",
	Long: `Checks whether the candidate string is a complete dotted path anchored
at the root of at least one document in the corpus. Partial paths,
misspelled segments, and paths that start below the root do not pass.

Exits with status 0 when the candidate is a full path and 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

type checkResult struct {
	Candidate string `json:"candidate"`
	Valid     bool   `json:"valid"`
	Path      string `json:"path,omitempty"`
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the result as JSON")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "suppress output, report via exit status only")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	candidate := args[0]

	service, err := serviceFor(ctx)
	if err != nil {
		return err
	}

	anchored, err := service.FindRootAnchoredPath(ctx, candidate)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	valid := anchored != ""

	switch {
	case checkQuiet:
	case checkJSON:
		result := checkResult{Candidate: candidate, Valid: valid, Path: anchored}
		if err := outputJSON(cmd, result); err != nil {
			return err
		}
	case valid:
		cmd.Printf("valid path: %s\n", anchored)
	default:
		cmd.Printf("not a full path: %s\n", candidate)
	}

	if !valid {
		cmd.SilenceErrors = true
		return errNotFullPath
	}
	return nil
}
