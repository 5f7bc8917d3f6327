package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// Flags for the import command.
var (
	importFiles  []string
	importChatID string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upload documents to the backend",
	Long: `Resolves file arguments and uploads each file, one at a time, to the
configured Career Copilot backend.

Arguments may be literal paths or wildcard patterns. A literal path that
does not exist aborts the run before anything is uploaded; a pattern that
matches nothing is simply skipped. Files go to the global collection unless
--chat-id routes them to a chat session.

The run stops at the first upload the server rejects; files accepted before
the rejection stay uploaded. A file that fails in transit is skipped and
the run continues with the next one.`,
	Example: `  # Import a single file into the global collection
  ccimport import --files resume.pdf

  # Import several files and a wildcard into a chat session
  ccimport import --files resume.pdf --files "notes/*.md" \
    --chat-id 7b0d9f7e-4f7b-4e57-9b5a-2f2d6f3a8c1e`,
	Args: cobra.ArbitraryArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringArrayVarP(
		&importFiles, "files", "f", nil, "file path or wildcard pattern to import (repeatable)")
	importCmd.Flags().StringVar(
		&importChatID, "chat-id", "", "chat session UUID; omit for the global collection")
	_ = importCmd.MarkFlagRequired("files")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	chatID, err := normaliseChatID(importChatID)
	if err != nil {
		return err
	}

	// Positional arguments extend the pattern list in argument order.
	patterns := make([]string, 0, len(importFiles)+len(args))
	patterns = append(patterns, importFiles...)
	patterns = append(patterns, args...)

	ctx := context.Background()
	report, err := importService.Run(ctx, domain.ImportRequest{
		Patterns: patterns,
		ChatID:   chatID,
	})
	if err != nil {
		return err
	}

	printImportSummary(cmd, report)
	return nil
}

// printImportSummary prints the closing line of a run that was not aborted.
// Per-file narration is the reporter's job; this only totals it up.
func printImportSummary(cmd *cobra.Command, report *domain.ImportReport) {
	switch {
	case report.Resolved == 0:
		cmd.Println("Nothing to import.")
	case report.Failed > 0:
		cmd.Printf("Done: %d uploaded, %d failed.\n", report.Uploaded, report.Failed)
	default:
		cmd.Printf("Done: %d uploaded.\n", report.Uploaded)
	}
}

// normaliseChatID validates a --chat-id value and canonicalises it. The
// empty string and the nil UUID both select the global collection.
func normaliseChatID(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid --chat-id %q: %w", raw, err)
	}
	if id == uuid.Nil {
		return "", nil
	}
	return id.String(), nil
}
