package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// Flags for the watch command.
var (
	watchDir    string
	watchGlob   string
	watchChatID string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Import files as they change on disk",
	Long: `Watches a directory and imports each file as it is created or modified.

Every change triggers an ordinary single-file import run against the
configured backend, so upload behaviour matches the import command exactly.
Hidden files, directories and editor save bursts are filtered out; --glob
additionally restricts imports by base name.

Watching runs until interrupted (Ctrl+C).`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchDir, "dir", "d", ".", "directory to watch")
	watchCmd.Flags().StringVar(&watchGlob, "glob", "", "only import files whose base name matches this pattern")
	watchCmd.Flags().StringVar(&watchChatID, "chat-id", "", "chat session UUID; omit for the global collection")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	chatID, err := normaliseChatID(watchChatID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", watchDir)

	return watchService.Watch(ctx, domain.WatchRequest{
		Dir:    watchDir,
		Glob:   watchGlob,
		ChatID: chatID,
	})
}
