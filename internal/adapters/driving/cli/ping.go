package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the backend is reachable",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, _ []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	ctx := context.Background()

	endpoint := "backend"
	if settingsService != nil {
		if settings, err := settingsService.Current(ctx); err == nil {
			endpoint = settings.ServiceURI
		}
	}

	latency, err := importService.Ping(ctx)
	if err != nil {
		return fmt.Errorf("%s is unreachable: %w", endpoint, err)
	}

	cmd.Printf("%s is reachable (round trip %s)\n", endpoint, latency.Round(time.Millisecond))
	return nil
}
