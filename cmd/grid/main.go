// Command grid runs the token grid in the terminal and submits results to the result endpoint.
package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-grid/config"
	"github.com/beka-birhanu/vinom-grid/grid"
	"github.com/beka-birhanu/vinom-grid/infrastruture/resultclient"
	"github.com/beka-birhanu/vinom-grid/logger"
	"github.com/beka-birhanu/vinom-grid/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		url     string
		logPath string
	)

	cmd := &cobra.Command{
		Use:          "grid",
		Short:        "Move the B around a 3x3 grid and submit your result",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The terminal belongs to the UI, so client logs go to a file.
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer logFile.Close()

			clientLogger, err := logger.New("CLIENT", config.ColorBlue, logFile)
			if err != nil {
				return err
			}

			client, err := resultclient.New(resultclient.Config{
				URL:     url,
				Timeout: config.Envs.ResultTimeout,
				Logger:  clientLogger,
			})
			if err != nil {
				return err
			}
			defer client.Close()

			ctrl, err := grid.NewController(client)
			if err != nil {
				return err
			}

			model := tui.New(ctrl, termenv.NewOutput(os.Stdout))
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("running grid: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", config.Envs.ResultURL, "result endpoint")
	cmd.Flags().StringVar(&logPath, "log", "grid.log", "file receiving client logs")
	return cmd
}
