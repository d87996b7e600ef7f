package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/promptdeck/promptdeck/pkg/api"
	"github.com/promptdeck/promptdeck/pkg/ui"
	"github.com/spf13/cobra"
)

var (
	uiCmd = &cobra.Command{
		Use:   "ui",
		Short: "Run the interactive prompt manager UI",
		Long:  longUI,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := log.ParseLevel(logLevel()); err == nil {
				log.SetLevel(lvl)
			}

			path := os.Getenv("TEA_LOGFILE")
			if path != "" {
				f, err := tea.LogToFile(path, "promptdeck")
				if err != nil {
					log.Error("could not open logfile:", "error", err)
					os.Exit(1)
				}
				defer f.Close()
			}

			client := api.New(backendURL())

			if _, err := tea.NewProgram(ui.New(client), tea.WithAltScreen()).Run(); err != nil {
				log.Error("Error while running program:", "error", err)
				os.Exit(1)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var longUI = `
Run the interactive prompt manager UI.

Examples:
  # Run the UI against the configured backend.
  promptdeck ui

  # Run the UI against a specific backend.
  promptdeck ui --backend http://localhost:8000
`
