package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/promptdeck/promptdeck/pkg/devserver"
	"github.com/spf13/cobra"
)

var (
	addrFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run a development backend stub",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := log.ParseLevel(logLevel()); err == nil {
				log.SetLevel(lvl)
			}

			return devserver.New().Listen(addrFlag)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", ":8000", "Address to serve on")
}

var longServe = `
Run a development stand-in for the prompt manager backend. It speaks the
same endpoints with the offline keyword categorizer and an in-memory store.

Examples:
  # Serve the dev backend on port 8000.
  promptdeck serve

  # Serve on another port.
  promptdeck serve --addr :9000
`
