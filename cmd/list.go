package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/promptdeck/promptdeck/pkg/api"
	"github.com/promptdeck/promptdeck/pkg/prompt"
	"github.com/spf13/cobra"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the saved prompts grouped by category",
		Long:  longList,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.New(backendURL())

			prompts, err := client.ListPrompts(context.Background())
			if err != nil {
				log.Error("failed to fetch prompts", "error", err)
				return err
			}

			for _, group := range prompt.GroupByCategory(prompts) {
				fmt.Printf("%s (%d)\n", group.Category, len(group.Prompts))
				for _, p := range group.Prompts {
					fmt.Printf("  #%d %s\n", p.ID, p.Title)
					if p.Summary != "" {
						fmt.Printf("      %s\n", p.Summary)
					}
				}
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var longList = `
Fetch every saved prompt from the backend and print it grouped by category,
one group per first occurrence.

Examples:
  # List saved prompts.
  promptdeck list
`
