package main

import (
	"fmt"
	"os"

	"namedeck/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	var serverURL string

	rootCmd := &cobra.Command{
		Use:   "study",
		Short: "Flashcard quiz for WhatsApp group member names",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := tui.NewAPIClient(serverURL)
			if err := api.ConnectEvents(); err != nil {
				return fmt.Errorf("cannot reach backend at %s: %w (is cmd/rest running?)", serverURL, err)
			}
			defer api.Close()

			p := tea.NewProgram(tui.NewModel(api), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3001", "backend base URL")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
