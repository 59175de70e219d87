package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourorg/listing-browser/view"
)

func main() {
	var (
		apiBase string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:   "browse",
		Short: "Terminal browser for the property listings API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := view.NewClient(apiBase, timeout)
			p := tea.NewProgram(newApp(client), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	root.Flags().StringVar(&apiBase, "api", "http://localhost:4000", "base URL of the listings API")
	root.Flags().DurationVar(&timeout, "timeout", 6*time.Second, "per-request timeout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
