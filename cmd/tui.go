package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/tui"
)

var tuiPage string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	Long:  `Opens an interactive terminal view of the portfolio. Pages, the theme toggle, project details, certification cards and the contact form all work as on the website.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("folio tui needs an interactive terminal")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Log lines would corrupt the screen.
		log, err := newLogger(cfg, io.Discard)
		if err != nil {
			return err
		}
		content, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		s := app.NewSession(context.Background(), "terminal", storage.NewMemory(), sessionOptions(cfg, content, log))
		defer s.Close()
		if err := s.Navigate(tuiPage); err != nil {
			return fmt.Errorf("opening %s: %w", tuiPage, err)
		}

		m, err := tui.New(s)
		if err != nil {
			return err
		}
		defer m.Close()

		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiPage, "page", "/", "page to open first")
	rootCmd.AddCommand(tuiCmd)
}
