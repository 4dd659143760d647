package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive balance browser",
	Long: `Browse the campaign waves, balance tables and recorded scores in the
terminal. The HUD line previews the health bar; use + and - to change health.`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - tables still browse
		store = nil
	}

	runErr := tui.RunBrowser(store, balanceCfg.Tables(), balanceCfg.Player, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("browser failed: %v", runErr)
	}
}
