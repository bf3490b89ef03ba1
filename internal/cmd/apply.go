package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/control"
	"github.com/MeKo-Tech/paletteedit/internal/doc"
	"github.com/MeKo-Tech/paletteedit/internal/edit"
	"github.com/MeKo-Tech/paletteedit/internal/journal"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
	"github.com/MeKo-Tech/paletteedit/internal/undo"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run an edit script against a palette",
	Long: `Apply runs an edit script (from --script or stdin) against a palette given
as hex colors, committing each edit through the undo-batching engine, and
prints the resulting palette.`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringP("palette", "p", "", "Input palette as hex colors (e.g. \"#ff0000 #00ff00\")")
	applyCmd.Flags().String("script", "", "Edit script path (default: read from stdin)")
	applyCmd.Flags().Bool("show-history", false, "Print the recorded undo operations")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"apply.palette", "palette"},
		{"apply.script", "script"},
		{"apply.show_history", "show-history"},
	}
	for _, b := range bindFlags {
		if err := viper.BindPFlag(b.key, applyCmd.Flags().Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

// applyDocuments is a single-document source for CLI runs.
type applyDocuments struct {
	doc *doc.Document
}

func (a *applyDocuments) ActiveDocument() (*doc.Document, int, bool) {
	return a.doc, 0, a.doc != nil
}

// slogNotifier reports engine notifications through the default logger.
type slogNotifier struct{}

func (slogNotifier) PaletteChanged() { slog.Debug("palette changed (broadcast)") }
func (slogNotifier) DocumentRedraw() { slog.Debug("document redraw") }
func (slogNotifier) ViewRedraw()     { slog.Debug("view redraw") }
func (slogNotifier) Error(err error) { slog.Warn("palette edit not recorded", "error", err) }

func runApply(cmd *cobra.Command, args []string) error {
	palText := viper.GetString("apply.palette")
	if palText == "" {
		return fmt.Errorf("--palette is required")
	}
	live, err := parsePalette(palText)
	if err != nil {
		return err
	}

	scope, err := parseResetScope(viper.GetString("delta-reset-scope"))
	if err != nil {
		return err
	}

	document := doc.New("cli", 1, live.Len())
	live.CopyColorsTo(document.Palette(0))
	history := undo.NewHistory()

	cfg := control.Config{
		Live:       live,
		Documents:  &applyDocuments{doc: document},
		Recorder:   history,
		Notify:     slogNotifier{},
		Window:     viper.GetDuration("coalesce-window"),
		Space:      color.SpaceRGB,
		ResetScope: scope,
	}

	if path := viper.GetString("journal"); path != "" {
		store, err := journal.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer store.Close()
		cfg.Journal = store
	}

	selection := &scriptSelection{}
	session := control.NewSession(control.New(cfg), selection)
	defer session.Close()

	script := os.Stdin
	if path := viper.GetString("apply.script"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		script = f
	}

	host := &scriptHost{session: session, selection: selection, history: history}
	if err := runScript(host, script); err != nil {
		return err
	}
	session.Close()

	fmt.Println(live.HexList())
	if viper.GetBool("apply.show_history") {
		fmt.Fprintf(os.Stderr, "recorded operations: %d (executed: %d)\n",
			history.Len(), history.ExecutedLen())
	}
	return nil
}

// parsePalette reads hex colors from a string, or from a file when the
// string names one.
func parsePalette(s string) (*palette.Palette, error) {
	if !strings.ContainsAny(s, "# \t,") {
		if data, err := os.ReadFile(s); err == nil {
			s = string(data)
		}
	}
	p, err := palette.ParseHexList(s)
	if err != nil {
		return nil, err
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette has no entries")
	}
	return p, nil
}

func parseResetScope(s string) (edit.ResetScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global":
		return edit.ResetGlobal, nil
	case "colorspace", "space":
		return edit.ResetColorspace, nil
	}
	return edit.ResetGlobal, fmt.Errorf("unknown delta-reset-scope %q (want global or colorspace)", s)
}
