// Package main provides the CLI entrypoint for keytrainer.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/keytrainer/keytrainer/internal/app"
	"github.com/keytrainer/keytrainer/internal/config"
	"github.com/keytrainer/keytrainer/internal/extcontent"
	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/stats"
	"github.com/keytrainer/keytrainer/internal/store"
	"github.com/keytrainer/keytrainer/internal/theme"
	"github.com/keytrainer/keytrainer/internal/wordlist"
)

const (
	defaultTheme       = "cyberpunk"
	defaultWords       = 50
	defaultFocusTop    = 5
	defaultFocusWindow = 10
	defaultCurveWindow = 20
	defaultExtTimeout  = 4.0
)

var (
	practiceTheme string
	practiceZen   bool
	practiceFocus bool
	practiceMode  string
	practiceWords int
	wordListPath  string

	statsJSON  bool
	statsSince string
	statsLast  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keytrainer",
		Short:         "Interactive terminal typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceTheme, "theme", defaultTheme, "colour theme (cyberpunk|nord|dracula|monokai|minimal)")
	rootCmd.Flags().BoolVar(&practiceZen, "zen", false, "start in zen mode (stats hidden while typing)")
	rootCmd.Flags().BoolVar(&practiceFocus, "focus", false, "start session immediately using focus-generated text")
	rootCmd.Flags().StringVar(&practiceMode, "mode", "", "start session immediately with the given category")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "word target for --mode / --focus")
	rootCmd.Flags().StringVar(&wordListPath, "wordlist", "", "path to a custom word list file backing the 'words' category")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyBoolConfig(cmd, "zen", &practiceZen, fileCfg.Practice.Zen)
	applyBoolConfig(cmd, "focus", &practiceFocus, fileCfg.Practice.FocusWeak)
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Category)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "wordlist", &wordListPath, fileCfg.Practice.WordList)

	if practiceWords <= 0 {
		return fmt.Errorf("--words must be > 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	extClient, err := extcontent.New(config.DefaultContentCacheDir())
	if err != nil {
		logErrf("external content cache unavailable, live categories will fall back to builtin text: %v\n", err)
		extClient = nil
	}

	a := app.New(theme.Get(practiceTheme), practiceZen, st, extClient)
	a.OnError(logErrf)

	if wordListPath != "" {
		words, err := wordlist.LoadWords(wordListPath)
		if err != nil {
			logErrf("failed to load word list %q, falling back to the built-in pool: %v\n", wordListPath, err)
		} else {
			a.UseWordList(wordlist.Filter(words, wordlist.ASCIILower))
		}
	}

	skipCategory := ""
	if practiceFocus {
		skipCategory = "focus"
	} else if practiceMode != "" {
		skipCategory = practiceMode
	}

	l := a.NewLoop(skipCategory, practiceWords)
	if err := l.Run(); err != nil {
		return fmt.Errorf("typing loop exited with error: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a summary of past sessions",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsJSON, "json", false, "print the summary as JSON")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD); checked for format only, the report is not filtered by it")
	cmd.Flags().IntVar(&statsLast, "last", 0, "last N sessions; not applied, the report always covers all sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsSince != "" {
		if _, err := time.ParseInLocation("2006-01-02", statsSince, time.Local); err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	summary, err := st.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	out := cmd.OutOrStdout()
	if statsJSON {
		return json.NewEncoder(out).Encode(statsJSONPayload(summary))
	}

	if summary.Total == 0 {
		fmt.Fprintln(out, "no sessions recorded")
		return nil
	}

	fmt.Fprintf(out, "sessions      %d\n", summary.Total)
	fmt.Fprintf(out, "best wpm      %.1f\n", summary.BestWPM)
	fmt.Fprintf(out, "avg wpm       %.1f\n", summary.AvgWPM)
	fmt.Fprintf(out, "avg accuracy  %.1f%%\n", summary.AvgAccuracy)
	if len(summary.Recent) > 0 {
		fmt.Fprintln(out, "\nrecent sessions:")
		for _, line := range recentSessionsTable(summary.Recent) {
			fmt.Fprintln(out, "  "+line)
		}
		fmt.Fprintln(out)
		if err := printWPMCurve(out, summary.Recent); err != nil {
			logErrf("failed to render wpm curve: %v\n", err)
		}
	}
	return nil
}

// recentSessionsTable renders the stats subcommand's recent-sessions
// listing via the stats package's fixed-width table formatter, rather than
// hand-aligning columns with Sprintf width specifiers.
func recentSessionsTable(recent []model.SessionRecord) []string {
	headers := []string{"When", "Source", "WPM", "Accuracy", "Duration"}
	rows := make([][]string, len(recent))
	for i, rec := range recent {
		rows[i] = []string{
			humanize.Time(rec.Timestamp),
			rec.Source,
			fmt.Sprintf("%.1f", rec.WPM),
			fmt.Sprintf("%.1f%%", rec.Accuracy),
			fmt.Sprintf("%.1fs", rec.DurationSec),
		}
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	return stats.FormatTable(headers, rows, rightAlign)
}

// printWPMCurve renders a braille learning-curve plot of recent WPM values,
// oldest first, reusing the same canvas the live in-session graph's braille
// counterpart is grounded on.
func printWPMCurve(out io.Writer, recent []model.SessionRecord) error {
	values := make([]float64, len(recent))
	for i, rec := range recent {
		values[len(recent)-1-i] = rec.WPM
	}
	series := []stats.Series{{Name: "wpm", Values: values}}
	return stats.PlotSeries(out, "wpm over recent sessions", series, 0, 10)
}

type statsRecordJSON struct {
	ID       int64   `json:"id"`
	Ts       string  `json:"ts"`
	Source   string  `json:"source"`
	WPM      float64 `json:"wpm"`
	Accuracy float64 `json:"accuracy"`
	Duration float64 `json:"duration"`
}

type statsJSONBody struct {
	TotalSessions int               `json:"total_sessions"`
	BestWPM       float64           `json:"best_wpm"`
	AvgWPM        float64           `json:"avg_wpm"`
	AvgAccuracy   float64           `json:"avg_accuracy"`
	Recent        []statsRecordJSON `json:"recent"`
}

func statsJSONPayload(s model.StoreSummary) statsJSONBody {
	recent := make([]statsRecordJSON, 0, len(s.Recent))
	for _, rec := range s.Recent {
		recent = append(recent, statsRecordJSON{
			ID:       rec.ID,
			Ts:       rec.Timestamp.Format(time.RFC3339),
			Source:   rec.Source,
			WPM:      rec.WPM,
			Accuracy: rec.Accuracy,
			Duration: rec.DurationSec,
		})
	}
	return statsJSONBody{
		TotalSessions: s.Total,
		BestWPM:       s.BestWPM,
		AvgWPM:        s.AvgWPM,
		AvgAccuracy:   s.AvgAccuracy,
		Recent:        recent,
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target *bool, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keytrainer configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# theme = %q                        # cyberpunk | nord | dracula | monokai | minimal
# category = "sentences"            # words | sentences | quotes | code | numbers | wikipedia | quote-api | focus
# words = %d                        # word target per session
# wordlist = "/path/to/words.txt"   # custom word list backing the "words" category
# zen = false                       # hide stats bar while typing
# focus = false                     # bias generated text toward recent weak spots
# The keys below are read but not applied; the built-in values shown are always used.
# focus-window = %d                 # sessions considered when deriving weak spots
# focus-top = %d                    # max weak digraphs/chars surfaced
# curve-window = %d                 # no effect: the stats curve plots raw per-session wpm
# external-timeout-seconds = %.1f   # timeout for live content fetches
`,
		defaultTheme,
		defaultWords,
		defaultFocusWindow,
		defaultFocusTop,
		defaultCurveWindow,
		defaultExtTimeout,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		_ = err
	}
}
