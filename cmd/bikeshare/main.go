// Package main provides the CLI entrypoint for bikeshare.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/stats"
	"github.com/verte-zerg/bikeshare/internal/trips"
	"github.com/verte-zerg/bikeshare/internal/tui"
)

const maxRuleWidth = 40

var (
	reportCity    string
	reportMonth   string
	reportDay     string
	reportDataDir string
	reportOnce    bool
	verbose       bool
)

var log = logrus.New()

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runReportCmd,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}

	rootCmd.Flags().StringVar(&reportCity, "city", "", "city to analyze (chicago, new york city, washington)")
	rootCmd.Flags().StringVar(&reportMonth, "month", "", "month filter (January-June or All)")
	rootCmd.Flags().StringVar(&reportDay, "day", "", "day-of-week filter (Saturday-Friday or All)")
	rootCmd.Flags().StringVar(&reportDataDir, "data-dir", config.DefaultDataDir(), "directory containing city CSV files")
	rootCmd.Flags().BoolVar(&reportOnce, "once", false, "print one report and exit without asking to restart")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "city", &reportCity, fileCfg.Report.City)
	applyStringConfig(cmd, "month", &reportMonth, fileCfg.Report.Month)
	applyStringConfig(cmd, "day", &reportDay, fileCfg.Report.Day)
	applyStringConfig(cmd, "data-dir", &reportDataDir, fileCfg.Data.Dir)

	preset := normalizeFilter(model.Filter{City: reportCity, Month: reportMonth, Day: reportDay})
	vocab := trips.DefaultVocabulary()
	loader := trips.NewLoader(os.DirFS(reportDataDir), vocab)
	log.Debugf("reading datasets from %s", reportDataDir)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		filter, err := resolveFilter(vocab, preset, interactive)
		if errors.Is(err, tui.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := runCycle(ctx, out, loader, filter); err != nil {
			if !interactive {
				return err
			}
			log.WithFields(logrus.Fields{
				"city":  filter.City,
				"month": filter.Month,
				"day":   filter.Day,
			}).Errorf("report failed: %v", err)
		}

		if reportOnce || !interactive {
			return nil
		}
		restart, err := tui.AskRestart()
		if errors.Is(err, tui.ErrCanceled) || (err == nil && !restart) {
			return nil
		}
		if err != nil {
			return err
		}
		preset = model.Filter{}
	}
}

func resolveFilter(vocab trips.Vocabulary, preset model.Filter, interactive bool) (model.Filter, error) {
	if preset.City != "" && preset.Month != "" && preset.Day != "" {
		return preset, nil
	}
	if !interactive {
		return model.Filter{}, fmt.Errorf("--city, --month and --day are required when stdin is not a terminal")
	}
	return tui.AskFilter(vocab, preset)
}

func runCycle(ctx context.Context, w io.Writer, loader *trips.Loader, filter model.Filter) error {
	log.Infof("Loading data for %s (month: %s, day: %s)", filter.City, filter.Month, filter.Day)
	set, err := loader.Load(ctx, filter)
	if err != nil {
		return err
	}
	log.Debugf("%d trips after filtering", set.Len())
	report := stats.BuildReport(set, filter)
	if err := stats.RenderReport(w, report, ruleWidth()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func ruleWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > maxRuleWidth {
		return maxRuleWidth
	}
	return width
}

func normalizeFilter(f model.Filter) model.Filter {
	if f.City != "" {
		f.City = trips.NormalizeCity(f.City)
	}
	if f.Month != "" {
		f.Month = trips.NormalizeTitle(f.Month)
	}
	if f.Day != "" {
		f.Day = trips.NormalizeTitle(f.Day)
	}
	return f
}

func newCitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List recognized cities and their datasets",
		Args:  cobra.NoArgs,
		RunE:  runCitiesCmd,
	}
	cmd.Flags().StringVar(&reportDataDir, "data-dir", config.DefaultDataDir(), "directory containing city CSV files")
	return cmd
}

func runCitiesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &reportDataDir, fileCfg.Data.Dir)
	return writeCities(cmd.OutOrStdout(), trips.NewLoader(os.DirFS(reportDataDir), trips.DefaultVocabulary()))
}

func writeCities(w io.Writer, loader *trips.Loader) error {
	for _, city := range loader.Vocabulary().Cities() {
		status := "missing"
		if loader.DatasetExists(city.Name) {
			status = "found"
		}
		if _, err := fmt.Fprintf(w, "%-15s %-20s %s\n", city.Name, city.File, status); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
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
		log.Debugf("wrote config template to %s", path)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bikeshare configuration
# Uncomment a value to enable it. CLI flags override config values.
# Filters left unset are asked for interactively.

[report]
# city = "chicago"        # One of: %s
# month = "All"           # January-June or All
# day = "All"             # Saturday-Friday or All

[data]
# dir = %q
`,
		strings.Join(trips.DefaultVocabulary().CityNames(), ", "),
		config.DefaultDataDir(),
	)
}
