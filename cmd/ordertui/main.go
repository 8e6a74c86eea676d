// Package main provides the CLI entrypoint for ordertui.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkotrlik/ordertui/internal/config"
	"github.com/vkotrlik/ordertui/internal/editor"
	"github.com/vkotrlik/ordertui/internal/gorder"
	"github.com/vkotrlik/ordertui/internal/history"
	"github.com/vkotrlik/ordertui/internal/tui"
)

const (
	defaultHistoryLimit = 20
	terminalWidthBackup = 80
	defaultExportSuffix = ".normalized.yaml"
	historyTimeFormat   = "2006-01-02 15:04"
)

var (
	engineBinary string
	dbPath       string
	noHistory    bool

	exportOut string

	historyLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ordertui [config.yaml]",
		Short:         "TUI front-end for the gorder analysis engine",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runEditorCmd,
	}

	rootCmd.PersistentFlags().StringVar(&engineBinary, "engine", gorder.DefaultBinary, "path to the gorder binary")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "path to the run history database")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record runs in the history database")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runEditorCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "engine", &engineBinary, fileCfg.Engine.Binary)
	applyStringConfig(cmd, "db", &dbPath, fileCfg.History.DBPath)

	cfg := editor.NewConfig()
	applyDefaults(cfg, fileCfg.Defaults)
	docPath := ""
	if len(args) == 1 {
		docPath = args[0]
		loaded, err := loadEditorConfig(docPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var store *history.Store
	if !noHistory {
		store, err = history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open history db: %w", err)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				logErrf("failed to close history db: %v\n", cerr)
			}
		}()
	}

	hideHelp := false
	if fileCfg.Editor.ShowHelp != nil {
		hideHelp = !*fileCfg.Editor.ShowHelp
	}
	model := tui.NewModel(tui.Options{
		Config:   cfg,
		DocPath:  docPath,
		Engine:   gorder.NewEngine(engineBinary),
		History:  store,
		HideHelp: hideHelp,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config.yaml>",
		Short: "Validate an analysis config and print a per-group report",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadEditorConfig(args[0])
	if err != nil {
		return err
	}

	width := terminalWidth()
	out := cmd.OutOrStdout()
	nameWidth := 0
	report := cfg.Report()
	for _, group := range report {
		if len(group.Name) > nameWidth {
			nameWidth = len(group.Name)
		}
	}
	for _, group := range report {
		state := "ok"
		if !group.OK {
			state = "incomplete"
		}
		line := fmt.Sprintf("%-*s  %s", nameWidth, group.Name, state)
		if len(line) > width {
			line = line[:width]
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if _, err := editor.ToAnalysis(cfg); err != nil {
		return fmt.Errorf("config is not runnable: %w", err)
	}
	if _, err := fmt.Fprintln(out, "config is runnable"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <config.yaml>",
		Short: "Normalize an analysis config through the editor model",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: <input>"+defaultExportSuffix+")")
	return cmd
}

func runExportCmd(_ *cobra.Command, args []string) error {
	cfg, err := loadEditorConfig(args[0])
	if err != nil {
		return err
	}
	analysis, err := editor.ToAnalysis(cfg)
	if err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}
	out := exportOut
	if out == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		out = base + defaultExportSuffix
	}
	if err := analysis.Save(out); err != nil {
		return err
	}
	logErrf("Wrote %s\n", out)
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "number of runs to show (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &dbPath, fileCfg.History.DBPath)
	applyIntConfig(cmd, "limit", &historyLimit, fileCfg.History.Limit)

	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	runs, err := store.ListRuns(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		logErrln("No recorded runs.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		state := "ok"
		if !run.Success {
			state = "failed"
		}
		duration := (time.Duration(run.DurationMs) * time.Millisecond).Round(time.Millisecond)
		line := fmt.Sprintf("%4d  %s  %-6s  %-13s  %s (%s)",
			run.ID,
			run.FinishedAt.Format(historyTimeFormat),
			state,
			run.Kind,
			run.Structure,
			duration,
		)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !run.Success && run.Error != "" {
			if _, err := fmt.Fprintf(out, "      %s\n", firstLine(run.Error)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
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

	editorCmd := strings.TrimSpace(os.Getenv("EDITOR"))
	if editorCmd == "" {
		editorCmd = "vi"
	}
	parts := strings.Fields(editorCmd)
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

func applyDefaults(cfg *editor.Config, defaults config.DefaultsConfig) {
	if defaults.Threads != nil && *defaults.Threads >= 1 {
		cfg.Other.Threads = *defaults.Threads
	}
	if defaults.Overwrite != nil {
		cfg.Other.Overwrite = *defaults.Overwrite
	}
	if defaults.Silent != nil {
		cfg.Other.Silent = *defaults.Silent
	}
}

func loadEditorConfig(path string) (*editor.Config, error) {
	analysis, err := gorder.Load(path)
	if err != nil {
		return nil, err
	}
	cfg, err := editor.FromAnalysis(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return cfg, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name) || cmd.InheritedFlags().Changed(name)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ordertui configuration
# Uncomment a value to enable it. CLI flags override config values.

[engine]
# binary = %q        # Path to the gorder binary

[history]
# db-path = %q
# limit = %d              # Runs shown by 'ordertui history'

[editor]
# show-help = true        # Key hints in the editor footer

[defaults]
# threads = 1             # Seed values for a fresh configuration
# overwrite = false
# silent = false
`,
		gorder.DefaultBinary,
		config.DefaultDBPath(),
		defaultHistoryLimit,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
