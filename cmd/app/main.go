package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/akyairhashvil/sstimer/internal/database"
	"github.com/akyairhashvil/sstimer/internal/models"
	"github.com/akyairhashvil/sstimer/internal/tui"
	"github.com/akyairhashvil/sstimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type options struct {
	minutes     int
	configPath  string
	plain       bool
	version     bool
	writeConfig bool
	history     int
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&opts.minutes, "minutes", -1, "initial minutes (overrides the config file)")
	fs.StringVar(&opts.configPath, "config", "", "path to config.yaml")
	fs.BoolVar(&opts.plain, "plain", false, "print the countdown as lines instead of the full-screen face")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.IntVar(&opts.history, "history", 0, "print the last N recorded runs and exit")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config file and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(config.Path(opts.configPath, util.ConfigDir(config.AppName)))
	if err != nil {
		return nil, err
	}
	if opts.minutes >= 0 {
		cfg.InitialMinutes = opts.minutes
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func dataPath(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(util.DataDir(config.AppName), name)
}

type recentRuns interface {
	RecentRuns(ctx context.Context, limit int) ([]models.Run, error)
}

func printHistory(ctx context.Context, w io.Writer, repo recentRuns, limit int) error {
	runs, err := repo.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(w, "%s  %-9s  %s of %s\n",
			r.StartedAt.Format("2006-01-02 15:04"), r.Outcome,
			tui.FormatDuration(time.Duration(r.ElapsedSeconds())*time.Second),
			tui.FormatDuration(time.Duration(r.DurationSeconds)*time.Second)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Printf("%s %s (%s %s)\n", config.AppName, tui.AppVersion, tui.GitCommit, tui.BuildTime)
		return nil
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.writeConfig {
		path := config.Path(opts.configPath, util.ConfigDir(config.AppName))
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	// 1. Logging goes to a file; the terminal belongs to the face.
	logPath := dataPath(cfg.LogFile, config.LogFileName)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, config.AppName)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Run history
	var db *database.Database
	if cfg.History.Enabled {
		dbPath := dataPath(cfg.History.Path, config.DBFileName)
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		db, err = database.Open(ctx, dbPath)
		if err != nil {
			return err
		}
		defer func() {
			util.LogError("close history", db.Close())
		}()
	}

	if opts.history > 0 {
		if db == nil {
			return errors.New("history is disabled in the config")
		}
		return printHistory(ctx, os.Stdout, db, opts.history)
	}

	// 3. Face
	if opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		var rec runRecorder
		if db != nil {
			rec = db
		}
		return runPlain(ctx, os.Stdout, cfg.InitialMinutes, cfg.Bell, rec)
	}

	topts := tui.Options{
		InitialMinutes: cfg.InitialMinutes,
		Theme:          cfg.Theme,
		Bell:           cfg.Bell,
	}
	if db != nil {
		topts.DB = db
	}
	model := tui.NewModel(ctx, topts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	// A signal ends the program without a quit key; log the cut-off run.
	if run, ok := model.Shutdown(time.Now()); ok && db != nil {
		_, recErr := db.RecordRun(context.WithoutCancel(ctx), run)
		util.LogError("record interrupted run", recErr)
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
