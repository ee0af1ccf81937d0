package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/commands"
	"github.com/calvales/taskpad/internal/core/config"
	"github.com/calvales/taskpad/internal/core/notify"
	"github.com/calvales/taskpad/internal/core/styles"
	"github.com/calvales/taskpad/internal/store"
	"github.com/calvales/taskpad/internal/store/jsonfile"
	"github.com/calvales/taskpad/internal/taskpad"
	"github.com/calvales/taskpad/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		padApp    = &taskpad.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "taskpad",
		Usage:     "A local task list for your terminal",
		UsageText: "taskpad [global options] command [command options]",
		Description: `Taskpad keeps a simple task list on your machine: add, edit, complete,
filter, and delete tasks, with state surviving between runs.

Run 'taskpad' with no arguments to open the interactive task list.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKPAD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/taskpad.log)",
				Sources:     cli.EnvVars("TASKPAD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKPAD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TASKPAD_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "taskpad.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if palette, ok := styles.GetPalette(cfg.Theme); ok {
				styles.SetTheme(palette)
			}

			var chime notify.Chime = notify.NopChime{}
			if cfg.SoundEnabled() {
				chime = notify.NewBellChime(os.Stdout, log.With().Str("cmp", "chime").Logger())
			}

			bus := notify.NewBus()
			taskFile := jsonfile.NewTaskFile(cfg.TaskFilePath(), log.With().Str("cmp", "jsonfile").Logger())
			taskStore := store.New(taskFile, bus, chime, log.Logger)

			// Populate the pre-allocated App struct (commands already hold
			// a pointer to it).
			*padApp = *taskpad.NewApp(taskStore, bus, chime, cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, padApp)

	app = commands.NewAddCmd(flags, padApp).Register(app)
	app = commands.NewLsCmd(flags, padApp).Register(app)
	app = commands.NewEditCmd(flags, padApp).Register(app)
	app = commands.NewDoneCmd(flags, padApp).Register(app)
	app = commands.NewRmCmd(flags, padApp).Register(app)
	app = commands.NewClearCmd(flags, padApp).Register(app)
	app = commands.NewImportCmd(flags, padApp).Register(app)
	app = commands.NewExportCmd(flags, padApp).Register(app)
	app = tuiCmd.Register(app)

	// Open the TUI when no subcommand is provided.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskpad --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
