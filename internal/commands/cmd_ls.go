package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/core/styles"
	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
)

// LsCmd implements the taskpad ls command.
type LsCmd struct {
	flags *Flags
	app   *taskpad.App

	status string
	match  string
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *taskpad.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "taskpad ls [--status <status>] [--match <glob>]",
		Description: `Lists tasks newest first.

Examples:
  taskpad ls
  taskpad ls --status active
  taskpad ls --match "groceries*"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (all, active, completed)",
				Value:       "all",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only show tasks whose title matches the glob",
				Destination: &cmd.match,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	filter, err := parseFilter(cmd.status)
	if err != nil {
		return err
	}

	if cmd.match != "" {
		if !doublestar.ValidatePattern(cmd.match) {
			return fmt.Errorf("invalid match pattern %q", cmd.match)
		}
	}

	cmd.app.Store.SetFilter(filter)
	view := cmd.app.Store.View()
	stats := cmd.app.Store.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	shown := 0
	for _, t := range view {
		if cmd.match != "" {
			ok, err := doublestar.Match(cmd.match, t.Title)
			if err != nil || !ok {
				continue
			}
		}
		shown++
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(t.ID), mark(t), t.Title, dueLabel(t))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d shown · %d active · %d completed · %d total",
		shown, stats.Active, stats.Completed, stats.Total)
	fmt.Println(styles.MutedStyle.Render(summary))

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func mark(t task.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

func dueLabel(t task.Task) string {
	if t.DueDate == "" {
		return ""
	}
	return "due " + t.DueDate
}
