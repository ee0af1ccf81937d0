package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/taskpad"
	"github.com/calvales/taskpad/pkg/iojson"
)

// ExportCmd implements the taskpad export command.
type ExportCmd struct {
	flags *Flags
	app   *taskpad.App

	status string
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags, app *taskpad.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Write tasks as JSON to stdout",
		UsageText: "taskpad export [--status <status>]",
		Description: `Writes the task list as a JSON array, suitable for piping into
'taskpad import' on another machine.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "only export tasks with this status (all, active, completed)",
				Value:       "all",
				Destination: &cmd.status,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	filter, err := parseFilter(cmd.status)
	if err != nil {
		return err
	}

	cmd.app.Store.SetFilter(filter)
	return iojson.Write(cmd.app.Store.View())
}
