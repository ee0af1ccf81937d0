package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
	"github.com/calvales/taskpad/pkg/iojson"
)

// ImportCmd implements the taskpad import command.
type ImportCmd struct {
	flags *Flags
	app   *taskpad.App

	reader iojson.FileReader[[]task.Payload]
}

// NewImportCmd creates a new import command.
func NewImportCmd(flags *Flags, app *taskpad.App) *ImportCmd {
	return &ImportCmd{flags: flags, app: app}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Add tasks from a JSON file or stdin",
		UsageText: "taskpad import [--file <path>]",
		Description: `Reads a JSON array of tasks and adds each one. Entries are validated
the same way as 'taskpad add': blank titles are rejected.

Example input:
  [{"title": "buy milk", "dueDate": "2026-09-01"}]`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	payloads, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	attachConsole(cmd.app)
	for _, p := range payloads {
		cmd.app.Store.Add(p)
	}

	return nil
}
