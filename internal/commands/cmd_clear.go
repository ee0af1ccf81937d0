package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/taskpad"
)

// ClearCmd implements the taskpad clear command.
type ClearCmd struct {
	flags *Flags
	app   *taskpad.App
}

// NewClearCmd creates a new clear command.
func NewClearCmd(flags *Flags, app *taskpad.App) *ClearCmd {
	return &ClearCmd{flags: flags, app: app}
}

// Register adds the clear command to the application.
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clear",
		Usage:     "Remove all completed tasks",
		UsageText: "taskpad clear",
		Action:    cmd.run,
	})

	return app
}

func (cmd *ClearCmd) run(ctx context.Context, c *cli.Command) error {
	attachConsole(cmd.app)
	cmd.app.Store.ClearCompleted()
	return nil
}
