package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/taskpad"
	"github.com/calvales/taskpad/internal/tui"
)

// TuiCmd implements the interactive interface command.
type TuiCmd struct {
	flags *Flags
	app   *taskpad.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *taskpad.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive task list",
		Action: cmd.Run,
	})

	return app
}

// Run starts the TUI. It is also the root command's default action.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return tui.Run(cmd.app)
}
