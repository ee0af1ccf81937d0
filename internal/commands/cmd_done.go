package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/taskpad"
)

// DoneCmd implements the taskpad done command.
type DoneCmd struct {
	flags *Flags
	app   *taskpad.App
}

// NewDoneCmd creates a new done command.
func NewDoneCmd(flags *Flags, app *taskpad.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the done command to the application.
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Aliases:   []string{"toggle"},
		Usage:     "Toggle a task's completion state",
		UsageText: "taskpad done <id>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	attachConsole(cmd.app)
	cmd.app.Store.Toggle(id)

	return nil
}
