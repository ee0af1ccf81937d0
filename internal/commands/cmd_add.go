package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
)

// AddCmd implements the taskpad add command.
type AddCmd struct {
	flags *Flags
	app   *taskpad.App

	description string
	dueDate     string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *taskpad.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "taskpad add <title> [--description <text>] [--due <date>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "longer task description (markdown supported)",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date",
				Destination: &cmd.dueDate,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("missing task title")
	}

	attachConsole(cmd.app)
	cmd.app.Store.Add(task.Payload{
		Title:       strings.Join(c.Args().Slice(), " "),
		Description: cmd.description,
		DueDate:     cmd.dueDate,
	})

	return nil
}
