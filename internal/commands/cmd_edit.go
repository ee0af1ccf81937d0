package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
)

// EditCmd implements the taskpad edit command.
type EditCmd struct {
	flags *Flags
	app   *taskpad.App

	title       string
	description string
	dueDate     string
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *taskpad.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task",
		UsageText: "taskpad edit <id> [--title <text>] [--description <text>] [--due <date>]",
		Description: `Updates only the fields you pass. Passing an empty --description or
--due clears that field; an empty --title is rejected.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "new due date",
				Destination: &cmd.dueDate,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	// Only fields passed on the command line end up in the change-set.
	var changes task.Changes
	if c.IsSet("title") {
		changes.Title = &cmd.title
	}
	if c.IsSet("description") {
		changes.Description = &cmd.description
	}
	if c.IsSet("due") {
		changes.DueDate = &cmd.dueDate
	}

	attachConsole(cmd.app)
	cmd.app.Store.Update(id, changes)

	return nil
}
