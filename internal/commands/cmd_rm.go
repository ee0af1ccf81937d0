package commands

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/calvales/taskpad/internal/confirm"
	"github.com/calvales/taskpad/internal/core/logging"
	"github.com/calvales/taskpad/internal/taskpad"
)

// RmCmd implements the taskpad rm command. Deletion is gated by the
// confirmation coordinator; on a TTY the surface is an interactive prompt.
type RmCmd struct {
	flags *Flags
	app   *taskpad.App

	yes bool
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *taskpad.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Remove a task",
		UsageText: "taskpad rm <id> [--yes]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	attachConsole(cmd.app)

	title := id
	for _, t := range cmd.app.Store.Tasks() {
		if t.ID == id {
			title = t.Title
			break
		}
	}

	// Without a terminal there is nobody to ask.
	if cmd.yes || !term.IsTerminal(int(os.Stdin.Fd())) {
		cmd.app.Store.Remove(id)
		return nil
	}

	surface := &promptSurface{}
	coord := confirm.NewCoordinator(surface, cmd.app.Chime, logging.Component("rm"))
	surface.coord = coord

	if ok := <-coord.ConfirmDeletion(title); ok {
		cmd.app.Store.Remove(id)
	}

	return nil
}

// promptSurface presents confirmation requests as a blocking terminal
// prompt. Close is a no-op: a prompt cannot be retracted once shown.
type promptSurface struct {
	coord *confirm.Coordinator
}

func (s *promptSurface) Open(req confirm.Request) {
	go func() {
		var ok bool
		field := huh.NewConfirm().
			Title(req.Title).
			Description(req.Message).
			Affirmative(req.ConfirmLabel).
			Negative(req.CancelLabel).
			Value(&ok)

		if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil || !ok {
			s.coord.Dismiss()
			return
		}
		s.coord.Confirm()
	}()
}

func (s *promptSurface) Close() {}
