package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvales/taskpad/internal/core/notify"
	"github.com/calvales/taskpad/internal/core/styles"
	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskpad", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskpad")
}

// attachConsole mirrors bus notifications to stdout for CLI commands.
// The TUI renders notifications as toasts instead and never calls this.
func attachConsole(app *taskpad.App) {
	app.Bus.Subscribe(func(n notify.Notification) {
		fmt.Fprintln(os.Stdout, styles.RenderNotification(n))
	})
}

// resolveID expands a unique task id prefix to the full id.
func resolveID(app *taskpad.App, arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("missing task id")
	}

	var match string
	for _, t := range app.Store.Tasks() {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("task id %q is ambiguous", arg)
			}
			match = t.ID
		}
	}

	if match == "" {
		// Let the store report not-found through the bus so the message
		// matches every other frontend.
		return arg, nil
	}
	return match, nil
}

func parseFilter(status string) (task.StatusFilter, error) {
	switch status {
	case "", "all":
		return task.FilterAll, nil
	case "active":
		return task.FilterActive, nil
	case "completed", "done":
		return task.FilterCompleted, nil
	}
	return task.FilterAll, fmt.Errorf("unknown status %q (want all, active, or completed)", status)
}
