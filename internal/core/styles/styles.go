// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvales/taskpad/internal/core/notify"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Shared styles, rebuilt by SetTheme.
var (
	TitleStyle       lipgloss.Style
	MutedStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	CompletedStyle   lipgloss.Style
	DueStyle         lipgloss.Style
	TabStyle         lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	StatsStyle       lipgloss.Style
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalDangerStyle lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	ToastStyles      map[notify.Level]lipgloss.Style
	levelPrefix      = map[notify.Level]string{
		notify.LevelSuccess: "✓",
		notify.LevelInfo:    "•",
		notify.LevelWarning: "!",
		notify.LevelError:   "✗",
	}
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme rebuilds the shared styles from the given palette.
func SetTheme(p Palette) {
	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	SelectedStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	CompletedStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	DueStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TabStyle = lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true).Padding(0, 1)
	StatsStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	ModalDangerStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ToastStyles = map[notify.Level]lipgloss.Style{
		notify.LevelSuccess: lipgloss.NewStyle().Foreground(p.Success),
		notify.LevelInfo:    lipgloss.NewStyle().Foreground(p.Secondary),
		notify.LevelWarning: lipgloss.NewStyle().Foreground(p.Warning),
		notify.LevelError:   lipgloss.NewStyle().Foreground(p.Error),
	}
}

// RenderNotification formats a notification for terminal output.
func RenderNotification(n notify.Notification) string {
	style, ok := ToastStyles[n.Level]
	if !ok {
		style = MutedStyle
	}
	prefix, ok := levelPrefix[n.Level]
	if !ok {
		prefix = "•"
	}
	return style.Render(prefix + " " + n.Message)
}
