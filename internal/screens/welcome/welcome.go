package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/ui/components"
	"github.com/abhisek/actprep/internal/ui/layout"
	"github.com/abhisek/actprep/internal/ui/theme"
)

const maxNameLen = 40

// WelcomeScreen collects the student's name on first run.
type WelcomeScreen struct {
	tracker *progress.Tracker
	home    func() screen.Screen
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. home builds the screen shown after the
// profile is saved.
func New(tracker *progress.Tracker, home func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		tracker: tracker,
		home:    home,
		input:   components.NewTextInput("Your name...", maxNameLen),
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.errMsg = "Please enter a name to get started."
			return w, nil
		}

		err := w.tracker.SaveUser(progress.UserProfile{
			ID:    uuid.New().String(),
			Name:  name,
			Level: 1,
		})
		if err != nil {
			w.errMsg = "Could not save your profile: " + err.Error()
			return w, nil
		}

		next := w.home()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Welcome to ActPrep"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Practice for the ACT, track your progress, find your weak spots."))
	b.WriteString("\n\n\n")

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("What should we call you?")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, w.input.View()))

	if w.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(w.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
