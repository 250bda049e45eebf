package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/screens/home"
	"github.com/abhisek/actprep/internal/screens/welcome"
	"github.com/abhisek/actprep/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	width   int
	height  int
}

// newAppModel starts on the welcome screen for a fresh profile, the home
// screen otherwise.
func newAppModel(tracker *progress.Tracker, gen *questiongen.Generator) AppModel {
	buildHome := func() screen.Screen { return home.New(tracker, gen) }

	var initial screen.Screen
	if tracker.User() == nil {
		initial = welcome.New(tracker, buildHome)
	} else {
		initial = buildHome()
	}

	return AppModel{
		router:  router.New(initial),
		tracker: tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak := 0
	accuracy := -1.0
	if report := m.tracker.ComputeAnalytics(); report != nil {
		streak = report.CurrentStreak
		accuracy = report.OverallAccuracy
	}

	header := layout.RenderHeader(title, streak, accuracy, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(tracker *progress.Tracker, gen *questiongen.Generator) error {
	p := tea.NewProgram(newAppModel(tracker, gen))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
