package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/screens/history"
	"github.com/abhisek/actprep/internal/screens/quiz"
	"github.com/abhisek/actprep/internal/screens/stats"
	"github.com/abhisek/actprep/internal/ui/components"
	"github.com/abhisek/actprep/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	tracker *progress.Tracker
	menu    components.Menu
	name    string
	offline bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. gen may be nil when no LLM key is configured;
// practice then uses the built-in sample sets.
func New(tracker *progress.Tracker, gen *questiongen.Generator) *HomeScreen {
	var name string
	if user := tracker.User(); user != nil {
		name = user.Name
	}

	practice := func(section string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(tracker, gen, section)}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE ENGLISH", Action: practice(questiongen.SectionEnglish)},
		{Label: "PRACTICE MATH", Action: practice(questiongen.SectionMath)},
		{Label: "PRACTICE READING", Action: practice(questiongen.SectionReading)},
		{Label: "PRACTICE SCIENCE", Action: practice(questiongen.SectionScience)},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(tracker)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		tracker: tracker,
		menu:    components.NewMenu(items),
		name:    name,
		offline: gen == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	greeting := "Ready to practice?"
	if h.name != "" {
		greeting = fmt.Sprintf("Hi %s, ready to practice?", h.name)
	}
	b.WriteString(theme.Title.Width(width).Render("ACT Practice"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(greeting))
	b.WriteString("\n\n")

	if report := h.tracker.ComputeAnalytics(); report != nil {
		statsLine := fmt.Sprintf("%d sessions · %.0f%% overall · %d day streak",
			report.TotalSessions, report.OverallAccuracy, report.CurrentStreak)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(statsLine)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.offline {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Offline mode: set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY for AI-generated questions"))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
