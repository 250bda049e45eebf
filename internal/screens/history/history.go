package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/ui/layout"
	"github.com/abhisek/actprep/internal/ui/theme"
)

// shownSessions caps how many recent sessions fit on screen.
const shownSessions = 15

// HistoryScreen lists recent practice sessions, newest first.
type HistoryScreen struct {
	sessions []progress.PracticeSession
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen from the tracker's stored history.
func New(tracker *progress.Tracker) *HistoryScreen {
	all := tracker.History()
	if len(all) > shownSessions {
		all = all[len(all)-shownSessions:]
	}

	// Newest first for display.
	sessions := make([]progress.PracticeSession, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		sessions = append(sessions, all[i])
	}
	return &HistoryScreen{sessions: sessions}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if len(h.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No sessions yet.\n\n  Your finished practice sets will show up here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-12s %-10s %-8s %10s %10s", "Date", "Section", "Level", "Score", "Accuracy")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)))))
	b.WriteString("\n")

	for _, s := range h.sessions {
		score := fmt.Sprintf("%d/%d", s.CorrectAnswers, s.TotalQuestions)
		line := fmt.Sprintf("  %-12s %-10s %-8s %10s %9.0f%%",
			s.Timestamp.Local().Format("Jan 02"), s.Section, s.Difficulty, score, s.Accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.Accuracy >= 80 {
			style = style.Foreground(theme.Success)
		} else if s.Accuracy < 60 {
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
