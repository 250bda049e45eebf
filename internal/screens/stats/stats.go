package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/ui/components"
	"github.com/abhisek/actprep/internal/ui/layout"
	"github.com/abhisek/actprep/internal/ui/theme"
)

// StatsScreen shows the aggregate progress report and recommendations.
type StatsScreen struct {
	report *progress.Report
	recs   *progress.Recommendations
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen from the tracker's current state.
func New(tracker *progress.Tracker) *StatsScreen {
	return &StatsScreen{
		report: tracker.ComputeAnalytics(),
		recs:   tracker.Recommendations(),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.report == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No practice data yet.\n\n  Finish a practice set to see your progress here.")
	}

	var b strings.Builder
	r := s.report

	b.WriteString("\n")
	statsLine := fmt.Sprintf("Sessions: %d    Questions: %d    Overall: %.0f%%    Last 7: %.0f%%",
		r.TotalSessions, r.TotalQuestions, r.OverallAccuracy, r.RecentAccuracy)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(statsLine)))
	b.WriteString("\n")

	streakLine := fmt.Sprintf("Streak: %d day(s) now, %d best    Time practiced: %dm",
		r.CurrentStreak, r.MaxStreak, r.TotalTime/60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(streakLine)))
	b.WriteString("\n\n")

	b.WriteString(sectionDivider(width, "Skills"))

	skills := make([]string, 0, len(r.SkillBreakdown))
	for skill := range r.SkillBreakdown {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	barWidth := min(width-40, 40)
	for _, skill := range skills {
		stat := r.SkillBreakdown[skill]
		bar := components.NewProgressBar("", stat.Accuracy/100, true, barWidth)

		trend := ""
		switch stat.Trend {
		case progress.TrendImproving:
			trend = lipgloss.NewStyle().Foreground(theme.Success).Render(" ↑")
		case progress.TrendDeclining:
			trend = lipgloss.NewStyle().Foreground(theme.Error).Render(" ↓")
		case progress.TrendStable:
			trend = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" →")
		}

		line := fmt.Sprintf("  %-24s", skill) + bar.View() + trend
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if len(s.recs.WeakSkills) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionDivider(width, "Focus next"))
		for _, ws := range s.recs.WeakSkills {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+ws.Message)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func sectionDivider(width int, label string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}
