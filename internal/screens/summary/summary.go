package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/ui/layout"
	"github.com/abhisek/actprep/internal/ui/theme"
)

// skillResult aggregates per-skill correctness for one session.
type skillResult struct {
	Skill     string
	Correct   int
	Attempted int
}

// SummaryScreen shows the result of a recorded practice session.
type SummaryScreen struct {
	session progress.PracticeSession
	report  *progress.Report
	skills  []skillResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. report may be nil.
func New(session progress.PracticeSession, report *progress.Report) *SummaryScreen {
	return &SummaryScreen{
		session: session,
		report:  report,
		skills:  skillResults(session),
	}
}

func skillResults(session progress.PracticeSession) []skillResult {
	bySkill := make(map[string]*skillResult)
	for _, q := range session.Questions {
		if q.Skill == "" {
			continue
		}
		sr, ok := bySkill[q.Skill]
		if !ok {
			sr = &skillResult{Skill: q.Skill}
			bySkill[q.Skill] = sr
		}
		sr.Attempted++
		if a, answered := session.Answers[q.ID]; answered && a.IsCorrect {
			sr.Correct++
		}
	}

	out := make([]skillResult, 0, len(bySkill))
	for _, sr := range bySkill {
		out = append(out, *sr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Practice Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Practice complete!"))
	b.WriteString("\n\n")

	mins := s.session.TimeTaken / 60
	secs := s.session.TimeTaken % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %d:%02d", titleCase(s.session.Section), s.session.Difficulty, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		s.session.TotalQuestions, s.session.CorrectAnswers, s.session.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, sr := range s.skills {
		line := fmt.Sprintf("  %-24s %d/%d correct", sr.Skill, sr.Correct, sr.Attempted)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sr.Correct == sr.Attempted {
			style = style.Foreground(theme.Success)
		} else if sr.Correct == 0 {
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.report != nil {
		b.WriteString("\n")
		streakLine := fmt.Sprintf("Current streak: %d day(s)    Overall accuracy: %.0f%%",
			s.report.CurrentStreak, s.report.OverallAccuracy)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(streakLine)))
		b.WriteString("\n")
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
