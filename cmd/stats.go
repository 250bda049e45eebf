package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/actprep/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your progress report",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := progress.NewTracker(st)
		report := tracker.ComputeAnalytics()
		if report == nil {
			fmt.Println("No practice data yet. Run `actprep play` to get started.")
			return nil
		}

		fmt.Println("Progress Report")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Sessions:          %d\n", report.TotalSessions)
		fmt.Printf("Questions:         %d (%d correct)\n", report.TotalQuestions, report.TotalCorrect)
		fmt.Printf("Overall accuracy:  %.1f%%\n", report.OverallAccuracy)
		fmt.Printf("Recent accuracy:   %.1f%% (last %d sessions)\n", report.RecentAccuracy, progress.RecentSessionWindow)
		fmt.Printf("Time practiced:    %dm %ds\n", report.TotalTime/60, report.TotalTime%60)
		fmt.Printf("Streak:            %d day(s) now, %d best\n", report.CurrentStreak, report.MaxStreak)
		fmt.Printf("Last practice:     %s\n", report.LastPractice.Local().Format("2006-01-02 15:04"))

		if len(report.SkillBreakdown) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-24s  %8s  %9s  %s\n", "Skill", "Attempts", "Accuracy", "Trend")
		fmt.Println(strings.Repeat("─", 56))

		skills := make([]string, 0, len(report.SkillBreakdown))
		for skill := range report.SkillBreakdown {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		for _, skill := range skills {
			stat := report.SkillBreakdown[skill]
			trend := string(stat.Trend)
			if trend == "" {
				trend = "-"
			}
			fmt.Printf("%-24s  %8d  %8.1f%%  %s\n",
				skill, stat.TotalAttempts, stat.Accuracy, trend)
		}

		return nil
	},
}
