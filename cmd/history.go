package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/actprep/internal/progress"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := progress.NewTracker(st)
		sessions := tracker.History()
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		if limit > 0 && len(sessions) > limit {
			sessions = sessions[len(sessions)-limit:]
		}

		fmt.Printf("%-17s  %-8s  %-8s  %7s  %9s  %6s\n",
			"Date", "Section", "Level", "Score", "Accuracy", "Time")
		fmt.Println(strings.Repeat("─", 66))

		// Newest first.
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			score := fmt.Sprintf("%d/%d", s.CorrectAnswers, s.TotalQuestions)
			fmt.Printf("%-17s  %-8s  %-8s  %7s  %8.1f%%  %3dm%02ds\n",
				s.Timestamp.Local().Format("2006-01-02 15:04"),
				s.Section,
				s.Difficulty,
				score,
				s.Accuracy,
				s.TimeTaken/60,
				s.TimeTaken%60,
			)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
