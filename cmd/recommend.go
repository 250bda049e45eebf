package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/actprep/internal/progress"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := progress.NewTracker(st)
		recs := tracker.Recommendations()

		if len(recs.WeakSkills) == 0 && len(recs.StrongSkills) == 0 && len(recs.MistakePatterns) == 0 {
			fmt.Println("No recommendations yet. Practice a few sets first.")
			return nil
		}

		if len(recs.WeakSkills) > 0 {
			fmt.Println("Needs work")
			fmt.Println(strings.Repeat("─", 56))
			for _, ws := range recs.WeakSkills {
				fmt.Printf("  %s\n", ws.Message)
			}
			fmt.Println()
		}

		if len(recs.StrongSkills) > 0 {
			fmt.Println("Going strong")
			fmt.Println(strings.Repeat("─", 56))
			for _, ss := range recs.StrongSkills {
				fmt.Printf("  %-24s %.0f%%\n", ss.Skill, ss.Accuracy)
			}
			fmt.Println()
		}

		if len(recs.MistakePatterns) > 0 {
			fmt.Println("Recurring mistakes")
			fmt.Println(strings.Repeat("─", 56))
			for _, mp := range recs.MistakePatterns {
				fmt.Printf("  %s\n", mp.Message)
			}
			fmt.Println()
		}

		if len(recs.SuggestedPractice) > 0 {
			fmt.Println("Suggested practice")
			fmt.Println(strings.Repeat("─", 56))
			for _, sp := range recs.SuggestedPractice {
				fmt.Printf("  %-24s %d questions, %s\n", sp.Skill, sp.Questions, sp.Difficulty)
			}
		}

		return nil
	},
}
