package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/actprep/internal/api"
	"github.com/abhisek/actprep/internal/progress"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := progress.NewTracker(st)
		gen := buildGenerator(cmd.Context(), st)

		return api.Serve(addr, api.NewRouter(tracker, gen))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
