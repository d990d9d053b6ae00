package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game result commands",
	}

	cmd.AddCommand(newGameSaveCmd())
	cmd.AddCommand(newGameHistoryCmd())
	cmd.AddCommand(newGamePopularityCmd())
	cmd.AddCommand(newGameActivityCmd())
	cmd.AddCommand(newGameAveragesCmd())

	return cmd
}

func newGameSaveCmd() *cobra.Command {
	var gameType, trophy string
	var score int

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a finished game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"gameType": gameType,
				"score":    score,
			}
			if trophy != "" {
				req["trophy"] = trophy
			}
			var result SaveResult

			if err := client.Post("/game/save", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameType, "type", "", "Game type (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score achieved")
	cmd.Flags().StringVar(&trophy, "trophy", "", "Trophy earned, if any")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newGameHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [user-id]",
		Short: "Show game history (own, or any user's as admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/game/history"
			if len(args) == 1 {
				path = "/game/history/" + args[0]
			}
			var result []Result

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(ResultList(result))
			return nil
		},
	}

	return cmd
}

func newGamePopularityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "popularity",
		Short: "Show how often each game type is played (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CategoryCount

			if err := client.Get("/game/stats/popularity", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(CategoryCountList(result))
			return nil
		},
	}
}

func newGameActivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show games played per day over the last week (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []DayCount

			if err := client.Get("/game/stats/activity", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(DayCountList(result))
			return nil
		},
	}
}

func newGameAveragesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "averages",
		Short: "Show average score per game type (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CategoryAverage

			if err := client.Get("/game/stats/averages", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(CategoryAverageList(result))
			return nil
		},
	}
}
