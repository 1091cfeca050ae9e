package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/snakeladder/internal/services/game"
)

func newSimulateCmd() *cobra.Command {
	var (
		players []string
		games   int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play games automatically",
		Long: `Play one or more games on the same board without prompting and print
the results. Use --seed to make the run reproducible.`,
		Example: `  snakeladder simulate --players Ana,Ben,Cat --games 10 --quiet
  snakeladder simulate --seed 42 --board random -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1, got %d", games)
			}
			names := cleanNames(players)

			ctx := cmd.Context()
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			ss, err := app.SessionService.NewSession(ctx, boardSpec())
			if err != nil {
				return userError(err)
			}

			var observers []game.Observer
			if !quiet {
				observers = append(observers, NewConsoleObserver(out, ss.Board().Size))
			}
			if opts.verbose {
				observers = append(observers, game.NewLoggingObserver(app.Logger))
			}

			for i := 0; i < games; i++ {
				if games > 1 && !out.IsJSON() && !quiet {
					out.PrintMessage(fmt.Sprintf("\n=== Game %d of %d ===", i+1, games))
				}
				summary, err := ss.Simulate(ctx, names, cfg.MaxTurns, observers...)
				if err != nil {
					return userError(err)
				}
				out.Print(newGameResult(summary, ss.Board().Size))
			}

			if games > 1 {
				standings, err := ss.Standings(ctx)
				if err != nil {
					return err
				}
				out.Print(newStandingsTable(standings))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&players, "players", "p", []string{"Player 1", "Player 2"}, "Comma-separated player names")
	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print results, not every turn")

	return cmd
}

func cleanNames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, n := range names {
		result = append(result, strings.TrimSpace(n))
	}
	return result
}
