package cli

import (
	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the board layout",
		Long: `Show the board as a grid with every snake and ladder.

With --board random a new layout is drawn; pass --seed to get the same one again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := app.SessionService.NewSession(cmd.Context(), boardSpec())
			if err != nil {
				return userError(err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(newBoardLayout(ss.Board()))
			return nil
		},
	}
}
