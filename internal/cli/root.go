package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/snakeladder/internal/config"
	"github.com/mcoot/snakeladder/internal/factory"
	"github.com/mcoot/snakeladder/internal/services/board"
	"github.com/mcoot/snakeladder/internal/services/dice"
	"github.com/mcoot/snakeladder/internal/services/session"
)

var (
	cfg  *config.Config
	app  *factory.App
	opts *flagOptions
)

// flagOptions holds raw flag values; only flags the user set override the environment
type flagOptions struct {
	output      string
	verbose     bool
	seed        uint64
	board       string
	size        int
	snakes      int
	ladders     int
	diceFaces   int
	diceWeights []int
	maxTurns    int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = &flagOptions{}

	rootCmd := &cobra.Command{
		Use:   "snakeladder",
		Short: "Play Snake & Ladder in the terminal",
		Long: `snakeladder plays the classic Snake & Ladder race on the console.

Players take turns rolling a die and moving toward the final square. Landing on
a snake's head slides you down to its tail, landing on a ladder's bottom climbs
you to its top, and a roll that would overshoot the final square is wasted.

Defaults come from SNAKELADDER_* environment variables; flags override them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.Level()
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			app, err = factory.New(factory.Config{
				Logger:    logger,
				Seed:      cfg.Seed,
				DiceFaces:   cfg.DiceFaces,
				DiceWeights: cfg.DiceWeights,
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", config.OutputText, "Output format: text, json (env: SNAKELADDER_OUTPUT)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log game events at debug level to stderr")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible dice and boards, 0 for random (env: SNAKELADDER_SEED)")
	flags.StringVar(&opts.board, "board", config.BoardDefault, "Board layout: default, random (env: SNAKELADDER_BOARD)")
	flags.IntVar(&opts.size, "size", board.DefaultSize, "Squares on a random board (env: SNAKELADDER_BOARD_SIZE)")
	flags.IntVar(&opts.snakes, "snakes", len(board.DefaultSnakes), "Snakes on a random board (env: SNAKELADDER_SNAKES)")
	flags.IntVar(&opts.ladders, "ladders", len(board.DefaultLadders), "Ladders on a random board (env: SNAKELADDER_LADDERS)")
	flags.IntVar(&opts.diceFaces, "dice-faces", dice.DefaultFaces, "Faces on the die (env: SNAKELADDER_DICE_FACES)")
	flags.IntSliceVar(&opts.diceWeights, "dice-weights", nil, "Comma-separated weight per face for a loaded die, replaces --dice-faces (env: SNAKELADDER_DICE_WEIGHTS)")
	flags.IntVar(&opts.maxTurns, "max-turns", session.DefaultMaxTurns, "Turn limit for simulated games (env: SNAKELADDER_MAX_TURNS)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		c.Output = opts.output
	}
	if flags.Changed("seed") {
		c.Seed = opts.seed
	}
	if flags.Changed("board") {
		c.Board = opts.board
	}
	if flags.Changed("size") {
		c.BoardSize = opts.size
	}
	if flags.Changed("snakes") {
		c.Snakes = opts.snakes
	}
	if flags.Changed("ladders") {
		c.Ladders = opts.ladders
	}
	if flags.Changed("dice-faces") {
		c.DiceFaces = opts.diceFaces
	}
	if flags.Changed("dice-weights") {
		c.DiceWeights = opts.diceWeights
	}
	if flags.Changed("max-turns") {
		c.MaxTurns = opts.maxTurns
	}
}

// boardSpec translates the configuration into a session board choice
func boardSpec() session.BoardSpec {
	return session.BoardSpec{
		Kind: cfg.Board,
		Random: board.RandomOptions{
			Size:    cfg.BoardSize,
			Snakes:  cfg.Snakes,
			Ladders: cfg.Ladders,
		},
	}
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
