package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/snakeladder/internal/services/game"
	"github.com/mcoot/snakeladder/internal/services/session"
)

const (
	minPlayers = 2
	maxPlayers = 6
)

// errQuit ends an interactive game early
var errQuit = errors.New("quit")

func newPlayCmd() *cobra.Command {
	var players []string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play on the console. Press Enter to roll for the current player,
"u" to take back the last turn, or "q" to quit. After a game you can play
again on the same board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &prompter{
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			err := runPlay(cmd, p, out, cleanNames(players))
			if errors.Is(err, errQuit) {
				p.say("\nThanks for playing!")
				return nil
			}
			return userError(err)
		},
	}

	cmd.Flags().StringSliceVarP(&players, "players", "p", nil, "Comma-separated player names (prompted when omitted)")

	return cmd
}

func runPlay(cmd *cobra.Command, p *prompter, out *Output, names []string) error {
	ctx := cmd.Context()

	ss, err := app.SessionService.NewSession(ctx, boardSpec())
	if err != nil {
		return err
	}

	p.say("Welcome to Snake & Ladder!")
	p.say(fmt.Sprintf("Race to square %d. Snakes take you down, ladders help you climb.\n", ss.Board().Size))
	out.Print(newBoardLayout(ss.Board()))

	for {
		if len(names) == 0 {
			names, err = p.askPlayers()
			if err != nil {
				return err
			}
		}

		observers := []game.Observer{NewConsoleObserver(out, ss.Board().Size)}
		if opts.verbose {
			observers = append(observers, game.NewLoggingObserver(app.Logger))
		}

		seq, err := ss.NewGame(ctx, names, observers...)
		if err != nil {
			return err
		}

		if err := playRounds(seq, p, out); err != nil {
			return err
		}

		if err := showResult(cmd, ss, seq, out); err != nil {
			return err
		}

		again, err := p.ask("\nPlay again on the same board? (y/n): ")
		if err != nil {
			return err
		}
		again = strings.ToLower(again)
		if again != "y" && again != "yes" {
			return errQuit
		}
	}
}

func playRounds(seq *game.Sequencer, p *prompter, out *Output) error {
	for !seq.IsWon() {
		out.Print(newPositions(seq.Players()))

		current := seq.CurrentPlayer()
		answer, err := p.ask(fmt.Sprintf("\n%s, press Enter to roll (u = undo, q = quit): ", current.Name))
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "q", "quit":
			return errQuit
		case "u", "undo":
			if err := seq.Undo(); err != nil {
				p.say("Nothing to undo.")
				continue
			}
			p.say(fmt.Sprintf("Took back the last turn. %s to roll again.", seq.CurrentPlayer().Name))
			continue
		}

		if _, err := seq.PlayTurn(); err != nil {
			return err
		}
	}
	return nil
}

func showResult(cmd *cobra.Command, ss *session.Session, seq *game.Sequencer, out *Output) error {
	summary, err := ss.Record(cmd.Context(), seq)
	if err != nil {
		return err
	}
	out.Print(newGameResult(summary, ss.Board().Size))

	standings, err := ss.Standings(cmd.Context())
	if err != nil {
		return err
	}
	out.Print(newStandingsTable(standings))
	return nil
}

// prompter reads answers line by line; end of input counts as quitting
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) say(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) askPlayers() ([]string, error) {
	count := 0
	question := fmt.Sprintf("Enter number of players (%d-%d): ", minPlayers, maxPlayers)
	for count == 0 {
		answer, err := p.ask(question)
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			question = "Invalid input. Please enter a number: "
		case n < minPlayers || n > maxPlayers:
			question = fmt.Sprintf("Please enter a number between %d and %d: ", minPlayers, maxPlayers)
		default:
			count = n
		}
	}

	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		question := fmt.Sprintf("Enter name for Player %d: ", i)
		for {
			name, err := p.ask(question)
			if err != nil {
				return nil, err
			}
			if name == "" {
				name = "Player " + strconv.Itoa(i)
			}
			if !containsFold(names, name) {
				names = append(names, name)
				break
			}
			question = fmt.Sprintf("%s is already playing. Enter another name for Player %d: ", name, i)
		}
	}
	return names, nil
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
