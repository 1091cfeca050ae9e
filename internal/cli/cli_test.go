package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/snakeladder/internal/config"
	"github.com/mcoot/snakeladder/internal/services/dice"
)

type CLISuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	for _, name := range []string{
		"SNAKELADDER_BOARD", "SNAKELADDER_BOARD_SIZE", "SNAKELADDER_SNAKES",
		"SNAKELADDER_LADDERS", "SNAKELADDER_DICE_FACES", "SNAKELADDER_DICE_WEIGHTS", "SNAKELADDER_SEED",
		"SNAKELADDER_MAX_TURNS", "SNAKELADDER_LOG_LEVEL", "SNAKELADDER_OUTPUT",
	} {
		// Setenv restores the previous value after the test
		s.T().Setenv(name, "")
		s.Require().NoError(os.Unsetenv(name))
	}
}

func (s *CLISuite) execute(stdin string, args ...string) error {
	s.stdout.Reset()
	s.stderr.Reset()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

// documents decodes every JSON object in stdout, ignoring prompt text
func (s *CLISuite) documents() []map[string]any {
	var docs []map[string]any
	for _, line := range strings.Split(s.stdout.String(), "\n") {
		start := strings.Index(line, "{")
		if start < 0 {
			continue
		}
		var doc map[string]any
		s.Require().NoError(json.Unmarshal([]byte(line[start:]), &doc), "line: %s", line)
		docs = append(docs, doc)
	}
	return docs
}

func countType(docs []map[string]any, typ string) int {
	n := 0
	for _, d := range docs {
		if d["type"] == typ {
			n++
		}
	}
	return n
}

func (s *CLISuite) TestDiceFlagDefaults() {
	flags := NewRootCmd().PersistentFlags()

	s.Equal(strconv.Itoa(dice.DefaultFaces), flags.Lookup("dice-faces").DefValue)
	s.Equal("[]", flags.Lookup("dice-weights").DefValue)
}

// board command

func (s *CLISuite) TestBoardText() {
	err := s.execute("", "board")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "100 squares")
	s.Contains(out, "99->78")
	s.Contains(out, "80->100")
	s.Contains(out, finishGlyph)
}

func (s *CLISuite) TestBoardJSON() {
	err := s.execute("", "--output", "json", "board")
	s.Require().NoError(err)

	var layout BoardLayout
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &layout))
	s.Equal("board", layout.Type)
	s.Equal(100, layout.Size)
	s.Len(layout.Snakes, 9)
	s.Len(layout.Ladders, 9)
}

func (s *CLISuite) TestBoardRandomFromEnvironment() {
	s.T().Setenv("SNAKELADDER_BOARD", config.BoardRandom)
	s.T().Setenv("SNAKELADDER_BOARD_SIZE", "50")
	s.T().Setenv("SNAKELADDER_SEED", "11")

	err := s.execute("", "-o", "json", "--snakes", "2", "--ladders", "1", "board")
	s.Require().NoError(err)

	var layout BoardLayout
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &layout))
	s.Equal(50, layout.Size)
	s.Len(layout.Snakes, 2)
	s.Len(layout.Ladders, 1)
}

func (s *CLISuite) TestBoardImpossibleLayout() {
	err := s.execute("", "--board", "random", "--size", "20", "--snakes", "30", "board")
	s.Require().Error(err)
	s.Contains(err.Error(), "cannot build board")
}

func (s *CLISuite) TestInvalidOutputFormat() {
	err := s.execute("", "--output", "yaml", "board")
	s.Error(err)
}

// simulate command

func (s *CLISuite) TestSimulateQuietJSON() {
	err := s.execute("", "-o", "json", "--seed", "5", "simulate", "-p", "Ana,Ben", "-n", "3", "-q")
	s.Require().NoError(err)

	docs := s.documents()
	s.Equal(3, countType(docs, "result"))
	s.Equal(1, countType(docs, "standings"))
	s.Equal(0, countType(docs, "turn"))

	for _, d := range docs {
		if d["type"] != "result" {
			continue
		}
		positions := d["final_positions"].(map[string]any)
		s.Equal(float64(100), positions[d["winner"].(string)])
	}
}

func (s *CLISuite) TestSimulateIsReproducible() {
	s.Require().NoError(s.execute("", "-o", "json", "--seed", "9", "simulate"))
	first := s.stdout.String()

	s.Require().NoError(s.execute("", "-o", "json", "--seed", "9", "simulate"))
	s.Equal(first, s.stdout.String())
}

func (s *CLISuite) TestSimulateText() {
	err := s.execute("", "--seed", "3", "simulate", "--players", "Ana, Ben")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Game started with 2 players: Ana, Ben")
	s.Contains(out, "Ana rolled")
	s.Contains(out, "wins after")
	s.NotContains(out, "Standings:")
}

func (s *CLISuite) TestSimulateWithLoadedDie() {
	err := s.execute("", "-o", "json", "--board", "random", "--size", "12", "--snakes", "0", "--ladders", "0",
		"--dice-weights", "0,1", "simulate", "-p", "Ana,Ben")
	s.Require().NoError(err)

	docs := s.documents()
	s.Equal(11, countType(docs, "turn"))
	for _, d := range docs {
		if d["type"] == "turn" {
			s.Equal(float64(2), d["roll"])
		}
	}
	for _, d := range docs {
		if d["type"] == "result" {
			s.Equal("Ana", d["winner"])
		}
	}
}

func (s *CLISuite) TestSimulateNeedsTwoPlayers() {
	err := s.execute("", "simulate", "--players", "Ana")
	s.Require().Error(err)
	s.Contains(err.Error(), "at least 2 players")
}

func (s *CLISuite) TestSimulateRejectsDuplicateNames() {
	err := s.execute("", "simulate", "--players", "Ana,Ana")
	s.Require().Error(err)
	s.Contains(err.Error(), "must be unique")
}

func (s *CLISuite) TestSimulateRejectsZeroGames() {
	err := s.execute("", "simulate", "--games", "0")
	s.Error(err)
}

func (s *CLISuite) TestSimulateTurnLimit() {
	err := s.execute("", "--seed", "1", "--max-turns", "1", "simulate")
	s.Require().Error(err)
	s.Contains(err.Error(), "no winner")
}

func (s *CLISuite) TestVerboseLogsToStderr() {
	err := s.execute("", "-v", "--seed", "2", "simulate", "-q")
	s.Require().NoError(err)

	s.Contains(s.stderr.String(), `"msg":"game won"`)
	s.NotContains(s.stdout.String(), `"msg"`)
}

// play command

func (s *CLISuite) TestPlayPromptsForPlayers() {
	input := strings.Join([]string{"one", "9", "2", "Ana", "", "", "q"}, "\n") + "\n"

	err := s.execute(input, "--seed", "4", "play")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Invalid input. Please enter a number: ")
	s.Contains(out, "Please enter a number between 2 and 6: ")
	s.Contains(out, "Game started with 2 players: Ana, Player 2")
	s.Contains(out, "Ana rolled")
	s.Contains(out, "Player 2, press Enter to roll")
	s.Contains(out, "Thanks for playing!")
}

func (s *CLISuite) TestPlayRepromptsDuplicateName() {
	input := strings.Join([]string{"2", "Ana", "ANA", "Ben", "q"}, "\n") + "\n"

	err := s.execute(input, "--seed", "4", "play")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "ANA is already playing. Enter another name for Player 2: ")
	s.Contains(out, "Game started with 2 players: Ana, Ben")
}

func (s *CLISuite) TestPlayUndo() {
	input := strings.Join([]string{"", "u", "u", "q"}, "\n") + "\n"

	err := s.execute(input, "--seed", "4", "play", "--players", "Ana,Ben")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Took back the last turn. Ana to roll again.")
	s.Contains(out, "Nothing to undo.")
}

func (s *CLISuite) TestPlayEndOfInputQuits() {
	err := s.execute("\n\n\n", "-o", "json", "--seed", "4", "play", "--players", "Ana,Ben")
	s.Require().NoError(err)

	docs := s.documents()
	s.Equal(1, countType(docs, "board"))
	s.Equal(3, countType(docs, "turn"))
	s.Equal(0, countType(docs, "result"))
	s.Contains(s.stdout.String(), "Thanks for playing!")
}

func (s *CLISuite) TestPlayToCompletionOnSmallBoard() {
	// A bare 12-square board finishes well within 200 rolls
	input := strings.Repeat("\n", 200) + "n\n"

	err := s.execute(input, "-o", "json", "--seed", "8", "--board", "random",
		"--size", "12", "--snakes", "0", "--ladders", "0", "play", "--players", "Ana,Ben")
	s.Require().NoError(err)

	docs := s.documents()
	s.Equal(1, countType(docs, "result"))
	s.Equal(1, countType(docs, "standings"))
}
