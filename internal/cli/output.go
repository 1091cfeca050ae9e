package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/services/session"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// IsJSON reports whether output is machine-readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case TurnReport:
		o.printTurnReport(v)
	case GameResult:
		o.printGameResult(v)
	case Positions:
		o.printPositions(v)
	case StandingsTable:
		o.printStandings(v)
	case BoardLayout:
		o.printBoardLayout(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TurnReport describes one resolved turn
type TurnReport struct {
	Type    string `json:"type"`
	Turn    int    `json:"turn"`
	Player  string `json:"player"`
	Roll    int    `json:"roll"`
	From    int    `json:"from"`
	Landed  int    `json:"landed"`
	To      int    `json:"to"`
	Outcome string `json:"outcome"`
	Winning bool   `json:"winning"`
	Target  int    `json:"-"`
}

// GameResult describes a finished game
type GameResult struct {
	Type           string         `json:"type"`
	GameID         string         `json:"game_id"`
	Winner         string         `json:"winner"`
	Turns          int            `json:"turns"`
	FinalPositions map[string]int `json:"final_positions"`
	Target         int            `json:"-"`
}

// Positions lists where every player stands
type Positions struct {
	Type    string           `json:"type"`
	Players []PlayerPosition `json:"players"`
}

// PlayerPosition is one player's square
type PlayerPosition struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// StandingsTable is the win tally of a session
type StandingsTable struct {
	Type      string          `json:"type"`
	Standings []StandingEntry `json:"standings"`
}

// StandingEntry is one row of StandingsTable
type StandingEntry struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Played int    `json:"played"`
}

// BoardLayout is a board with its rendered grid
type BoardLayout struct {
	Type    string   `json:"type"`
	BoardID string   `json:"board_id"`
	Size    int      `json:"size"`
	Snakes  [][2]int `json:"snakes"`
	Ladders [][2]int `json:"ladders"`
	Grid    string   `json:"-"`
}

func newTurnReport(player model.Player, event model.TurnEvent, size int) TurnReport {
	return TurnReport{
		Type:    "turn",
		Turn:    event.TurnNumber,
		Player:  player.Name,
		Roll:    event.Roll,
		From:    event.From,
		Landed:  event.Landed,
		To:      event.To,
		Outcome: string(event.Outcome),
		Winning: event.Winning,
		Target:  size,
	}
}

func newGameResult(summary *model.GameSummary, size int) GameResult {
	return GameResult{
		Type:           "result",
		GameID:         string(summary.ID),
		Winner:         summary.WinnerName,
		Turns:          summary.Turns,
		FinalPositions: summary.FinalPositions,
		Target:         size,
	}
}

func newPositions(players []model.Player) Positions {
	p := Positions{Type: "positions"}
	for _, player := range players {
		p.Players = append(p.Players, PlayerPosition{Name: player.Name, Position: player.Position})
	}
	return p
}

func newStandingsTable(standings []session.Standing) StandingsTable {
	t := StandingsTable{Type: "standings"}
	for _, st := range standings {
		t.Standings = append(t.Standings, StandingEntry{Name: st.Name, Wins: st.Wins, Played: st.Played})
	}
	return t
}

func newBoardLayout(b *model.Board) BoardLayout {
	layout := BoardLayout{
		Type:    "board",
		BoardID: string(b.ID),
		Size:    b.Size,
		Snakes:  [][2]int{},
		Ladders: [][2]int{},
		Grid:    RenderBoard(b),
	}
	for _, s := range b.Snakes() {
		layout.Snakes = append(layout.Snakes, [2]int{s.Head, s.Tail})
	}
	for _, l := range b.Ladders() {
		layout.Ladders = append(layout.Ladders, [2]int{l.Bottom, l.Top})
	}
	return layout
}

func (o *Output) printTurnReport(t TurnReport) {
	switch model.TurnOutcome(t.Outcome) {
	case model.OutcomeOvershoot:
		fmt.Fprintf(o.w, "%s rolled %d: needs exactly %d to finish, stays on %d\n", t.Player, t.Roll, t.Target-t.From, t.To)
	case model.OutcomeSnake:
		fmt.Fprintf(o.w, "%s rolled %d: %s bitten on %d, slides down to %d\n", t.Player, t.Roll, snakeGlyph, t.Landed, t.To)
	case model.OutcomeLadder:
		fmt.Fprintf(o.w, "%s rolled %d: %s climbs from %d up to %d\n", t.Player, t.Roll, ladderGlyph, t.Landed, t.To)
	default:
		fmt.Fprintf(o.w, "%s rolled %d: %d -> %d\n", t.Player, t.Roll, t.From, t.To)
	}
}

func (o *Output) printGameResult(r GameResult) {
	fmt.Fprintf(o.w, "%s %s wins after %d turns!\n", trophyGlyph, r.Winner, r.Turns)
	fmt.Fprintln(o.w, "Final positions:")

	names := make([]string, 0, len(r.FinalPositions))
	for name := range r.FinalPositions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := r.FinalPositions[names[i]], r.FinalPositions[names[j]]
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		status := ""
		if name == r.Winner {
			status = " WINNER"
		}
		fmt.Fprintf(o.w, "  %s: %d%s\n", name, r.FinalPositions[name], status)
	}
}

func (o *Output) printPositions(p Positions) {
	fmt.Fprintln(o.w, "Current positions:")
	for _, player := range p.Players {
		fmt.Fprintf(o.w, "  %s: %d\n", player.Name, player.Position)
	}
}

func (o *Output) printStandings(t StandingsTable) {
	fmt.Fprintln(o.w, "Standings:")
	for _, st := range t.Standings {
		fmt.Fprintf(o.w, "  %s: %d of %d\n", st.Name, st.Wins, st.Played)
	}
}

func (o *Output) printBoardLayout(b BoardLayout) {
	fmt.Fprintf(o.w, "Board %s: %d squares\n", b.BoardID, b.Size)
	fmt.Fprint(o.w, b.Grid)

	fmt.Fprintf(o.w, "%s Snakes:", snakeGlyph)
	for _, s := range b.Snakes {
		fmt.Fprintf(o.w, " %d->%d", s[0], s[1])
	}
	fmt.Fprintln(o.w)

	fmt.Fprintf(o.w, "%s Ladders:", ladderGlyph)
	for _, l := range b.Ladders {
		fmt.Fprintf(o.w, " %d->%d", l[0], l[1])
	}
	fmt.Fprintln(o.w)
}
