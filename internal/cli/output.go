package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/hearts/internal/model"
	"github.com/mcoot/hearts/internal/services/scoreboard"
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

// Result is printed after every command that changes the scoreboard
type Result struct {
	Message    string                `json:"message,omitempty"`
	Scoreboard scoreboard.Snapshot   `json:"scoreboard"`
	Standings  []scoreboard.Standing `json:"standings,omitempty"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Result:
		o.printResult(v)
	case scoreboard.Snapshot:
		o.printSnapshot(v)
	case []scoreboard.Standing:
		o.printStandings(v)
	case model.Settings:
		o.printSettings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// displayName falls back to the seat for unnamed players
func displayName(name string, seat int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Player %d", seat)
}

func (o *Output) printResult(r Result) {
	if r.Message != "" {
		fmt.Fprintln(o.w, r.Message)
		fmt.Fprintln(o.w)
	}
	o.printSnapshot(r.Scoreboard)
	if len(r.Standings) > 0 {
		fmt.Fprintln(o.w)
		o.printStandings(r.Standings)
	}
}

func (o *Output) printSnapshot(s scoreboard.Snapshot) {
	dealer := ""
	for _, p := range s.Players {
		if p.IsDealer {
			dealer = displayName(p.Name, p.Seat)
		}
	}

	fmt.Fprintf(o.w, "%s | %s | Dealer: %s\n", s.RoundLabel, s.Action, dealer)
	fmt.Fprintf(o.w, "Moon rule: %s | Points remaining: %d\n", s.MoonRule, s.PointsRemaining)
	if s.GameOver {
		fmt.Fprintln(o.w, "Game over!")
	}
	fmt.Fprintln(o.w)

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Seat\tPlayer\tRound\tTotal\t")
	for _, p := range s.Players {
		marker := ""
		if p.IsDealer {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%d\t%d\t\n", p.Seat, marker, displayName(p.Name, p.Seat), p.RoundScore, p.TotalScore)
	}
	_ = tw.Flush()
}

func (o *Output) printStandings(standings []scoreboard.Standing) {
	for _, st := range standings {
		fmt.Fprintf(o.w, "%s %d. %s (%d)\n", st.Label, st.Position, displayName(st.Name, st.Seat), st.Score)
	}
}

func (o *Output) printSettings(s model.Settings) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Moon rule:\t%s (%s)\n", s.MoonRule, s.MoonRule.Description())
	fmt.Fprintf(tw, "Accent color:\t%s\n", s.AccentColor)
	fmt.Fprintf(tw, "Save player names:\t%s\n", onOff(s.SavePlayerNames))
	_ = tw.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// choices renders allowed values for help text
func choices[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(string(v))
	}
	return strings.Join(out, ", ")
}
