package entity

import "fmt"

// Outcome is how a played game ended.
type Outcome string

const (
	OutcomeCookie Outcome = "cookie"
	OutcomeMilk   Outcome = "milk"
	OutcomeDraw   Outcome = "draw"
)

var Outcomes = []Outcome{OutcomeCookie, OutcomeMilk, OutcomeDraw}

func OutcomeOf(team Team) Outcome {
	if team == TeamMilk {
		return OutcomeMilk
	}
	return OutcomeCookie
}

type Scoreboard struct {
	Cookie int64 `json:"cookie"`
	Milk   int64 `json:"milk"`
	Draw   int64 `json:"draw"`
}

// Add bumps the counter for outcome.
func (that *Scoreboard) Add(outcome Outcome, n int64) {
	switch outcome {
	case OutcomeCookie:
		that.Cookie += n
	case OutcomeMilk:
		that.Milk += n
	case OutcomeDraw:
		that.Draw += n
	}
}

func (that *Scoreboard) Display() string {
	return fmt.Sprintf("%s %d\n%s %d\nNo winner. %d\n", GlyphCookie, that.Cookie, GlyphMilk, that.Milk, that.Draw)
}
