package entity

import (
	"fmt"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/apperror"
)

type Team string

const (
	TeamCookie Team = "cookie"
	TeamMilk   Team = "milk"
)

func ParseTeam(name string) (Team, error) {
	switch team := Team(name); team {
	case TeamCookie, TeamMilk:
		return team, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownTeam, name)
	}
}

func (that Team) Tile() Tile {
	if that == TeamMilk {
		return TileMilk
	}
	return TileCookie
}

func (that Team) Glyph() string {
	return that.Tile().Glyph()
}
