package domain

import (
	"context"
)

type Side byte

const (
	HumanSide = Side(iota)
	ComputerSide
)

func (s Side) String() string {
	switch s {
	case HumanSide:
		return "human"
	case ComputerSide:
		return "computer"
	default:
		return "unknown"
	}
}

type MatchResult struct {
	MatchID string
	Winner  Side
	Turns   int64
}

// ShotEvent is a single resolved shot as written to the match journal.
type ShotEvent struct {
	MatchID string `json:"match_id"`
	Turn    int64  `json:"turn"`
	Side    string `json:"side"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Outcome string `json:"outcome"`
}

type Agent interface {
	DecideTarget() (Coordinate, error)
}

type Input interface {
	ReadTarget() (Coordinate, error)
}

type Output interface {
	Greet()
	ShowBoards(human, computer *Board)
	ShowTurn(side Side)
	ShowComputerTarget(target Coordinate)
	ShowOutcome(outcome ShotOutcome)
	ShowShotError(err error)
	ShowResult(result MatchResult)
}

type Journal interface {
	Record(ctx context.Context, event ShotEvent) error
}

type MatchUseCase interface {
	Play(ctx context.Context) (MatchResult, error)
	Turn() int64
}
