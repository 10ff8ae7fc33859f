package domain

import (
	"github.com/pkg/errors"
)

type Player struct {
	agent Agent
	board *Board
	enemy *Board
	out   Output
}

func NewPlayer(agent Agent, board, enemy *Board, out Output) *Player {
	return &Player{
		agent: agent,
		board: board,
		enemy: enemy,
		out:   out,
	}
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) Enemy() *Board {
	return p.enemy
}

// TakeTurn shoots until the enemy board accepts a target. Rejected targets are reported and retried.
func (p *Player) TakeTurn() (Coordinate, ShotOutcome, error) {
	for {
		target, err := p.agent.DecideTarget()
		if err != nil {
			return Coordinate{}, Miss, errors.WithMessage(err, "decide target")
		}
		outcome, err := p.enemy.ResolveShot(target)
		switch {
		case errors.Is(err, ErrOutOfBounds), errors.Is(err, ErrAlreadyShot):
			p.out.ShowShotError(err)
			continue
		case err != nil:
			return Coordinate{}, Miss, errors.WithMessage(err, "resolve shot")
		}
		p.out.ShowOutcome(outcome)
		return target, outcome, nil
	}
}
