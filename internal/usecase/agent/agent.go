package agent

import (
	"math/rand"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/pkg/errors"
)

type automated struct {
	enemy *domain.Board
	rnd   *rand.Rand
	out   domain.Output
}

// NewAutomated picks every target uniformly over the enemy board, ignoring its own history.
func NewAutomated(enemy *domain.Board, rnd *rand.Rand, out domain.Output) domain.Agent {
	return automated{
		enemy: enemy,
		rnd:   rnd,
		out:   out,
	}
}

func (a automated) DecideTarget() (domain.Coordinate, error) {
	size := a.enemy.Size()
	target := domain.NewCoordinate(a.rnd.Intn(size), a.rnd.Intn(size))
	a.out.ShowComputerTarget(target)
	return target, nil
}

type human struct {
	in domain.Input
}

func NewHuman(in domain.Input) domain.Agent {
	return human{in: in}
}

func (h human) DecideTarget() (domain.Coordinate, error) {
	target, err := h.in.ReadTarget()
	if err != nil {
		return domain.Coordinate{}, errors.WithMessage(err, "read target")
	}
	return target, nil
}
