package match

import (
	"context"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type useCase struct {
	id       string
	human    *domain.Player
	computer *domain.Player
	out      domain.Output
	journal  domain.Journal
	turn     *atomic.Int64
	logger   *zap.Logger
}

func New(id string, human, computer *domain.Player, out domain.Output, journal domain.Journal,
	logger *zap.Logger) *useCase {
	return &useCase{
		id:       id,
		human:    human,
		computer: computer,
		out:      out,
		journal:  journal,
		turn:     atomic.NewInt64(0),
		logger:   logger.With(zap.String("match_id", id)),
	}
}

// Turn is the current turn index: even for the human, odd for the computer.
func (u *useCase) Turn() int64 {
	return u.turn.Load()
}

func (u *useCase) Play(ctx context.Context) (domain.MatchResult, error) {
	u.out.Greet()
	for {
		if err := ctx.Err(); err != nil {
			return domain.MatchResult{}, errors.WithMessage(err, "play match")
		}
		u.out.ShowBoards(u.human.Board(), u.computer.Board())
		turn := u.turn.Load()
		side, player := u.active(turn)
		u.out.ShowTurn(side)
		target, outcome, err := player.TakeTurn()
		if err != nil {
			return domain.MatchResult{}, errors.WithMessagef(err, "%s turn", side)
		}
		u.logger.Info("shot resolved",
			zap.Int64("turn", turn),
			zap.Stringer("side", side),
			zap.Stringer("target", target),
			zap.Stringer("outcome", outcome),
		)
		err = u.journal.Record(ctx, domain.ShotEvent{
			MatchID: u.id,
			Turn:    turn,
			Side:    side.String(),
			X:       target.X + 1,
			Y:       target.Y + 1,
			Outcome: outcome.String(),
		})
		if err != nil {
			u.logger.Warn("failed to record shot", zap.Error(err))
		}
		if result, ok := u.winner(turn); ok {
			u.out.ShowBoards(u.human.Board(), u.computer.Board())
			u.out.ShowResult(result)
			u.logger.Info("match finished", zap.Stringer("winner", result.Winner), zap.Int64("turns", result.Turns))
			return result, nil
		}
		if !outcome.RepeatsTurn() {
			u.turn.Inc()
		}
	}
}

func (u *useCase) active(turn int64) (domain.Side, *domain.Player) {
	if turn%2 == 0 {
		return domain.HumanSide, u.human
	}
	return domain.ComputerSide, u.computer
}

func (u *useCase) winner(turn int64) (domain.MatchResult, bool) {
	result := domain.MatchResult{MatchID: u.id, Turns: turn + 1}
	switch {
	case u.computer.Board().AllDestroyed():
		result.Winner = domain.HumanSide
	case u.human.Board().AllDestroyed():
		result.Winner = domain.ComputerSide
	default:
		return domain.MatchResult{}, false
	}
	return result, true
}
