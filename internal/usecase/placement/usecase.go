package placement

import (
	"context"
	"math/rand"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrBudgetExhausted = errors.New("placement attempts budget exhausted")
	ErrNoBoard         = errors.New("no board fits the fleet")
)

type useCase struct {
	size        int
	fleet       []int
	maxAttempts int
	maxBoards   int
	rnd         *rand.Rand
	logger      *zap.Logger
}

func New(size int, fleet []int, maxAttempts, maxBoards int, rnd *rand.Rand, logger *zap.Logger) useCase {
	return useCase{
		size:        size,
		fleet:       fleet,
		maxAttempts: maxAttempts,
		maxBoards:   maxBoards,
		rnd:         rnd,
		logger:      logger,
	}
}

// RandomBoard generates boards from scratch until one fits the whole fleet, giving up after maxBoards.
func (u useCase) RandomBoard(ctx context.Context, hidden bool) (*domain.Board, error) {
	for boards := 1; boards <= u.maxBoards; boards++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithMessage(err, "generate board")
		}
		board, err := u.TryBoard()
		switch {
		case errors.Is(err, ErrBudgetExhausted):
			u.logger.Debug("board discarded", zap.Int("board", boards))
			continue
		case err != nil:
			return nil, errors.WithMessage(err, "try board")
		}
		board.SetHidden(hidden)
		u.logger.Info("board generated",
			zap.Int("boards_tried", boards),
			zap.Int("vessels", len(board.Vessels())),
		)
		return board, nil
	}
	return nil, errors.WithMessagef(ErrNoBoard, "%d boards discarded", u.maxBoards)
}

// TryBoard places the fleet in order, sharing one attempt budget across all vessels.
func (u useCase) TryBoard() (*domain.Board, error) {
	board := domain.NewBoard(u.size, false)
	attempts := 0
	for _, length := range u.fleet {
		for {
			attempts++
			if attempts > u.maxAttempts {
				return nil, ErrBudgetExhausted
			}
			vessel := domain.NewVessel(
				domain.NewCoordinate(u.rnd.Intn(u.size), u.rnd.Intn(u.size)),
				length,
				domain.Orientation(u.rnd.Intn(2)),
			)
			err := board.PlaceVessel(vessel)
			if errors.Is(err, domain.ErrWrongPlacement) {
				continue
			}
			if err != nil {
				return nil, errors.WithMessage(err, "place vessel")
			}
			break
		}
	}
	board.ResetTransientState()
	return board, nil
}
