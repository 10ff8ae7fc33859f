package match_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/kiryu-dev/sea-battle/internal/adapters/journal"
	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/kiryu-dev/sea-battle/internal/usecase/match"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedAgent struct {
	targets []domain.Coordinate
}

func (a *scriptedAgent) DecideTarget() (domain.Coordinate, error) {
	if len(a.targets) == 0 {
		return domain.Coordinate{}, io.EOF
	}
	target := a.targets[0]
	a.targets = a.targets[1:]
	return target, nil
}

type resultOutput struct {
	turns  []domain.Side
	result *domain.MatchResult
}

func (*resultOutput) Greet() {}
func (*resultOutput) ShowBoards(_, _ *domain.Board) {}
func (*resultOutput) ShowComputerTarget(domain.Coordinate) {}
func (*resultOutput) ShowOutcome(domain.ShotOutcome) {}
func (*resultOutput) ShowShotError(error) {}

func (o *resultOutput) ShowTurn(side domain.Side) {
	o.turns = append(o.turns, side)
}

func (o *resultOutput) ShowResult(result domain.MatchResult) {
	o.result = &result
}

func newBoard(t *testing.T, vessels ...*domain.Vessel) *domain.Board {
	t.Helper()
	board := domain.NewBoard(6, false)
	for _, v := range vessels {
		require.NoError(t, board.PlaceVessel(v))
	}
	board.ResetTransientState()
	return board
}

func newMatch(t *testing.T, humanTargets, computerTargets []domain.Coordinate,
	w io.Writer) (domain.MatchUseCase, *resultOutput) {
	t.Helper()
	humanBoard := newBoard(t, domain.NewVessel(domain.NewCoordinate(4, 5), 2, domain.Horizontal))
	computerBoard := newBoard(t,
		domain.NewVessel(domain.NewCoordinate(0, 0), 2, domain.Horizontal),
		domain.NewVessel(domain.NewCoordinate(3, 3), 1, domain.Horizontal),
	)
	out := &resultOutput{}
	human := domain.NewPlayer(&scriptedAgent{targets: humanTargets}, humanBoard, computerBoard, out)
	computer := domain.NewPlayer(&scriptedAgent{targets: computerTargets}, computerBoard, humanBoard, out)
	return match.New("test-match", human, computer, out, journal.New(w), zap.NewNop()), out
}

func TestPlay_HumanWins(t *testing.T) {
	buf := &bytes.Buffer{}
	m, out := newMatch(t,
		[]domain.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 3}},
		[]domain.Coordinate{{X: 2, Y: 2}},
		buf,
	)
	result, err := m.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HumanSide, result.Winner)
	assert.Equal(t, "test-match", result.MatchID)
	assert.Equal(t, int64(3), result.Turns)
	assert.Equal(t, int64(2), m.Turn())
	require.NotNil(t, out.result)
	assert.Equal(t, result, *out.result)
	assert.Equal(t, []domain.Side{
		domain.HumanSide, domain.HumanSide, domain.ComputerSide, domain.HumanSide,
	}, out.turns)

	events, err := journal.ReadAll(buf)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, domain.ShotEvent{
		MatchID: "test-match", Turn: 0, Side: "human", X: 1, Y: 1, Outcome: "hit",
	}, events[0])
	assert.Equal(t, "destroyed", events[1].Outcome)
	assert.Equal(t, int64(0), events[1].Turn)
	assert.Equal(t, "computer", events[2].Side)
	assert.Equal(t, "miss", events[2].Outcome)
	assert.Equal(t, int64(2), events[3].Turn)
}

func TestPlay_ComputerWins(t *testing.T) {
	m, out := newMatch(t,
		[]domain.Coordinate{{X: 0, Y: 5}},
		[]domain.Coordinate{{X: 4, Y: 5}, {X: 5, Y: 5}},
		io.Discard,
	)
	result, err := m.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ComputerSide, result.Winner)
	assert.Equal(t, int64(2), result.Turns)
	assert.Equal(t, []domain.Side{domain.HumanSide, domain.ComputerSide, domain.ComputerSide}, out.turns)
}

func TestPlay_HitRepeatsTurn(t *testing.T) {
	m, out := newMatch(t,
		[]domain.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 1, Y: 0}},
		[]domain.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 5}, {X: 5, Y: 5}},
		io.Discard,
	)
	result, err := m.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ComputerSide, result.Winner)
	assert.Equal(t, []domain.Side{
		domain.HumanSide, domain.HumanSide,
		domain.ComputerSide,
		domain.HumanSide,
		domain.ComputerSide, domain.ComputerSide,
	}, out.turns)
}

func TestPlay_InputExhausted(t *testing.T) {
	m, out := newMatch(t, nil, nil, io.Discard)
	_, err := m.Play(context.Background())
	assert.True(t, errors.Is(err, io.EOF), "unexpected error: %v", err)
	assert.Nil(t, out.result)
}

func TestPlay_Cancelled(t *testing.T) {
	m, _ := newMatch(t, nil, nil, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Play(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "unexpected error: %v", err)
}
