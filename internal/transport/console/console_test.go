package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/kiryu-dev/sea-battle/internal/transport/console"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	board := domain.NewBoard(3, false)
	require.NoError(t, board.PlaceVessel(domain.NewVessel(domain.NewCoordinate(0, 0), 2, domain.Vertical)))
	board.ResetTransientState()
	_, err := board.ResolveShot(domain.NewCoordinate(0, 1))
	require.NoError(t, err)
	_, err = board.ResolveShot(domain.NewCoordinate(2, 2))
	require.NoError(t, err)

	expected := strings.Join([]string{
		"  | 1 | 2 | 3 |",
		"1 | ■ | X | O |",
		"2 | O | O | O |",
		"3 | O | O | . |",
	}, "\n")
	assert.Equal(t, expected, console.Render(board))

	board.SetHidden(true)
	assert.Equal(t, strings.Replace(expected, "■", "O", 1), console.Render(board))
}

func TestReadTarget(t *testing.T) {
	in := strings.NewReader("1\nfoo bar\n-1 2\n2 3 4\n  3   5 \n")
	out := &bytes.Buffer{}
	c := console.New(in, out)

	target, err := c.ReadTarget()
	require.NoError(t, err)
	assert.Equal(t, domain.NewCoordinate(2, 4), target)
	assert.Equal(t, 5, strings.Count(out.String(), "Сделайте ход: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Необходимо ввести 2 координаты!"))
	assert.Equal(t, 2, strings.Count(out.String(), "Вы ввели не числа ;)"))

	_, err = c.ReadTarget()
	assert.True(t, errors.Is(err, io.EOF), "unexpected error: %v", err)
}

func TestReadTarget_Zero(t *testing.T) {
	c := console.New(strings.NewReader("0 1\n"), io.Discard)
	target, err := c.ReadTarget()
	require.NoError(t, err)
	assert.Equal(t, domain.NewCoordinate(-1, 0), target)
}

func TestMessages(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(strings.NewReader(""), out)

	c.ShowShotError(errors.WithMessage(domain.ErrAlreadyShot, "target"))
	c.ShowShotError(domain.ErrOutOfBounds)
	c.ShowComputerTarget(domain.NewCoordinate(1, 2))
	c.ShowOutcome(domain.Hit)
	c.ShowTurn(domain.ComputerSide)
	c.ShowResult(domain.MatchResult{Winner: domain.HumanSide})

	text := out.String()
	assert.Contains(t, text, "Вы уже стреляли в эту клетку :/")
	assert.Contains(t, text, "Вы стреляете за пределы поля")
	assert.Contains(t, text, "Ход ПК: 2, 3")
	assert.Contains(t, text, "Есть пробитие!")
	assert.Contains(t, text, "Ход компьютера!")
	assert.Contains(t, text, "Вы выиграли! Молодец!")
}

func TestReadTarget_HugeNumber(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(strings.NewReader("99999999999999999999 2\n"), out)
	target, err := c.ReadTarget()
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Вы ввели не числа ;)")

	_, err = domain.NewBoard(6, false).ResolveShot(target)
	assert.True(t, errors.Is(err, domain.ErrOutOfBounds), "unexpected error: %v", err)
}

func TestShowJournal(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(strings.NewReader(""), out)
	c.ShowJournal(nil)
	assert.Equal(t, "Журнал пуст\n", out.String())

	out.Reset()
	c.ShowJournal([]domain.ShotEvent{
		{MatchID: "m1", Turn: 0, Side: "human", X: 1, Y: 2, Outcome: "hit"},
		{MatchID: "m1", Turn: 1, Side: "computer", X: 6, Y: 6, Outcome: "miss"},
	})
	assert.Equal(t, strings.Join([]string{
		"Журнал партии m1:",
		"1. Вы: 1, 2. Есть пробитие!",
		"2. ПК: 6, 6. Промах!",
		"",
	}, "\n"), out.String())
}
