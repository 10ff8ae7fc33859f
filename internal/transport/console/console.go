package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/pkg/errors"
)

type console struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// New returns both collaborators of a match: targets are read from r, everything is printed to w.
func New(r io.Reader, w io.Writer) *console {
	return &console{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

func (c *console) ReadTarget() (domain.Coordinate, error) {
	for {
		fmt.Fprint(c.w, movePrompt)
		if ok := c.scanner.Scan(); !ok {
			if err := c.scanner.Err(); err != nil {
				return domain.Coordinate{}, errors.WithMessage(err, "scan input")
			}
			return domain.Coordinate{}, io.EOF
		}
		fields := strings.Fields(c.scanner.Text())
		if len(fields) != 2 {
			c.println(wrongTokenCount)
			continue
		}
		x, okX := parseIndex(fields[0])
		y, okY := parseIndex(fields[1])
		if !okX || !okY {
			c.println(wrongTokenNumber)
			continue
		}
		return domain.NewCoordinate(x-1, y-1), nil
	}
}

// parseIndex accepts any unsigned decimal. Values too large to keep are clamped, they are off the board anyway.
func parseIndex(token string) (int, bool) {
	v, err := strconv.ParseUint(token, 10, 31)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return math.MaxInt32, true
	}
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func (c *console) Greet() {
	for _, line := range []string{
		separator, greetTitle, separator,
		greetControls, greetFormat, greetLegend, separator,
		greetLuck, separator,
	} {
		c.println(line)
	}
}

func (c *console) ShowBoards(human, computer *domain.Board) {
	c.println(divider)
	c.println(humanBoardTitle)
	c.println(Render(human))
	c.println(divider)
	c.println(computerBoardTitle)
	c.println(Render(computer))
	c.println(divider)
}

func (c *console) ShowTurn(side domain.Side) {
	if side == domain.ComputerSide {
		c.println(computerTurn)
		return
	}
	c.println(humanTurn)
}

func (c *console) ShowComputerTarget(target domain.Coordinate) {
	fmt.Fprintf(c.w, computerMove, target)
}

func (c *console) ShowOutcome(outcome domain.ShotOutcome) {
	switch outcome {
	case domain.Destroyed:
		c.println(destroyedOutcome)
	case domain.Hit:
		c.println(hitOutcome)
	default:
		c.println(missOutcome)
	}
}

func (c *console) ShowShotError(err error) {
	switch {
	case errors.Is(err, domain.ErrOutOfBounds):
		c.println(outOfBoundsShot)
	case errors.Is(err, domain.ErrAlreadyShot):
		c.println(alreadyShot)
	default:
		c.println(unknownShot)
	}
}

func (c *console) ShowResult(result domain.MatchResult) {
	c.println(divider)
	if result.Winner == domain.HumanSide {
		c.println(humanWon)
		return
	}
	c.println(computerWon)
}

func (c *console) ShowJournal(events []domain.ShotEvent) {
	if len(events) == 0 {
		c.println(journalEmpty)
		return
	}
	fmt.Fprintf(c.w, journalTitle, events[0].MatchID)
	for _, e := range events {
		name := humanName
		if e.Side == domain.ComputerSide.String() {
			name = computerName
		}
		fmt.Fprintf(c.w, journalShot, e.Turn+1, name, e.X, e.Y, outcomeMessage(e.Outcome))
	}
}

func outcomeMessage(outcome string) string {
	switch outcome {
	case domain.Destroyed.String():
		return destroyedOutcome
	case domain.Hit.String():
		return hitOutcome
	default:
		return missOutcome
	}
}

func (c *console) println(s string) {
	fmt.Fprintln(c.w, s)
}

// Render draws the board as a numbered grid, masking vessels on hidden boards.
func Render(board *domain.Board) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= board.Size(); col++ {
		fmt.Fprintf(&sb, " | %d", col)
	}
	sb.WriteString(" |")
	for row := 0; row < board.Size(); row++ {
		fmt.Fprintf(&sb, "\n%d", row+1)
		for col := 0; col < board.Size(); col++ {
			cell := board.Cell(domain.NewCoordinate(row, col))
			if board.Hidden() && cell == domain.Ship {
				cell = domain.Water
			}
			fmt.Fprintf(&sb, " | %c", cell)
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
