package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfBounds    = errors.New("shot is out of the board")
	ErrAlreadyShot    = errors.New("cell has already been shot")
	ErrWrongPlacement = errors.New("wrong vessel placement")
)

type Cell rune

const (
	Water  = Cell('O')
	Marker = Cell('.')
	Ship   = Cell('■')
	Wreck  = Cell('X')
)

type ShotOutcome byte

const (
	Miss = ShotOutcome(iota)
	Hit
	Destroyed
)

func (o ShotOutcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// RepeatsTurn reports whether the shooter keeps the move.
func (o ShotOutcome) RepeatsTurn() bool {
	return o == Hit
}

var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	size      int
	hidden    bool
	vessels   []*Vessel
	blocked   map[Coordinate]struct{}
	destroyed int
	cells     [][]Cell
}

func NewBoard(size int, hidden bool) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
		for j := range cells[i] {
			cells[i][j] = Water
		}
	}
	return &Board{
		size:    size,
		hidden:  hidden,
		blocked: make(map[Coordinate]struct{}),
		cells:   cells,
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) Vessels() []*Vessel {
	return b.vessels
}

func (b *Board) DestroyedCount() int {
	return b.destroyed
}

// AllDestroyed is true once every placed vessel has been sunk.
func (b *Board) AllDestroyed() bool {
	return len(b.vessels) > 0 && b.destroyed == len(b.vessels)
}

// Cell returns the glyph stored at c. Vessel bodies are returned as is, hiding is up to the renderer.
func (b *Board) Cell(c Coordinate) Cell {
	if b.IsOutOfBounds(c) {
		return Water
	}
	return b.cells[c.X][c.Y]
}

func (b *Board) IsOutOfBounds(c Coordinate) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

func (b *Board) isBlocked(c Coordinate) bool {
	_, ok := b.blocked[c]
	return ok
}

func (b *Board) PlaceVessel(v *Vessel) error {
	cells := v.Cells()
	for _, c := range cells {
		if b.IsOutOfBounds(c) || b.isBlocked(c) {
			return errors.WithMessagef(ErrWrongPlacement, "cell (%s) is not available", c)
		}
	}
	for _, c := range cells {
		b.cells[c.X][c.Y] = Ship
		b.blocked[c] = struct{}{}
	}
	b.vessels = append(b.vessels, v)
	b.markExclusionZone(v, false)
	return nil
}

// markExclusionZone blocks the 3x3 block around every vessel cell.
func (b *Board) markExclusionZone(v *Vessel, markOnGrid bool) {
	for _, c := range v.Cells() {
		for _, d := range neighbourhood {
			cur := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
			if b.IsOutOfBounds(cur) || b.isBlocked(cur) {
				continue
			}
			if markOnGrid {
				b.cells[cur.X][cur.Y] = Marker
			}
			b.blocked[cur] = struct{}{}
		}
	}
}

func (b *Board) ResolveShot(target Coordinate) (ShotOutcome, error) {
	if b.IsOutOfBounds(target) {
		return Miss, errors.WithMessagef(ErrOutOfBounds, "target (%s)", target)
	}
	if b.isBlocked(target) {
		return Miss, errors.WithMessagef(ErrAlreadyShot, "target (%s)", target)
	}
	b.blocked[target] = struct{}{}
	for _, v := range b.vessels {
		if !v.IsHitBy(target) {
			continue
		}
		v.Hit()
		b.cells[target.X][target.Y] = Wreck
		if v.Destroyed() {
			b.destroyed++
			b.markExclusionZone(v, true)
			return Destroyed, nil
		}
		return Hit, nil
	}
	b.cells[target.X][target.Y] = Marker
	return Miss, nil
}

// ResetTransientState forgets the placement buffer so it does not count as shots during play.
func (b *Board) ResetTransientState() {
	b.blocked = make(map[Coordinate]struct{})
}
