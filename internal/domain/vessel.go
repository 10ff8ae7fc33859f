package domain

type Orientation byte

const (
	Horizontal = Orientation(iota)
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

type Vessel struct {
	Bow           Coordinate
	Length        int
	Orientation   Orientation
	remainingHits int
}

func NewVessel(bow Coordinate, length int, orientation Orientation) *Vessel {
	return &Vessel{
		Bow:           bow,
		Length:        length,
		Orientation:   orientation,
		remainingHits: length,
	}
}

// Cells returns the Length cells starting at Bow: X grows for Horizontal, Y for Vertical.
func (v *Vessel) Cells() []Coordinate {
	cells := make([]Coordinate, 0, v.Length)
	for i := 0; i < v.Length; i++ {
		cell := v.Bow
		switch v.Orientation {
		case Horizontal:
			cell.X += i
		case Vertical:
			cell.Y += i
		}
		cells = append(cells, cell)
	}
	return cells
}

func (v *Vessel) IsHitBy(shot Coordinate) bool {
	for _, cell := range v.Cells() {
		if cell == shot {
			return true
		}
	}
	return false
}

func (v *Vessel) Hit() {
	if v.remainingHits > 0 {
		v.remainingHits--
	}
}

func (v *Vessel) RemainingHits() int {
	return v.remainingHits
}

func (v *Vessel) Destroyed() bool {
	return v.remainingHits == 0
}
