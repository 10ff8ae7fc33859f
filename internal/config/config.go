package config

import (
	"os"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrEmptyFleet       = errors.New("fleet must contain at least one vessel")
	ErrInvalidVessel    = errors.New("vessel length must fit the board")
	ErrFleetTooLarge    = errors.New("fleet does not fit the board")
	ErrInvalidAttempts  = errors.New("placement attempts must be positive")
	ErrInvalidBoards    = errors.New("placement boards limit must be positive")
)

const (
	defaultBoardSize   = 6
	defaultMaxAttempts = 100
	defaultMaxBoards   = 1000
	defaultLogLevel    = "warn"
	defaultLogOutput   = "stderr"
)

var defaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

type BoardConfig struct {
	Size  int   `yaml:"size"`
	Fleet []int `yaml:"fleet"`
}

type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	MaxBoards   int `yaml:"max_boards"`
}

type GameConfig struct {
	HideComputerBoard *bool `yaml:"hide_computer_board"`
	Seed              int64 `yaml:"seed"`
}

type JournalConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

type config struct {
	Board     BoardConfig     `yaml:"board"`
	Placement PlacementConfig `yaml:"placement"`
	Game      GameConfig      `yaml:"game"`
	Journal   JournalConfig   `yaml:"journal"`
	Log       LogConfig       `yaml:"log"`
}

// New reads the yaml config at cfgPath. An empty path yields the defaults.
func New(cfgPath string) (config, error) {
	cfg := config{}
	if cfgPath != "" {
		file, err := os.Open(cfgPath)
		if err != nil {
			return config{}, err
		}
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return config{}, errors.WithMessage(err, "decode yaml config")
		}
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) HideComputerBoard() bool {
	return c.Game.HideComputerBoard == nil || *c.Game.HideComputerBoard
}

func (c *config) applyDefaults() {
	if c.Board.Size == 0 {
		c.Board.Size = defaultBoardSize
	}
	if len(c.Board.Fleet) == 0 {
		c.Board.Fleet = append([]int(nil), defaultFleet...)
	}
	if c.Placement.MaxAttempts == 0 {
		c.Placement.MaxAttempts = defaultMaxAttempts
	}
	if c.Placement.MaxBoards == 0 {
		c.Placement.MaxBoards = defaultMaxBoards
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Output == "" {
		c.Log.Output = defaultLogOutput
	}
}

func (c config) validate() error {
	if c.Board.Size < 1 {
		return ErrInvalidBoardSize
	}
	if len(c.Board.Fleet) == 0 {
		return ErrEmptyFleet
	}
	total := 0
	for _, length := range c.Board.Fleet {
		if length < 1 || length > c.Board.Size {
			return errors.WithMessagef(ErrInvalidVessel, "length %d on board %d", length, c.Board.Size)
		}
		total += length
	}
	if total > c.Board.Size*c.Board.Size {
		return errors.WithMessagef(ErrFleetTooLarge, "%d cells on board %d", total, c.Board.Size)
	}
	if !packable(c.Board.Size, c.Board.Fleet) {
		return errors.WithMessagef(ErrFleetTooLarge, "vessels cannot be kept apart on board %d", c.Board.Size)
	}
	if c.Placement.MaxAttempts < 1 {
		return ErrInvalidAttempts
	}
	if c.Placement.MaxBoards < 1 {
		return ErrInvalidBoards
	}
	return nil
}

// packable lays the fleet out first-fit, row by row. Success proves a legal layout exists.
func packable(size int, fleet []int) bool {
	board := domain.NewBoard(size, false)
	for _, length := range fleet {
		if !placeFirstFit(board, length) {
			return false
		}
	}
	return true
}

func placeFirstFit(board *domain.Board, length int) bool {
	for x := 0; x < board.Size(); x++ {
		for y := 0; y < board.Size(); y++ {
			for _, orientation := range []domain.Orientation{domain.Horizontal, domain.Vertical} {
				vessel := domain.NewVessel(domain.NewCoordinate(x, y), length, orientation)
				if err := board.PlaceVessel(vessel); err == nil {
					return true
				}
			}
		}
	}
	return false
}
