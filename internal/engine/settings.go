package engine

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"snake/internal/entities"
)

//go:embed settings.toml
var defaultSettingsTOML []byte

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the rules of a game. Defaults come from the embedded settings.toml.
type Settings struct {
	TileCount         int     `toml:"tile_count"`
	TileSize          int     `toml:"tile_size"`
	InitialIntervalMS int     `toml:"initial_interval_ms"`
	MinIntervalMS     int     `toml:"min_interval_ms"`
	SpeedStepMS       int     `toml:"speed_step_ms"`
	Start             [][]int `toml:"start"`
	StorageKey        string  `toml:"storage_key"`
}

// DefaultSettings returns the embedded defaults.
func DefaultSettings() Settings {
	var s Settings
	if err := decodeSettings(defaultSettingsTOML, &s); err != nil {
		panic(fmt.Sprintf("embedded settings: %v", err))
	}
	return s
}

// LoadSettings overlays the TOML file at path on the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := decodeSettings(data, &s); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}

func decodeSettings(data []byte, s *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return s.Validate()
}

// Validate checks that the settings describe a playable board.
func (s Settings) Validate() error {
	switch {
	case s.TileCount <= 0:
		return fmt.Errorf("%w: tile_count must be positive", ErrInvalidSettings)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalidSettings)
	case s.MinIntervalMS <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidSettings)
	case s.InitialIntervalMS < s.MinIntervalMS:
		return fmt.Errorf("%w: initial_interval_ms below min_interval_ms", ErrInvalidSettings)
	case s.SpeedStepMS < 0:
		return fmt.Errorf("%w: speed_step_ms must not be negative", ErrInvalidSettings)
	case s.StorageKey == "":
		return fmt.Errorf("%w: storage_key is empty", ErrInvalidSettings)
	case len(s.Start) == 0:
		return fmt.Errorf("%w: start body is empty", ErrInvalidSettings)
	case len(s.Start) >= s.TileCount*s.TileCount:
		return fmt.Errorf("%w: start body leaves no room for food", ErrInvalidSettings)
	}
	for i, seg := range s.Start {
		if len(seg) != 2 {
			return fmt.Errorf("%w: start[%d] must be [x, y]", ErrInvalidSettings, i)
		}
		if !inBounds(entities.Point{X: seg[0], Y: seg[1]}, s.TileCount) {
			return fmt.Errorf("%w: start[%d] outside the board", ErrInvalidSettings, i)
		}
	}
	body := s.StartBody()
	if len(lo.Uniq(body)) != len(body) {
		return fmt.Errorf("%w: start body overlaps itself", ErrInvalidSettings)
	}
	for i := 1; i < len(body); i++ {
		if !adjacent(body[i-1], body[i]) {
			return fmt.Errorf("%w: start[%d] does not touch start[%d]", ErrInvalidSettings, i, i-1)
		}
	}
	// The snake starts heading right, so the first tick must not crash.
	next := body[0].Add(entities.DirRight)
	if !inBounds(next, s.TileCount) || lo.Contains(body, next) {
		return fmt.Errorf("%w: start body is blocked to the right", ErrInvalidSettings)
	}
	return nil
}

func (s Settings) StartBody() []entities.Point {
	return lo.Map(s.Start, func(seg []int, _ int) entities.Point {
		return entities.Point{X: seg[0], Y: seg[1]}
	})
}

func (s Settings) InitialInterval() time.Duration {
	return time.Duration(s.InitialIntervalMS) * time.Millisecond
}

func (s Settings) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

func (s Settings) SpeedStep() time.Duration {
	return time.Duration(s.SpeedStepMS) * time.Millisecond
}

func adjacent(a, b entities.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
