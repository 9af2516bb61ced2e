package engine

import (
	"strings"
	"unicode/utf8"

	"snake/internal/entities"
)

// PauseKey is the key identifier that toggles pause.
const PauseKey = " "

var directionKeys = map[string]entities.Direction{
	"ArrowUp":    entities.DirUp,
	"ArrowDown":  entities.DirDown,
	"ArrowLeft":  entities.DirLeft,
	"ArrowRight": entities.DirRight,
	"w":          entities.DirUp,
	"s":          entities.DirDown,
	"a":          entities.DirLeft,
	"d":          entities.DirRight,
}

// NormalizeKey lower-cases single character keys so "W" and "w" match.
func NormalizeKey(key string) string {
	if utf8.RuneCountInString(key) == 1 {
		return strings.ToLower(key)
	}
	return key
}

// DirectionForKey looks up a movement key.
func DirectionForKey(key string) (entities.Direction, bool) {
	d, ok := directionKeys[NormalizeKey(key)]
	return d, ok
}

// IsGameKey reports whether key is handled by the game at all.
func IsGameKey(key string) bool {
	key = NormalizeKey(key)
	if key == PauseKey {
		return true
	}
	_, ok := directionKeys[key]
	return ok
}
