// Package generator builds levels and places them into a cell registry.
package generator

import (
	"math/rand"
	"strings"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int, rng *rand.Rand) *Level
	Name() string
}

// Available generators
var (
	BSP   = &BSPGenerator{}
	Arena = &ArenaGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = BSP

// Flag names for each generator
var flagNames = map[string]GridGenerator{
	"bsp":   BSP,
	"arena": Arena,
}

// ByName looks up a generator by its flag name
func ByName(name string) (GridGenerator, bool) {
	gen, ok := flagNames[strings.ToLower(name)]
	return gen, ok
}

// FlagName returns the name ByName accepts for gen, or "" if it is not registered
func FlagName(gen GridGenerator) string {
	for name, g := range flagNames {
		if g == gen {
			return name
		}
	}
	return ""
}
