// Package experiment defines the configuration and core types
// for the experiment subpackage of github.com/katalvlaran/taxirelay.
package experiment

import (
	"errors"
	"fmt"
)

// Sentinel errors for experiment operations.
var (
	// ErrBadConfig indicates a configuration value outside its legal range.
	ErrBadConfig = errors.New("experiment: bad config")
	// ErrUnknownMap indicates a map name outside the built-in catalogue.
	ErrUnknownMap = errors.New("experiment: unknown map")
)

// Config describes one collaboration experiment: how many randomized
// episodes to play per fuel level, over which fuel range, on which map.
//
// The same seed always reproduces the same report.
type Config struct {
	// Repetitions is the number of randomized episodes per fuel level.
	Repetitions int `yaml:"repetitions"`
	// Taxis is the fleet size. Relay deliveries need exactly two.
	Taxis int `yaml:"taxis"`
	// FuelMin and FuelMax bound the swept fuel levels, both inclusive.
	FuelMin int `yaml:"fuel_min"`
	FuelMax int `yaml:"fuel_max"`
	// Map names a catalogue layout; see MapNames.
	Map string `yaml:"map"`
	// Seed fixes the placement randomness. Zero is a valid fixed seed.
	Seed int64 `yaml:"seed"`
}

// Validate checks every field against its legal range.
func (c Config) Validate() error {
	if c.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions %d, want >= 1", ErrBadConfig, c.Repetitions)
	}
	if c.Taxis != 2 {
		return fmt.Errorf("%w: %d taxis, relay experiments need exactly 2", ErrBadConfig, c.Taxis)
	}
	if c.FuelMin < 1 || c.FuelMax < c.FuelMin {
		return fmt.Errorf("%w: fuel range [%d,%d]", ErrBadConfig, c.FuelMin, c.FuelMax)
	}
	if _, err := MapByName(c.Map); err != nil {
		return err
	}

	return nil
}
