// Package config holds the settings of a generation run and binds them to
// command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/game/generator"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("config: invalid setting")

// Defaults
const (
	DefaultAnimationSpeed = 800
	DefaultWidth          = 20
	DefaultHeight         = 18
	DefaultLanguage       = "en_GB"

	// AllTiles selects the exhaustive palette instead of a tilemap file
	AllTiles = "all"
)

// Config holds the settings of a generation run
type Config struct {
	// AnimationSpeed is in [0, throttle.MaxSpeed]; higher is faster
	AnimationSpeed int

	Width  int
	Height int

	PathPercentage        float64
	WallRemovalPercentage float64

	SideType                  collapse.Side
	AllowSideConnections      bool
	AllowTilesOutsideWithSide bool

	// Generator is the name of the generation pipeline
	Generator string

	// Seed of the random source, 0 picks one from the clock
	Seed int64

	// TilemapPath is a tilemap JSON file, AllTiles, or empty for the
	// embedded default tilemap
	TilemapPath string

	GUI      bool
	Color    bool
	Language string
}

// Default returns the default settings
func Default() Config {
	return Config{
		AnimationSpeed:        DefaultAnimationSpeed,
		Width:                 DefaultWidth,
		Height:                DefaultHeight,
		PathPercentage:        0.5,
		WallRemovalPercentage: 0.4,
		SideType:              collapse.Road,
		Generator:             generator.DefaultName,
		Language:              DefaultLanguage,
	}
}

var (
	currentMu sync.Mutex
	current   = Default()
)

// Current returns the active settings
func Current() *Config {
	currentMu.Lock()
	defer currentMu.Unlock()
	c := current
	return &c
}

// SetCurrent replaces the active settings
func SetCurrent(c Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}

// BindFlags registers a flag for every setting on fs, using the current
// values of c as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.AnimationSpeed, "speed", c.AnimationSpeed, fmt.Sprintf("animation speed, 0 to %d", throttle.MaxSpeed))
	fs.IntVar(&c.Width, "width", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "map height in cells")
	fs.Float64Var(&c.PathPercentage, "path", c.PathPercentage, "fraction of the grid covered by the maze, 0 to 1")
	fs.Float64Var(&c.WallRemovalPercentage, "braid", c.WallRemovalPercentage, "chance to open extra walls inside the maze, 0 to 1")
	fs.Var((*sideValue)(&c.SideType), "side", "side type that marks maze paths ("+sideNames()+")")
	fs.BoolVar(&c.AllowSideConnections, "side-connections", c.AllowSideConnections, "allow the path side towards closed walls")
	fs.BoolVar(&c.AllowTilesOutsideWithSide, "outside-side", c.AllowTilesOutsideWithSide, "allow the path side outside the maze")
	fs.StringVar(&c.Generator, "mode", c.Generator, "generator to run ("+strings.Join(generator.Names(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random one")
	fs.StringVar(&c.TilemapPath, "tilemap", c.TilemapPath, "tilemap JSON file, or \""+AllTiles+"\" for every side combination")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "show the generation in a window")
	fs.BoolVar(&c.Color, "color", c.Color, "force colored output")
	fs.StringVar(&c.Language, "lang", c.Language, "language of messages")
}

// Validate checks that every setting is in range
func (c *Config) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height))
	}
	if c.AnimationSpeed < 0 || c.AnimationSpeed > throttle.MaxSpeed {
		errs = append(errs, fmt.Errorf("%w: speed %d is not in [0, %d]", ErrInvalid, c.AnimationSpeed, throttle.MaxSpeed))
	}
	if c.PathPercentage < 0 || c.PathPercentage > 1 {
		errs = append(errs, fmt.Errorf("%w: path percentage %v is not in [0, 1]", ErrInvalid, c.PathPercentage))
	}
	if c.WallRemovalPercentage < 0 || c.WallRemovalPercentage > 1 {
		errs = append(errs, fmt.Errorf("%w: wall removal percentage %v is not in [0, 1]", ErrInvalid, c.WallRemovalPercentage))
	}
	if !c.SideType.IsValid() {
		errs = append(errs, fmt.Errorf("%w: side type %d", ErrInvalid, c.SideType))
	}
	if !slices.Contains(generator.Names(), c.Generator) {
		errs = append(errs, fmt.Errorf("%w: generator %q", ErrInvalid, c.Generator))
	}

	return errors.Join(errs...)
}

// Delay returns the delay per step for the animation speed
func (c *Config) Delay() time.Duration {
	return throttle.DelayForSpeed(float64(c.AnimationSpeed), throttle.DefaultSteepness)
}

// MazeLimitOptions returns the options used to limit a map to a maze
func (c *Config) MazeLimitOptions() generator.MazeLimitOptions {
	return generator.MazeLimitOptions{
		SideType:                  c.SideType,
		AllowSideConnections:      c.AllowSideConnections,
		AllowTilesOutsideWithSide: c.AllowTilesOutsideWithSide,
	}
}

// sideValue adapts a side to flag.Value
type sideValue collapse.Side

func (s *sideValue) String() string {
	return collapse.Side(*s).String()
}

func (s *sideValue) Set(name string) error {
	side, err := collapse.ParseSide(name)
	if err != nil {
		return err
	}
	*s = sideValue(side)
	return nil
}

func sideNames() string {
	names := make([]string, 0, collapse.SideCount)
	for _, s := range collapse.AllSides() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
