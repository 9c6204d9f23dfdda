package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every simulation tunable. All values are fixed at process start;
// nothing here is mutated once the simulation is constructed.
//
// Units: distances in pixels, velocities in pixels/frame, gravity in
// pixels/frame², rotation speed in radians/frame. A frame is split into
// SubSteps sub-steps of dt = 1/SubSteps, so per-frame magnitudes do not depend
// on the sub-step count.
type Config struct {
	BodyCount int `yaml:"body_count"`
	Sides     int `yaml:"sides"`
	SubSteps  int `yaml:"sub_steps"`

	Gravity         float32 `yaml:"gravity"`
	Damping         float32 `yaml:"damping"`
	WallRestitution float32 `yaml:"wall_restitution"`
	BallRestitution float32 `yaml:"ball_restitution"`
	RotationSpeed   float32 `yaml:"rotation_speed"`

	RadiusMin float32 `yaml:"radius_min"`
	RadiusMax float32 `yaml:"radius_max"`
	// ContainerFraction sets the polygon circumradius as a fraction of the
	// smaller window dimension.
	ContainerFraction float32 `yaml:"container_fraction"`

	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	TargetFPS    int    `yaml:"target_fps"`

	// Seed for the simulation's RNG; 0 means derive one from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the stock configuration: 20 bodies tumbling inside a
// rotating heptagon.
func Default() Config {
	return Config{
		BodyCount:         20,
		Sides:             7,
		SubSteps:          8,
		Gravity:           0.5,
		Damping:           0.99,
		WallRestitution:   0.8,
		BallRestitution:   0.85,
		RotationSpeed:     0.02,
		RadiusMin:         8,
		RadiusMax:         16,
		ContainerFraction: 0.42,
		WindowWidth:       1024,
		WindowHeight:      768,
		WindowTitle:       "tumbler",
		TargetFPS:         60,
	}
}

// Load reads a YAML config from path, layered over Default(). A missing file
// is not an error: it returns the defaults, same as an empty file would.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects malformed configurations before the simulation starts.
// Degenerate geometry mid-run is not tolerated or repaired, so everything is
// checked up front.
func (c Config) Validate() error {
	if c.BodyCount < 1 {
		return fmt.Errorf("body_count must be at least 1, got %d", c.BodyCount)
	}
	if c.Sides < 3 {
		return fmt.Errorf("sides must be at least 3, got %d", c.Sides)
	}
	if c.SubSteps < 1 {
		return fmt.Errorf("sub_steps must be at least 1, got %d", c.SubSteps)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0,1], got %g", c.Damping)
	}
	if c.WallRestitution <= 0 || c.WallRestitution >= 1 {
		return fmt.Errorf("wall_restitution must be in (0,1), got %g", c.WallRestitution)
	}
	if c.BallRestitution <= 0 || c.BallRestitution >= 1 {
		return fmt.Errorf("ball_restitution must be in (0,1), got %g", c.BallRestitution)
	}
	if c.RadiusMin <= 0 || c.RadiusMax < c.RadiusMin {
		return fmt.Errorf("radius range must satisfy 0 < min <= max, got [%g, %g]", c.RadiusMin, c.RadiusMax)
	}
	if c.ContainerFraction <= 0 || c.ContainerFraction > 1 {
		return fmt.Errorf("container_fraction must be in (0,1], got %g", c.ContainerFraction)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TargetFPS < 1 {
		return fmt.Errorf("target_fps must be at least 1, got %d", c.TargetFPS)
	}
	return nil
}
