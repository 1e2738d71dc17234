package scenario

import (
	"bytes"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the run parameters of a scenario, read from colony.toml.
type Config struct {
	TickDelta float64 // simulated seconds per tick
	FlockSeed int64   // seed of the stream shared by every ant
	FoodSeed  int64   // seed used to scatter food particles

	// Debug draws the circles of vision and the desired directions.
	Debug bool

	// Path optimization: long lived pheromones, and the mean distance of
	// the ants from the line y = Slope*x + Intercept sampled periodically.
	OptimizePath bool
	Slope        float64
	Intercept    float64

	// BroadcastInterval is how often spectators receive a frame.
	BroadcastInterval Duration
}

// Duration is a time.Duration written as a string such as "50ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the parameters used when colony.toml is missing or
// leaves a key out.
func DefaultConfig() Config {
	return Config{
		TickDelta:         0.01,
		FlockSeed:         44444444,
		FoodSeed:          11,
		BroadcastInterval: Duration{50 * time.Millisecond},
	}
}

// ParseConfig decodes the TOML file at path over the defaults.
func ParseConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", path)
	}
	if !(conf.TickDelta > 0) {
		return Config{}, errors.Errorf("parse %s: tick delta must be positive, got %v", path, conf.TickDelta)
	}
	if conf.BroadcastInterval.Duration <= 0 {
		return Config{}, errors.Errorf("parse %s: broadcast interval must be positive, got %v", path, conf.BroadcastInterval)
	}
	return conf, nil
}

// SaveConfig writes conf as TOML.
func SaveConfig(path string, conf Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return writeAtomic(path, buf.Bytes())
}
