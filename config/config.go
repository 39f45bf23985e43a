// Package config holds the interpreter's process-wide settings: number
// format, angle mode, float precision, and output base, following the
// teacher's zero-value-is-default Config (config/config.go) extended per
// spec §4.5/§5 with angle-mode state and a YAML-backed session sidecar.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Angle is the unit sin/cos/tan consult (spec §4.5).
type Angle int

const (
	Radians Angle = iota
	Degrees
)

func (a Angle) String() string {
	if a == Degrees {
		return "degrees"
	}
	return "radians"
}

// Config holds information about the configuration of the system. The
// zero value holds the default settings (radians, 12 significant digits,
// base 10), mirroring the teacher's "zero value is the default" rule.
type Config struct {
	angle         Angle
	floatSigFigs  int
	outputBase    int
	debug         map[string]bool
	historyPath   string
}

// New returns a Config with every default applied.
func New() *Config {
	return &Config{floatSigFigs: 12, outputBase: 10}
}

// AngleMode returns the unit sin/cos/tan consult.
func (c *Config) AngleMode() Angle {
	if c == nil {
		return Radians
	}
	return c.angle
}

// SetAngleMode sets the unit sin/cos/tan consult (the `angles` REPL
// command, spec §5 / SPEC_FULL §12).
func (c *Config) SetAngleMode(a Angle) {
	c.angle = a
}

// FloatSigFigs returns the number of significant digits used to render a
// floating approximation (SPEC_FULL §13: fixed at 12, matching the
// teacher's BigFloat default format; configurable via --format).
func (c *Config) FloatSigFigs() int {
	if c == nil || c.floatSigFigs == 0 {
		return 12
	}
	return c.floatSigFigs
}

// SetFloatSigFigs overrides the default significant-digit count.
func (c *Config) SetFloatSigFigs(n int) {
	c.floatSigFigs = n
}

// OutputBase returns the base used to render integers (default 10).
func (c *Config) OutputBase() int {
	if c == nil || c.outputBase == 0 {
		return 10
	}
	return c.outputBase
}

// SetOutputBase sets the output base.
func (c *Config) SetOutputBase(base int) {
	c.outputBase = base
}

// Debug reports whether a named debug trace is enabled, following the
// teacher's Config.Debug(name string) bool.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug enables or disables a named debug trace.
func (c *Config) SetDebug(name string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = state
}

// HistoryPath returns the path the REPL persists line history to.
func (c *Config) HistoryPath() string {
	if c == nil || c.historyPath == "" {
		return defaultHistoryPath()
	}
	return c.historyPath
}

// SetHistoryPath overrides the history file path (the --history flag).
func (c *Config) SetHistoryPath(path string) {
	c.historyPath = path
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".computor_history"
	}
	return home + "/.computor_history"
}

// sessionFile is the YAML-serializable sidecar persisted next to the
// history file (SPEC_FULL §11: "a YAML sidecar recording per-session
// format/angle-mode settings").
type sessionFile struct {
	Angle        string `yaml:"angle"`
	FloatSigFigs int    `yaml:"float_sig_figs"`
	OutputBase   int    `yaml:"output_base"`
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".computor_session.yaml"
	}
	return home + "/.computor_session.yaml"
}

// Load reads persisted session settings from disk, if present. A missing
// file is not an error: it just means the defaults apply.
func Load() (*Config, error) {
	c := New()
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	var sf sessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return c, errors.Wrapf(err, "parsing session file %s", sessionPath())
	}
	if sf.Angle == "degrees" {
		c.angle = Degrees
	}
	if sf.FloatSigFigs > 0 {
		c.floatSigFigs = sf.FloatSigFigs
	}
	if sf.OutputBase > 0 {
		c.outputBase = sf.OutputBase
	}
	return c, nil
}

// Save persists the current settings to the session sidecar.
func (c *Config) Save() error {
	sf := sessionFile{
		Angle:        c.AngleMode().String(),
		FloatSigFigs: c.FloatSigFigs(),
		OutputBase:   c.OutputBase(),
	}
	data, err := yaml.Marshal(sf)
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), data, 0o644)
}
