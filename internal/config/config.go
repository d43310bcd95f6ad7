// Package config handles bench description loading: the optical elements
// on the table, the rays fired at them, and how to draw the result.
package config

// Config holds all simulator settings.
type Config struct {
	Bench   BenchConfig   `yaml:"bench"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Logging LoggingConfig `yaml:"logging"`
}

// BenchConfig describes the optical system and its input rays.
type BenchConfig struct {
	Wavelength float64         `yaml:"wavelength"` // meters
	Elements   []ElementConfig `yaml:"elements"`
	Rays       []RayConfig     `yaml:"rays"`
	Scan       *ScanConfig     `yaml:"scan,omitempty"`
}

// ElementConfig describes one optical element. Kind selects the variant;
// the trailing fields only apply to the kinds noted.
type ElementConfig struct {
	Kind         string    `yaml:"kind"` // mirror, lens, grating, dmd
	Name         string    `yaml:"name,omitempty"`
	Aperture     float64   `yaml:"aperture"`
	Position     []float64 `yaml:"position"` // [x, y]
	Theta        float64   `yaml:"theta"`    // radians, tilt against global Y
	Focal        float64   `yaml:"focal,omitempty"`          // lens
	GroovesPerMM float64   `yaml:"grooves_per_mm,omitempty"` // grating
	Order        int       `yaml:"order,omitempty"`          // grating
	Deflection   float64   `yaml:"deflection,omitempty"`     // dmd
}

// RayConfig is one input ray as the [x, y, theta] triple, with an optional
// draw color; rays without a color get a seeded random one.
type RayConfig struct {
	Ray   []float64 `yaml:"ray"`
	Color string    `yaml:"color,omitempty"` // #rrggbb
}

// ScanConfig sweeps the steering angle of one element (by name) across a
// set of angles, tracing the bench once per angle. Angles may be listed
// inline or read from a rule file with one angle per line.
type ScanConfig struct {
	Element    string    `yaml:"element"`
	Angles     []float64 `yaml:"angles,omitempty"` // radians
	AnglesFile string    `yaml:"angles_file,omitempty"`
}

// CanvasConfig holds drawing settings.
type CanvasConfig struct {
	XLim         []float64 `yaml:"xlim"` // [min, max] in bench units
	YLim         []float64 `yaml:"ylim"`
	Width        int       `yaml:"width"` // pixels
	Height       int       `yaml:"height"`
	Output       string    `yaml:"output"`
	DrawElements bool      `yaml:"draw_elements"`
	Seed         int64     `yaml:"seed"` // for random ray colors
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: an empty bench at
// the default green wavelength and a canvas sized for small tabletop scenes.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			Wavelength: 525e-9,
		},
		Canvas: CanvasConfig{
			XLim:         []float64{-100, 300},
			YLim:         []float64{-100, 100},
			Width:        1200,
			Height:       600,
			Output:       "bench.png",
			DrawElements: true,
			Seed:         1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
