package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for a bench description in the working directory.
func findConfigFile() string {
	for _, path := range []string{"./raybench.yaml", "./bench.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects bench descriptions the tracer cannot act on. Degenerate
// apertures are deliberately not an error: such an element simply rejects
// every ray.
func (c *Config) Validate() error {
	if c.Bench.Wavelength <= 0 {
		return fmt.Errorf("wavelength must be positive, got %g", c.Bench.Wavelength)
	}
	if len(c.Canvas.XLim) != 2 || len(c.Canvas.YLim) != 2 {
		return fmt.Errorf("canvas limits must be [min, max] pairs")
	}
	if c.Canvas.XLim[0] >= c.Canvas.XLim[1] || c.Canvas.YLim[0] >= c.Canvas.YLim[1] {
		return fmt.Errorf("canvas limits must be increasing")
	}
	if s := c.Bench.Scan; s != nil {
		found := false
		for _, e := range c.Bench.Elements {
			if e.Name == s.Element {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("scan element %q not found on the bench", s.Element)
		}
	}
	return nil
}

// ScanAngles resolves the sweep: inline angles first, then any rule file.
// The file format is one angle in radians per line; blank lines and lines
// starting with # are skipped.
func (s *ScanConfig) ScanAngles() ([]float64, error) {
	angles := append([]float64(nil), s.Angles...)

	if s.AnglesFile != "" {
		f, err := os.Open(s.AnglesFile)
		if err != nil {
			return nil, fmt.Errorf("opening scan angle file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for line := 1; scanner.Scan(); line++ {
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			a, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad scan angle %q", s.AnglesFile, line, text)
			}
			angles = append(angles, a)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading scan angle file: %w", err)
		}
	}

	if len(angles) == 0 {
		return nil, fmt.Errorf("scan for %q has no angles", s.Element)
	}
	return angles, nil
}
