package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to bench description file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOut    = flag.String("out", "", "Output image path")
	flagSeed   = flag.Int64("seed", 0, "Seed for random ray colors")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Canvas.Output = *flagOut
	}
	if *flagSeed != 0 {
		cfg.Canvas.Seed = *flagSeed
	}
}
