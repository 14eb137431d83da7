package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagFrames    = flag.String("frames", "", "Path to frame tree YAML")
	flagRoot      = flag.String("root", "", "Root frame name")
	flagPrecision = flag.Int("precision", 0, "Significant digits in output")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
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
	if *flagFrames != "" {
		cfg.Frames.File = *flagFrames
	}
	if *flagRoot != "" {
		cfg.Frames.Root = *flagRoot
	}
	if *flagPrecision > 0 {
		cfg.Output.Precision = *flagPrecision
	}
}
