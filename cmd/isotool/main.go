// isotool is a CLI for rigid transform math and frame tree lookups.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/isometry/internal/config"
	"github.com/Faultbox/isometry/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	app := &app{cfg: cfg, out: os.Stdout}
	if err := app.run(args[0], args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `isotool - rigid transform and frame tree utility

Usage:
  isotool [flags] <command> [args]

Commands:
  euler <roll> <pitch> <yaw>           Print the isometry Rx(roll) Ry(pitch) Rz(yaw)
  axis <x> <y> <z> <radians>           Print a rotation around an axis
  frames                               List frames and their poses in the root frame
  lookup <target> <source>             Print target_T_source
  transform <target> <source> <x> <y> <z>
                                       Map a point from source into target
  invert <target> <source>             Print source_T_target and check the round trip
  config                               Save the effective config to the user config dir

Flags:
  -config <file>     Config file (default: ./isotool.yaml, then user config dir)
  -frames <file>     Frame tree YAML
  -root <name>       Root frame name
  -precision <n>     Significant digits in output
  -debug             Enable debug logging

Examples:
  isotool euler 0 0 1.5707963
  isotool -frames robot.yaml lookup camera base
  isotool -frames robot.yaml transform world camera 1 0 0`)
}
