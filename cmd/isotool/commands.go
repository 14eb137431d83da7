package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/isometry/internal/config"
	"github.com/Faultbox/isometry/internal/frames"
	"github.com/Faultbox/isometry/internal/logger"
	"github.com/Faultbox/isometry/pkg/math"
)

var errUsage = errors.New("invalid usage")

type app struct {
	cfg *config.Config
	out io.Writer
}

func (a *app) run(command string, args []string) error {
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args))

	switch command {
	case "euler":
		return a.cmdEuler(args)
	case "axis":
		return a.cmdAxis(args)
	case "frames", "ls":
		return a.cmdFrames(args)
	case "lookup":
		return a.cmdLookup(args)
	case "transform", "tf":
		return a.cmdTransform(args)
	case "invert":
		return a.cmdInvert(args)
	case "config":
		return a.cmdConfig(args)
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) cmdEuler(args []string) error {
	v, err := parseFloats(args, 3, "euler <roll> <pitch> <yaw>")
	if err != nil {
		return err
	}
	return a.printIsometry(math.FromEulerAngles(v[0], v[1], v[2]))
}

func (a *app) cmdAxis(args []string) error {
	v, err := parseFloats(args, 4, "axis <x> <y> <z> <radians>")
	if err != nil {
		return err
	}
	iso, err := math.RotateAround(math.NewVector3(v[0], v[1], v[2]), v[3])
	if err != nil {
		return err
	}
	return a.printIsometry(iso)
}

func (a *app) cmdFrames(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: frames takes no arguments", errUsage)
	}
	tree, err := a.loadTree()
	if err != nil {
		return err
	}
	for _, name := range tree.Frames() {
		pose, err := tree.Pose(name)
		if err != nil {
			return err
		}
		parent, err := tree.Parent(name)
		if err != nil {
			return err
		}
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(a.out, "%-16s parent=%-16s translation=%s\n", name, parent, a.formatVector(pose.Translation))
	}
	return nil
}

func (a *app) cmdLookup(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: lookup <target> <source>", errUsage)
	}
	tree, err := a.loadTree()
	if err != nil {
		return err
	}
	iso, err := tree.Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printIsometry(iso)
}

func (a *app) cmdTransform(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: transform <target> <source> <x> <y> <z>", errUsage)
	}
	v, err := parseFloats(args[2:], 3, "transform <target> <source> <x> <y> <z>")
	if err != nil {
		return err
	}
	tree, err := a.loadTree()
	if err != nil {
		return err
	}
	p, err := tree.TransformPoint(args[0], args[1], math.NewVector3(v[0], v[1], v[2]))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.formatVector(p))
	return nil
}

func (a *app) cmdInvert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: invert <target> <source>", errUsage)
	}
	tree, err := a.loadTree()
	if err != nil {
		return err
	}
	iso, err := tree.Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	inv, err := iso.Inverse()
	if err != nil {
		return err
	}
	if err := a.printIsometry(inv); err != nil {
		return err
	}

	tol := a.cfg.Tolerance.Equal
	if !iso.Compose(inv).ApproxEqual(math.IdentityIsometry(), tol) {
		logger.Warn("round trip is not the identity",
			zap.String("target", args[0]),
			zap.String("source", args[1]),
			zap.Float64("tolerance", tol))
		return fmt.Errorf("round trip of %s_T_%s exceeds tolerance %g", args[0], args[1], tol)
	}
	logger.Sugar.Debugf("round trip of %s_T_%s within tolerance %g", args[0], args[1], tol)
	fmt.Fprintf(a.out, "round trip ok (tolerance %g)\n", tol)
	return nil
}

func (a *app) cmdConfig(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: config [path]", errUsage)
	}
	if len(args) == 1 {
		if err := a.cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Saved config to %s\n", args[0])
		return nil
	}
	path, err := a.cfg.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved config to %s\n", path)
	return nil
}

func (a *app) loadTree() (*frames.Tree, error) {
	if a.cfg.Frames.File == "" {
		return nil, fmt.Errorf("%w: no frame tree configured (use -frames or frames.file)", errUsage)
	}
	tree, err := frames.Load(a.cfg.Frames.File,
		frames.WithDefaultRoot(a.cfg.Frames.Root),
		frames.WithLogger(logger.Named("frames")))
	if err != nil {
		return nil, err
	}
	logger.Info("loaded frame tree",
		zap.String("file", a.cfg.Frames.File),
		zap.Int("frames", len(tree.Frames())))
	return tree, nil
}

func (a *app) formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', a.cfg.Output.Precision, 64)
}

func (a *app) formatVector(v math.Vector3) string {
	return fmt.Sprintf("(%s, %s, %s)", a.formatFloat(v.X), a.formatFloat(v.Y), a.formatFloat(v.Z))
}

func (a *app) printIsometry(iso math.Isometry) error {
	fmt.Fprintf(a.out, "translation: %s\n", a.formatVector(iso.Translation))
	fmt.Fprintln(a.out, "rotation:")
	for i := 0; i < 3; i++ {
		row, err := iso.Rotation.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  %s\n", a.formatVector(row))
	}
	return nil
}

func parseFloats(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s", errUsage, usage)
	}
	out := make([]float64, n)
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}
