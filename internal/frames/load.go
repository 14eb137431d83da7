package frames

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/isometry/pkg/math"
)

// Document is the YAML layout of a frame tree.
type Document struct {
	Root   string      `yaml:"root"`
	Frames []FrameSpec `yaml:"frames"`
}

// FrameSpec describes a single frame relative to its parent.
type FrameSpec struct {
	Name        string       `yaml:"name"`
	Parent      string       `yaml:"parent"`
	Translation []float64    `yaml:"translation,omitempty"`
	Rotation    RotationSpec `yaml:"rotation,omitempty"`
}

// RotationSpec holds at most one rotation representation. An empty spec
// means the identity rotation.
type RotationSpec struct {
	Euler  []float64   `yaml:"euler,omitempty"`  // roll, pitch, yaw in radians
	Axis   []float64   `yaml:"axis,omitempty"`   // rotation axis, any length
	Angle  float64     `yaml:"angle,omitempty"`  // radians around Axis
	Matrix [][]float64 `yaml:"matrix,omitempty"` // three rows
}

// Pose converts the spec into parent_T_frame.
func (s FrameSpec) Pose() (math.Isometry, error) {
	translation := math.ZeroVector()
	if s.Translation != nil {
		v, err := math.Vector3FromSlice(s.Translation)
		if err != nil {
			return math.Isometry{}, fmt.Errorf("translation: %w", err)
		}
		translation = v
	}

	rotation, err := s.Rotation.matrix()
	if err != nil {
		return math.Isometry{}, fmt.Errorf("rotation: %w", err)
	}
	return math.NewIsometry(translation, rotation), nil
}

func (r RotationSpec) matrix() (math.Matrix3, error) {
	set := 0
	if r.Euler != nil {
		set++
	}
	if r.Axis != nil {
		set++
	}
	if r.Matrix != nil {
		set++
	}
	if set > 1 {
		return math.Matrix3{}, fmt.Errorf("%w: more than one of euler, axis, matrix", math.ErrInvalidArgument)
	}
	if r.Axis == nil && r.Angle != 0 {
		return math.Matrix3{}, fmt.Errorf("%w: angle without axis", math.ErrInvalidArgument)
	}

	switch {
	case r.Euler != nil:
		v, err := math.Vector3FromSlice(r.Euler)
		if err != nil {
			return math.Matrix3{}, fmt.Errorf("euler: %w", err)
		}
		return math.FromEulerAngles(v.X, v.Y, v.Z).Rotation, nil

	case r.Axis != nil:
		axis, err := math.Vector3FromSlice(r.Axis)
		if err != nil {
			return math.Matrix3{}, fmt.Errorf("axis: %w", err)
		}
		iso, err := math.RotateAround(axis, r.Angle)
		if err != nil {
			return math.Matrix3{}, err
		}
		return iso.Rotation, nil

	case r.Matrix != nil:
		if len(r.Matrix) != 3 {
			return math.Matrix3{}, fmt.Errorf("%w: matrix needs 3 rows, got %d", math.ErrInvalidSize, len(r.Matrix))
		}
		var rows [3]math.Vector3
		for i, row := range r.Matrix {
			v, err := math.Vector3FromSlice(row)
			if err != nil {
				return math.Matrix3{}, fmt.Errorf("matrix row %d: %w", i, err)
			}
			rows[i] = v
		}
		return math.Matrix3FromRows(rows[0], rows[1], rows[2]), nil
	}
	return math.IdentityMatrix(), nil
}

// Load reads a frame tree from a YAML file.
func Load(path string, opts ...Option) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// Parse builds a tree from YAML. Frames may appear in any order.
func Parse(data []byte, opts ...Option) (*Tree, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return Build(doc, opts...)
}

// Build adds every frame of doc to a new tree, parents first.
func Build(doc Document, opts ...Option) (*Tree, error) {
	tree := New(doc.Root, opts...)

	type pendingFrame struct {
		name, parent string
		pose         math.Isometry
	}
	pending := make([]pendingFrame, 0, len(doc.Frames))
	for _, spec := range doc.Frames {
		pose, err := spec.Pose()
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", spec.Name, err)
		}
		parent := spec.Parent
		if parent == "" {
			parent = tree.Root()
		}
		pending = append(pending, pendingFrame{spec.Name, parent, pose})
	}

	// Repeatedly add frames whose parent is already present.
	for len(pending) > 0 {
		var next []pendingFrame
		for _, f := range pending {
			if !tree.Has(f.parent) {
				next = append(next, f)
				continue
			}
			if err := tree.Add(f.name, f.parent, f.pose); err != nil {
				return nil, err
			}
		}
		if len(next) == len(pending) {
			return nil, fmt.Errorf("%w: parent %q of %q (missing or cyclic)",
				ErrUnknownFrame, next[0].parent, next[0].name)
		}
		pending = next
	}

	tree.log.Debug("frame tree built",
		zap.String("root", tree.Root()),
		zap.Int("frames", len(doc.Frames)))
	return tree, nil
}
