// Package frames maintains a tree of named coordinate frames related by
// rigid transforms.
package frames

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/isometry/pkg/math"
)

// Frame tree errors.
var (
	ErrUnknownFrame = errors.New("unknown frame")
	ErrFrameExists  = errors.New("frame already exists")
	ErrInvalidFrame = errors.New("invalid frame")
)

// DefaultRoot is the root frame name used when none is given.
const DefaultRoot = "world"

type frame struct {
	parent string
	pose   math.Isometry // parent_T_frame
}

// Tree is a set of frames rooted at a single fixed frame.
// A Tree is safe for concurrent use.
type Tree struct {
	root string
	log  *zap.Logger

	mu     sync.RWMutex
	frames map[string]frame
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tree) {
		if log != nil {
			t.log = log
		}
	}
}

// WithDefaultRoot names the root frame when New is given an empty root.
func WithDefaultRoot(root string) Option {
	return func(t *Tree) {
		if t.root == "" {
			t.root = root
		}
	}
}

// New creates a tree containing only the root frame. An empty root falls
// back to WithDefaultRoot, then DefaultRoot.
func New(root string, opts ...Option) *Tree {
	t := &Tree{
		root:   root,
		log:    zap.NewNop(),
		frames: make(map[string]frame),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.root == "" {
		t.root = DefaultRoot
	}
	return t
}

// Root returns the root frame name.
func (t *Tree) Root() string {
	return t.root
}

// Add attaches frame name to parent. pose maps points expressed in name
// into parent coordinates.
func (t *Tree) Add(name, parent string, pose math.Isometry) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFrame)
	}
	if name == parent {
		return fmt.Errorf("%w: %q is its own parent", ErrInvalidFrame, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasLocked(name) {
		return fmt.Errorf("%w: %q", ErrFrameExists, name)
	}
	if !t.hasLocked(parent) {
		return fmt.Errorf("%w: parent %q of %q", ErrUnknownFrame, parent, name)
	}
	t.frames[name] = frame{parent: parent, pose: pose}

	t.log.Debug("frame added",
		zap.String("frame", name),
		zap.String("parent", parent),
		zap.Stringer("pose", pose))
	return nil
}

// Has reports whether the tree contains name.
func (t *Tree) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hasLocked(name)
}

func (t *Tree) hasLocked(name string) bool {
	if name == t.root {
		return true
	}
	_, ok := t.frames[name]
	return ok
}

// Parent returns the parent of name. The root has no parent.
func (t *Tree) Parent(name string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.frames[name]
	if !ok {
		if name == t.root {
			return "", nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownFrame, name)
	}
	return f.parent, nil
}

// Frames returns all frame names, root included, sorted.
func (t *Tree) Frames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.frames)+1)
	names = append(names, t.root)
	for name := range t.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pose returns root_T_name.
func (t *Tree) Pose(name string) (math.Isometry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.poseLocked(name)
}

func (t *Tree) poseLocked(name string) (math.Isometry, error) {
	pose := math.IdentityIsometry()
	for cur := name; cur != t.root; {
		f, ok := t.frames[cur]
		if !ok {
			return math.Isometry{}, fmt.Errorf("%w: %q", ErrUnknownFrame, cur)
		}
		pose = f.pose.Compose(pose)
		cur = f.parent
	}
	return pose, nil
}

// Lookup returns target_T_source: the transform taking points expressed in
// source into target coordinates.
func (t *Tree) Lookup(target, source string) (math.Isometry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rootTarget, err := t.poseLocked(target)
	if err != nil {
		return math.Isometry{}, err
	}
	rootSource, err := t.poseLocked(source)
	if err != nil {
		return math.Isometry{}, err
	}
	targetRoot, err := rootTarget.Inverse()
	if err != nil {
		return math.Isometry{}, fmt.Errorf("inverting pose of %q: %w", target, err)
	}

	result := targetRoot.Compose(rootSource)
	t.log.Debug("frame lookup",
		zap.String("target", target),
		zap.String("source", source),
		zap.Stringer("transform", result))
	return result, nil
}

// TransformPoint maps p from source coordinates into target coordinates.
func (t *Tree) TransformPoint(target, source string, p math.Vector3) (math.Vector3, error) {
	iso, err := t.Lookup(target, source)
	if err != nil {
		return math.Vector3{}, err
	}
	return iso.Transform(p), nil
}
