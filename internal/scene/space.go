// Package scene holds the coordinate-space state machine and the
// per-frame transform math for the pipeline viewer.
package scene

import (
	"fmt"
	"strings"
)

// Space identifies the coordinate space currently highlighted by the
// vertex shader. The numeric value is uploaded directly as the
// activeSpace uniform.
type Space int

const (
	ModelSpace Space = 0
	WorldSpace Space = 1
	ViewSpace  Space = 2
	ClipSpace  Space = 3
)

// Label returns the human-readable name shown in the window title.
func (s Space) Label() string {
	switch s {
	case ModelSpace:
		return "MODEL SPACE"
	case WorldSpace:
		return "WORLD SPACE"
	case ViewSpace:
		return "VIEW SPACE"
	case ClipSpace:
		return "CLIP SPACE"
	}
	return "UNKNOWN"
}

// AppliesModel reports whether the vertex shader applies the model
// matrix to the emitted position for this space. Model space leaves
// the cube untransformed, so switching to it visibly freezes the
// rotation.
func (s Space) AppliesModel() bool {
	return s != ModelSpace
}

// ParseSpace converts a config name ("model", "world", "view", "clip",
// case-insensitive) to a Space.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "model":
		return ModelSpace, nil
	case "world":
		return WorldSpace, nil
	case "view":
		return ViewSpace, nil
	case "clip":
		return ClipSpace, nil
	}
	return ModelSpace, fmt.Errorf("unknown coordinate space %q", name)
}

// TitleInfo returns the window title suffix for the active space.
func TitleInfo(s Space) string {
	return s.Label() + " (Press 1-4 to change)"
}
