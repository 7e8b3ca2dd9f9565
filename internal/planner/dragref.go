package planner

import (
	"fmt"
	"strings"
)

// RefKind tags the origin of a drag reference.
type RefKind int

const (
	// RefPool refers to the unassigned pool.
	RefPool RefKind = iota
	// RefDay refers to a day bucket.
	RefDay
)

// DragRef identifies a drag source or drop target. It replaces the
// legacy "dayId::name" composite strings with an explicit tagged
// value, so location names can never collide with the separator.
// A target with an empty Name means the day bucket itself (append).
type DragRef struct {
	Kind  RefKind
	DayID string
	Name  string
}

const (
	refSeparator = "::"
	poolTag      = "unassigned"
)

// ParseDragRef parses the wire form of a drag reference:
// "unassigned::<name>", "<dayId>::<name>", or a bare "<dayId>" for a
// drop onto the day bucket itself. Names containing the separator are
// rejected as ambiguous rather than mis-split.
func ParseDragRef(s string) (DragRef, error) {
	if s == "" {
		return DragRef{}, fmt.Errorf("empty drag reference")
	}
	if !strings.Contains(s, refSeparator) {
		if s == poolTag {
			return DragRef{Kind: RefPool}, nil
		}
		return DragRef{Kind: RefDay, DayID: s}, nil
	}

	tag, name, _ := strings.Cut(s, refSeparator)
	if tag == "" || name == "" {
		return DragRef{}, fmt.Errorf("malformed drag reference %q", s)
	}
	if strings.Contains(name, refSeparator) {
		return DragRef{}, fmt.Errorf("ambiguous drag reference %q: name contains %q", s, refSeparator)
	}
	if tag == poolTag {
		return DragRef{Kind: RefPool, Name: name}, nil
	}
	return DragRef{Kind: RefDay, DayID: tag, Name: name}, nil
}

// String returns the wire form of the reference.
func (r DragRef) String() string {
	tag := r.DayID
	if r.Kind == RefPool {
		tag = poolTag
	}
	if r.Name == "" {
		return tag
	}
	return tag + refSeparator + r.Name
}
