package peripheral

import (
	"iter"
	"strings"
)

// Capability is a peripheral capability tag.
type Capability int

//go:generate go tool stringer -linecomment -type=Capability
const (
	CAP_LCD     = Capability(0) // lcd
	CAP_AUDIO   = Capability(1) // audio
	CAP_PIXELS  = Capability(2) // pixels
	CAP_FIRE    = Capability(3) // fire
	CAP_ROBOT   = Capability(4) // robot
	CAP_ACTIONS = Capability(5) // actions

	capabilityCount = 6
)

// Set returns the single-capability set.
func (c Capability) Set() CapabilitySet {
	return CapabilitySet(1) << uint(c)
}

// CapabilitySet is a bitmask of capabilities.
type CapabilitySet uint8

// Capabilities builds a set from individual tags.
func Capabilities(caps ...Capability) (set CapabilitySet) {
	for _, c := range caps {
		set = set.With(c)
	}
	return
}

// Has returns true if the capability is in the set.
func (set CapabilitySet) Has(c Capability) bool {
	return set&c.Set() != 0
}

// With returns the set plus the capability.
func (set CapabilitySet) With(c Capability) CapabilitySet {
	return set | c.Set()
}

// Union returns the union of both sets.
func (set CapabilitySet) Union(other CapabilitySet) CapabilitySet {
	return set | other
}

// Contains returns true if every capability of other is in set.
func (set CapabilitySet) Contains(other CapabilitySet) bool {
	return set&other == other
}

// Missing returns the capabilities of other that are not in set.
func (set CapabilitySet) Missing(other CapabilitySet) CapabilitySet {
	return other &^ set
}

// All iterates over the capabilities in the set, in tag order.
func (set CapabilitySet) All() iter.Seq[Capability] {
	return func(yield func(Capability) bool) {
		for n := range capabilityCount {
			c := Capability(n)
			if set.Has(c) && !yield(c) {
				return
			}
		}
	}
}

// String returns the capability names joined with '+', or "none".
func (set CapabilitySet) String() string {
	var names []string
	for c := range set.All() {
		names = append(names, c.String())
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
