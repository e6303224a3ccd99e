package game

import (
	"fmt"
	"strings"
)

// Goal is a plan node consumed by the composition/execution layer. The
// variant set is closed: InvalidGoal, ExecuteRoute and Composition.
type Goal interface {
	Invalid() bool
	fmt.Stringer
}

// InvalidGoal is the placeholder for a candidate that was rejected or could
// not be decomposed. Decompose never returns these to the caller.
type InvalidGoal struct {
	Reason string
}

// Invalid always returns true.
func (InvalidGoal) Invalid() bool { return true }

func (g InvalidGoal) String() string {
	if g.Reason == "" {
		return "invalid goal"
	}
	return "invalid goal: " + g.Reason
}

// ExecuteRoute wraps a path to a target object. ClosestWayRatio compares this
// route's movement cost against the cheapest accepted route to the same
// object in the same batch; it is in (0, 1] and equals 1 for the cheapest.
type ExecuteRoute struct {
	Path   Path
	Object *WorldObject

	ClosestWayRatio float64
}

// Invalid always returns false.
func (*ExecuteRoute) Invalid() bool { return false }

func (g *ExecuteRoute) String() string {
	target := g.Path.Target.String()
	if g.Object != nil {
		target = g.Object.String()
	}
	return fmt.Sprintf("execute route to %s via %s (cost %.1f, ratio %.2f)",
		target, g.Path.Hero.Name, g.Path.Cost, g.ClosestWayRatio)
}

// Composition is an ordered sequence of sub-goals executed front to back.
// It is used when a route must first resolve a blocking action before the
// final visit.
type Composition struct {
	Sequence []Goal
}

// AddNext appends a sub-goal and returns the composition for chaining.
func (c *Composition) AddNext(g Goal) *Composition {
	c.Sequence = append(c.Sequence, g)
	return c
}

// Invalid always returns false.
func (*Composition) Invalid() bool { return false }

func (c *Composition) String() string {
	parts := make([]string, len(c.Sequence))
	for i, g := range c.Sequence {
		parts[i] = g.String()
	}
	return "composition[" + strings.Join(parts, "; ") + "]"
}

// dropInvalid removes every invalid entry, preserving order.
func dropInvalid(goals []Goal) []Goal {
	out := goals[:0]
	for _, g := range goals {
		if !g.Invalid() {
			out = append(out, g)
		}
	}
	return out
}
