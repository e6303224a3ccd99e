package game

import "fmt"

// SpecialAction is a blocking interaction guarding the final step of a path,
// such as a locked border gate. Decompose yields a sub-goal describing how to
// satisfy the prerequisite for the given hero, or an InvalidGoal when there is
// no known way.
type SpecialAction interface {
	Decompose(h *Hero) Goal
	fmt.Stringer
}

// Path is a candidate route from a hero's current position to a target tile.
// Paths are produced fresh by the pathfinder on every planning call and are
// consumed within a single decomposition pass.
type Path struct {
	Hero   *Hero
	Army   *Army
	Target Position

	// Cost is the total movement cost. Danger and ArmyLoss are the
	// pathfinder's totals along the route; all three are non-negative.
	Cost     float64
	Danger   int64
	ArmyLoss int64

	// ExchangeCount is the number of hero exchange/merge steps the route
	// requires. A plain single-hero route has at most one.
	ExchangeCount int

	// Blocked is the terminal blocking action, nil when the final step is
	// unobstructed.
	Blocked SpecialAction
}

func (p Path) String() string {
	return fmt.Sprintf("path to %s via %s (cost %.1f, danger %d, loss %d)",
		p.Target, p.Hero.Name, p.Cost, p.Danger, p.ArmyLoss)
}

// snapshot returns a copy of the path that owns its own army snapshot, safe
// to embed in a goal that outlives the pathfinder's buffers.
func (p Path) snapshot() Path {
	out := p
	out.Army = p.Army.Copy()
	return out
}
