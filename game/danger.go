package game

// StrengthDangerAssessor implements DangerAssessor by comparing army fight
// value against path danger with a policy margin.
type StrengthDangerAssessor struct {
	Roster CreatureRoster
	// Margin scales the danger a route must be beaten by. 1.2 means the
	// army must be 20% stronger than the threat.
	Margin float64
}

// EnemyCanKillAlongPath reports whether the accumulated threat outweighs the
// army outright.
func (a *StrengthDangerAssessor) EnemyCanKillAlongPath(p Path) bool {
	return float64(p.Danger) > float64(p.Army.Strength(a.Roster))
}

// IsSafeToVisit reports whether the army beats the danger with the margin.
// Zero danger is always safe.
func (a *StrengthDangerAssessor) IsSafeToVisit(h *Hero, army *Army, danger int64) bool {
	if danger == 0 {
		return true
	}
	return float64(army.Strength(a.Roster)) >= float64(danger)*a.Margin
}

// LockRegistry tracks heroes committed to an in-flight multi-step plan. It
// implements the LockTracker collaborator.
type LockRegistry struct {
	locked map[HeroID]bool
}

// NewLockRegistry creates an empty LockRegistry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locked: make(map[HeroID]bool)}
}

// Lock marks a hero as committed.
func (lr *LockRegistry) Lock(id HeroID) {
	lr.locked[id] = true
}

// Unlock releases a hero.
func (lr *LockRegistry) Unlock(id HeroID) {
	delete(lr.locked, id)
}

// PathHeroesLocked reports whether the path's hero is committed elsewhere.
func (lr *LockRegistry) PathHeroesLocked(p Path) bool {
	return lr.locked[p.Hero.ID]
}

// ArmyRoleClassifier implements RoleClassifier: heroes whose army is below
// the threshold are scouts, the rest are main-army heroes.
type ArmyRoleClassifier struct {
	Roster         CreatureRoster
	ScoutThreshold int64
}

// RoleOf classifies the hero by current army strength.
func (c *ArmyRoleClassifier) RoleOf(h *Hero) Role {
	if h.Army.Strength(c.Roster) < c.ScoutThreshold {
		return RoleScout
	}
	return RoleMain
}
