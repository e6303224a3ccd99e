package game

import (
	"log"
	"os"
)

// Pathfinder produces candidate routes to a target position, ordered by the
// pathfinder's own preference. One entry per hero/route combination.
type Pathfinder interface {
	PathsTo(pos Position) []Path
}

// DangerAssessor answers threat queries for a path or a prospective visit.
type DangerAssessor interface {
	// EnemyCanKillAlongPath reports whether any enemy can kill the path's
	// hero before the route completes.
	EnemyCanKillAlongPath(p Path) bool
	// IsSafeToVisit reports whether the hero's army, after worst-case loss,
	// still beats the given danger with the policy margin.
	IsSafeToVisit(h *Hero, army *Army, danger int64) bool
}

// RoleClassifier derives a hero's behavioral role.
type RoleClassifier interface {
	RoleOf(h *Hero) Role
}

// LockTracker knows which heroes are already committed to another in-flight
// multi-step plan this pass.
type LockTracker interface {
	PathHeroesLocked(p Path) bool
}

// Clusterizer partitions the interactable objects into a nearby pool and a
// far pool relative to the planning player's forces.
type Clusterizer interface {
	NearbyObjects() []*WorldObject
	FarObjects() []*WorldObject
}

// QuestRegistry lists the quests the planning player has picked up.
type QuestRegistry interface {
	ActiveQuests() []Quest
}

// Economy exposes the planning player's stockpiles.
type Economy interface {
	ResourceAmount() Resources
	CanAfford(cost Resources) bool
}

// PlayerState exposes per-player bookkeeping owned by the world.
type PlayerState interface {
	// HeroCount returns the number of heroes the player currently controls.
	HeroCount(p PlayerID) int
	// KeyUnlocked reports whether the player already holds the key of the
	// given keymaster color.
	KeyUnlocked(p PlayerID, subType int) bool
}

// Settings holds the visit-rule thresholds and per-player caps.
type Settings struct {
	HeroCap         int
	HeroRecruitCost int
	SchoolGold      int
	LibraryMinLevel int
	TreeGold        int
	TreeGems        int
}

// DefaultSettings returns the standard rule thresholds.
func DefaultSettings() Settings {
	return Settings{
		HeroCap:         8,
		HeroRecruitCost: 2500,
		SchoolGold:      1000,
		LibraryMinLevel: 12,
		TreeGold:        2000,
		TreeGems:        10,
	}
}

// PlannerContext bundles every collaborator a planning pass reads from. All
// dependencies are explicit; the engine keeps no ambient state.
type PlannerContext struct {
	Pathfinder Pathfinder
	Danger     DangerAssessor
	Roles      RoleClassifier
	Locks      LockTracker
	Clusters   Clusterizer
	Quests     QuestRegistry
	Economy    Economy
	Players    PlayerState
	Roster     CreatureRoster
	Settings   Settings
	Logger     *log.Logger
}

// logger returns the configured logger or a default one.
func (ctx *PlannerContext) logger() *log.Logger {
	if ctx.Logger == nil {
		ctx.Logger = log.New(os.Stdout, "[Planner] ", log.LstdFlags)
	}
	return ctx.Logger
}
