package game

import (
	"io"
	"log"
)

// Function-field mocks for every planner collaborator. Used by tests and by
// dry-run mode. Zero values behave benignly: no threats, nothing locked,
// main-role heroes, empty pools.

type MockPathfinder struct {
	PathsToFunc func(pos Position) []Path
}

func (m *MockPathfinder) PathsTo(pos Position) []Path {
	if m.PathsToFunc != nil {
		return m.PathsToFunc(pos)
	}
	return nil
}

type MockDanger struct {
	KillableFunc func(p Path) bool
	SafeFunc     func(h *Hero, army *Army, danger int64) bool
}

func (m *MockDanger) EnemyCanKillAlongPath(p Path) bool {
	if m.KillableFunc != nil {
		return m.KillableFunc(p)
	}
	return false
}

func (m *MockDanger) IsSafeToVisit(h *Hero, army *Army, danger int64) bool {
	if m.SafeFunc != nil {
		return m.SafeFunc(h, army, danger)
	}
	return true
}

type MockRoles struct {
	RoleFunc func(h *Hero) Role
}

func (m *MockRoles) RoleOf(h *Hero) Role {
	if m.RoleFunc != nil {
		return m.RoleFunc(h)
	}
	return RoleMain
}

type MockLocks struct {
	LockedFunc func(p Path) bool
}

func (m *MockLocks) PathHeroesLocked(p Path) bool {
	if m.LockedFunc != nil {
		return m.LockedFunc(p)
	}
	return false
}

type MockClusters struct {
	Near []*WorldObject
	Far  []*WorldObject
}

func (m *MockClusters) NearbyObjects() []*WorldObject { return m.Near }

func (m *MockClusters) FarObjects() []*WorldObject { return m.Far }

type MockPlayers struct {
	HeroCountFunc   func(p PlayerID) int
	KeyUnlockedFunc func(p PlayerID, subType int) bool
}

func (m *MockPlayers) HeroCount(p PlayerID) int {
	if m.HeroCountFunc != nil {
		return m.HeroCountFunc(p)
	}
	return 0
}

func (m *MockPlayers) KeyUnlocked(p PlayerID, subType int) bool {
	if m.KeyUnlockedFunc != nil {
		return m.KeyUnlockedFunc(p, subType)
	}
	return false
}

// StaticQuests is a fixed quest list implementing QuestRegistry.
type StaticQuests []Quest

func (s StaticQuests) ActiveQuests() []Quest { return s }

// NewMockContext returns a PlannerContext with benign mock collaborators, an
// empty ledger and default settings. Tests override individual fields.
func NewMockContext() *PlannerContext {
	return &PlannerContext{
		Pathfinder: &MockPathfinder{},
		Danger:     &MockDanger{},
		Roles:      &MockRoles{},
		Locks:      &MockLocks{},
		Clusters:   &MockClusters{},
		Quests:     StaticQuests(nil),
		Economy:    NewLedger(),
		Players:    &MockPlayers{},
		Roster:     CreatureRoster{},
		Settings:   DefaultSettings(),
		Logger:     log.New(io.Discard, "[Planner] ", log.LstdFlags),
	}
}
