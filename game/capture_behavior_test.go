package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHero(id string, owner PlayerID) *Hero {
	return &Hero{
		ID:        HeroID(id),
		Name:      id,
		Owner:     owner,
		Level:     5,
		Mana:      10,
		ManaLimit: 30,
		Army: &Army{Slots: [ArmySlots]ArmySlot{
			{Creature: "pikeman", Count: 20},
		}},
	}
}

func newTestObject(id string, objType ObjectType, owner PlayerID, pos Position) *WorldObject {
	return &WorldObject{
		ID:    id,
		Name:  id,
		Type:  objType,
		Owner: owner,
		Pos:   pos,
	}
}

// stubAction is a blocking action whose decomposition is fixed.
type stubAction struct {
	goal Goal
}

func (a *stubAction) Decompose(h *Hero) Goal { return a.goal }

func (a *stubAction) String() string { return "stub action" }

func TestVisitGoals_RatioBounds(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10},
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 20},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	require.Len(t, goals, 2)
	first := goals[0].(*ExecuteRoute)
	second := goals[1].(*ExecuteRoute)
	assert.Equal(t, 1.0, first.ClosestWayRatio)
	assert.Equal(t, 0.5, second.ClosestWayRatio)
}

func TestVisitGoals_TiedCheapestRoutesBothGetRatioOne(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	other := newTestHero("h2", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10},
		{Hero: other, Army: other.Army, Target: obj.Pos, Cost: 10},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	require.Len(t, goals, 2)
	for _, g := range goals {
		assert.Equal(t, 1.0, g.(*ExecuteRoute).ClosestWayRatio)
	}
}

func TestVisitGoals_LockedCheapestStillSetsBaseline(t *testing.T) {
	ctx := NewMockContext()
	locked := newTestHero("locked", 0)
	free := newTestHero("free", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	ctx.Locks = &MockLocks{LockedFunc: func(p Path) bool {
		return p.Hero.ID == locked.ID
	}}

	paths := []Path{
		{Hero: locked, Army: locked.Army, Target: obj.Pos, Cost: 10},
		{Hero: free, Army: free.Army, Target: obj.Pos, Cost: 20},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	// The locked route is not emitted, but its cost is the ratio baseline.
	require.Len(t, goals, 1)
	assert.Equal(t, 0.5, goals[0].(*ExecuteRoute).ClosestWayRatio)
	assert.Equal(t, free.ID, goals[0].(*ExecuteRoute).Path.Hero.ID)
}

func TestVisitGoals_ScoutRejectsSafeConvoyRoute(t *testing.T) {
	ctx := NewMockContext()
	ctx.Roles = &MockRoles{RoleFunc: func(h *Hero) Role { return RoleScout }}

	hero := newTestHero("scout", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10, Danger: 0, ExchangeCount: 2},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	assert.Empty(t, goals)
}

func TestVisitGoals_KillablePathDropped(t *testing.T) {
	ctx := NewMockContext()
	ctx.Danger = &MockDanger{KillableFunc: func(p Path) bool { return true }}

	hero := newTestHero("h1", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10}}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	assert.Empty(t, goals)
}

func TestVisitGoals_UnsafePathDropped(t *testing.T) {
	ctx := NewMockContext()
	ctx.Danger = &MockDanger{SafeFunc: func(h *Hero, army *Army, danger int64) bool { return false }}

	hero := newTestHero("h1", 0)
	obj := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10, Danger: 999}}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	assert.Empty(t, goals)
}

func TestVisitGoals_BlockedActionBecomesComposition(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	obj := newTestObject("gate", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	subGoal := &ExecuteRoute{Path: Path{Hero: hero, Army: hero.Army, Cost: 3}}
	paths := []Path{
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10, Blocked: &stubAction{goal: subGoal}},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	require.Len(t, goals, 1)
	composition, ok := goals[0].(*Composition)
	require.True(t, ok, "expected a composition goal, got %T", goals[0])
	require.Len(t, composition.Sequence, 2)

	route, ok := composition.Sequence[0].(*ExecuteRoute)
	require.True(t, ok)
	assert.Equal(t, obj, route.Object)
	assert.Same(t, subGoal, composition.Sequence[1])
}

func TestVisitGoals_UnsolvableBlockedActionDropped(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	obj := newTestObject("gate", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})

	paths := []Path{
		{Hero: hero, Army: hero.Army, Target: obj.Pos, Cost: 10, Blocked: &stubAction{goal: InvalidGoal{}}},
	}

	b := NewCaptureObjects(ctx, obj)
	goals := dropInvalid(b.visitGoals(paths, obj))

	assert.Empty(t, goals)
}

func TestDecompose_NoInvalidLeakage(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	reachable := newTestObject("mine", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})
	unreachable := newTestObject("far-mine", ObjectMine, NeutralPlayer, Position{X: 50, Y: 50})

	ctx.Danger = &MockDanger{SafeFunc: func(h *Hero, army *Army, danger int64) bool {
		return danger == 0
	}}
	ctx.Pathfinder = &MockPathfinder{PathsToFunc: func(pos Position) []Path {
		if pos == reachable.Pos {
			return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 10}}
		}
		return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 90, Danger: 9000}}
	}}

	b := NewCaptureObjects(ctx, reachable, unreachable)
	goals := b.Decompose()

	require.Len(t, goals, 1)
	for _, g := range goals {
		assert.False(t, g.Invalid())
	}
}

func TestDecompose_ExplicitModeIgnoresOtherObjects(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	listed := newTestObject("listed", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})
	unlisted := newTestObject("unlisted", ObjectMine, NeutralPlayer, Position{X: 7, Y: 7})

	var queried []Position
	ctx.Pathfinder = &MockPathfinder{PathsToFunc: func(pos Position) []Path {
		queried = append(queried, pos)
		return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 10}}
	}}
	// Even if the clusterizer would offer more, explicit mode must not look.
	ctx.Clusters = &MockClusters{Near: []*WorldObject{unlisted}}

	b := NewCaptureObjects(ctx, listed)
	goals := b.Decompose()

	require.Len(t, goals, 1)
	assert.Equal(t, []Position{listed.Pos}, queried)
}

// countingClusters records which pools were consulted.
type countingClusters struct {
	near, far []*WorldObject

	nearCalls, farCalls int
}

func (c *countingClusters) NearbyObjects() []*WorldObject {
	c.nearCalls++
	return c.near
}

func (c *countingClusters) FarObjects() []*WorldObject {
	c.farCalls++
	return c.far
}

func TestDecompose_FarPoolOnlyOnEmptyNearbyResult(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	nearObj := newTestObject("near", ObjectMine, NeutralPlayer, Position{X: 5, Y: 5})
	farObj := newTestObject("far", ObjectMine, NeutralPlayer, Position{X: 40, Y: 40})

	ctx.Pathfinder = &MockPathfinder{PathsToFunc: func(pos Position) []Path {
		return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 10}}
	}}

	clusters := &countingClusters{near: []*WorldObject{nearObj}, far: []*WorldObject{farObj}}
	ctx.Clusters = clusters

	b := NewCaptureObjectsOfType(ctx, nil, nil)
	goals := b.Decompose()

	require.Len(t, goals, 1)
	assert.Equal(t, 1, clusters.nearCalls)
	assert.Equal(t, 0, clusters.farCalls, "far pool must not be consulted when the nearby pool yields goals")
}

func TestDecompose_FallsBackToFarPool(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	farObj := newTestObject("far", ObjectMine, NeutralPlayer, Position{X: 40, Y: 40})

	ctx.Pathfinder = &MockPathfinder{PathsToFunc: func(pos Position) []Path {
		return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 10}}
	}}
	clusters := &countingClusters{far: []*WorldObject{farObj}}
	ctx.Clusters = clusters

	b := NewCaptureObjectsOfType(ctx, nil, nil)
	goals := b.Decompose()

	require.Len(t, goals, 1)
	assert.Equal(t, 1, clusters.farCalls)
}

func TestDecompose_UnaffordableTavernYieldsNothing(t *testing.T) {
	ctx := NewMockContext()
	hero := newTestHero("h1", 0)
	tavern := newTestObject("tavern", ObjectTavern, NeutralPlayer, Position{X: 5, Y: 5})

	ledger := NewLedger()
	ledger.Update(Resources{Gold: ctx.Settings.HeroRecruitCost - 1})
	ctx.Economy = ledger
	ctx.Pathfinder = &MockPathfinder{PathsToFunc: func(pos Position) []Path {
		return []Path{{Hero: hero, Army: hero.Army, Target: pos, Cost: 10}}
	}}
	ctx.Clusters = &MockClusters{Near: []*WorldObject{tavern}}

	b := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectTavern}, nil)
	goals := b.Decompose()

	assert.Empty(t, goals)
}

func TestShouldVisitObject_Filters(t *testing.T) {
	ctx := NewMockContext()
	mine := newTestObject("mine", ObjectMine, NeutralPlayer, Position{})
	mine.SubType = 6

	anyType := NewCaptureObjectsOfType(ctx, nil, nil)
	assert.True(t, anyType.shouldVisitObject(mine))

	matching := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectMine}, []int{6})
	assert.True(t, matching.shouldVisitObject(mine))

	wrongType := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectTavern}, nil)
	assert.False(t, wrongType.shouldVisitObject(mine))

	wrongSubType := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectMine}, []int{2})
	assert.False(t, wrongSubType.shouldVisitObject(mine))
}

func TestEquals_Properties(t *testing.T) {
	ctx := NewMockContext()
	a := newTestObject("a", ObjectMine, NeutralPlayer, Position{})
	b := newTestObject("b", ObjectMine, NeutralPlayer, Position{})

	explicitAB := NewCaptureObjects(ctx, a, b)
	explicitBA := NewCaptureObjects(ctx, b, a)
	explicitA := NewCaptureObjects(ctx, a)

	assert.True(t, explicitAB.Equals(explicitAB), "reflexive")
	assert.True(t, explicitAB.Equals(explicitBA), "order independent")
	assert.True(t, explicitBA.Equals(explicitAB), "symmetric")
	assert.False(t, explicitAB.Equals(explicitA))
	assert.False(t, explicitAB.Equals(nil))

	filtered1 := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectMine, ObjectTavern}, []int{1, 2})
	filtered2 := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectTavern, ObjectMine}, []int{2, 1})
	filtered3 := NewCaptureObjectsOfType(ctx, []ObjectType{ObjectTavern}, []int{2, 1})

	assert.True(t, filtered1.Equals(filtered2))
	assert.True(t, filtered2.Equals(filtered1))
	assert.False(t, filtered1.Equals(filtered3))
	assert.False(t, filtered1.Equals(explicitAB), "explicit and filtered modes never match")
}
