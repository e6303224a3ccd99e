package game

import "fmt"

// visitVerdict is the outcome of a per-type visit rule.
type visitVerdict int

const (
	// verdictReject: the object is not worth visiting right now.
	verdictReject visitVerdict = iota
	// verdictAccept: visit regardless of visitation history.
	verdictAccept
	// verdictCheckVisited: the rule's own condition passed; fall through to
	// the already-visited check.
	verdictCheckVisited
)

// visitRule decides whether a hero should visit an object of one type.
type visitRule func(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict

func boolVerdict(visit bool) visitVerdict {
	if visit {
		return verdictAccept
	}
	return verdictReject
}

var visitRules = map[ObjectType]visitRule{
	// Never visit our own towns or heroes at random.
	ObjectTown: visitIfForeign,
	ObjectHero: visitIfForeign,

	ObjectBorderGate:        visitGate,
	ObjectKeymasterGuard:    visitKeymasterGuard,
	ObjectSeerHut:           visitQuestGiver,
	ObjectQuestGuard:        visitQuestGiver,
	ObjectCreatureGenerator: visitDwelling,
	ObjectHillFort:          visitHillFort,

	// Teleport entrances and whirlpools are used deliberately by the
	// pathfinder, never as opportunistic targets.
	ObjectMonolithOneWayEntrance: neverVisit,
	ObjectMonolithOneWayExit:     neverVisit,
	ObjectMonolithTwoWay:         neverVisit,
	ObjectWhirlpool:              neverVisit,

	ObjectSchoolOfMagic:   visitSchool,
	ObjectSchoolOfWar:     visitSchool,
	ObjectLibrary:         visitLibrary,
	ObjectTreeOfKnowledge: visitTreeOfKnowledge,
	ObjectMagicWell:       visitMagicWell,
	ObjectPrison:          visitPrison,
	ObjectTavern:          visitTavern,

	// Boats are handled by the pathfinder.
	ObjectBoat: neverVisit,
	// One-time informational value, could otherwise be visited indefinitely.
	ObjectEyeOfMagi: neverVisit,
}

// ShouldVisit is the per-(hero, object) admissibility filter. It applies the
// object-type rule first; types without a rule, and rules whose threshold
// condition passed, fall through to the already-visited check.
func (ctx *PlannerContext) ShouldVisit(h *Hero, obj *WorldObject) bool {
	if rule, ok := visitRules[obj.Type]; ok {
		switch rule(ctx, h, obj) {
		case verdictAccept:
			return true
		case verdictReject:
			return false
		}
	}
	return !obj.WasVisitedBy(h)
}

func visitIfForeign(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	return boolVerdict(obj.Owner != h.Owner)
}

func neverVisit(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	return verdictReject
}

// activeQuestFor finds the active quest attached to the given object.
func activeQuestFor(ctx *PlannerContext, obj *WorldObject) (Quest, bool) {
	for _, q := range ctx.Quests.ActiveQuests() {
		if q.Object != nil && q.Object.ID == obj.ID {
			return q, true
		}
	}
	return Quest{}, false
}

// Gates tied to an active quest are left to dedicated quest logic; gates we
// have no quest for yet are visited to pick the quest up.
func visitGate(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if _, ok := activeQuestFor(ctx, obj); ok {
		return verdictReject
	}
	return verdictAccept
}

// Keymaster tents are only worth visiting while the key is still missing.
func visitKeymasterGuard(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	return boolVerdict(!ctx.Players.KeyUnlocked(h.Owner, obj.SubType))
}

// Seer huts and quest guards: with a matching active quest, visit exactly
// when its completion predicate holds for this hero; with no quest yet,
// visit to acquire it.
func visitQuestGiver(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if q, ok := activeQuestFor(ctx, obj); ok {
		return boolVerdict(q.Check(h))
	}
	return verdictAccept
}

// Enemy dwellings are always flagged; own dwellings only pay off when some
// tier is affordable and the hero has room for it.
func visitDwelling(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if obj.Owner != h.Owner {
		return verdictAccept
	}

	if len(obj.Dwelling) == 0 {
		panic(fmt.Sprintf("game: object %s (%s) is a creature generator without a dwelling table", obj.ID, obj.Name))
	}

	for _, level := range obj.Dwelling {
		if level.Tier == 0 {
			continue
		}
		for _, id := range level.Creatures {
			creature, ok := ctx.Roster[id]
			if !ok {
				panic(fmt.Sprintf("game: object %s offers unknown creature %q", obj.ID, id))
			}
			if h.Army.SlotFor(id) >= 0 && ctx.Economy.CanAfford(creature.Cost) {
				return verdictAccept
			}
		}
	}
	return verdictReject
}

// Hill forts pay off only when the hero carries something upgradeable.
func visitHillFort(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	for _, slot := range h.Army.Slots {
		if slot.Count == 0 {
			continue
		}
		creature, ok := ctx.Roster[slot.Creature]
		if !ok {
			panic(fmt.Sprintf("game: hero %s carries unknown creature %q", h.ID, slot.Creature))
		}
		if len(creature.UpgradesTo) > 0 {
			return verdictAccept
		}
	}
	return verdictReject
}

func visitSchool(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if ctx.Economy.ResourceAmount().Gold < ctx.Settings.SchoolGold {
		return verdictReject
	}
	return verdictCheckVisited
}

func visitLibrary(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if h.Level < ctx.Settings.LibraryMinLevel {
		return verdictReject
	}
	return verdictCheckVisited
}

func visitTreeOfKnowledge(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if ctx.Roles.RoleOf(h) == RoleScout {
		return verdictReject
	}
	res := ctx.Economy.ResourceAmount()
	if res.Gold < ctx.Settings.TreeGold || res.Gems < ctx.Settings.TreeGems {
		return verdictReject
	}
	return verdictCheckVisited
}

func visitMagicWell(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	return boolVerdict(h.Mana < h.ManaLimit)
}

func visitPrison(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	return boolVerdict(ctx.Players.HeroCount(h.Owner) < ctx.Settings.HeroCap)
}

func visitTavern(ctx *PlannerContext, h *Hero, obj *WorldObject) visitVerdict {
	if ctx.Players.HeroCount(h.Owner) >= ctx.Settings.HeroCap {
		return verdictReject
	}
	if ctx.Economy.ResourceAmount().Gold < ctx.Settings.HeroRecruitCost {
		return verdictReject
	}
	return verdictCheckVisited
}
