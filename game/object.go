package game

import (
	"fmt"
	"math"
	"sync"
)

// PlayerID identifies a player. NeutralPlayer owns unflagged map objects.
type PlayerID int

// NeutralPlayer is the owner of unclaimed objects.
const NeutralPlayer PlayerID = -1

// Position is a tile coordinate on the adventure map. Z is the map level
// (surface or underground).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// DistanceTo returns the straight-line distance to another position on the
// same map level. Positions on different levels are infinitely far apart.
func (p Position) DistanceTo(other Position) float64 {
	if p.Z != other.Z {
		return math.Inf(1)
	}
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ObjectType classifies an interactable map object. The visit rules in
// visit_rules.go are keyed by this type.
type ObjectType int

const (
	ObjectNone ObjectType = iota
	ObjectTown
	ObjectHero
	ObjectBorderGate
	ObjectKeymasterGuard
	ObjectSeerHut
	ObjectQuestGuard
	ObjectCreatureGenerator
	ObjectHillFort
	ObjectMonolithOneWayEntrance
	ObjectMonolithOneWayExit
	ObjectMonolithTwoWay
	ObjectWhirlpool
	ObjectSchoolOfMagic
	ObjectSchoolOfWar
	ObjectLibrary
	ObjectTreeOfKnowledge
	ObjectMagicWell
	ObjectPrison
	ObjectTavern
	ObjectBoat
	ObjectEyeOfMagi
	ObjectMine
	ObjectResource
	ObjectShrine
)

var objectTypeNames = map[ObjectType]string{
	ObjectNone:                   "none",
	ObjectTown:                   "town",
	ObjectHero:                   "hero",
	ObjectBorderGate:             "border_gate",
	ObjectKeymasterGuard:         "keymaster_guard",
	ObjectSeerHut:                "seer_hut",
	ObjectQuestGuard:             "quest_guard",
	ObjectCreatureGenerator:      "creature_generator",
	ObjectHillFort:               "hill_fort",
	ObjectMonolithOneWayEntrance: "monolith_one_way_entrance",
	ObjectMonolithOneWayExit:     "monolith_one_way_exit",
	ObjectMonolithTwoWay:         "monolith_two_way",
	ObjectWhirlpool:              "whirlpool",
	ObjectSchoolOfMagic:          "school_of_magic",
	ObjectSchoolOfWar:            "school_of_war",
	ObjectLibrary:                "library",
	ObjectTreeOfKnowledge:        "tree_of_knowledge",
	ObjectMagicWell:              "magic_well",
	ObjectPrison:                 "prison",
	ObjectTavern:                 "tavern",
	ObjectBoat:                   "boat",
	ObjectEyeOfMagi:              "eye_of_magi",
	ObjectMine:                   "mine",
	ObjectResource:               "resource",
	ObjectShrine:                 "shrine",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("object_type(%d)", int(t))
}

// ParseObjectType resolves a config name like "magic_well" to its type.
func ParseObjectType(name string) (ObjectType, error) {
	for t, n := range objectTypeNames {
		if n == name {
			return t, nil
		}
	}
	return ObjectNone, fmt.Errorf("unknown object type %q", name)
}

// DwellingLevel is one tier of a creature generator's recruitment table.
type DwellingLevel struct {
	Tier      int          `json:"tier"`
	Creatures []CreatureID `json:"creatures"`
}

// WorldObject is a static interactable entity on the adventure map. It is
// immutable during a planning pass; visitation flags are maintained by the
// world owner between passes.
type WorldObject struct {
	ID      string
	Name    string
	Type    ObjectType
	SubType int
	Owner   PlayerID
	Pos     Position

	// Dwelling is the recruitment table; creature generators only.
	Dwelling []DwellingLevel

	lock      sync.Mutex
	visitedBy map[HeroID]bool
}

func (o *WorldObject) String() string {
	return fmt.Sprintf("%s %q at %s", o.Type, o.Name, o.Pos)
}

// WasVisitedBy reports whether the given hero has already visited this object.
func (o *WorldObject) WasVisitedBy(h *Hero) bool {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.visitedBy[h.ID]
}

// MarkVisited records a visit by the given hero.
func (o *WorldObject) MarkVisited(h *Hero) {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.visitedBy == nil {
		o.visitedBy = make(map[HeroID]bool)
	}
	o.visitedBy[h.ID] = true
}
