package game

import "fmt"

// HeroID is a stable hero identity usable across planning passes.
type HeroID string

// Role is the behavioral classification of a hero.
type Role int

const (
	// RoleMain heroes carry the main army and accept combat risk.
	RoleMain Role = iota
	// RoleScout heroes explore and avoid risky or convoluted routes.
	RoleScout
)

func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleScout:
		return "scout"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// CreatureID identifies a creature kind in the roster.
type CreatureID string

// Creature is a creature definition from the game data files.
type Creature struct {
	ID         CreatureID   `json:"id"`
	Name       string       `json:"name"`
	Tier       int          `json:"tier"`
	Cost       Resources    `json:"cost"`
	UpgradesTo []CreatureID `json:"upgrades_to,omitempty"`
	FightValue int64        `json:"fight_value"`
}

// CreatureRoster is the full creature catalogue keyed by id.
type CreatureRoster map[CreatureID]*Creature

// ArmySlots is the number of stacks a hero can carry.
const ArmySlots = 7

// ArmySlot is one stack of a hero's army. An empty slot has Count 0.
type ArmySlot struct {
	Creature CreatureID `json:"creature"`
	Count    int        `json:"count"`
}

// Army is a hero's slotted army composition.
type Army struct {
	Slots [ArmySlots]ArmySlot
}

// Copy returns an independent copy of the army.
func (a *Army) Copy() *Army {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

// Strength returns the total fight value of the army under the given roster.
func (a *Army) Strength(roster CreatureRoster) int64 {
	if a == nil {
		return 0
	}
	var total int64
	for _, slot := range a.Slots {
		if slot.Count == 0 {
			continue
		}
		if c, ok := roster[slot.Creature]; ok {
			total += c.FightValue * int64(slot.Count)
		}
	}
	return total
}

// SlotFor returns the index of the slot that could take more of the given
// creature: an existing stack of the same kind, or the first free slot.
// Returns -1 when the army has no room.
func (a *Army) SlotFor(c CreatureID) int {
	free := -1
	for i, slot := range a.Slots {
		if slot.Count > 0 && slot.Creature == c {
			return i
		}
		if slot.Count == 0 && free == -1 {
			free = i
		}
	}
	return free
}

// Hero is a player-controlled actor. The planner reads heroes but never
// mutates them; movement and recruitment happen in the execution layer.
type Hero struct {
	ID        HeroID
	Name      string
	Owner     PlayerID
	Level     int
	Mana      int
	ManaLimit int
	Pos       Position
	Army      *Army
}

func (h *Hero) String() string {
	return fmt.Sprintf("hero %q (level %d, owner %d)", h.Name, h.Level, h.Owner)
}
