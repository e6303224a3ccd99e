package game

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// QuestCheck is a quest's completion predicate for a given hero.
type QuestCheck func(h *Hero) bool

// Quest is an active quest the planning player has picked up, attached to
// the guard or hut object that issued it.
type Quest struct {
	Name   string
	Object *WorldObject
	Check  QuestCheck
}

// questEnv is the variable set quest expressions are evaluated against.
type questEnv struct {
	Level        int
	Mana         int
	ManaLimit    int
	ArmyStrength int64
}

// CompileQuestCheck compiles a completion predicate from an expression over
// the hero's stats, e.g. "Level >= 5 && ArmyStrength > 10000".
func CompileQuestCheck(src string, roster CreatureRoster) (QuestCheck, error) {
	program, err := expr.Compile(src, expr.Env(questEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile quest check %q: %w", src, err)
	}
	return func(h *Hero) bool {
		out, err := vm.Run(program, questEnv{
			Level:        h.Level,
			Mana:         h.Mana,
			ManaLimit:    h.ManaLimit,
			ArmyStrength: h.Army.Strength(roster),
		})
		if err != nil {
			return false
		}
		result, ok := out.(bool)
		return ok && result
	}, nil
}

// QuestLog is the planning player's active quest list. It implements the
// QuestRegistry collaborator.
type QuestLog struct {
	quests []Quest
	lock   sync.Mutex
}

// NewQuestLog creates an empty QuestLog.
func NewQuestLog() *QuestLog {
	return &QuestLog{}
}

// Add records a newly picked up quest.
func (ql *QuestLog) Add(q Quest) {
	ql.lock.Lock()
	defer ql.lock.Unlock()
	ql.quests = append(ql.quests, q)
}

// Complete removes the quest attached to the given object.
func (ql *QuestLog) Complete(objectID string) {
	ql.lock.Lock()
	defer ql.lock.Unlock()
	kept := ql.quests[:0]
	for _, q := range ql.quests {
		if q.Object == nil || q.Object.ID != objectID {
			kept = append(kept, q)
		}
	}
	ql.quests = kept
}

// ActiveQuests returns a snapshot of the active quests.
func (ql *QuestLog) ActiveQuests() []Quest {
	ql.lock.Lock()
	defer ql.lock.Unlock()
	out := make([]Quest, len(ql.quests))
	copy(out, ql.quests)
	return out
}
