package game

import (
	"fmt"

	"herobot-go/core"
)

// StrategyManager turns the configured behavior entries into behaviors bound
// to a planner context and world.
type StrategyManager struct {
	cfg *core.ConfigManager
}

// NewStrategyManager creates a StrategyManager.
func NewStrategyManager(cfg *core.ConfigManager) *StrategyManager {
	return &StrategyManager{
		cfg: cfg,
	}
}

// Behaviors builds one CaptureObjectsBehavior per configured entry. Explicit
// object ids are resolved against the world; type names are parsed to their
// tags.
func (sm *StrategyManager) Behaviors(ctx *PlannerContext, world *WorldMap) ([]*CaptureObjectsBehavior, error) {
	var behaviors []*CaptureObjectsBehavior

	for _, entry := range sm.cfg.GetConfig().Behaviors {
		if len(entry.Objects) > 0 {
			var objects []*WorldObject
			for _, id := range entry.Objects {
				obj, ok := world.ObjectByID(id)
				if !ok {
					return nil, fmt.Errorf("behavior %q targets unknown object %q", entry.Name, id)
				}
				objects = append(objects, obj)
			}
			behaviors = append(behaviors, NewCaptureObjects(ctx, objects...))
			continue
		}

		var types []ObjectType
		for _, name := range entry.ObjectTypes {
			t, err := ParseObjectType(name)
			if err != nil {
				return nil, fmt.Errorf("behavior %q: %w", entry.Name, err)
			}
			types = append(types, t)
		}
		behaviors = append(behaviors, NewCaptureObjectsOfType(ctx, types, entry.ObjectSubTypes))
	}

	return behaviors, nil
}
