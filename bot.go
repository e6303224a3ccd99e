package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"herobot-go/core"
	"herobot-go/game"
	"herobot-go/web"
)

// Bot wires the planning engine to its collaborators and runs planning
// passes on a fixed interval.
type Bot struct {
	ConfigManager *core.ConfigManager
	World         *game.WorldMap
	Ledger        *game.Ledger
	QuestLog      *game.QuestLog
	Locks         *game.LockRegistry
	Roster        game.CreatureRoster
	Grid          *game.TerrainGrid
	Player        game.PlayerID
	Hub           *web.Hub

	logger   *log.Logger
	paused   bool
	lastPass passState
	lock     sync.Mutex
}

// passState is the broadcastable summary of the latest planning pass.
type passState struct {
	PassID   string    `json:"pass_id"`
	At       time.Time `json:"at"`
	Paused   bool      `json:"paused"`
	Goals    []string  `json:"goals"`
	Behavior string    `json:"behavior"`
}

// NewBot creates a Bot from a config file. In dry-run mode the world is a
// built-in demo map; otherwise it is loaded from the configured snapshot
// export.
func NewBot(configPath string, dryRun bool) (*Bot, error) {
	cm, err := core.NewConfigManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return NewBotWithDeps(cm, dryRun)
}

// NewBotWithDeps creates a Bot on an existing config manager.
func NewBotWithDeps(cm *core.ConfigManager, dryRun bool) (*Bot, error) {
	config := cm.GetConfig()

	bot := &Bot{
		ConfigManager: cm,
		Ledger:        game.NewLedger(),
		QuestLog:      game.NewQuestLog(),
		Locks:         game.NewLockRegistry(),
		Player:        game.PlayerID(config.Bot.Player),
		logger:        log.New(os.Stdout, "[Bot] ", log.LstdFlags),
	}

	roster, err := loadRoster(config.Bot.DataDir)
	if err != nil {
		return nil, err
	}
	bot.Roster = roster

	if dryRun {
		bot.World, bot.Grid = buildDemoWorld(bot.Player)
		bot.Ledger.Update(game.Resources{Gold: 5000, Gems: 12})
	} else {
		world, grid, err := loadWorld(config.Bot.Snapshot)
		if err != nil {
			return nil, err
		}
		bot.World = world
		bot.Grid = grid
	}

	if err := bot.loadQuests(); err != nil {
		return nil, err
	}

	return bot, nil
}

// loadRoster reads the creature catalogue from the data directory, falling
// back to the built-in roster when no file is present.
func loadRoster(dataDir string) (game.CreatureRoster, error) {
	gd := core.NewGameData(dataDir)
	if !gd.PathExists("creatures.json") {
		return defaultRoster(), nil
	}

	var creatures []*game.Creature
	if err := gd.LoadJSONFile("creatures.json", &creatures); err != nil {
		return nil, fmt.Errorf("failed to load creature data: %w", err)
	}
	roster := make(game.CreatureRoster, len(creatures))
	for _, c := range creatures {
		roster[c.ID] = c
	}
	return roster, nil
}

// loadWorld builds the world and terrain from a map snapshot export.
func loadWorld(snapshotPath string) (*game.WorldMap, *game.TerrainGrid, error) {
	if snapshotPath == "" {
		return nil, nil, fmt.Errorf("no snapshot configured; set bot.snapshot or use -dry-run")
	}
	f, err := os.Open(snapshotPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := core.Extractor.Snapshot(f)
	if err != nil {
		return nil, nil, err
	}

	world := game.NewWorldMap()
	maxX, maxY := 0, 0

	for _, rec := range snapshot.Objects {
		objType, err := game.ParseObjectType(rec.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot object %s: %w", rec.ID, err)
		}
		world.AddObject(&game.WorldObject{
			ID:      rec.ID,
			Name:    rec.Name,
			Type:    objType,
			SubType: rec.SubType,
			Owner:   game.PlayerID(rec.Owner),
			Pos:     game.Position{X: rec.X, Y: rec.Y, Z: rec.Z},
		})
		maxX, maxY = max(maxX, rec.X), max(maxY, rec.Y)
	}

	for _, rec := range snapshot.Heroes {
		armyCells, err := core.ParseArmy(rec.Army)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot hero %s: %w", rec.ID, err)
		}
		army := &game.Army{}
		i := 0
		for creature, count := range armyCells {
			if i >= game.ArmySlots {
				break
			}
			army.Slots[i] = game.ArmySlot{Creature: game.CreatureID(creature), Count: count}
			i++
		}
		world.AddHero(&game.Hero{
			ID:        game.HeroID(rec.ID),
			Name:      rec.Name,
			Owner:     game.PlayerID(rec.Owner),
			Level:     rec.Level,
			Mana:      rec.Mana,
			ManaLimit: rec.ManaLimit,
			Pos:       game.Position{X: rec.X, Y: rec.Y, Z: rec.Z},
			Army:      army,
		})
		maxX, maxY = max(maxX, rec.X), max(maxY, rec.Y)
	}

	grid := game.NewTerrainGrid(maxX+2, maxY+2)
	return world, grid, nil
}

// loadQuests compiles the configured quest conditions and fills the quest
// log.
func (b *Bot) loadQuests() error {
	for _, qc := range b.ConfigManager.GetConfig().Quests {
		obj, ok := b.World.ObjectByID(qc.Object)
		if !ok {
			return fmt.Errorf("quest %q references unknown object %q", qc.Name, qc.Object)
		}
		check, err := game.CompileQuestCheck(qc.Condition, b.Roster)
		if err != nil {
			return fmt.Errorf("quest %q: %w", qc.Name, err)
		}
		b.QuestLog.Add(game.Quest{Name: qc.Name, Object: obj, Check: check})
	}
	return nil
}

// buildContext assembles the collaborator set for one planning pass.
func (b *Bot) buildContext() *game.PlannerContext {
	config := b.ConfigManager.GetConfig()
	heroes := b.World.HeroesOf(b.Player)

	origin := game.Position{}
	if len(heroes) > 0 {
		origin = heroes[0].Pos
	}

	return &game.PlannerContext{
		Pathfinder: game.NewTilePathfinder(b.Grid, heroes...),
		Danger:     &game.StrengthDangerAssessor{Roster: b.Roster, Margin: config.Planner.SafetyMargin},
		Roles:      &game.ArmyRoleClassifier{Roster: b.Roster, ScoutThreshold: 1000},
		Locks:      b.Locks,
		Clusters:   game.NewDistanceClusterizer(b.World, origin, config.Planner.NearbyRadius),
		Quests:     b.QuestLog,
		Economy:    b.Ledger,
		Players:    b.World,
		Roster:     b.Roster,
		Settings: game.Settings{
			HeroCap:         config.Planner.HeroCap,
			HeroRecruitCost: config.Planner.HeroRecruitCost,
			SchoolGold:      config.Planner.SchoolGold,
			LibraryMinLevel: config.Planner.LibraryMinLevel,
			TreeGold:        config.Planner.TreeGold,
			TreeGems:        config.Planner.TreeGems,
		},
		Logger: log.New(os.Stdout, "[Planner] ", log.LstdFlags),
	}
}

// RunOnce executes one planning pass over every configured behavior and
// records the result for the status hub.
func (b *Bot) RunOnce() error {
	ctx := b.buildContext()
	sm := game.NewStrategyManager(b.ConfigManager)

	behaviors, err := sm.Behaviors(ctx, b.World)
	if err != nil {
		return err
	}

	pass := passState{
		PassID: uuid.NewString(),
		At:     time.Now(),
	}

	for _, behavior := range behaviors {
		pass.Behavior = behavior.String()
		goals := behavior.Decompose()
		b.logger.Printf("%s produced %d goals", behavior, len(goals))
		for _, goal := range goals {
			b.logger.Printf("  %s", goal)
			pass.Goals = append(pass.Goals, goal.String())
		}
	}

	b.lock.Lock()
	pass.Paused = b.paused
	b.lastPass = pass
	b.lock.Unlock()

	b.Hub.BroadcastPassResult()
	return nil
}

// Run starts the main planning loop.
func (b *Bot) Run() {
	interval := time.Duration(b.ConfigManager.GetConfig().Bot.PassInterval) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}

	b.logger.Println("Starting bot...")
	for {
		if b.IsPaused() {
			time.Sleep(time.Second)
			continue
		}
		if err := b.RunOnce(); err != nil {
			b.logger.Printf("planning pass failed: %v", err)
		}
		time.Sleep(interval)
	}
}

// Pause pauses the bot.
func (b *Bot) Pause() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.paused = true
}

// Resume resumes the bot.
func (b *Bot) Resume() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.paused = false
}

// IsPaused returns true if the bot is paused.
func (b *Bot) IsPaused() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.paused
}

// State returns the latest pass summary as JSON.
func (b *Bot) State() ([]byte, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	state := b.lastPass
	state.Paused = b.paused
	return json.Marshal(state)
}
