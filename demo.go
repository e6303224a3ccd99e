package main

import "herobot-go/game"

// defaultRoster is the built-in creature catalogue used when the data
// directory carries no creatures.json.
func defaultRoster() game.CreatureRoster {
	creatures := []*game.Creature{
		{ID: "pikeman", Name: "Pikeman", Tier: 1, Cost: game.Resources{Gold: 60}, UpgradesTo: []game.CreatureID{"halberdier"}, FightValue: 100},
		{ID: "halberdier", Name: "Halberdier", Tier: 1, Cost: game.Resources{Gold: 75}, FightValue: 115},
		{ID: "archer", Name: "Archer", Tier: 2, Cost: game.Resources{Gold: 100}, UpgradesTo: []game.CreatureID{"marksman"}, FightValue: 126},
		{ID: "marksman", Name: "Marksman", Tier: 2, Cost: game.Resources{Gold: 150}, FightValue: 184},
		{ID: "griffin", Name: "Griffin", Tier: 3, Cost: game.Resources{Gold: 200}, FightValue: 324},
		{ID: "swordsman", Name: "Swordsman", Tier: 4, Cost: game.Resources{Gold: 300}, FightValue: 445},
		{ID: "angel", Name: "Angel", Tier: 7, Cost: game.Resources{Gold: 3000, Gems: 1}, FightValue: 5019},
	}
	roster := make(game.CreatureRoster, len(creatures))
	for _, c := range creatures {
		roster[c.ID] = c
	}
	return roster
}

// buildDemoWorld assembles a small simulated map for dry-run mode: one hero
// and a handful of objects around it.
func buildDemoWorld(player game.PlayerID) (*game.WorldMap, *game.TerrainGrid) {
	world := game.NewWorldMap()

	world.AddHero(&game.Hero{
		ID:        "h1",
		Name:      "Sir Roland",
		Owner:     player,
		Level:     5,
		Mana:      12,
		ManaLimit: 30,
		Pos:       game.Position{X: 10, Y: 10},
		Army: &game.Army{Slots: [game.ArmySlots]game.ArmySlot{
			{Creature: "pikeman", Count: 40},
			{Creature: "archer", Count: 15},
		}},
	})

	world.AddObject(&game.WorldObject{
		ID: "well", Name: "Magic Well", Type: game.ObjectMagicWell,
		Pos: game.Position{X: 12, Y: 11}, Owner: game.NeutralPlayer,
	})
	world.AddObject(&game.WorldObject{
		ID: "mine", Name: "Gold Mine", Type: game.ObjectMine,
		Pos: game.Position{X: 14, Y: 8}, Owner: game.NeutralPlayer,
	})
	world.AddObject(&game.WorldObject{
		ID: "tavern", Name: "Tavern", Type: game.ObjectTavern,
		Pos: game.Position{X: 8, Y: 13}, Owner: game.NeutralPlayer,
	})
	world.AddObject(&game.WorldObject{
		ID: "dwelling", Name: "Guardhouse", Type: game.ObjectCreatureGenerator,
		Pos: game.Position{X: 16, Y: 12}, Owner: game.PlayerID(1),
		Dwelling: []game.DwellingLevel{
			{Tier: 1, Creatures: []game.CreatureID{"pikeman"}},
		},
	})
	world.AddObject(&game.WorldObject{
		ID: "fort", Name: "Hill Fort", Type: game.ObjectHillFort,
		Pos: game.Position{X: 40, Y: 40}, Owner: game.NeutralPlayer,
	})

	grid := game.NewTerrainGrid(64, 64)
	grid.SetDanger(game.Position{X: 14, Y: 8}, 500)
	return world, grid
}
