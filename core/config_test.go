package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager_WritesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cm, err := NewConfigManager(configPath)
	require.NoError(t, err)

	assert.FileExists(t, configPath)
	config := cm.GetConfig()
	assert.Equal(t, 8, config.Planner.HeroCap)
	assert.Equal(t, 2500, config.Planner.HeroRecruitCost)
	assert.Equal(t, 1000, config.Planner.SchoolGold)
	assert.Equal(t, 12, config.Planner.LibraryMinLevel)
}

func TestNewConfigManager_LoadsExisting(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
bot:
  player: 2
  pass_interval_seconds: 30
planner:
  hero_cap: 4
  nearby_radius: 20
behaviors:
  - name: wells
    object_types: [magic_well]
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cm, err := NewConfigManager(configPath)
	require.NoError(t, err)

	config := cm.GetConfig()
	assert.Equal(t, 2, config.Bot.Player)
	assert.Equal(t, 4, config.Planner.HeroCap)
	require.Len(t, config.Behaviors, 1)
	assert.Equal(t, []string{"magic_well"}, config.Behaviors[0].ObjectTypes)
}

func TestValidate_RejectsMixedBehavior(t *testing.T) {
	cm := &ConfigManager{}
	config := DefaultConfig()
	config.Behaviors = []BehaviorConfig{
		{Name: "bad", Objects: []string{"x"}, ObjectTypes: []string{"mine"}},
	}
	cm.SetConfig(config)

	assert.Error(t, cm.Validate())
}

func TestValidate_RejectsBadPlannerValues(t *testing.T) {
	cm := &ConfigManager{}
	config := DefaultConfig()
	config.Planner.HeroCap = 0
	cm.SetConfig(config)
	assert.Error(t, cm.Validate())

	config = DefaultConfig()
	config.Planner.NearbyRadius = 0
	cm.SetConfig(config)
	assert.Error(t, cm.Validate())
}

func TestNewConfigManager_BadYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("bot: ["), 0644))

	_, err := NewConfigManager(configPath)
	assert.Error(t, err)
}
