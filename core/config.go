package core

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// PlannerConfig holds the visit-rule thresholds and per-player caps.
type PlannerConfig struct {
	HeroCap         int     `yaml:"hero_cap"`
	HeroRecruitCost int     `yaml:"hero_recruit_cost"`
	SchoolGold      int     `yaml:"school_gold"`
	LibraryMinLevel int     `yaml:"library_min_level"`
	TreeGold        int     `yaml:"tree_gold"`
	TreeGems        int     `yaml:"tree_gems"`
	NearbyRadius    float64 `yaml:"nearby_radius"`
	SafetyMargin    float64 `yaml:"safety_margin"`
}

// BehaviorConfig is one behavior entry: either an explicit object list or a
// pair of type/subtype filters over the clustered pools.
type BehaviorConfig struct {
	Name           string   `yaml:"name"`
	Objects        []string `yaml:"objects,omitempty"`
	ObjectTypes    []string `yaml:"object_types,omitempty"`
	ObjectSubTypes []int    `yaml:"object_subtypes,omitempty"`
}

// QuestConfig declares an active quest: the issuing object and a completion
// expression over hero stats.
type QuestConfig struct {
	Name      string `yaml:"name"`
	Object    string `yaml:"object"`
	Condition string `yaml:"condition"`
}

// BotConfig holds bot-wide settings.
type BotConfig struct {
	Player       int    `yaml:"player"`
	DataDir      string `yaml:"data_dir"`
	Snapshot     string `yaml:"snapshot"`
	PassInterval int    `yaml:"pass_interval_seconds"`
}

// WebManagerConfig holds web UI related settings.
type WebManagerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Refresh int    `yaml:"refresh"`
}

// Config corresponds to the structure of the YAML config file.
type Config struct {
	Bot        BotConfig        `yaml:"bot"`
	WebManager WebManagerConfig `yaml:"webmanager"`
	Planner    PlannerConfig    `yaml:"planner"`
	Behaviors  []BehaviorConfig `yaml:"behaviors"`
	Quests     []QuestConfig    `yaml:"quests,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Player:       0,
			DataDir:      "data",
			PassInterval: 10,
		},
		WebManager: WebManagerConfig{
			Host:    "127.0.0.1",
			Port:    8080,
			Refresh: 5,
		},
		Planner: PlannerConfig{
			HeroCap:         8,
			HeroRecruitCost: 2500,
			SchoolGold:      1000,
			LibraryMinLevel: 12,
			TreeGold:        2000,
			TreeGems:        10,
			NearbyRadius:    15,
			SafetyMargin:    1.2,
		},
		Behaviors: []BehaviorConfig{
			{Name: "capture all"},
		},
	}
}

// ConfigManager handles loading and saving of the bot's configuration.
type ConfigManager struct {
	configPath string
	config     *Config
	lock       sync.Mutex
}

// NewConfigManager loads the configuration from the given path, writing the
// defaults first when the file does not exist yet.
func NewConfigManager(path string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: path,
	}

	exists, err := cm.LoadConfig()
	if err != nil {
		return nil, err
	}
	if !exists {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}
	if err := cm.Validate(); err != nil {
		return nil, fmt.Errorf("configuration is invalid: %w", err)
	}

	return cm, nil
}

// Validate checks the essential configuration values.
func (cm *ConfigManager) Validate() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	if cm.config.Planner.HeroCap <= 0 {
		return fmt.Errorf("planner.hero_cap must be positive")
	}
	if cm.config.Planner.NearbyRadius <= 0 {
		return fmt.Errorf("planner.nearby_radius must be positive")
	}
	for i, b := range cm.config.Behaviors {
		if len(b.Objects) > 0 && (len(b.ObjectTypes) > 0 || len(b.ObjectSubTypes) > 0) {
			return fmt.Errorf("behavior %d (%q) mixes an explicit object list with filters", i, b.Name)
		}
	}
	return nil
}

// LoadConfig loads the configuration from the specified YAML file.
func (cm *ConfigManager) LoadConfig() (bool, error) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	file, err := os.ReadFile(cm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return false, fmt.Errorf("failed to decode YAML from config file: %w", err)
	}
	cm.config = &config
	return true, nil
}

// SaveConfig saves the current configuration to the YAML file.
func (cm *ConfigManager) SaveConfig() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return fmt.Errorf("failed to encode config to YAML: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}
	return nil
}

// GetConfig returns the entire configuration.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig sets the configuration for testing purposes.
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}
