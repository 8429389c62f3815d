package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hermes-gcs/log"
)

const (
	ConfigFileName = "config.json"

	// SnapThresholdEnv overrides the configured edge-snap distance.
	SnapThresholdEnv = "HERMES_SNAP_THRESHOLD"

	// defaultSnapThreshold is the fallback when both the config file and
	// the environment are absent or unparseable.
	defaultSnapThreshold = 30
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hermes-gcs"), nil
}

// Config represents the application configuration
type Config struct {
	// SnapThreshold is the edge-snap distance in cells. The panel is forced
	// flush against a viewport edge when dragged within this distance of it.
	SnapThreshold int `json:"snap_threshold"`
	// SettleDelayMs is the quiet period after the last resize notification
	// before geometry is reprocessed.
	SettleDelayMs int `json:"settle_delay_ms"`
	// FrameIntervalMs bounds how often drag relocation is applied.
	FrameIntervalMs int `json:"frame_interval_ms"`
	// PanelWidth and PanelHeight size the control panel at first placement.
	PanelWidth  int `json:"panel_width"`
	PanelHeight int `json:"panel_height"`
	// IconWidth and IconHeight are the fixed companion icon dimensions.
	IconWidth  int `json:"icon_width"`
	IconHeight int `json:"icon_height"`
	// EdgeMargin is the gap between the panel and the viewport edges at
	// first placement.
	EdgeMargin int `json:"edge_margin"`
	// NudgeStep is how far the arrow keys relocate the panel per press.
	NudgeStep int `json:"nudge_step"`
	// RobotName is displayed in the console title bar.
	RobotName string `json:"robot_name"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SnapThreshold:   defaultSnapThreshold,
		SettleDelayMs:   100,
		FrameIntervalMs: 16,
		PanelWidth:      64,
		PanelHeight:     18,
		IconWidth:       14,
		IconHeight:      3,
		EdgeMargin:      2,
		NudgeStep:       2,
		RobotName:       "HERMES-1",
	}
}

// EffectiveSnapThreshold resolves the snap threshold: the environment
// variable wins when set and parseable, then the config file value, then
// the fallback default.
func (c *Config) EffectiveSnapThreshold() int {
	if raw := os.Getenv(SnapThresholdEnv); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
		log.WarningLog.Printf("ignoring unparseable %s=%q", SnapThresholdEnv, raw)
	}
	if c.SnapThreshold > 0 {
		return c.SnapThreshold
	}
	return defaultSnapThreshold
}

// SettleDelay returns the resize debounce interval.
func (c *Config) SettleDelay() time.Duration {
	if c.SettleDelayMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// FrameInterval returns the drag frame interval.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameIntervalMs <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	applyDefaults(&config)
	return &config
}

// applyDefaults fills zero-valued numeric fields so geometry arithmetic is
// always well-defined even with a sparse config file.
func applyDefaults(c *Config) {
	d := DefaultConfig()
	if c.SnapThreshold <= 0 {
		c.SnapThreshold = d.SnapThreshold
	}
	if c.SettleDelayMs <= 0 {
		c.SettleDelayMs = d.SettleDelayMs
	}
	if c.FrameIntervalMs <= 0 {
		c.FrameIntervalMs = d.FrameIntervalMs
	}
	if c.PanelWidth <= 0 {
		c.PanelWidth = d.PanelWidth
	}
	if c.PanelHeight <= 0 {
		c.PanelHeight = d.PanelHeight
	}
	if c.IconWidth <= 0 {
		c.IconWidth = d.IconWidth
	}
	if c.IconHeight <= 0 {
		c.IconHeight = d.IconHeight
	}
	if c.EdgeMargin <= 0 {
		c.EdgeMargin = d.EdgeMargin
	}
	if c.NudgeStep <= 0 {
		c.NudgeStep = d.NudgeStep
	}
	if c.RobotName == "" {
		c.RobotName = d.RobotName
	}
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
