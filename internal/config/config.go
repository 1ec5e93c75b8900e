package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB         DBConfig         `toml:"database"`
	Simulation SimulationConfig `toml:"simulation"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type SimulationConfig struct {
	BodyWeightKg      float64 `toml:"body_weight_kg"`
	CalibrationFactor float64 `toml:"calibration_factor"` // Lab-specific correction, applied last by the model.
	TwoCompartment    bool    `toml:"two_compartment"`
	GridStepDays      float64 `toml:"grid_step_days"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	return &Config{
		DB: DBConfig{ConnectionString: "file:./androsim.db?cache=shared&mode=rwc"},
		Simulation: SimulationConfig{
			BodyWeightKg:      80,
			CalibrationFactor: 1.0,
			GridStepDays:      0.25,
		},
	}
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "androsim")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration from the config file, falling back to
// defaults when the file does not exist.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	if cfg.Simulation.BodyWeightKg <= 0 {
		cfg.Simulation.BodyWeightKg = Defaults().Simulation.BodyWeightKg
	}
	if cfg.Simulation.CalibrationFactor <= 0 {
		cfg.Simulation.CalibrationFactor = 1.0
	}
	if cfg.Simulation.GridStepDays <= 0 {
		cfg.Simulation.GridStepDays = Defaults().Simulation.GridStepDays
	}

	return cfg, nil
}
