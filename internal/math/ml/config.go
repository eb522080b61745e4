package ml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a network and how to train it.
type Config struct {
	Input    int           `yaml:"input"`
	Layers   []LayerConfig `yaml:"layers"`
	Seed     uint64        `yaml:"seed"`
	Training Training      `yaml:"training"`
}

// LayerConfig defines one layer of the network.
type LayerConfig struct {
	Size       int        `yaml:"size"`
	Activation Activation `yaml:"activation"`
}

// Training defines the gradient descent loop.
type Training struct {
	StepSize float64 `yaml:"step"`
	Epochs   int     `yaml:"epochs"`
	// Threshold stops training once the loss drops below it.
	Threshold float64 `yaml:"threshold"`
}

// DefaultConfig is a 3-4-4-1 tanh network.
func DefaultConfig() Config {
	return Config{
		Input: 3,
		Layers: []LayerConfig{
			{Size: 4, Activation: Tanh},
			{Size: 4, Activation: Tanh},
			{Size: 1, Activation: Tanh},
		},
		Seed: 1,
		Training: Training{
			StepSize:  0.05,
			Epochs:    100,
			Threshold: 0.001,
		},
	}
}

// ParseConfig decodes the yaml on top of the default config.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if cfg.Training.StepSize <= 0 {
		cfg.Training.StepSize = DefaultStepSize
	}
	return cfg, nil
}

// LoadConfig reads the config from the given yaml file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config '%s': %w", path, err)
	}
	return ParseConfig(data)
}
