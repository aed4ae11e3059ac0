package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Config struct {
	// Generator selects how the chunk is filled: "sphere", "random" or
	// "solid".
	Generator string  `toml:"generator"`
	Seed      int64   `toml:"seed"`
	Radius    float32 `toml:"radius"`
	Output    string  `toml:"output"`
	LogLevel  string  `toml:"log_level"`
	// Workers caps the pass worker pool; zero means one worker per CPU.
	Workers int `toml:"workers"`
}

func defaultConfig() Config {
	return Config{
		Generator: "sphere",
		Seed:      1,
		Radius:    12,
		Output:    "chunk.gltf",
		LogLevel:  "info",
		Workers:   0,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
