package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the directory holding the config files.
var Path = "infra/config"

// Load loads the json config file at the given path into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", path, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}
	return nil
}

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) {
	err := Load(filepath.Join(Path, fmt.Sprintf("%s.json", key)), v)
	if err != nil {
		panic(err.Error())
	}
	log.Info().Str("key", key).Msg("loaded default config")
}
