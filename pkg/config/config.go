package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/notjagan/pogodex/pkg/pogo"
)

const DefaultPath = "pogodex.toml"

type Config struct {
	Dataset struct {
		Path string `toml:"path"`
	} `toml:"dataset"`
	Effectiveness struct {
		Path string `toml:"path"`
	} `toml:"effectiveness"`
	DB struct {
		Path     string `toml:"path"`
		Language string `toml:"language"`
	} `toml:"database"`
	Images struct {
		Dir  string `toml:"dir"`
		Show bool   `toml:"show"`
	} `toml:"images"`
	Random struct {
		Seed int64 `toml:"seed"`
	} `toml:"random"`
	Log struct {
		Path       string `toml:"path"`
		MaxSizeMB  int    `toml:"max_size_mb"`
		MaxBackups int    `toml:"max_backups"`
	} `toml:"log"`
	Pogo pogo.StatConfig `toml:"pogo"`
}

func Default() Config {
	var cfg Config
	cfg.Dataset.Path = "pokedex.json"
	cfg.Effectiveness.Path = "effectiveness.json"
	cfg.DB.Language = "en"
	cfg.Images.Dir = "images"
	cfg.Log.MaxSizeMB = 10
	cfg.Log.MaxBackups = 3
	cfg.Pogo = pogo.DefaultStatConfig()

	return cfg
}

// Read decodes the file at path over the defaults. A missing file is not an
// error; the defaults are returned as is.
func Read(path string) (*Config, error) {
	cfg := Default()

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error while reading config %q: %w", path, err)
	}

	err = cfg.Pogo.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid [pogo] section in config %q: %w", path, err)
	}

	return &cfg, nil
}

func (cfg *Config) UsesDatabase() bool {
	return cfg.DB.Path != ""
}
