package config

import "github.com/ilyakaznacheev/cleanenv"

type Reader interface {
	Read() (*Config, error)
}

// NewReader reads from the YAML file at path when one is given, and from
// the environment alone otherwise.
func NewReader(path string) Reader {
	if path == "" {
		return NewEnvReader()
	}
	return NewFileReader(path)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileReader reads a YAML file. Environment variables still override the
// values it sets.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
