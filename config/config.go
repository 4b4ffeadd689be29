package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Library Library `json:"library" yaml:"library" mapstructure:"library"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
}

type TMDB struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" mapstructure:"baseUrl" validate:"omitempty,url"`
	APIKey  string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=1,lte=65535"`
}

// Library seeds the settings row on first boot; afterwards the stored
// settings are authoritative.
type Library struct {
	MoviesRoot   string   `json:"moviesRoot" yaml:"moviesRoot" mapstructure:"moviesRoot"`
	TvRoot       string   `json:"tvRoot" yaml:"tvRoot" mapstructure:"tvRoot"`
	Sources      []string `json:"sources" yaml:"sources" mapstructure:"sources"`
	AutoOrganize bool     `json:"autoOrganize" yaml:"autoOrganize" mapstructure:"autoOrganize"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	return c, err
}
