package subseek

import (
	"github.com/spf13/viper"

	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/match"
)

type LibraryConfig struct {
	Roots              []string `mapstructure:"roots"`
	SubtitleExtensions []string `mapstructure:"subtitle_extensions"`
	VideoExtensions    []string `mapstructure:"video_extensions"`
}

type MatchConfig struct {
	NoiseTokens []string `mapstructure:"noise_tokens"`
}

type PlayerConfig struct {
	Name   string `mapstructure:"name"`
	Binary string `mapstructure:"binary"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type ExtractorConfig struct {
	Language string `mapstructure:"language"`
}

type Config struct {
	Library   LibraryConfig   `mapstructure:"library"`
	Match     MatchConfig     `mapstructure:"match"`
	Player    PlayerConfig    `mapstructure:"player"`
	Server    ServerConfig    `mapstructure:"server"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
}

func LoadConfig() (*Config, error) {
	var config Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	if config.Player.Name == "" {
		config.Player.Name = "mpv"
	}
	if config.Server.Listen == "" {
		config.Server.Listen = ":8991"
	}
	if config.Extractor.Language == "" {
		config.Extractor.Language = "eng"
	}
	return &config, nil
}

func (c *Config) scannerConfig() library.ScannerConfig {
	return library.ScannerConfig{
		Roots:              c.Library.Roots,
		SubtitleExtensions: c.Library.SubtitleExtensions,
		VideoExtensions:    c.Library.VideoExtensions,
	}
}

func (c *Config) normalizer() *match.Normalizer {
	return match.NewNormalizer(c.Match.NoiseTokens)
}
