package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Video    VideoConfig    `yaml:"video"`
	Captions CaptionsConfig `yaml:"captions"`
	Visuals  VisualsConfig  `yaml:"visuals"`
	Render   RenderConfig   `yaml:"render"`
	Cache    CacheConfig    `yaml:"cache"`
	Assets   AssetsConfig   `yaml:"assets"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type CaptionsConfig struct {
	DefaultStyle  string `yaml:"default_style"`
	WordsPerGroup int    `yaml:"words_per_group"`
	Position      string `yaml:"position"` // auto | top | center | bottom
	WriteSidecars bool   `yaml:"write_sidecars"`
}

type VisualsConfig struct {
	DefaultPreset   string            `yaml:"default_preset"`
	BackgroundStyle string            `yaml:"background_style"`
	Presets         map[string]Preset `yaml:"presets"`
}

type RenderConfig struct {
	Workers     int `yaml:"workers"`
	ChunkFrames int `yaml:"chunk_frames"`
}

type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// AssetsConfig points at the local stock clip library
type AssetsConfig struct {
	Dir  string `yaml:"dir"`
	Tags string `yaml:"tags"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Video: VideoConfig{Width: 1080, Height: 1920, FPS: 30},
		Captions: CaptionsConfig{
			DefaultStyle:  "tiktok_bounce",
			WordsPerGroup: 3,
			Position:      "auto",
			WriteSidecars: true,
		},
		Visuals: VisualsConfig{
			DefaultPreset:   DefaultPresetName,
			BackgroundStyle: "gradient",
		},
		Render: RenderConfig{Workers: 4, ChunkFrames: 150},
		Cache: CacheConfig{
			Addr:   "localhost:6379",
			TTL:    24 * time.Hour,
			Prefix: "reel-composer:segment:",
		},
		Assets: AssetsConfig{
			Dir:  "assets/video",
			Tags: "assets/video/tags.json",
		},
		Paths:   PathsConfig{Output: "output"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads config.yaml on top of Default and returns a Config struct
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides selected fields from the environment.
// Unparseable numeric values are reported, empty ones are ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("REEL_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REEL_FPS=%q", ErrInvalidConfig, v)
		}
		c.Video.FPS = n
	}
	if v := os.Getenv("REEL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REEL_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Render.Workers = n
	}
	if v := os.Getenv("REEL_OUTPUT_DIR"); v != "" {
		c.Paths.Output = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
		c.Cache.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the values the renderer depends on
func (c *Config) Validate() error {
	if c.Video.FPS <= 0 {
		return fmt.Errorf("%w: video.fps must be positive", ErrInvalidConfig)
	}
	if c.Video.Width <= 0 || c.Video.Height <= 0 {
		return fmt.Errorf("%w: video size %dx%d", ErrInvalidConfig, c.Video.Width, c.Video.Height)
	}
	if c.Captions.WordsPerGroup <= 0 {
		return fmt.Errorf("%w: captions.words_per_group must be positive", ErrInvalidConfig)
	}
	if c.Render.Workers <= 0 {
		return fmt.Errorf("%w: render.workers must be positive", ErrInvalidConfig)
	}
	if c.Render.ChunkFrames <= 0 {
		return fmt.Errorf("%w: render.chunk_frames must be positive", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("%w: cache.addr required when cache is enabled", ErrInvalidConfig)
	}
	return nil
}
