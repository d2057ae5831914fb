package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
)

const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	// LogFile receives logs when the terminal host owns stdout.
	LogFile string `yaml:"log-file" env:"TTT_LOG_FILE" env-default:""`
	Host    string `yaml:"host" env:"TTT_HOST" env-default:"window"`
	Window  Window `yaml:"window"`
	Sprite  Sprite `yaml:"sprite"`
	Game    Game   `yaml:"game"`
	Audio   Audio  `yaml:"audio"`
}

type Window struct {
	Width  int    `yaml:"width" env:"TTT_WINDOW_WIDTH" env-default:"640"`
	Height int    `yaml:"height" env:"TTT_WINDOW_HEIGHT" env-default:"640"`
	Title  string `yaml:"title" env-default:"Tic-Tac-Toe"`
}

type Sprite struct {
	Size      int     `yaml:"size" env-default:"120"`
	Thickness float64 `yaml:"thickness" env-default:"5"`
}

type Game struct {
	FirstPlayer string `yaml:"first-player" env:"TTT_FIRST_PLAYER" env-default:"O"`
	ClickMode   string `yaml:"click-mode" env:"TTT_CLICK_MODE" env-default:"press"`
}

// Audio plays unless Muted is set. Boolean defaults must stay false:
// cleanenv applies env-default to zero values read from the file.
type Audio struct {
	Muted      bool    `yaml:"muted" env:"TTT_MUTED" env-default:"false"`
	SampleRate int     `yaml:"sample-rate" env-default:"44100"`
	Volume     float64 `yaml:"volume" env-default:"0.5"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path, applies defaults and environment overrides, then validates.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks enumerations and ranges.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	switch that.Host {
	case HostWindow, HostTerminal:
	default:
		return fmt.Errorf("%w: host %q", apperror.ErrInvalidConfig, that.Host)
	}

	if that.Window.Width <= 0 || that.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", apperror.ErrInvalidConfig, that.Window.Width, that.Window.Height)
	}

	if that.Sprite.Size <= 0 || that.Sprite.Thickness < 0 {
		return fmt.Errorf("%w: sprite size %d thickness %v", apperror.ErrInvalidConfig, that.Sprite.Size, that.Sprite.Thickness)
	}

	switch that.Game.FirstPlayer {
	case "X", "O":
	default:
		return fmt.Errorf("%w: first-player %q", apperror.ErrInvalidConfig, that.Game.FirstPlayer)
	}

	switch that.Game.ClickMode {
	case "press", "hold":
	default:
		return fmt.Errorf("%w: click-mode %q", apperror.ErrInvalidConfig, that.Game.ClickMode)
	}

	if that.Audio.SampleRate <= 0 || that.Audio.Volume < 0 || that.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio sample-rate %d volume %v", apperror.ErrInvalidConfig, that.Audio.SampleRate, that.Audio.Volume)
	}

	return nil
}
