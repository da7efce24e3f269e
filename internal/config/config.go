// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds fly camera tuning.
type CameraConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	TextureDir    string `yaml:"texture_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1000,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
			InvertY:          false,
		},
		Assets: AssetsConfig{
			TextureDir:    "textures",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
