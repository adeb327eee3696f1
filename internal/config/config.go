// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// SceneConfig holds shader and texture asset paths. Empty shader paths
// select the embedded GLSL sources; missing texture paths fall back to a
// plain white texture.
type SceneConfig struct {
	VertexShaderPath   string   `yaml:"vertex_shader"`
	FragmentShaderPath string   `yaml:"fragment_shader"`
	TexturePaths       []string `yaml:"texture_paths"`
}

// GameConfig holds runtime behavior settings.
type GameConfig struct {
	ShowFPS bool `yaml:"show_fps"`
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  true,
		},
		Scene: SceneConfig{
			TexturePaths: nil,
		},
		Game: GameConfig{
			ShowFPS: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
