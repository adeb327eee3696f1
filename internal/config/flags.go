package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWireframe  = flag.Bool("wireframe", true, "Draw the scene as wireframe")
	flagVertShader = flag.String("vertex-shader", "", "Path to a GLSL vertex shader replacing the built-in one")
	flagFragShader = flag.String("fragment-shader", "", "Path to a GLSL fragment shader replacing the built-in one")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// flagProvided reports whether the named flag was set on the command line,
// distinguishing an explicit value from the flag's default.
func flagProvided(name string) bool {
	provided := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			provided = true
		}
	})
	return provided
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if flagProvided("wireframe") {
		cfg.Graphics.Wireframe = *flagWireframe
	}
	if *flagVertShader != "" {
		cfg.Scene.VertexShaderPath = *flagVertShader
	}
	if *flagFragShader != "" {
		cfg.Scene.FragmentShaderPath = *flagFragShader
	}
}
