package config

// LogLevel controls the minimum severity written by the logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level ppmsite configuration, corresponding to .ppmsite.yml.
type Config struct {
	Port            int             `yaml:"port" koanf:"port"`
	DataDir         string          `yaml:"data_dir" koanf:"data_dir"`
	AllowAllOrigins bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        LogLevel        `yaml:"log_level" koanf:"log_level"`
	ContentFile     string          `yaml:"content_file" koanf:"content_file"`
	Rotator         RotatorConfig   `yaml:"rotator" koanf:"rotator"`
	Analytics       AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
	Contact         ContactConfig   `yaml:"contact" koanf:"contact"`
}

// RotatorConfig tunes the home page hero carousel.
type RotatorConfig struct {
	// IntervalMS is the auto-advance period; 0 disables auto-advance.
	IntervalMS int `yaml:"interval_ms" koanf:"interval_ms"`
	// TransitionScale stretches (>1) or shortens (<1) the crossfade.
	TransitionScale float64 `yaml:"transition_scale" koanf:"transition_scale"`
}

// AnalyticsConfig controls local page-view and event tracking.
type AnalyticsConfig struct {
	Enabled bool     `yaml:"enabled" koanf:"enabled"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	Subjects []string `yaml:"subjects" koanf:"subjects"`
}
