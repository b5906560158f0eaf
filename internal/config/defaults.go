package config

// DefaultAnalyticsExcludes are request paths never recorded as page views.
var DefaultAnalyticsExcludes = []string{
	"/static/**",
	"/ws/**",
	"/api/**",
	"/healthz",
	"/favicon.ico",
}

// DefaultSubjects are the topics offered by the contact form.
var DefaultSubjects = []string{
	"Business Consulting",
	"Strategic Planning",
	"Financial Advisory",
	"Operations Improvement",
	"Other",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8080,
		DataDir:  "data",
		LogLevel: LogInfo,
		Rotator: RotatorConfig{
			IntervalMS:      6000,
			TransitionScale: 1.0,
		},
		Analytics: AnalyticsConfig{
			Enabled: true,
			Exclude: DefaultAnalyticsExcludes,
		},
		Contact: ContactConfig{
			Subjects: DefaultSubjects,
		},
	}
}
