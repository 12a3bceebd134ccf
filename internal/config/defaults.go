package config

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Platform: PlatformConfig{
			HardLimit:  500,
			OptimalMin: 200,
			OptimalMax: 300,
		},
		Server: ServerConfig{
			Host:             "127.0.0.1",
			Port:             7180,
			LogLevel:         "info",
			RequestTimeoutMs: 15000,
			MaxBodyBytes:     1048576, // 1MB
		},
		Defaults: DefaultsConfig{
			Tone: "professional",
		},
	}
}
