package config

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Profile    ProfileConfig  `mapstructure:"profile"`
	Security   SecurityConfig `mapstructure:"security"`
	Rates      RatesConfig    `mapstructure:"rates"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type ProfileConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

type SecurityConfig struct {
	// PIN gates transfers, card freezes and detail reveals. Plaintext in
	// local config; this is a single-user session credential, not a
	// server-side secret.
	PIN string `mapstructure:"pin"`
}

type RatesConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	Model          string `mapstructure:"model"`
	APIKey         string `mapstructure:"api_key"`
	RefreshSeconds int    `mapstructure:"refresh_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{Currency: "USD"},
		Profile:  ProfileConfig{Name: "Alex Thompson", Email: "alex.thompson@zerah.io"},
		Security: SecurityConfig{PIN: "1234"},
		Rates: RatesConfig{
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-3-flash-preview",
			RefreshSeconds: 60,
		},
		Log: LogConfig{Level: "info"},
	}
}
