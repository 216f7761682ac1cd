package config

// SchemaVersion is the configuration schema version.
const SchemaVersion = "1"

// Config represents ~/.bix/config.yaml.
// Flags override environment variables, which override the file, which
// overrides the defaults.
type Config struct {
	Version string      `yaml:"version"`
	View    ViewConfig  `yaml:"view"`
	Patch   PatchConfig `yaml:"patch"`
	Log     LogConfig   `yaml:"log"`
}

// ViewConfig contains defaults for the view command.
type ViewConfig struct {
	Width   int    `yaml:"width" env:"BIX_WIDTH"`
	NoGroup bool   `yaml:"no_group" env:"BIX_NO_GROUP"`
	NoAddr  bool   `yaml:"no_addr" env:"BIX_NO_ADDR"`
	NoASCII bool   `yaml:"no_ascii" env:"BIX_NO_ASCII"`
	Color   string `yaml:"color" env:"BIX_COLOR"`   // "auto", "always", "never"
	Format  string `yaml:"format" env:"BIX_FORMAT"` // "text", "json", "yaml", "csv", "table"
}

// PatchConfig contains defaults for the set command.
type PatchConfig struct {
	Growth string `yaml:"growth" env:"BIX_GROWTH"` // "reject" or "zero-fill"
	Verify bool   `yaml:"verify" env:"BIX_VERIFY"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `yaml:"level" env:"BIX_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"BIX_LOG_PRETTY"`
}
