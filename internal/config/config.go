package config

import (
	"bytes"
	_ "embed"
	"strings"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// Config is the root configuration.
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Extract ExtractConfig `mapstructure:"extract"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type ExtractConfig struct {
	// Sheet and Column are the default worksheet/column selection.
	// Empty means first sheet / second column.
	Sheet  string `mapstructure:"sheet"`
	Column string `mapstructure:"column"`
}

type ExportConfig struct {
	// ClickableLinks writes the link column as HYPERLINK formulas.
	ClickableLinks bool `mapstructure:"clickable_links"`
	// UploadFilename and ManualFilename are the default output names of
	// the file-upload and manual-entry flows.
	UploadFilename string `mapstructure:"upload_filename"`
	ManualFilename string `mapstructure:"manual_filename"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads embedded defaults, merges user YAML (if provided), and
// applies env overrides (WALINKS_*).
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, err
		}
	}

	// env override (WALINKS_*), e.g. WALINKS_HTTP_ADDR
	v.SetEnvPrefix("WALINKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
