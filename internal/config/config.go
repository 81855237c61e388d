package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings controls where the explorer looks and what it writes.
type Settings struct {
	DataDir    string `mapstructure:"data_dir" yaml:"data_dir"`
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	SampleRows int    `mapstructure:"sample_rows" yaml:"sample_rows"`
	SampleFile string `mapstructure:"sample_file" yaml:"sample_file"`
}

// Defaults reproduces the no-flag invocation: scan data/, write to the
// current directory, 100 sample rows.
func Defaults() Settings {
	return Settings{
		DataDir:    "data",
		OutputDir:  ".",
		SampleRows: 100,
		SampleFile: "pesticide_data_sample.csv",
	}
}

// Load reads settings from cfgFile, or from $HOME/.dataprobe.yaml when
// cfgFile is empty. A missing default config is fine; a missing explicit one
// is an error.
func Load(cfgFile string) (Settings, error) {
	v := viper.New()

	def := Defaults()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("sample_rows", def.SampleRows)
	v.SetDefault("sample_file", def.SampleFile)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(".dataprobe")
			v.SetConfigType("yaml")
			var notFound viper.ConfigFileNotFoundError
			if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

// Save writes the settings to path, or to $HOME/.dataprobe.yaml when path is
// empty.
func Save(s Settings, path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".dataprobe.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
