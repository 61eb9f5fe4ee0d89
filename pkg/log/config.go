package log

import (
	"fmt"
	"os"
	"strings"
)

// Config describes a logger. It is the "log" section of the armkit config
// file.
type Config struct {
	// Level is debug, info, warn or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is stderr, stdout, null, or a file path.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Color enables colored text output.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`

	// Redact lists field keys whose values are never written.
	Redact []string `json:"redact" yaml:"redact" mapstructure:"redact"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "text",
		Output: "stderr",
		Color:  true,
	}
}

// ApplyConfig builds a logger from config. A nil config means DefaultConfig.
func ApplyConfig(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	options := []LoggerOption{WithLevel(level)}

	switch strings.ToLower(config.Format) {
	case "json":
		options = append(options, WithFormatter(&JSONFormatter{}))
	case "text", "":
		tf := NewTextFormatter()
		tf.DisableColors = !config.Color
		options = append(options, WithFormatter(tf))
	default:
		return nil, fmt.Errorf("invalid log format: %s", config.Format)
	}

	switch out := config.Output; strings.ToLower(out) {
	case "stderr", "":
		options = append(options, WithOutput(NewConsoleOutput(WithStderr())))
	case "stdout":
		options = append(options, WithOutput(NewConsoleOutput()))
	case "null", "none":
		options = append(options, WithOutput(NewNullOutput()))
	default:
		options = append(options, WithOutput(NewFileOutput(os.ExpandEnv(out))))
	}

	if len(config.Redact) > 0 {
		options = append(options, WithHook(NewRedactionHook(config.Redact)))
	}
	return NewLogger(options...), nil
}
