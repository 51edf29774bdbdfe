package common

import (
	"fmt"
	"strings"
)

// Output formats of the command line tool
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all configuration parameters of the command line tool
type Config struct {
	// MaxDepth is the nesting ceiling of the serializer (0 = unlimited)
	MaxDepth int
	// SelfReference is the self reference mode (raw, recurse)
	SelfReference string
	// TimeLayout, if set, registers a coercion formatting time.Time values with this layout
	TimeLayout string

	// Output is the output format (text, json)
	Output string
	// Metrics enables dumping the serializer metrics to stderr
	Metrics bool

	// Logging configuration
	LogLevel string
}

// Validate checks the values that have a fixed set of options
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative: %d", c.MaxDepth)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %s (expected %s or %s)", c.Output, OutputText, OutputJSON)
	}
	_, err := ParseLogLevel(c.LogLevel)
	return err
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Serializer")
	if c.MaxDepth == 0 {
		addField("Max Depth", "unlimited")
	} else {
		addField("Max Depth", fmt.Sprintf("%d", c.MaxDepth))
	}
	addField("Self Reference", c.SelfReference)
	if c.TimeLayout != "" {
		addField("Time Layout", c.TimeLayout)
	} else {
		addField("Time Layout", "RFC3339 (builtin)")
	}

	addSection("Output")
	addField("Format", c.Output)
	addField("Metrics", fmt.Sprintf("%t", c.Metrics))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
