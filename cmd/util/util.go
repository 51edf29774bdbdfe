package util

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/mdaniel/dgs-codegen/lib/common"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

var Logger = logger.GetLogger("cmd")

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// SetupSerializerFlags adds the serializer and output flags to a command
func SetupSerializerFlags(cmd *cobra.Command) {
	key := "max-depth"
	cmd.PersistentFlags().Int(key, literal.DefaultMaxDepth, WrapString("Maximal nesting depth of lists, maps and objects (0 = unlimited)"))

	key = "self-reference"
	cmd.PersistentFlags().String(key, "raw", WrapString("How fields holding a value of their own object type are written: raw (text form, no recursion) or recurse (serialize, fail on cycles)"))

	key = "time-layout"
	cmd.PersistentFlags().String(key, "", WrapString("Go time layout used for timestamps (e.g. 2006-01-02). Timestamps are written as RFC3339 if empty"))

	key = "output"
	cmd.PersistentFlags().String(key, common.OutputText, WrapString("Output format (text, json)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Write serializer metrics in the Prometheus text format to stderr"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dgs")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the configuration from viper and validates it
func GetConfig() (*common.Config, error) {
	conf := &common.Config{
		MaxDepth:      viper.GetInt("max-depth"),
		SelfReference: viper.GetString("self-reference"),
		TimeLayout:    viper.GetString("time-layout"),
		Output:        strings.ToLower(viper.GetString("output")),
		Metrics:       viper.GetBool("metrics"),
		LogLevel:      viper.GetString("log-level"),
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// --------------------------------------------------------------------------
// Serializer
// --------------------------------------------------------------------------

// NewSerializer creates the serializer described by conf. If metrics are enabled the
// serializer is instrumented and the returned set is non-nil.
func NewSerializer(conf *common.Config) (literal.ISerializer, *metrics.Set, error) {
	mode, err := literal.ParseSelfReferenceMode(conf.SelfReference)
	if err != nil {
		return nil, nil, err
	}

	coercions := literal.Coercions{}
	if layout := conf.TimeLayout; layout != "" {
		typ, fn := literal.CoercionFor(func(t time.Time) (any, error) {
			return t.Format(layout), nil
		})
		coercions[typ] = fn
	}

	var s literal.ISerializer = literal.NewSerializer(
		coercions,
		literal.WithMaxDepth(conf.MaxDepth),
		literal.WithSelfReference(mode),
	)

	if !conf.Metrics {
		return s, nil, nil
	}
	set := metrics.NewSet()
	return literal.NewInstrumentedSerializer(s, set), set, nil
}

// WriteMetrics writes the metrics of set to w, nothing if set is nil
func WriteMetrics(w io.Writer, set *metrics.Set) {
	if set != nil {
		set.WritePrometheus(w)
	}
}

// --------------------------------------------------------------------------
// Input / Output
// --------------------------------------------------------------------------

// ReadInput reads the file named by the first argument, or stdin if there is none or it is "-"
func ReadInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// WriteResult writes text to w, as {"<key>": text} if the json output is configured
func WriteResult(w io.Writer, conf *common.Config, key string, text string) error {
	if conf.Output != common.OutputJSON {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	data, err := json.Marshal(map[string]string{key: text})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
