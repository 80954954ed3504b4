package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "WORDFREQ"

// Config holds all wordfreq configuration.
type Config struct {
	Input    string // path of the file to count, set from the command line
	Output   OutputConfig
	Log      LogConfig
	Progress bool // show a progress bar on stderr while reading
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format  string // "text" or "json"
	Pretty  bool   // indent JSON output
	Path    string // empty writes to stdout
	Tee     bool   // with Path set, also write the report to stdout
	Locale  string // BCP 47 tag used to group digits in text output; empty prints plain digits
	Webhook string // when set, also POST the JSON report to this URL
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text" or "json"
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"config":     "config",
	"format":     "output.format",
	"pretty":     "output.pretty",
	"output":     "output.path",
	"tee":        "output.tee",
	"locale":     "output.locale",
	"webhook":    "output.webhook",
	"log-level":  "log.level",
	"log-format": "log.format",
	"progress":   "progress",
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json, toml)")
	fs.StringP("format", "f", "text", `report format: "text" or "json"`)
	fs.Bool("pretty", false, "indent JSON output")
	fs.StringP("output", "o", "", "write the report to this file instead of stdout")
	fs.Bool("tee", false, "with --output, also print the report to stdout")
	fs.String("locale", "", "group digits in text output using this locale (e.g. en, de)")
	fs.String("webhook", "", "also POST the JSON report to this URL")
	fs.String("log-level", "info", `log level: "debug", "info", "warn", "error"`)
	fs.String("log-format", "text", `log format: "text" or "json"`)
	fs.Bool("progress", false, "show a progress bar while reading")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "text")
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.path", "")
	v.SetDefault("output.tee", false)
	v.SetDefault("output.locale", "")
	v.SetDefault("output.webhook", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("progress", false)
}

// Load builds the configuration from, in increasing precedence: defaults, an
// optional config file, WORDFREQ_* environment variables and the flags in fs.
// fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return Config{
		Output: OutputConfig{
			Format:  strings.ToLower(v.GetString("output.format")),
			Pretty:  v.GetBool("output.pretty"),
			Path:    v.GetString("output.path"),
			Tee:     v.GetBool("output.tee"),
			Locale:  v.GetString("output.locale"),
			Webhook: v.GetString("output.webhook"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Progress: v.GetBool("progress"),
	}, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	var errs []error

	if c.Input == "" {
		errs = append(errs, errors.New("input file is required"))
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Output.Format))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if c.Output.Locale != "" {
		if _, err := language.Parse(c.Output.Locale); err != nil {
			errs = append(errs, fmt.Errorf("invalid locale %q: %w", c.Output.Locale, err))
		}
	}

	if c.Output.Webhook != "" {
		u, err := url.Parse(c.Output.Webhook)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid webhook URL: %w", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Errorf("webhook URL %q must be http or https", c.Output.Webhook))
		}
	}

	return errors.Join(errs...)
}
