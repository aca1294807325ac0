package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/study-input/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the configuration file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envGenerator  = "STUDY_INPUT_GENERATOR"
	envTimeout    = "STUDY_INPUT_TIMEOUT"
	envDir        = "STUDY_INPUT_DIR"
	envShowHidden = "STUDY_INPUT_SHOW_HIDDEN"
	envWidth      = "STUDY_INPUT_WIDTH"
	envHeight     = "STUDY_INPUT_HEIGHT"
	envShowFooter = "STUDY_INPUT_FOOTER"
	envTrace      = "STUDY_INPUT_TRACE"
	envLogFile    = "STUDY_INPUT_LOG_FILE"
	envConfig     = "STUDY_INPUT_CONFIG"

	defaultTimeout = 2 * time.Minute
	defaultDir     = "."
)

// fileConfig mirrors the TOML file. Pointer fields distinguish "unset" from
// the zero value.
type fileConfig struct {
	Generator  string `toml:"generator"`
	Timeout    string `toml:"timeout"`
	Dir        string `toml:"dir"`
	ShowHidden *bool  `toml:"show_hidden"`
	Width      *int   `toml:"width"`
	Height     *int   `toml:"height"`
	Footer     *bool  `toml:"footer"`
	Trace      *bool  `toml:"trace"`
	LogFile    string `toml:"log_file"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPathFromArgs(args)
	if path == "" {
		path = env[envConfig]
	}
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	fileTimeout := defaultTimeout
	if file.Timeout != "" {
		fileTimeout, err = time.ParseDuration(file.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("config file %s: timeout: %w", path, err)
		}
	}

	fs := flag.NewFlagSet("study-input", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	generator := fs.String("generator", envOrDefault(env, envGenerator, file.Generator), "shell command that turns the goal on stdin into a plan (empty prints the goal)")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, fileTimeout), "maximum time a plan generation may take (0 disables the limit)")
	dir := fs.String("dir", envOrDefault(env, envDir, orString(file.Dir, defaultDir)), "directory the file picker opens in")
	showHidden := fs.Bool("show-hidden", envOrBool(env, envShowHidden, orBool(file.ShowHidden, false)), "list dotfiles in the file picker")
	width := fs.Int("width", envOrInt(env, envWidth, orInt(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, orInt(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, orBool(file.Footer, false)), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, orBool(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	fs.String("config", path, "path to a TOML configuration file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			Generator:  *generator,
			Timeout:    *timeout,
			StartDir:   *dir,
			ShowHidden: *showHidden,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"generator":   *generator,
			"timeout":     timeout.String(),
			"dir":         *dir,
			"show-hidden": strconv.FormatBool(*showHidden),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"config":      path,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPathFromArgs finds --config ahead of the real parse so the file can
// supply flag defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fileConfig{}, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return fc, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func orBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the application cannot run with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout))
	}
	if dir := cfg.App.StartDir; dir != "" {
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("dir: %w", err))
		case !info.IsDir():
			errs = append(errs, fmt.Errorf("dir %s is not a directory", dir))
		}
	}
	return errors.Join(errs...)
}
