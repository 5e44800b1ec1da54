package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agentx-labs/hostpal/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyNotifyBackend  = "notify.backend"
	KeyDiagBufferSize = "diag.buffer_size"
	KeyMinRelease     = "doctor.min_release"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Notify struct {
		Backend string `mapstructure:"backend"`
	} `mapstructure:"notify"`
	Diag struct {
		BufferSize int `mapstructure:"buffer_size"`
	} `mapstructure:"diag"`
	Doctor struct {
		MinRelease map[string]string `mapstructure:"min_release"`
	} `mapstructure:"doctor"`
}

// intKeys are stored as integers so the written file passes validation.
var intKeys = map[string]bool{
	KeyDiagBufferSize: true,
}

// Dir returns the path to the config directory (~/.hostpal/). HOSTPAL_HOME
// overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.hostpal/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
	viper.SetDefault(KeyNotifyBackend, "auto")
	viper.SetDefault(KeyDiagBufferSize, 2048)
}

// Load initializes viper to read from the config file and environment.
// A missing file is not an error; an unreadable or malformed one is.
func Load() error {
	viper.Reset()
	setDefaults()

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current decodes the loaded configuration.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decoding config: %w", err)
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. The value is
// checked against the schema first; an invalid value leaves the file
// untouched.
func Set(key, value string) error {
	var v any = value
	if intKeys[key] {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		v = n
	}

	if err := checkValue(key, v); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, v)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// checkValue validates a document holding only key = v.
func checkValue(key string, v any) error {
	doc := map[string]any{}
	parts := strings.Split(key, ".")
	cur := doc
	for _, p := range parts[:len(parts)-1] {
		next := map[string]any{}
		cur[p] = next
		cur = next
	}
	cur[parts[len(parts)-1]] = v

	result, err := validateValue(doc)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid value for %s: %s", key, result.Issues[0].Message)
	}
	return nil
}
