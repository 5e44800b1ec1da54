// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func fallback() brand {
	return brand{
		CLIName:     "hostpal",
		DisplayName: "HostPAL",
		Description: "Host platform abstraction layer and diagnostics tool",
		HomeDir:     ".hostpal",
		EnvPrefix:   "HOSTPAL",
		GoModule:    "github.com/agentx-labs/hostpal",
		GitHubRepo:  "agentx-labs/hostpal",
	}
}

// parse overlays raw YAML on the fallback values. Fields missing from raw
// keep their fallback.
func parse(raw []byte) brand {
	b := fallback()
	_ = yaml.Unmarshal(raw, &b)
	return b
}

func load() {
	once.Do(func() {
		defaults = parse(rawBranding)
	})
}

// CLIName returns the root command name (e.g., "hostpal").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".hostpal").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "HOSTPAL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "HOSTPAL_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
