package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "hostpal" {
		t.Errorf("CLIName() = %q, want hostpal", got)
	}
	if got := HomeDir(); got != ".hostpal" {
		t.Errorf("HomeDir() = %q, want .hostpal", got)
	}
	if got := EnvVar("log_level"); got != "HOSTPAL_LOG_LEVEL" {
		t.Errorf("EnvVar() = %q, want HOSTPAL_LOG_LEVEL", got)
	}
}

func TestParseKeepsFallbackForMissingFields(t *testing.T) {
	b := parse([]byte("cli_name: palctl\n"))
	if b.CLIName != "palctl" {
		t.Errorf("CLIName = %q, want palctl", b.CLIName)
	}
	if b.EnvPrefix != "HOSTPAL" {
		t.Errorf("EnvPrefix = %q, want fallback HOSTPAL", b.EnvPrefix)
	}
}

func TestParseIgnoresMalformedYAML(t *testing.T) {
	b := parse([]byte("cli_name: [unclosed"))
	if b != fallback() {
		t.Errorf("parse(malformed) = %+v, want fallback", b)
	}
}
