//go:build linux

package platform

import (
	"strings"
	"testing"
)

func TestParseTracerPid(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"not traced", "Name:\ttest\nTracerPid:\t0\nUid:\t0\n", false},
		{"traced", "Name:\ttest\nTracerPid:\t4242\nUid:\t0\n", true},
		{"missing line", "Name:\ttest\nUid:\t0\n", false},
		{"empty value", "TracerPid:\n", false},
		{"empty file", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTracerPid(strings.NewReader(tt.status)); got != tt.want {
				t.Errorf("parseTracerPid() = %v, want %v", got, tt.want)
			}
		})
	}
}
