package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{
			name:    "all values provided",
			version: "v0.3.0",
			commit:  "abcdef1234567890",
			want:    "v0.3.0-abcdef1",
		},
		{
			name:   "empty version",
			commit: "abcdef1234567890",
			want:   "dev-abcdef1",
		},
		{
			name:    "no commit",
			version: "v0.3.0",
			want:    "v0.3.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetVersion(tt.version, tt.commit)
			if got != tt.want {
				t.Errorf("GetVersion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	result := GetDetailedVersion("v0.3.0", "abcdef1234567890", "")

	wants := []string{
		"pwlgen",
		"Version:    v0.3.0",
		"Commit:     abcdef1234567890",
		"Built:      unknown",
		"OS/Arch:",
		`Marker:     "Python Script"`,
		"Time unit:  u (rise 1u, AC grid 15u)",
		"Channels:   dac_en amp_sel rebal1 rebal2 ie_en cap_byp pw_amp rpw_amp",
	}
	for _, want := range wants {
		if !strings.Contains(result, want) {
			t.Errorf("GetDetailedVersion() missing %q", want)
		}
	}
}
