package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/edp1096/pwlgen/internal/consts"
)

// GetVersion returns a formatted version string
func GetVersion(version, commit string) string {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s-%s", version, commit)
}

// GetDetailedVersion returns detailed version information
func GetDetailedVersion(version, commit, buildTime string) string {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}

	return fmt.Sprintf(`pwlgen (phase table to PWL compiler)
Version:    %s
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s
Marker:     %q
Time unit:  %s (rise %gu, AC grid %gu)
Channels:   %s`,
		version, commit, buildTime,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH,
		consts.Marker,
		consts.TimeUnit, consts.RiseTime, consts.TimeGrid,
		strings.Join(consts.Channels, " "))
}
