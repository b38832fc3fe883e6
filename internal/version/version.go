/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package version reports how the satsetup binary was built.
package version

import (
	"fmt"
	"runtime"
	"strings"

	sdkversion "github.com/databricks/databricks-sdk-go/version"
)

// Populated via -ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Build describes the running binary
type Build struct {
	Version    string
	GitCommit  string
	BuildDate  string
	SDKVersion string
	GoVersion  string
	Platform   string
}

// Current returns the build description of the running binary
func Current() Build {
	return Build{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		SDKVersion: sdkversion.Version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsRelease reports whether the binary was stamped with a release version
func (b Build) IsRelease() bool {
	return b.Version != "dev" && b.Version != ""
}

func (b Build) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "satsetup %s", b.Version)
	if !b.IsRelease() {
		sb.WriteString(" (development build)")
	}
	fmt.Fprintf(&sb, "\n  Git commit:     %s", b.GitCommit)
	fmt.Fprintf(&sb, "\n  Build date:     %s", b.BuildDate)
	fmt.Fprintf(&sb, "\n  Databricks SDK: %s", b.SDKVersion)
	fmt.Fprintf(&sb, "\n  Go version:     %s", b.GoVersion)
	fmt.Fprintf(&sb, "\n  Platform:       %s", b.Platform)
	return sb.String()
}

// Info returns the multi-line banner printed by `satsetup version`
func Info() string {
	return Current().String()
}

// Short returns just the version string
func Short() string {
	return Version
}
