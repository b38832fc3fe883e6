/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_DevelopmentBuild(t *testing.T) {
	original := Version
	defer func() { Version = original }()
	Version = "dev"

	lines := strings.Split(Info(), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "satsetup dev (development build)", lines[0])
	assert.Contains(t, lines[1], "Git commit:")
	assert.Contains(t, lines[2], "Build date:")
	assert.Contains(t, lines[3], "Databricks SDK:")
	assert.Contains(t, lines[4], runtime.Version())
	assert.Contains(t, lines[5], runtime.GOOS+"/"+runtime.GOARCH)
}

func TestInfo_ReleaseBuild(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v1.2.3"
	assert.True(t, strings.HasPrefix(Info(), "satsetup v1.2.3\n"))
	assert.Equal(t, "v1.2.3", Short())
}

func TestBuild_IsRelease(t *testing.T) {
	assert.False(t, Build{Version: "dev"}.IsRelease())
	assert.False(t, Build{}.IsRelease())
	assert.True(t, Build{Version: "v0.1.0"}.IsRelease())
}

func TestCurrent_ReportsSDKVersion(t *testing.T) {
	assert.NotEmpty(t, Current().SDKVersion)
}
