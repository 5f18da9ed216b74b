package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.CUESDKVersion)
}

func TestInfo_String(t *testing.T) {
	info := Info{
		Version:       "v1.2.3",
		GitCommit:     "abc123",
		BuildDate:     "2026-01-01",
		GoVersion:     "go1.25.0",
		CUESDKVersion: "v0.15.4",
	}

	s := info.String()
	assert.Contains(t, s, "stackgen version v1.2.3")
	assert.Contains(t, s, "Commit:    abc123")
	assert.Contains(t, s, "Built:     2026-01-01")
	assert.Contains(t, s, "Go:        go1.25.0")
	assert.Contains(t, s, "CUE SDK:   v0.15.4")
}

func TestDependencyVersion_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", dependencyVersion("example.invalid/not-a-dep"))
}
