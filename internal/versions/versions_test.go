package versions

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "v prefix", version: "v1.2.3", want: "1.2.3"},
		{name: "plain", version: "1.2.3", want: "1.2.3"},
		{name: "short", version: "v2", want: "2.0.0"},
		{name: "prerelease", version: "v1.0.0-rc.1", want: "1.0.0-rc.1"},
		{name: "dev", version: "dev", want: "dev"},
		{name: "empty", version: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeVersion(tt.version))
		})
	}
}

func TestIsRelease(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRelease("v1.2.3"))
	assert.True(t, IsRelease("0.1.0"))
	assert.False(t, IsRelease("v1.2.3-beta"))
	assert.False(t, IsRelease("dev"))
}

func TestGetVersionInfo(t *testing.T) {
	t.Parallel()

	info := GetVersionInfo()
	assert.Equal(t, NormalizeVersion(Version), info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}
