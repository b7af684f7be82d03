package godem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionBanner(t *testing.T) {
	v, err := parseVersionBanner("GDAL 3.8.4, released 2024/02/08\n")
	require.NoError(t, err)
	assert.Equal(t, VersionFrom(3, 8, 4), v)

	v, err = parseVersionBanner("GDAL 2.4.2")
	require.NoError(t, err)
	assert.Equal(t, VersionFrom(2, 4, 2), v)

	for _, malformed := range []string{"", "gdaldem: not found", "GDAL x.y"} {
		_, err = parseVersionBanner(malformed)
		assert.Error(t, err, "banner %q", malformed)
	}
}

func TestExecProcessorMissingBinary(t *testing.T) {
	p := &ExecProcessor{Binary: "gdaldem-definitely-not-installed"}
	err := p.DEMProcessing(context.Background(), "slope", "in.tiff", "out.tiff", nil)
	require.Error(t, err)

	// the resolution failure is sticky
	_, err2 := p.Version(context.Background())
	assert.Equal(t, err, err2)
}
