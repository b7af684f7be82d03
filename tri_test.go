package godem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triTestOptions(t *testing.T) *TriOptions {
	t.Helper()
	extra, err := ParseArgList("CPL_DEBUG=ON")
	require.NoError(t, err)
	return (&TriOptions{}).
		SetInputBand(2).
		SetComputeEdges(true).
		SetAlgorithm(Wilson).
		SetOutputFormat("GTiff").
		SetAdditionalOptions(extra)
}

func TestTriOptionList(t *testing.T) {
	list, err := triTestOptions(t).optionList(VersionFrom(3, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, "-compute_edges -b 2 -of GTiff CPL_DEBUG=ON -alg Wilson", list.String())
}

func TestTriAlgorithmDroppedBefore33(t *testing.T) {
	// pre-3.3 gdaldem has no -alg switch: the selection is dropped, not
	// an error
	list, err := triTestOptions(t).optionList(VersionFrom(3, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "-compute_edges -b 2 -of GTiff CPL_DEBUG=ON", list.String())

	// even an algorithm pre-3.3 gdal has never heard of
	list, err = (&TriOptions{}).SetAlgorithm(TriAlg("Bogus")).optionList(VersionFrom(3, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "", list.String())
}

func TestTriRiley(t *testing.T) {
	list, err := (&TriOptions{}).SetAlgorithm(Riley).optionList(VersionFrom(3, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, "-alg Riley", list.String())
}

func TestTriUnknownAlgorithm(t *testing.T) {
	_, err := (&TriOptions{}).SetAlgorithm(TriAlg("Bogus")).optionList(VersionFrom(3, 3, 0))
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestTriOptionListAssumedVersion(t *testing.T) {
	// the default assumed version is >= 3.3, so the public compile keeps
	// the selection
	list, err := (&TriOptions{}).SetAlgorithm(Wilson).OptionList()
	require.NoError(t, err)
	assert.Equal(t, "-alg Wilson", list.String())
}

func TestTriAccessors(t *testing.T) {
	o := &TriOptions{}
	_, ok := o.Algorithm()
	assert.False(t, ok)
	o.SetAlgorithm(Riley)
	alg, ok := o.Algorithm()
	assert.True(t, ok)
	assert.Equal(t, Riley, alg)
}

func TestTRI(t *testing.T) {
	p := &fakeProcessor{}
	err := TRI(context.Background(), p, Dataset{Name: "dem-hills.tiff"}, "dem-hills-tri.tiff", (&TriOptions{}).SetAlgorithm(Wilson))
	require.NoError(t, err)
	assert.Equal(t, "TRI", p.mode)
	assert.Equal(t, []string{"-alg", "Wilson"}, p.switches)
}
