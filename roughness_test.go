package godem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoughnessOptionList(t *testing.T) {
	extra, err := ParseArgList("CPL_DEBUG=ON")
	require.NoError(t, err)
	opts := (&RoughnessOptions{}).
		SetInputBand(2).
		SetComputeEdges(true).
		SetOutputFormat("GTiff").
		SetAdditionalOptions(extra)

	list, err := opts.OptionList()
	require.NoError(t, err)
	assert.Equal(t, "-compute_edges -b 2 -of GTiff CPL_DEBUG=ON", list.String())
}

func TestRoughness(t *testing.T) {
	p := &fakeProcessor{}
	err := Roughness(context.Background(), p, Dataset{Name: "dem-hills.tiff"}, "out.tiff", nil)
	require.NoError(t, err)
	assert.Equal(t, "roughness", p.mode)
	assert.Nil(t, p.switches)
}

func TestTpiOptionList(t *testing.T) {
	list, err := (&TpiOptions{}).SetInputBand(2).SetComputeEdges(true).OptionList()
	require.NoError(t, err)
	assert.Equal(t, "-compute_edges -b 2", list.String())
}

func TestTPI(t *testing.T) {
	p := &fakeProcessor{}
	err := TPI(context.Background(), p, Dataset{Name: "dem-hills.tiff"}, "out.tiff", (&TpiOptions{}).SetOutputFormat("GTiff"))
	require.NoError(t, err)
	assert.Equal(t, "TPI", p.mode)
	assert.Equal(t, []string{"-of", "GTiff"}, p.switches)
}
