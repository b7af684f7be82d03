package godem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProcessor records the single invocation it receives.
type fakeProcessor struct {
	mode     string
	srcDS    string
	dstDS    string
	switches []string
	err      error
}

func (p *fakeProcessor) DEMProcessing(ctx context.Context, mode string, srcDS string, dstDS string, switches []string) error {
	p.mode, p.srcDS, p.dstDS, p.switches = mode, srcDS, dstDS, switches
	return p.err
}

func TestSlopeOptionList(t *testing.T) {
	extra, err := ParseArgList("CPL_DEBUG=ON")
	require.NoError(t, err)
	opts := (&SlopeOptions{}).
		SetInputBand(2).
		SetAlgorithm(ZevenbergenThorne).
		SetScale(98473.0).
		SetComputeEdges(true).
		SetPercentage(true).
		SetOutputFormat("GTiff").
		SetAdditionalOptions(extra)

	list, err := opts.OptionList()
	require.NoError(t, err)
	assert.Equal(t, "-compute_edges -b 2 -of GTiff CPL_DEBUG=ON -alg ZevenbergenThorne -s 98473 -p", list.String())

	// compiling is idempotent
	again, err := opts.OptionList()
	require.NoError(t, err)
	assert.Equal(t, list.String(), again.String())
}

func TestSlopeOptionListDefaults(t *testing.T) {
	list, err := (&SlopeOptions{}).OptionList()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, "", list.String())
}

func TestSlopeOmittedBooleans(t *testing.T) {
	list, err := (&SlopeOptions{}).SetComputeEdges(false).SetPercentage(false).OptionList()
	require.NoError(t, err)
	assert.Equal(t, "", list.String())

	// SetPercentage(false) is recorded but emits nothing
	o := (&SlopeOptions{}).SetPercentage(false)
	pct, ok := o.Percentage()
	assert.True(t, ok)
	assert.False(t, pct)
}

func TestSlopeInvalidBand(t *testing.T) {
	for _, band := range []int{0, -1} {
		_, err := (&SlopeOptions{}).SetInputBand(band).OptionList()
		assert.ErrorIs(t, err, ErrInvalidBand)
	}
	list, err := (&SlopeOptions{}).SetInputBand(2).OptionList()
	require.NoError(t, err)
	assert.Equal(t, "-b 2", list.String())
}

func TestSlopeUnknownAlgorithm(t *testing.T) {
	_, err := (&SlopeOptions{}).SetAlgorithm(GradientAlg("Bogus")).OptionList()
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	cfgErr := &ConfigError{}
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "-alg", cfgErr.Option)
}

func TestSlopeAccessors(t *testing.T) {
	o := &SlopeOptions{}
	_, ok := o.InputBand()
	assert.False(t, ok)
	_, ok = o.Algorithm()
	assert.False(t, ok)
	_, ok = o.Scale()
	assert.False(t, ok)
	_, ok = o.Percentage()
	assert.False(t, ok)

	o.SetInputBand(3).SetAlgorithm(Horn).SetScale(111120)
	band, ok := o.InputBand()
	assert.True(t, ok)
	assert.Equal(t, 3, band)
	alg, ok := o.Algorithm()
	assert.True(t, ok)
	assert.Equal(t, Horn, alg)
	scale, ok := o.Scale()
	assert.True(t, ok)
	assert.Equal(t, 111120.0, scale)
}

func TestSlope(t *testing.T) {
	p := &fakeProcessor{}
	opts := (&SlopeOptions{}).SetAlgorithm(Horn).SetPercentage(true).SetScale(111120)
	err := Slope(context.Background(), p, Dataset{Name: "dem-hills.tiff"}, "dem-hills-slope.tiff", opts)
	require.NoError(t, err)
	assert.Equal(t, "slope", p.mode)
	assert.Equal(t, "dem-hills.tiff", p.srcDS)
	assert.Equal(t, "dem-hills-slope.tiff", p.dstDS)
	assert.Equal(t, []string{"-alg", "Horn", "-s", "111120", "-p"}, p.switches)

	err = Slope(context.Background(), p, Dataset{Name: "dem-hills.tiff"}, "out.tiff", nil)
	require.NoError(t, err)
	assert.Nil(t, p.switches)
}

func TestSlopeCompileErrorBeforeInvocation(t *testing.T) {
	p := &fakeProcessor{}
	err := Slope(context.Background(), p, Dataset{Name: "in.tiff"}, "out.tiff", (&SlopeOptions{}).SetInputBand(-1))
	require.ErrorIs(t, err, ErrInvalidBand)
	assert.Equal(t, "", p.mode)
}
