package godem

import (
	"context"
	"fmt"
)

// TriAlg selects the Terrain Ruggedness Index computation algorithm.
type TriAlg string

const (
	// Wilson (Wilson et al 2007, Marine Geodesy 30:3-35) uses the mean
	// difference between a central pixel and its surrounding cells, and is
	// recommended for bathymetric use cases.
	Wilson TriAlg = "Wilson"
	// Riley (Riley, S.J., De Gloria, S.D., Elliot, R., 1999) uses the
	// square root of the sum of squared differences between a central
	// pixel and its surrounding cells, and is recommended for terrestrial
	// use cases. Only available in GDAL >= 3.3.
	Riley TriAlg = "Riley"
)

func (a TriAlg) gdalOption() (string, error) {
	switch a {
	case Wilson, Riley:
		return string(a), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
}

// TriOptions configures a TRI computation. The zero value lets the
// processing engine apply its own defaults for every parameter.
type TriOptions struct {
	demOptions
	alg    TriAlg
	algSet bool
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *TriOptions) SetInputBand(band int) *TriOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *TriOptions) SetComputeEdges(computeEdges bool) *TriOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name.
func (o *TriOptions) SetOutputFormat(format string) *TriOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *TriOptions) SetAdditionalOptions(options ArgList) *TriOptions {
	o.additional = options
	return o
}

// SetAlgorithm selects the TRI computation algorithm.
func (o *TriOptions) SetAlgorithm(alg TriAlg) *TriOptions {
	o.alg, o.algSet = alg, true
	return o
}

// Algorithm returns the selected TRI computation algorithm, or false if the
// engine default applies.
func (o *TriOptions) Algorithm() (TriAlg, bool) {
	return o.alg, o.algSet
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem TRI routine, targeting the version returned by AssumedVersion.
func (o *TriOptions) OptionList() (ArgList, error) {
	return o.optionList(AssumedVersion())
}

func (o *TriOptions) optionList(v LibVersion) (ArgList, error) {
	opts := ArgList{}
	if err := o.storeTo(&opts); err != nil {
		return ArgList{}, err
	}
	// Before gdal 3.3, Wilson is the only algorithm and gdaldem rejects
	// the -alg switch. The selection is kept but not passed along.
	if o.algSet && v.Supports(TRIAlgorithmSelection) {
		tok, err := o.alg.gdalOption()
		if err != nil {
			return ArgList{}, &ConfigError{Option: "-alg", Err: err}
		}
		if err := opts.appendAll("-alg", tok); err != nil {
			return ArgList{}, err
		}
	}
	return opts, nil
}

// TRI computes the Terrain Ruggedness Index of the elevation raster ds
// through p, writing the result to dstDS. A nil opts uses the engine
// defaults.
func TRI(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *TriOptions) error {
	if opts == nil {
		opts = &TriOptions{}
	}
	return demProcess(ctx, p, "TRI", ds, dstDS, opts)
}
