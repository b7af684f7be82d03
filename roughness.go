package godem

import "context"

// RoughnessOptions configures a Roughness computation. Roughness has no
// operation specific parameters; the zero value lets the processing engine
// apply its own defaults.
type RoughnessOptions struct {
	demOptions
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *RoughnessOptions) SetInputBand(band int) *RoughnessOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *RoughnessOptions) SetComputeEdges(computeEdges bool) *RoughnessOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name.
func (o *RoughnessOptions) SetOutputFormat(format string) *RoughnessOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *RoughnessOptions) SetAdditionalOptions(options ArgList) *RoughnessOptions {
	o.additional = options
	return o
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem roughness routine.
func (o *RoughnessOptions) OptionList() (ArgList, error) {
	opts := ArgList{}
	if err := o.storeTo(&opts); err != nil {
		return ArgList{}, err
	}
	return opts, nil
}

// Roughness computes the roughness (largest difference between a central
// pixel and its surrounding cells) of the elevation raster ds through p,
// writing the result to dstDS. A nil opts uses the engine defaults.
func Roughness(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *RoughnessOptions) error {
	if opts == nil {
		opts = &RoughnessOptions{}
	}
	return demProcess(ctx, p, "roughness", ds, dstDS, opts)
}
