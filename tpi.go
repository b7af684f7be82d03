package godem

import "context"

// TpiOptions configures a Topographic Position Index computation. TPI has no
// operation specific parameters; the zero value lets the processing engine
// apply its own defaults.
type TpiOptions struct {
	demOptions
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *TpiOptions) SetInputBand(band int) *TpiOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *TpiOptions) SetComputeEdges(computeEdges bool) *TpiOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name.
func (o *TpiOptions) SetOutputFormat(format string) *TpiOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *TpiOptions) SetAdditionalOptions(options ArgList) *TpiOptions {
	o.additional = options
	return o
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem TPI routine.
func (o *TpiOptions) OptionList() (ArgList, error) {
	opts := ArgList{}
	if err := o.storeTo(&opts); err != nil {
		return ArgList{}, err
	}
	return opts, nil
}

// TPI computes the Topographic Position Index (difference between a central
// pixel and the mean of its surrounding cells) of the elevation raster ds
// through p, writing the result to dstDS. A nil opts uses the engine
// defaults.
func TPI(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *TpiOptions) error {
	if opts == nil {
		opts = &TpiOptions{}
	}
	return demProcess(ctx, p, "TPI", ds, dstDS, opts)
}
