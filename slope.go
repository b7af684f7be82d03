package godem

import "context"

// SlopeOptions configures a Slope computation. The zero value lets the
// processing engine apply its own defaults for every parameter.
type SlopeOptions struct {
	demOptions
	alg        GradientAlg
	algSet     bool
	scale      float64
	scaleSet   bool
	percentage *bool
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *SlopeOptions) SetInputBand(band int) *SlopeOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *SlopeOptions) SetComputeEdges(computeEdges bool) *SlopeOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name. The name is passed along
// verbatim.
func (o *SlopeOptions) SetOutputFormat(format string) *SlopeOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *SlopeOptions) SetAdditionalOptions(options ArgList) *SlopeOptions {
	o.additional = options
	return o
}

// SetAlgorithm selects the slope computation algorithm.
func (o *SlopeOptions) SetAlgorithm(alg GradientAlg) *SlopeOptions {
	o.alg, o.algSet = alg, true
	return o
}

// Algorithm returns the selected slope computation algorithm, or false if the
// engine default applies.
func (o *SlopeOptions) Algorithm() (GradientAlg, bool) {
	return o.alg, o.algSet
}

// SetScale applies a ratio of vertical to horizontal units. The engine
// assumes x, y and z units are identical; when elevation units differ from
// the ground units this ratio corrects the slope values. For LatLong rasters
// near the equator use 370400 for elevations in feet and 111120 for
// elevations in meters; away from the equator reproject first.
func (o *SlopeOptions) SetScale(scale float64) *SlopeOptions {
	o.scale, o.scaleSet = scale, true
	return o
}

// Scale returns the scaling factor set with SetScale, or false if none was
// set.
func (o *SlopeOptions) Scale() (float64, bool) {
	return o.scale, o.scaleSet
}

// SetPercentage expresses the slope as percent slope when true, as degrees
// otherwise. Degrees being the engine default, only a true value emits a
// switch.
func (o *SlopeOptions) SetPercentage(percentage bool) *SlopeOptions {
	o.percentage = &percentage
	return o
}

// Percentage returns the value set with SetPercentage, or false if it was
// never called.
func (o *SlopeOptions) Percentage() (bool, bool) {
	if o.percentage == nil {
		return false, false
	}
	return *o.percentage, true
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem slope routine. Compiling does not mutate o and yields the same
// list every time.
func (o *SlopeOptions) OptionList() (ArgList, error) {
	opts := ArgList{}
	if err := o.storeTo(&opts); err != nil {
		return ArgList{}, err
	}
	if o.algSet {
		tok, err := o.alg.gdalOption()
		if err != nil {
			return ArgList{}, &ConfigError{Option: "-alg", Err: err}
		}
		if err := opts.appendAll("-alg", tok); err != nil {
			return ArgList{}, err
		}
	}
	if o.scaleSet {
		if err := opts.appendAll("-s", formatFloat(o.scale)); err != nil {
			return ArgList{}, err
		}
	}
	if o.percentage != nil && *o.percentage {
		if err := opts.Append("-p"); err != nil {
			return ArgList{}, err
		}
	}
	return opts, nil
}

// Slope computes the slope of the elevation raster ds through p, writing the
// result to dstDS. A nil opts uses the engine defaults.
func Slope(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *SlopeOptions) error {
	if opts == nil {
		opts = &SlopeOptions{}
	}
	return demProcess(ctx, p, "slope", ds, dstDS, opts)
}
