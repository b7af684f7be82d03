package godem

import "context"

// AspectOptions configures an Aspect computation. The zero value lets the
// processing engine apply its own defaults for every parameter.
type AspectOptions struct {
	demOptions
	alg           GradientAlg
	algSet        bool
	trigonometric *bool
	zeroForFlat   *bool
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *AspectOptions) SetInputBand(band int) *AspectOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *AspectOptions) SetComputeEdges(computeEdges bool) *AspectOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name.
func (o *AspectOptions) SetOutputFormat(format string) *AspectOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *AspectOptions) SetAdditionalOptions(options ArgList) *AspectOptions {
	o.additional = options
	return o
}

// SetAlgorithm selects the aspect computation algorithm.
func (o *AspectOptions) SetAlgorithm(alg GradientAlg) *AspectOptions {
	o.alg, o.algSet = alg, true
	return o
}

// Algorithm returns the selected aspect computation algorithm, or false if
// the engine default applies.
func (o *AspectOptions) Algorithm() (GradientAlg, bool) {
	return o.alg, o.algSet
}

// SetTrigonometric returns trigonometric angles (0 east, counterclockwise)
// instead of azimuth angles (0 north, clockwise) when true. Azimuth being
// the engine default, only a true value emits a switch.
func (o *AspectOptions) SetTrigonometric(trigonometric bool) *AspectOptions {
	o.trigonometric = &trigonometric
	return o
}

// Trigonometric returns the value set with SetTrigonometric, or false if it
// was never called.
func (o *AspectOptions) Trigonometric() (bool, bool) {
	if o.trigonometric == nil {
		return false, false
	}
	return *o.trigonometric, true
}

// SetZeroForFlat writes aspect 0 instead of nodata for flat areas when true.
// Only a true value emits a switch.
func (o *AspectOptions) SetZeroForFlat(zeroForFlat bool) *AspectOptions {
	o.zeroForFlat = &zeroForFlat
	return o
}

// ZeroForFlat returns the value set with SetZeroForFlat, or false if it was
// never called.
func (o *AspectOptions) ZeroForFlat() (bool, bool) {
	if o.zeroForFlat == nil {
		return false, false
	}
	return *o.zeroForFlat, true
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem aspect routine.
func (o *AspectOptions) OptionList() (ArgList, error) {
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
	if o.trigonometric != nil && *o.trigonometric {
		if err := opts.Append("-trigonometric"); err != nil {
			return ArgList{}, err
		}
	}
	if o.zeroForFlat != nil && *o.zeroForFlat {
		if err := opts.Append("-zero_for_flat"); err != nil {
			return ArgList{}, err
		}
	}
	return opts, nil
}

// Aspect computes the aspect of the elevation raster ds through p, writing
// the result to dstDS. A nil opts uses the engine defaults.
func Aspect(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *AspectOptions) error {
	if opts == nil {
		opts = &AspectOptions{}
	}
	return demProcess(ctx, p, "aspect", ds, dstDS, opts)
}
