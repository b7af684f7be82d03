package godem

import (
	"context"
	"errors"
)

// ShadingMode selects a non-default gdaldem hillshade shading combination.
type ShadingMode string

const (
	// CombinedShading combines slope and oblique shading
	CombinedShading ShadingMode = "combined"
	// MultidirectionalShading combines shading from 225, 270, 315 and 360
	// degree azimuths. Only available in GDAL >= 2.2.
	MultidirectionalShading ShadingMode = "multidirectional"
	// IgorShading works against overdark or overbright shades (Igor
	// Brejc's method). Only available in GDAL >= 3.0.
	IgorShading ShadingMode = "igor"
)

// HillshadeOptions configures a Hillshade computation. The zero value lets
// the processing engine apply its own defaults for every parameter.
type HillshadeOptions struct {
	demOptions
	alg         GradientAlg
	algSet      bool
	zFactor     float64
	zFactorSet  bool
	scale       float64
	scaleSet    bool
	azimuth     float64
	azimuthSet  bool
	altitude    float64
	altitudeSet bool
	mode        ShadingMode
	modeSet     bool
}

// SetInputBand selects the band to process. Bands start at 1. By default all
// bands are processed.
func (o *HillshadeOptions) SetInputBand(band int) *HillshadeOptions {
	o.band, o.bandSet = band, true
	return o
}

// SetComputeEdges makes the engine compute values at raster edges from
// approximated neighbor values.
func (o *HillshadeOptions) SetComputeEdges(computeEdges bool) *HillshadeOptions {
	o.computeEdges = computeEdges
	return o
}

// SetOutputFormat forces the named output driver instead of letting the
// engine guess one from the destination name.
func (o *HillshadeOptions) SetOutputFormat(format string) *HillshadeOptions {
	o.outputFormat = format
	return o
}

// SetAdditionalOptions supplies extra switches that are merged verbatim into
// the compiled list, after the common switches.
func (o *HillshadeOptions) SetAdditionalOptions(options ArgList) *HillshadeOptions {
	o.additional = options
	return o
}

// SetAlgorithm selects the gradient formula used for shading.
func (o *HillshadeOptions) SetAlgorithm(alg GradientAlg) *HillshadeOptions {
	o.alg, o.algSet = alg, true
	return o
}

// Algorithm returns the selected gradient formula, or false if the engine
// default applies.
func (o *HillshadeOptions) Algorithm() (GradientAlg, bool) {
	return o.alg, o.algSet
}

// SetZFactor pre-multiplies elevation values before shading.
func (o *HillshadeOptions) SetZFactor(zFactor float64) *HillshadeOptions {
	o.zFactor, o.zFactorSet = zFactor, true
	return o
}

// ZFactor returns the value set with SetZFactor, or false if none was set.
func (o *HillshadeOptions) ZFactor() (float64, bool) {
	return o.zFactor, o.zFactorSet
}

// SetScale applies a ratio of vertical to horizontal units, as in
// SlopeOptions.SetScale.
func (o *HillshadeOptions) SetScale(scale float64) *HillshadeOptions {
	o.scale, o.scaleSet = scale, true
	return o
}

// Scale returns the value set with SetScale, or false if none was set.
func (o *HillshadeOptions) Scale() (float64, bool) {
	return o.scale, o.scaleSet
}

// SetAzimuth sets the azimuth of the light, in degrees.
func (o *HillshadeOptions) SetAzimuth(azimuth float64) *HillshadeOptions {
	o.azimuth, o.azimuthSet = azimuth, true
	return o
}

// Azimuth returns the value set with SetAzimuth, or false if none was set.
func (o *HillshadeOptions) Azimuth() (float64, bool) {
	return o.azimuth, o.azimuthSet
}

// SetAltitude sets the altitude of the light above the horizon, in degrees.
func (o *HillshadeOptions) SetAltitude(altitude float64) *HillshadeOptions {
	o.altitude, o.altitudeSet = altitude, true
	return o
}

// Altitude returns the value set with SetAltitude, or false if none was set.
func (o *HillshadeOptions) Altitude() (float64, bool) {
	return o.altitude, o.altitudeSet
}

// SetShadingMode selects a non-default shading combination. Modes are
// mutually exclusive; setting one replaces a previously set one.
func (o *HillshadeOptions) SetShadingMode(mode ShadingMode) *HillshadeOptions {
	o.mode, o.modeSet = mode, true
	return o
}

// ShadingMode returns the selected shading combination, or false if the
// engine default applies.
func (o *HillshadeOptions) ShadingMode() (ShadingMode, bool) {
	return o.mode, o.modeSet
}

// OptionList compiles the option set into the switch list understood by the
// gdaldem hillshade routine, targeting the version returned by
// AssumedVersion. Unlike TRI, hillshade hard-fails on a shading mode the
// targeted version does not have, since the engine would reject the switch.
func (o *HillshadeOptions) OptionList() (ArgList, error) {
	return o.optionList(AssumedVersion())
}

func (o *HillshadeOptions) optionList(v LibVersion) (ArgList, error) {
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
	if o.zFactorSet {
		if err := opts.appendAll("-z", formatFloat(o.zFactor)); err != nil {
			return ArgList{}, err
		}
	}
	if o.scaleSet {
		if err := opts.appendAll("-s", formatFloat(o.scale)); err != nil {
			return ArgList{}, err
		}
	}
	if o.azimuthSet {
		if err := opts.appendAll("-az", formatFloat(o.azimuth)); err != nil {
			return ArgList{}, err
		}
	}
	if o.altitudeSet {
		if err := opts.appendAll("-alt", formatFloat(o.altitude)); err != nil {
			return ArgList{}, err
		}
	}
	if o.modeSet {
		switch o.mode {
		case CombinedShading:
		case MultidirectionalShading:
			if !v.Supports(HillshadeMultidirectional) {
				return ArgList{}, &ConfigError{Option: "-multidirectional", Err: ErrUnsupportedAlgorithm}
			}
		case IgorShading:
			if !v.Supports(HillshadeIgor) {
				return ArgList{}, &ConfigError{Option: "-igor", Err: ErrUnsupportedAlgorithm}
			}
		default:
			return ArgList{}, &ConfigError{Option: "-" + string(o.mode), Err: errors.New("unknown shading mode")}
		}
		if err := opts.Append("-" + string(o.mode)); err != nil {
			return ArgList{}, err
		}
	}
	return opts, nil
}

// Hillshade computes a shaded relief of the elevation raster ds through p,
// writing the result to dstDS. A nil opts uses the engine defaults.
func Hillshade(ctx context.Context, p Processor, ds Dataset, dstDS string, opts *HillshadeOptions) error {
	if opts == nil {
		opts = &HillshadeOptions{}
	}
	return demProcess(ctx, p, "hillshade", ds, dstDS, opts)
}
