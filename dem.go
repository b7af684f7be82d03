// Copyright 2024 Geotoolbox
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package godem

import (
	"context"
	"fmt"
	"strconv"
)

// Dataset identifies the elevation raster a DEM operation reads from, by the
// name (file path or VSI connection string) the processing engine will open.
type Dataset struct {
	Name string
}

// Processor invokes the external DEM processing routine. mode is the gdaldem
// processing mode ("slope", "aspect", ...), switches the compiled option
// tokens in order. Implementations must not reorder switches.
//
// ExecProcessor drives the gdaldem executable; tests typically substitute a
// recording fake.
type Processor interface {
	DEMProcessing(ctx context.Context, mode string, srcDS string, dstDS string, switches []string) error
}

// demOptions holds the fields shared by every gdaldem processing mode.
type demOptions struct {
	band         int
	bandSet      bool
	computeEdges bool
	outputFormat string
	additional   ArgList
}

// storeTo emits the common switches, in the order gdaldem expects them:
// -compute_edges, then -b, then -of, then the caller supplied additional
// options verbatim. Operation specific switches come after.
func (o *demOptions) storeTo(opts *ArgList) error {
	if o.computeEdges {
		if err := opts.Append("-compute_edges"); err != nil {
			return err
		}
	}
	if o.bandSet {
		if o.band <= 0 {
			return &ConfigError{Option: "-b", Err: fmt.Errorf("%w: %d", ErrInvalidBand, o.band)}
		}
		if err := opts.appendAll("-b", strconv.Itoa(o.band)); err != nil {
			return err
		}
	}
	if o.outputFormat != "" {
		if err := opts.appendAll("-of", o.outputFormat); err != nil {
			return err
		}
	}
	return opts.Merge(o.additional)
}

// InputBand returns the band selected by SetInputBand, or false if all bands
// are processed.
func (o *demOptions) InputBand() (int, bool) {
	return o.band, o.bandSet
}

// ComputeEdges returns true if edge pixels will be computed from approximated
// neighbor values.
func (o *demOptions) ComputeEdges() bool {
	return o.computeEdges
}

// OutputFormat returns the output driver name, or "" if the engine picks one
// from the destination name.
func (o *demOptions) OutputFormat() string {
	return o.outputFormat
}

// AdditionalOptions returns the free form options merged into the compiled
// list.
func (o *demOptions) AdditionalOptions() ArgList {
	return o.additional
}

// GradientAlg selects the gradient formula used by the slope, aspect and
// hillshade modes.
type GradientAlg string

const (
	// Horn resists noise better and is recommended for rougher terrain
	Horn GradientAlg = "Horn"
	// ZevenbergenThorne works better on smooth terrain
	ZevenbergenThorne GradientAlg = "ZevenbergenThorne"
)

func (a GradientAlg) gdalOption() (string, error) {
	switch a {
	case Horn, ZevenbergenThorne:
		return string(a), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
}

// formatFloat renders a switch value with the shortest decimal representation
// that parses back to the same float64, e.g. 98473.0 renders as "98473".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// OptionLister is implemented by every options type of this package.
type OptionLister interface {
	OptionList() (ArgList, error)
}

// demProcess compiles opts and hands the result to p. Used by the Slope,
// Aspect, Hillshade, TRI, TPI and Roughness entry points.
func demProcess(ctx context.Context, p Processor, mode string, ds Dataset, dstDS string, opts OptionLister) error {
	list, err := opts.OptionList()
	if err != nil {
		return err
	}
	return p.DEMProcessing(ctx, mode, ds.Name, dstDS, list.Tokens())
}
