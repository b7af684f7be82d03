// Package godem builds and runs GDAL DEM processing invocations.
//
// Each processing mode (slope, aspect, hillshade, TRI, TPI, roughness) has a
// chainable options type that compiles to the exact switch list the gdaldem
// routine expects:
//
//	opts := (&godem.SlopeOptions{}).
//		SetInputBand(2).
//		SetAlgorithm(godem.ZevenbergenThorne).
//		SetScale(111120).
//		SetPercentage(true)
//	err := godem.Slope(ctx, &godem.ExecProcessor{}, godem.Dataset{Name: "dem.tif"}, "slope.tif", opts)
//
// The numeric work happens entirely in GDAL; this package only marshals
// options, manages the gdaldem process and translates errors.
package godem
