package main

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/geotoolbox/godem"
	"github.com/spf13/cobra"
)

type runFunc func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error

// process compiles opts, prints the invocation under --dry-run, and
// otherwise runs gdaldem with gs:// inputs and outputs staged through local
// temp files.
func process(cmd *cobra.Command, mode, src, dst string, opts godem.OptionLister, run runFunc) error {
	ctx := cmd.Context()
	list, err := opts.OptionList()
	if err != nil {
		return err
	}
	if dryRun {
		line := fmt.Sprintf("gdaldem %s %s %s", mode, src, dst)
		if list.Len() > 0 {
			line += " " + list.String()
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}
	ib, iobj := gsparse(src)
	ob, oobj := gsparse(dst)
	var st *stager
	if ib != "" || ob != "" {
		cl, err := newStorageClient(ctx)
		if err != nil {
			return fmt.Errorf("failed to create gcs storage client: %w", err)
		}
		st = &stager{cl: cl, tmpdir: tmpdir}
	}
	localSrc := src
	if ib != "" {
		localSrc, err = st.stageIn(ctx, ib, iobj)
		if err != nil {
			return err
		}
		defer os.Remove(localSrc)
	}
	localDst := dst
	if ob != "" {
		tmpf, err := os.CreateTemp(tmpdir, "*"+path.Ext(oobj))
		if err != nil {
			return err
		}
		tmpf.Close()
		localDst = tmpf.Name()
		defer os.Remove(localDst)
	}
	p := &godem.ExecProcessor{Binary: gdaldemBin}
	if err := run(ctx, p, godem.Dataset{Name: localSrc}, localDst); err != nil {
		return err
	}
	if ob != "" {
		return st.stageOut(ctx, localDst, ob, oobj)
	}
	return nil
}

type commonFlags struct {
	band   int
	edges  bool
	format string
	extra  string
}

func (c *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&c.band, "band", "b", 0, "input band to process (1-indexed, defaults to all bands)")
	cmd.Flags().BoolVar(&c.edges, "compute-edges", false, "compute values at raster edges")
	cmd.Flags().StringVar(&c.format, "of", "", "output format driver name")
	cmd.Flags().StringVar(&c.extra, "extra", "", "extra gdaldem switches, merged verbatim")
}

func (c *commonFlags) extraList() (godem.ArgList, error) {
	if c.extra == "" {
		return godem.ArgList{}, nil
	}
	return godem.ParseArgList(c.extra)
}

func slopeCommand() *cobra.Command {
	common := commonFlags{}
	var (
		alg        string
		scale      float64
		percentage bool
	)
	cmd := &cobra.Command{
		Use:   "slope [flags] source dest",
		Short: "compute slope from a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.SlopeOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			if alg != "" {
				opts.SetAlgorithm(godem.GradientAlg(alg))
			}
			if cmd.Flags().Changed("scale") {
				opts.SetScale(scale)
			}
			if percentage {
				opts.SetPercentage(true)
			}
			return process(cmd, "slope", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.Slope(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	cmd.Flags().StringVar(&alg, "alg", "", "gradient algorithm (Horn or ZevenbergenThorne)")
	cmd.Flags().Float64VarP(&scale, "scale", "s", 0, "ratio of vertical to horizontal units")
	cmd.Flags().BoolVarP(&percentage, "percentage", "p", false, "express slope as percent instead of degrees")
	return cmd
}

func aspectCommand() *cobra.Command {
	common := commonFlags{}
	var (
		alg           string
		trigonometric bool
		zeroForFlat   bool
	)
	cmd := &cobra.Command{
		Use:   "aspect [flags] source dest",
		Short: "compute aspect from a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.AspectOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			if alg != "" {
				opts.SetAlgorithm(godem.GradientAlg(alg))
			}
			if trigonometric {
				opts.SetTrigonometric(true)
			}
			if zeroForFlat {
				opts.SetZeroForFlat(true)
			}
			return process(cmd, "aspect", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.Aspect(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	cmd.Flags().StringVar(&alg, "alg", "", "gradient algorithm (Horn or ZevenbergenThorne)")
	cmd.Flags().BoolVar(&trigonometric, "trigonometric", false, "return trigonometric angles instead of azimuths")
	cmd.Flags().BoolVar(&zeroForFlat, "zero-for-flat", false, "return 0 instead of nodata for flat areas")
	return cmd
}

func hillshadeCommand() *cobra.Command {
	common := commonFlags{}
	var (
		alg      string
		zFactor  float64
		scale    float64
		azimuth  float64
		altitude float64
		mode     string
	)
	cmd := &cobra.Command{
		Use:   "hillshade [flags] source dest",
		Short: "compute a shaded relief from a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.HillshadeOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			if alg != "" {
				opts.SetAlgorithm(godem.GradientAlg(alg))
			}
			if cmd.Flags().Changed("zfactor") {
				opts.SetZFactor(zFactor)
			}
			if cmd.Flags().Changed("scale") {
				opts.SetScale(scale)
			}
			if cmd.Flags().Changed("azimuth") {
				opts.SetAzimuth(azimuth)
			}
			if cmd.Flags().Changed("altitude") {
				opts.SetAltitude(altitude)
			}
			if mode != "" {
				opts.SetShadingMode(godem.ShadingMode(mode))
			}
			return process(cmd, "hillshade", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.Hillshade(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	cmd.Flags().StringVar(&alg, "alg", "", "gradient algorithm (Horn or ZevenbergenThorne)")
	cmd.Flags().Float64VarP(&zFactor, "zfactor", "z", 0, "elevation pre-multiplication factor")
	cmd.Flags().Float64VarP(&scale, "scale", "s", 0, "ratio of vertical to horizontal units")
	cmd.Flags().Float64Var(&azimuth, "azimuth", 0, "azimuth of the light, in degrees")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "altitude of the light, in degrees")
	cmd.Flags().StringVar(&mode, "mode", "", "shading mode (combined, multidirectional or igor)")
	return cmd
}

func triCommand() *cobra.Command {
	common := commonFlags{}
	var alg string
	cmd := &cobra.Command{
		Use:   "tri [flags] source dest",
		Short: "compute the Terrain Ruggedness Index of a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.TriOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			if alg != "" {
				opts.SetAlgorithm(godem.TriAlg(alg))
			}
			return process(cmd, "TRI", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.TRI(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	cmd.Flags().StringVar(&alg, "alg", "", "TRI algorithm (Wilson or Riley)")
	return cmd
}

func tpiCommand() *cobra.Command {
	common := commonFlags{}
	cmd := &cobra.Command{
		Use:   "tpi [flags] source dest",
		Short: "compute the Topographic Position Index of a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.TpiOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			return process(cmd, "TPI", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.TPI(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	return cmd
}

func roughnessCommand() *cobra.Command {
	common := commonFlags{}
	cmd := &cobra.Command{
		Use:   "roughness [flags] source dest",
		Short: "compute the roughness of a DEM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := common.extraList()
			if err != nil {
				return err
			}
			opts := &godem.RoughnessOptions{}
			if common.band != 0 {
				opts.SetInputBand(common.band)
			}
			opts.SetComputeEdges(common.edges).
				SetOutputFormat(common.format).
				SetAdditionalOptions(extra)
			return process(cmd, "roughness", args[0], args[1], opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
				return godem.Roughness(ctx, p, ds, dstDS, opts)
			})
		},
	}
	common.register(cmd)
	return cmd
}
