package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/geotoolbox/godem"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type batchFile struct {
	Steps []batchStep `yaml:"steps"`
}

// batchStep is one DEM operation of a batch job file. Fields that do not
// apply to the step's op are rejected by compile.
type batchStep struct {
	Op     string `yaml:"op"`
	Src    string `yaml:"src"`
	Dst    string `yaml:"dst"`
	Band   int    `yaml:"band"`
	Edges  bool   `yaml:"edges"`
	Format string `yaml:"format"`
	Extra  string `yaml:"extra"`

	Alg        string   `yaml:"alg"`
	Scale      *float64 `yaml:"scale"`
	Percentage bool     `yaml:"percentage"`

	Trigonometric bool `yaml:"trigonometric"`
	ZeroForFlat   bool `yaml:"zero_for_flat"`

	ZFactor  *float64 `yaml:"zfactor"`
	Azimuth  *float64 `yaml:"azimuth"`
	Altitude *float64 `yaml:"altitude"`
	Mode     string   `yaml:"mode"`
}

func parseBatchFile(raw []byte) (batchFile, error) {
	bf := batchFile{}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil {
		return batchFile{}, fmt.Errorf("malformed batch file: %w", err)
	}
	return bf, nil
}

// compile turns the step into its gdaldem mode, compiled option set and
// library entry point.
func (s *batchStep) compile() (string, godem.OptionLister, runFunc, error) {
	if s.Src == "" || s.Dst == "" {
		return "", nil, nil, fmt.Errorf("step %q: src and dst are required", s.Op)
	}
	extra := godem.ArgList{}
	if s.Extra != "" {
		var err error
		extra, err = godem.ParseArgList(s.Extra)
		if err != nil {
			return "", nil, nil, fmt.Errorf("step %q: %w", s.Op, err)
		}
	}
	switch s.Op {
	case "slope":
		opts := &godem.SlopeOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		if s.Alg != "" {
			opts.SetAlgorithm(godem.GradientAlg(s.Alg))
		}
		if s.Scale != nil {
			opts.SetScale(*s.Scale)
		}
		if s.Percentage {
			opts.SetPercentage(true)
		}
		return "slope", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.Slope(ctx, p, ds, dstDS, opts)
		}, nil
	case "aspect":
		opts := &godem.AspectOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		if s.Alg != "" {
			opts.SetAlgorithm(godem.GradientAlg(s.Alg))
		}
		if s.Trigonometric {
			opts.SetTrigonometric(true)
		}
		if s.ZeroForFlat {
			opts.SetZeroForFlat(true)
		}
		return "aspect", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.Aspect(ctx, p, ds, dstDS, opts)
		}, nil
	case "hillshade":
		opts := &godem.HillshadeOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		if s.Alg != "" {
			opts.SetAlgorithm(godem.GradientAlg(s.Alg))
		}
		if s.ZFactor != nil {
			opts.SetZFactor(*s.ZFactor)
		}
		if s.Scale != nil {
			opts.SetScale(*s.Scale)
		}
		if s.Azimuth != nil {
			opts.SetAzimuth(*s.Azimuth)
		}
		if s.Altitude != nil {
			opts.SetAltitude(*s.Altitude)
		}
		if s.Mode != "" {
			opts.SetShadingMode(godem.ShadingMode(s.Mode))
		}
		return "hillshade", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.Hillshade(ctx, p, ds, dstDS, opts)
		}, nil
	case "tri":
		opts := &godem.TriOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		if s.Alg != "" {
			opts.SetAlgorithm(godem.TriAlg(s.Alg))
		}
		return "TRI", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.TRI(ctx, p, ds, dstDS, opts)
		}, nil
	case "tpi":
		opts := &godem.TpiOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		return "TPI", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.TPI(ctx, p, ds, dstDS, opts)
		}, nil
	case "roughness":
		opts := &godem.RoughnessOptions{}
		if s.Band != 0 {
			opts.SetInputBand(s.Band)
		}
		opts.SetComputeEdges(s.Edges).SetOutputFormat(s.Format).SetAdditionalOptions(extra)
		return "roughness", opts, func(ctx context.Context, p godem.Processor, ds godem.Dataset, dstDS string) error {
			return godem.Roughness(ctx, p, ds, dstDS, opts)
		}, nil
	}
	return "", nil, nil, fmt.Errorf("unknown op %q", s.Op)
}

func batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [flags] jobfile.yaml",
		Short: "run every DEM operation listed in a yaml job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bf, err := parseBatchFile(raw)
			if err != nil {
				return err
			}
			for i := range bf.Steps {
				step := &bf.Steps[i]
				mode, opts, run, err := step.compile()
				if err != nil {
					return fmt.Errorf("step %d: %w", i+1, err)
				}
				if err := process(cmd, mode, step.Src, step.Dst, opts, run); err != nil {
					return fmt.Errorf("step %d (%s %s): %w", i+1, mode, step.Src, err)
				}
			}
			return nil
		},
	}
}
