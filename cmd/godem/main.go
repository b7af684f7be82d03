package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dryRun      bool
	gsAnonymous bool
	tmpdir      string
	gdaldemBin  string
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "godem",
		Short:         "run GDAL DEM processing (slope, aspect, hillshade, TRI, TPI, roughness) with gs:// support",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the gdaldem invocation instead of running it")
	root.PersistentFlags().BoolVar(&gsAnonymous, "gs-anonymous", false, "access gs:// objects without credentials")
	root.PersistentFlags().StringVar(&tmpdir, "tmp", ".", "directory to use for temp files")
	root.PersistentFlags().StringVar(&gdaldemBin, "gdaldem", "", "gdaldem executable (defaults to $GDALDEM, then PATH)")
	root.AddCommand(
		slopeCommand(),
		aspectCommand(),
		hillshadeCommand(),
		triCommand(),
		tpiCommand(),
		roughnessCommand(),
		batchCommand(),
	)
	return root
}
