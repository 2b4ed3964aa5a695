package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"volgrid/pkg/grid"
	"volgrid/pkg/vrf"
)

func slicesCmd() *cli.Command {
	var (
		basePath   string
		outputPath string
		nx, ny, nz int
	)

	return &cli.Command{
		Name:  "slices",
		Usage: "Assemble a VRF container from numbered int16 big-endian slice files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "base",
				Aliases:     []string{"b"},
				Usage:       "slice base path; slices are read from <base>.1 through <base>.N",
				Destination: &basePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output .vrf path (default: base with .vrf extension)",
				Destination: &outputPath,
			},
			&cli.IntFlag{Name: "nx", Usage: "samples per slice row", Destination: &nx, Required: true},
			&cli.IntFlag{Name: "ny", Usage: "rows per slice", Destination: &ny, Required: true},
			&cli.IntFlag{Name: "slices", Aliases: []string{"n"}, Usage: "number of slice files", Destination: &nz, Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dims := [3]int{nx, ny, nz}

			fmt.Printf("Loading %d slices of %d voxels from %s...\n", dims[2], dims[0]*dims[1], basePath)
			field, ext, err := grid.LoadSlices(basePath, dims)
			if err != nil {
				return err
			}
			fmt.Printf("Sample range before normalization: [%g, %g]\n", ext.Min, ext.Max)

			if outputPath == "" {
				outputPath = basePath + ".vrf"
			}
			if err := vrf.Write(outputPath, field); err != nil {
				return err
			}
			fmt.Printf("Container written to %s\n", outputPath)
			return nil
		},
	}
}
