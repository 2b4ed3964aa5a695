package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"volgrid/pkg/config"
	"volgrid/pkg/grid"
	"volgrid/pkg/vrf"
)

func convertCmd() *cli.Command {
	var (
		inputPath  string
		outputPath string
		format     string
		encoding   string
		byteOrder  string
		configPath string
	)

	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a raw or ascii volume into a VRF container",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "source volume file (sidecars located next to it)",
				Destination: &inputPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output .vrf path (default: input with .vrf extension)",
				Destination: &outputPath,
			},
			&cli.StringFlag{Name: "format", Usage: "source format: raw or ascii", Destination: &format},
			&cli.StringFlag{Name: "encoding", Usage: "raw sample encoding", Destination: &encoding},
			&cli.StringFlag{Name: "byte-order", Usage: "raw byte order: big or little", Destination: &byteOrder},
			&cli.StringFlag{Name: "config", Usage: "YAML config file for defaults", Destination: &configPath, Value: "volgrid.yaml"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Ingest.Format
			}
			if encoding == "" {
				encoding = cfg.Ingest.Encoding
			}
			if byteOrder == "" {
				byteOrder = cfg.Ingest.ByteOrder
			}

			srcFormat, err := grid.ParseFormat(format)
			if err != nil {
				return err
			}
			enc, err := grid.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			order, err := grid.ParseOrder(byteOrder)
			if err != nil {
				return err
			}
			if outputPath == "" {
				outputPath = grid.SidecarPath(inputPath, ".vrf")
			}

			ingester := grid.NewIngester(&grid.Params{
				Path:     inputPath,
				Format:   srcFormat,
				Encoding: enc,
				Order:    order,
			})

			if cfg.Output.Verbose {
				fmt.Printf("Reading %s volume from %s...\n", srcFormat, inputPath)
			}
			field, ext, err := ingester.Ingest()
			if err != nil {
				return err
			}
			if cfg.Output.Verbose {
				d := field.Descriptor
				fmt.Printf("Grid: %dx%dx%d (%d voxels), scale %s\n",
					d.Dims[0], d.Dims[1], d.Dims[2], d.NumVoxels(), formatScale(d.Scale))
				fmt.Printf("Sample range before normalization: [%g, %g]\n", ext.Min, ext.Max)
			}

			if err := vrf.Write(outputPath, field); err != nil {
				return err
			}
			if cfg.Output.Verbose {
				fmt.Printf("Container written to %s\n", outputPath)
			}
			return nil
		},
	}
}

func formatScale(scale [3]float64) string {
	parts := make([]string, len(scale))
	for i, s := range scale {
		parts[i] = fmt.Sprintf("%g", s)
	}
	return strings.Join(parts, "x")
}
