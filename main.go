package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	extractcmd "github.com/clipdish/recipe-clipper/internal/extract"
	scalecmd "github.com/clipdish/recipe-clipper/internal/scale"
	statscmd "github.com/clipdish/recipe-clipper/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "recipe-clipper",
		Usage: "extract structured recipes from web pages, then rescale or unit-convert them",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "fetch one or more recipe URLs and extract structured recipe records",
				ArgsUsage: "URL [URL...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to yaml config"},
					&cli.StringFlag{Name: "output-dir", Usage: "directory for recipe artifacts"},
					&cli.StringFlag{Name: "format", Usage: "artifact format: json or yaml"},
					&cli.StringFlag{Name: "db", Usage: "path to the sqlite database"},
					&cli.IntFlag{Name: "workers", Usage: "number of concurrent workers"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: extractcmd.Action,
			},
			{
				Name:  "scale",
				Usage: "rescale a stored recipe to a different batch size",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "recipe artifact to scale"},
					&cli.StringFlag{Name: "url", Usage: "source URL of a stored recipe"},
					&cli.StringFlag{Name: "db", Usage: "path to the sqlite database"},
					&cli.Float64Flag{Name: "multiplier", Required: true, Usage: "batch multiplier, e.g. 2 or 0.5"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
				},
				Action: scalecmd.ScaleAction,
			},
			{
				Name:  "convert",
				Usage: "convert a stored recipe's units between imperial and metric",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "recipe artifact to convert"},
					&cli.StringFlag{Name: "url", Usage: "source URL of a stored recipe"},
					&cli.StringFlag{Name: "db", Usage: "path to the sqlite database"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "target system: metric or imperial"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
				},
				Action: scalecmd.ConvertAction,
			},
			{
				Name:  "stats",
				Usage: "show the per-tier extraction distribution",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "path to the sqlite database"},
				},
				Action: statscmd.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
