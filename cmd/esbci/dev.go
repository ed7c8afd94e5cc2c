package main

import (
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/urfave/cli/v3"
)

func devCmd() *cli.Command {
	return &cli.Command{
		Name:  "dev",
		Usage: "Development commands",
		Commands: []*cli.Command{
			{
				Name:   "fmt",
				Usage:  "Format the crate using rustfmt",
				Action: devFmt,
			},
			{
				Name:   "docs",
				Usage:  "Build the crate documentation",
				Action: config.RunWithConfig(devDocs),
			},
		},
	}
}
