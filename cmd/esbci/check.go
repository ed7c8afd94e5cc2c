package main

import (
	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Run various checks",
		Commands: []*cli.Command{
			{
				Name:   "fmt",
				Usage:  "Check rustfmt formatting",
				Action: checkFmt,
			},
			{
				Name:   "clippy",
				Usage:  "Lint the crate using clippy and shellcheck",
				Action: checkClippy,
			},
			{
				Name:   "tests",
				Usage:  "Run the crate's tests",
				Action: checkTests,
			},
			{
				Name:   "uncommitted-changes",
				Usage:  "Check the working tree is clean in CI",
				Action: checkUncommittedChanges,
			},
		},
	}
}
