package main

import (
	"context"

	"github.com/bitfield/script"
	"github.com/urfave/cli/v3"
)

func checkFmt(ctx context.Context, cmd *cli.Command) error {
	_, err := script.Exec("cargo fmt --check").Stdout()
	return err
}
