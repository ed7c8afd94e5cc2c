package main

import (
	"context"
	"os"

	"github.com/esb-rs/esbci/cmd/esbci/internal/cmdexec"
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/urfave/cli/v3"
)

func devDocs(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	exec := cmdexec.New(cfg).
		WithOutput(os.Stdout, os.Stderr).
		WithEnv("RUSTDOCFLAGS", "-D warnings")

	return exec.Cargo(ctx, "doc", "--no-deps")
}
