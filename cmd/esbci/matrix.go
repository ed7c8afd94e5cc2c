package main

import (
	"context"
	"os"

	"github.com/esb-rs/esbci/cmd/esbci/internal/cmdexec"
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/esb-rs/esbci/cmd/esbci/internal/matrix"
	"github.com/urfave/cli/v3"
)

func matrixCmd() *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "Build the crate for every supported chip and target",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "keep-going",
				Usage: "Run the full matrix and report all failures instead of stopping at the first",
			},
		},
		Action: config.RunWithConfig(runMatrix),
	}
}

func runMatrix(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	policy := cfg.FailurePolicy()
	if cmd.Bool("keep-going") {
		policy = config.PolicyKeepGoing
	}

	var opts []matrix.Option
	if policy == config.PolicyKeepGoing {
		opts = append(opts, matrix.KeepGoing())
	}

	exec := cmdexec.New(cfg).WithOutput(os.Stdout, os.Stderr)
	runner := matrix.NewRunner(exec, os.Stdout, opts...)

	return runner.Run(ctx, matrix.Default())
}
