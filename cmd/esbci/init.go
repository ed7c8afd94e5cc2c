package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/esb-rs/esbci/cmd/esbci/internal/initwizard"
	"github.com/urfave/cli/v3"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize esbci in a crate directory",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "Run the wizard with plain prompts instead of the interactive form",
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}

	var runner initwizard.FormRunner = initwizard.NewInteractiveRunner()
	if cmd.Bool("accessible") {
		runner = initwizard.NewAccessibleRunner(os.Stdout, os.Stdin)
	}

	return doInit(InitOptions{
		Dir:    absDir,
		Wizard: initwizard.New(initwizard.NewFormBuilder(), runner),
		Out:    os.Stdout,
	})
}

type InitOptions struct {
	Dir    string
	Wizard *initwizard.Wizard
	Out    io.Writer
}

func doInit(opts InitOptions) error {
	configPath := filepath.Join(opts.Dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.Newf("%s already exists in %s", config.FileName, opts.Dir)
	}

	result, err := opts.Wizard.Run(filepath.Base(opts.Dir))
	if err != nil {
		return errors.Wrap(err, "wizard failed")
	}

	cfg := config.InnerConfig{
		Version:       "1",
		Crate:         result.CrateIdent,
		FailurePolicy: result.FailurePolicy,
	}

	if err := config.WriteToFile(opts.Dir, cfg, config.NewWriter()); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "Wrote %s\n", configPath)

	return nil
}
