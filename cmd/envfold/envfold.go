package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/envfold/go-envfold/envfile"
	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/parse"

	"github.com/scott-cotton/cli"
)

func envfoldMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadArg loads an env file argument, with "-" meaning stdin.
func loadArg(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Doc, error) {
	if arg != "-" {
		return envfile.Load(arg, cfg.parseOpts()...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("could not read stdin: %w", err)
	}
	return parse.Parse(d, cfg.parseOpts()...), nil
}
