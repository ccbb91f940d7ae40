package main

import (
	"fmt"
	"os"

	"github.com/envfold/go-envfold"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a key and at most one file", cli.ErrUsage)
	}
	key := args[0]
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	doc, err := loadArg(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	v := envfold.FindVariable(doc, key)
	if v == nil {
		fmt.Fprintf(os.Stderr, "%s: not found\n", key)
		return cli.ExitCodeErr(1)
	}
	if cfg.Raw {
		fmt.Fprintln(cc.Out, v.Raw)
		return nil
	}
	fmt.Fprintln(cc.Out, v.Value)
	return nil
}
