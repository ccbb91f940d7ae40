package main

import (
	"fmt"

	"github.com/envfold/go-envfold"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	from, err := loadArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	diffs := envfold.Diff(from, to)
	if !envfold.HasChanges(diffs) {
		return nil
	}
	if len(cfg.encOpts(cc.Out)) == 0 {
		fmt.Fprint(cc.Out, envfold.DiffText(diffs))
		return cli.ExitCodeErr(1)
	}
	for _, d := range diffs {
		ln := d.Text
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprint(cc.Out, color.GreenString("%s", ln))
		case diffpatch.DiffDelete:
			fmt.Fprint(cc.Out, color.RedString("%s", ln))
		default:
			fmt.Fprint(cc.Out, ln)
		}
	}
	return cli.ExitCodeErr(1)
}
