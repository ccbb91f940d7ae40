package main

import (
	"fmt"

	"github.com/envfold/go-envfold/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, a := range args {
		doc, err := loadArg(cfg.MainConfig, cc, a)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
