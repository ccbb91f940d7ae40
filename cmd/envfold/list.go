package main

import (
	"fmt"

	"github.com/envfold/go-envfold/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

type listEnv struct {
	Key      string   `expr:"key"`
	Value    string   `expr:"value"`
	Comments []string `expr:"comments"`
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.Env(listEnv{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: invalid -where expression %q: %v", cli.ErrUsage, cfg.Where, err)
		}
	}
	for _, a := range args {
		doc, err := loadArg(cfg.MainConfig, cc, a)
		if err != nil {
			return err
		}
		if err := listDoc(cfg, cc, doc, prg); err != nil {
			return err
		}
	}
	return nil
}

func listDoc(cfg *ListConfig, cc *cli.Context, doc *ir.Doc, prg *vm.Program) error {
	for _, v := range doc.Vars() {
		if prg != nil {
			res, err := expr.Run(prg, listEnv{
				Key:      v.Key,
				Value:    v.Value,
				Comments: v.Comments,
			})
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", v.Key, err)
			}
			if keep, ok := res.(bool); !ok || !keep {
				continue
			}
		}
		if cfg.Keys {
			fmt.Fprintln(cc.Out, v.Key)
			continue
		}
		fmt.Fprintln(cc.Out, v.Raw)
	}
	return nil
}
