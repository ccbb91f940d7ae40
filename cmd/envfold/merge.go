package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/envfold/go-envfold"
	"github.com/envfold/go-envfold/encode"
	"github.com/envfold/go-envfold/envfile"
	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/parse"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one source file", cli.ErrUsage)
	}
	switch cfg.Strategy {
	case "overwrite", "keep", "prompt":
	default:
		return fmt.Errorf("%w: unknown strategy %q", cli.ErrUsage, cfg.Strategy)
	}
	srcs := make([]*ir.Doc, 0, len(args))
	for _, a := range args {
		doc, err := loadArg(cfg.MainConfig, cc, a)
		if err != nil {
			return err
		}
		srcs = append(srcs, doc)
	}
	merged := envfold.Merge(srcs...)
	if cfg.Dest == "" {
		if err := encode.Encode(merged, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	}
	return mergeDest(cfg, cc, merged)
}

// mergeDest merges into an existing destination file, resolving per-key
// conflicts by strategy, and writes the result back with a backup.
func mergeDest(cfg *MergeConfig, cc *cli.Context, merged *ir.Doc) error {
	var (
		dest *ir.Doc
		orig []byte
	)
	d, err := os.ReadFile(cfg.Dest)
	switch {
	case err == nil:
		orig = d
		dest = parse.Parse(d, cfg.parseOpts()...)
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("could not read %q: %w", cfg.Dest, err)
	}

	res := merged
	if dest != nil {
		res = envfold.MergeTwo(dest, merged)
		if err := resolveConflicts(cfg, cc, dest, merged, res); err != nil {
			return err
		}
	}

	bak := ""
	if !cfg.NoBackup {
		if bak, err = envfile.Backup(cfg.Dest); err != nil {
			return err
		}
	}
	if err := envfile.Write(cfg.Dest, res); err != nil {
		return err
	}
	written, err := os.ReadFile(cfg.Dest)
	if err != nil {
		return err
	}
	changed := string(written) != string(orig)
	return envfile.CleanupBackup(bak, changed)
}

// resolveConflicts restores destination values in res for conflicting keys
// the strategy decides to keep. With strategy overwrite there is nothing to
// do: merged source values already won.
func resolveConflicts(cfg *MergeConfig, cc *cli.Context, dest, merged, res *ir.Doc) error {
	if cfg.Strategy == "overwrite" {
		return nil
	}
	for _, v := range merged.Vars() {
		old := envfold.FindVariable(dest, v.Key)
		if old == nil || old.Value == v.Value {
			continue
		}
		keep := true
		if cfg.Strategy == "prompt" {
			var err error
			keep, err = promptKeep(cfg, cc, v.Key, old.Value, v.Value)
			if err != nil {
				return err
			}
		}
		if !keep {
			continue
		}
		cur := envfold.FindVariable(res, v.Key)
		if cur == nil {
			continue
		}
		cur.SetValue(old.Value)
		cur.Comments = slices.Clone(old.Comments)
	}
	return nil
}
