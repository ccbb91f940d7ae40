package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: export takes at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	doc, err := loadArg(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	// later duplicates win, but first position is kept, matching merge
	// override semantics
	var ms yaml.MapSlice
	idx := map[string]int{}
	for _, v := range doc.Vars() {
		if i, ok := idx[v.Key]; ok {
			ms[i].Value = v.Value
			continue
		}
		idx[v.Key] = len(ms)
		ms = append(ms, yaml.MapItem{Key: v.Key, Value: v.Value})
	}
	var d []byte
	switch cfg.Format {
	case "yaml", "y":
		d, err = yaml.Marshal(ms)
	case "json", "j":
		d, err = yaml.MarshalWithOptions(ms, yaml.JSON())
	default:
		return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, cfg.Format)
	}
	if err != nil {
		return fmt.Errorf("could not export %s: %w", file, err)
	}
	_, err = cc.Out.Write(d)
	return err
}
