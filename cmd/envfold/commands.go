package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "envfold").
		WithSynopsis("envfold [opts] command [opts]").
		WithDescription("envfold is a tool for merging env files without losing their structure.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return envfoldMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg),
			ExportCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Strategy: "overwrite"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [-dest <file>] [-strategy <s>] <sources...>").
		WithDescription("Merge env files; later sources win on conflicting keys.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view env files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [file]").
		WithDescription("print a variable's value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where <expr>] [files]").
		WithDescription("list variables, optionally filtered with an expr expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("line diff between two env files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, Format: "yaml"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("x").
		WithSynopsis("export [-format yaml|json] [file]").
		WithDescription("export variables as a yaml or json mapping").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}
