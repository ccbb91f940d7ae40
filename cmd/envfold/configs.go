package main

import (
	"bufio"
	"io"
	"os"

	"github.com/envfold/go-envfold/encode"
	"github.com/envfold/go-envfold/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Export bool `cli:"name=export desc='accept export-prefixed assignments'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Export {
		return []parse.ParseOption{parse.ParseExport()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type MergeConfig struct {
	*MainConfig

	Dest     string `cli:"name=dest aliases=d desc='destination file, merged last and written back'"`
	Strategy string `cli:"name=strategy aliases=s desc='conflict strategy: overwrite, keep, prompt'"`
	NoBackup bool   `cli:"name=nobackup desc='skip the destination backup'"`

	Merge *cli.Command

	stdin *bufio.Scanner
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Raw bool `cli:"name=r desc='print the full key=value line'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='expr filter over key, value, comments'"`
	Keys  bool   `cli:"name=keys desc='print keys only'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Format string `cli:"name=format aliases=f desc='output format: yaml or json'"`

	Export *cli.Command
}
