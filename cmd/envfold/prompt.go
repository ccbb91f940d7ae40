package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/envfold/go-envfold/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

// promptKeep asks whether the destination's value should be kept for a
// conflicting key. Conflict lines are shown in the same quoted form the
// serializer would emit.
func promptKeep(cfg *MergeConfig, cc *cli.Context, key, oldV, newV string) (bool, error) {
	fmt.Fprintf(cc.Out, "conflict for %s:\n", key)
	fmt.Fprintf(cc.Out, "  current:  %s\n", color.RedString("%s", key+"="+token.Quote(oldV)))
	fmt.Fprintf(cc.Out, "  incoming: %s\n", color.GreenString("%s", key+"="+token.Quote(newV)))
	fmt.Fprintf(cc.Out, "keep current? [y/N] ")
	if cfg.stdin == nil {
		cfg.stdin = bufio.NewScanner(cc.In)
	}
	if !cfg.stdin.Scan() {
		if err := cfg.stdin.Err(); err != nil {
			return false, err
		}
		return false, fmt.Errorf("merge cancelled")
	}
	ans := strings.ToLower(strings.TrimSpace(cfg.stdin.Text()))
	return ans == "y" || ans == "yes", nil
}
