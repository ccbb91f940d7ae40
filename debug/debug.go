package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	File  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ENVFOLD_DEBUG_PARSE")
	d.Merge = boolEnv("ENVFOLD_DEBUG_MERGE")
	d.File = boolEnv("ENVFOLD_DEBUG_FILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func File() bool {
	return d.File
}
