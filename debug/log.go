package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

type JSON any

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, JSON:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
