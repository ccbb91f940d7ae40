package encode

import (
	"github.com/envfold/go-envfold/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	SepColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Kind: ir.CommentKind, Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Kind: ir.VarKind, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.VarKind, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ir.VarKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	return colors
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(kind ir.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: kind, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
