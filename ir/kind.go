package ir

import "fmt"

type Kind int

const (
	BlankKind Kind = iota
	CommentKind
	VarKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BlankKind:   "Blank",
		CommentKind: "Comment",
		VarKind:     "Var",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Blank":   BlankKind,
		"Comment": CommentKind,
		"Var":     VarKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		BlankKind,
		CommentKind,
		VarKind,
	}
}
