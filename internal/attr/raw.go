package attr

import (
	"go/ast"
	"go/token"
	"strconv"

	"builder-generator/internal/diagnostic"
)

// Raw is one unparsed annotation token: a struct tag key with its unquoted
// value. Pos is the position of the first byte of the value.
type Raw struct {
	Key   string
	Value string
	Pos   token.Position
}

// shift moves p n bytes to the right on the same line.
func shift(p token.Position, n int) token.Position {
	if !p.IsValid() {
		return p
	}

	p.Offset += n
	p.Column += n

	return p
}

// FromTag splits a struct tag literal into raw annotation tokens following
// the reflect.StructTag conventions. Malformed tag syntax is reported and
// stops the scan of that tag.
func FromTag(fset *token.FileSet, lit *ast.BasicLit) ([]Raw, diagnostic.List) {
	if lit == nil || len(lit.Value) < 2 {
		return nil, nil
	}

	base := fset.Position(lit.ValuePos)

	tag := lit.Value[1 : len(lit.Value)-1]
	if lit.Value[0] == '"' {
		unq, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, diagnostic.List{diagnostic.Errorf(base, CodeMalformedTag, "malformed struct tag: %v", err)}
		}

		tag = unq
	}

	return splitTag(tag, shift(base, 1))
}

// splitTag is the loop of reflect.StructTag.Lookup with offsets kept.
func splitTag(tag string, start token.Position) ([]Raw, diagnostic.List) {
	var (
		raws   []Raw
		cursor int
	)

	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}

		tag, cursor = tag[i:], cursor+i
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return raws, diagnostic.List{
				diagnostic.Errorf(shift(start, cursor), CodeMalformedTag, "malformed struct tag near %q", tag),
			}
		}

		key := tag[:i]
		tag, cursor = tag[i+1:], cursor+i+1

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}

		if i >= len(tag) {
			return raws, diagnostic.List{
				diagnostic.Errorf(shift(start, cursor), CodeMalformedTag, "unterminated value for struct tag key %q", key),
			}
		}

		quoted := tag[:i+1]

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return raws, diagnostic.List{
				diagnostic.Errorf(shift(start, cursor), CodeMalformedTag, "malformed value for struct tag key %q: %v", key, err),
			}
		}

		raws = append(raws, Raw{Key: key, Value: value, Pos: shift(start, cursor+1)})
		tag, cursor = tag[i+1:], cursor+i+1
	}

	return raws, nil
}
