package decode

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/debug"
	"github.com/exfmt/rangefinder/format"
)

// Decode parses a serialized tree document into an ast node.
func Decode(data []byte, opts ...Option) (ast.Node, error) {
	o := &decodeOpts{format: format.JSONFormat}
	for _, opt := range opts {
		opt(o)
	}
	w := &wireNode{}
	switch o.format {
	case format.YAMLFormat:
		if err := yaml.Unmarshal(data, w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		if err := json.Unmarshal(data, w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	n, err := build(w)
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		debug.Logf("decode: %s root, %d bytes\n", n.Kind().String(), len(data))
	}
	return n, nil
}

// DecodeFile reads and decodes path, guessing the format from its suffix
// unless an explicit format option is given.
func DecodeFile(path string, opts ...Option) (ast.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o := &decodeOpts{format: format.FromSuffix(path)}
	for _, opt := range opts {
		opt(o)
	}
	return Decode(data, DecodeFormat(o.format))
}

type wireNode struct {
	Kind string    `json:"kind" yaml:"kind"`
	Meta *ast.Meta `json:"meta,omitempty" yaml:"meta,omitempty"`

	Token     string         `json:"token,omitempty" yaml:"token,omitempty"`
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Value     string         `json:"value,omitempty" yaml:"value,omitempty"`
	Base      *wireNode      `json:"base,omitempty" yaml:"base,omitempty"`
	Path      []string       `json:"path,omitempty" yaml:"path,omitempty"`
	Operands  []*wireNode    `json:"operands,omitempty" yaml:"operands,omitempty"`
	Args      []*wireNode    `json:"args,omitempty" yaml:"args,omitempty"`
	Receiver  *wireNode      `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	NamePos   *ast.Position  `json:"name_pos,omitempty" yaml:"name_pos,omitempty"`
	Parens    bool           `json:"parens,omitempty" yaml:"parens,omitempty"`
	Target    *wireNode      `json:"target,omitempty" yaml:"target,omitempty"`
	Key       *wireNode      `json:"key,omitempty" yaml:"key,omitempty"`
	Val       *wireNode      `json:"val,omitempty" yaml:"val,omitempty"`
	Items     []*wireNode    `json:"items,omitempty" yaml:"items,omitempty"`
	Pattern   *wireNode      `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Body      *wireNode      `json:"body,omitempty" yaml:"body,omitempty"`
	Exprs     []*wireNode    `json:"exprs,omitempty" yaml:"exprs,omitempty"`
	Elems     []*wireNode    `json:"elems,omitempty" yaml:"elems,omitempty"`
	Segments  []*wireSegment `json:"segments,omitempty" yaml:"segments,omitempty"`
	Letter    string         `json:"letter,omitempty" yaml:"letter,omitempty"`
	Modifiers string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

type wireSegment struct {
	Text *string   `json:"text,omitempty" yaml:"text,omitempty"`
	Expr *wireNode `json:"expr,omitempty" yaml:"expr,omitempty"`
	Meta *ast.Meta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

func (w *wireNode) meta() ast.Meta {
	if w.Meta == nil {
		return ast.Meta{}
	}
	return *w.Meta
}

func build(w *wireNode) (ast.Node, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: null node", ErrDecode)
	}
	switch w.Kind {
	case "number":
		return ast.NewNumber(w.meta(), w.Token), nil
	case "atom":
		return ast.NewAtom(w.meta(), w.Name), nil
	case "string":
		return ast.NewString(w.meta(), w.Value), nil
	case "var":
		return ast.NewVar(w.meta(), w.Name), nil
	case "qualname":
		var base ast.Node
		if w.Base != nil {
			var err error
			base, err = build(w.Base)
			if err != nil {
				return nil, err
			}
		}
		if len(w.Path) == 0 {
			return nil, fmt.Errorf("%w: qualname without path", ErrDecode)
		}
		return ast.NewQualName(w.meta(), base, w.Path...), nil
	case "op":
		operands, err := buildAll(w.Operands)
		if err != nil {
			return nil, err
		}
		if err := checkOp(w.Name, len(operands)); err != nil {
			return nil, err
		}
		return ast.NewOpCall(w.meta(), w.Name, operands...), nil
	case "call":
		args, err := buildAll(w.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewCall(w.meta(), w.Name, args...), nil
	case "dotcall":
		if w.Receiver == nil {
			return nil, fmt.Errorf("%w: dotcall without receiver", ErrDecode)
		}
		receiver, err := build(w.Receiver)
		if err != nil {
			return nil, err
		}
		args, err := buildAll(w.Args)
		if err != nil {
			return nil, err
		}
		namePos := ast.Position{}
		if w.NamePos != nil {
			namePos = *w.NamePos
		}
		return ast.NewDotCall(w.meta(), receiver, w.Name, namePos, w.Parens, args...), nil
	case "index":
		if w.Target == nil {
			return nil, fmt.Errorf("%w: index without target", ErrDecode)
		}
		target, err := build(w.Target)
		if err != nil {
			return nil, err
		}
		args, err := buildAll(w.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewIndex(w.meta(), target, args...), nil
	case "keyval":
		if w.Key == nil || w.Val == nil {
			return nil, fmt.Errorf("%w: keyval needs key and val", ErrDecode)
		}
		key, err := build(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := build(w.Val)
		if err != nil {
			return nil, err
		}
		return ast.NewKeyVal(w.meta(), key, val), nil
	case "seq":
		items, err := buildAll(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewSeq(w.meta(), items...), nil
	case "clause":
		if w.Pattern == nil || w.Body == nil {
			return nil, fmt.Errorf("%w: clause needs pattern and body", ErrDecode)
		}
		pattern, err := build(w.Pattern)
		if err != nil {
			return nil, err
		}
		body, err := build(w.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewClause(w.meta(), pattern, body), nil
	case "list":
		items, err := buildAll(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewList(w.meta(), items...), nil
	case "tuple":
		items, err := buildAll(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewTuple(w.meta(), items...), nil
	case "block":
		exprs, err := buildAll(w.Exprs)
		if err != nil {
			return nil, err
		}
		return ast.NewBlock(w.meta(), exprs...), nil
	case "bitstring":
		elems, err := buildAll(w.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewBitstring(w.meta(), elems...), nil
	case "interp":
		segs, err := buildSegments(w.Segments)
		if err != nil {
			return nil, err
		}
		return ast.NewInterp(w.meta(), segs...), nil
	case "sigil":
		segs, err := buildSegments(w.Segments)
		if err != nil {
			return nil, err
		}
		return ast.NewSigil(w.meta(), w.Letter, w.Modifiers, segs...), nil
	}
	return nil, fmt.Errorf("%w: unrecognized kind %q", ErrDecode, w.Kind)
}

func buildAll(ws []*wireNode) ([]ast.Node, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	res := make([]ast.Node, len(ws))
	for i, w := range ws {
		n, err := build(w)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func buildSegments(ws []*wireSegment) ([]ast.Segment, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	res := make([]ast.Segment, len(ws))
	for i, w := range ws {
		switch {
		case w == nil:
			return nil, fmt.Errorf("%w: null segment", ErrDecode)
		case w.Text != nil && w.Expr == nil:
			res[i] = ast.Text(*w.Text)
		case w.Expr != nil && w.Text == nil:
			expr, err := build(w.Expr)
			if err != nil {
				return nil, err
			}
			em := &ast.Embed{Expr: expr}
			if w.Meta != nil {
				em.M = *w.Meta
			}
			res[i] = em
		default:
			return nil, fmt.Errorf("%w: segment needs exactly one of text, expr", ErrDecode)
		}
	}
	return res, nil
}

// checkOp rejects operator applications the range engine has no layout rule
// for, so engine preconditions hold for decoded trees.
func checkOp(op string, arity int) error {
	switch arity {
	case 1:
		if ast.IsUnaryOp(op) {
			return nil
		}
	case 2:
		if ast.IsBinaryOp(op) {
			return nil
		}
	case 3:
		if op == ast.StepRangeOp {
			return nil
		}
	}
	if !ast.IsOp(op) {
		return fmt.Errorf("%w: unrecognized operator %q", ErrDecode, op)
	}
	return fmt.Errorf("%w: operator %q applied to %d operands", ErrDecode, op, arity)
}
