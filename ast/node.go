package ast

import "fmt"

// Kind identifies a node's syntactic category.
type Kind int

const (
	NumberKind Kind = iota
	AtomKind
	StringKind
	VarKind
	QualNameKind
	OpCallKind
	CallKind
	DotCallKind
	IndexKind
	KeyValKind
	SeqKind
	ClauseKind
	ListKind
	TupleKind
	BlockKind
	BitstringKind
	InterpKind
	SigilKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NumberKind:    "number",
		AtomKind:      "atom",
		StringKind:    "string",
		VarKind:       "var",
		QualNameKind:  "qualname",
		OpCallKind:    "op",
		CallKind:      "call",
		DotCallKind:   "dotcall",
		IndexKind:     "index",
		KeyValKind:    "keyval",
		SeqKind:       "seq",
		ClauseKind:    "clause",
		ListKind:      "list",
		TupleKind:     "tuple",
		BlockKind:     "block",
		BitstringKind: "bitstring",
		InterpKind:    "interp",
		SigilKind:     "sigil",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// Kinds returns all node kinds, in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, int(SigilKind)+1)
	for k := NumberKind; k <= SigilKind; k++ {
		res = append(res, k)
	}
	return res
}

// Node is a parsed syntax-tree node. Concrete types are the variants defined
// in this package; nothing else satisfies it.
type Node interface {
	Kind() Kind
	Meta() *Meta
	node()
}

// meta is embedded by every variant to satisfy Node.Meta.
type meta struct {
	M Meta
}

func (m *meta) Meta() *Meta { return &m.M }
func (m *meta) node()       {}

// Number is a numeric literal. Token is the rendered token text as it
// appears in source (`42`, `1_000`, `0xFF`, `3.14e-2`); its length, not the
// numeric value, determines the literal's width.
type Number struct {
	meta
	Token string
}

// Atom is a symbol literal. Quoted atoms carry their quote character in
// Meta.Delimiter; bare atoms have an empty delimiter.
type Atom struct {
	meta
	Name string
}

// Quoted reports whether the atom was written with a quoted name.
func (a *Atom) Quoted() bool { return a.M.Delimiter != "" }

// String is a plain string literal without embedded expressions. Value is
// the literal content; Meta.Delimiter distinguishes single-line from
// multi-line (triple) delimiters.
type String struct {
	meta
	Value string
}

// Var is an identifier reference.
type Var struct {
	meta
	Name string
}

// QualName is a dotted qualified name. Base is non-nil when the leading
// segment is itself an expression; Segments are the literal segment texts.
// Meta.Last locates the final segment.
type QualName struct {
	meta
	Base     Node
	Segments []string
}

// OpCall is an operator application. Whether Op is unary or binary is
// decided by the classifier (OpKind); arity and classification must agree.
type OpCall struct {
	meta
	Op       string
	Operands []Node
}

// Call is an unqualified call. A parenthesized call records its closing
// parenthesis in Meta.Closing; a block construct records its end keyword in
// Meta.End; Meta.NoParens marks paren-free calls.
type Call struct {
	meta
	Name string
	Args []Node
}

// DotCall is a qualified call: receiver, dot, identifier, then arguments.
// NamePos is the identifier's own position, needed when there are no
// arguments and no closing token.
type DotCall struct {
	meta
	Receiver Node
	Name     string
	NamePos  Position
	Args     []Node
	Parens   bool
}

// Index is bracket indexing applied to a target expression. The closing
// bracket is recorded in Meta.Closing.
type Index struct {
	meta
	Target Node
	Args   []Node
}

// KeyVal is a two-element key-value pair.
type KeyVal struct {
	meta
	Key Node
	Val Node
}

// Seq is a bare ordered sequence of nodes, valid only as a partial list or
// a clause argument list. An empty Seq violates the input contract.
type Seq struct {
	meta
	Items []Node
}

// Clause is a pattern -> body clause.
type Clause struct {
	meta
	Pattern Node
	Body    Node
}

// List is a bracketed list; Meta.Closing locates the closing bracket.
type List struct {
	meta
	Items []Node
}

// Tuple is a braced tuple; Meta.Closing locates the closing brace.
type Tuple struct {
	meta
	Items []Node
}

// Block is a grouped expression sequence. It may be parenthesized
// (Meta.Closing), terminated by an end keyword (Meta.End), or bare, in which
// case it spans to its last expression.
type Block struct {
	meta
	Exprs []Node
}

// Bitstring is a raw bit-level literal; Meta.Closing locates the start of
// its two-character closer.
type Bitstring struct {
	meta
	Elems []Node
}

// Interp is an interpolated string or symbol literal composed of alternating
// text and embedded-expression segments. Meta.Delimiter is required.
type Interp struct {
	meta
	Segments []Segment
}

// Sigil is a custom literal form: a prefix letter, an interpolated body and
// trailing modifier letters. Meta.Delimiter is required.
type Sigil struct {
	meta
	Letter    string
	Segments  []Segment
	Modifiers string
}

func (*Number) Kind() Kind    { return NumberKind }
func (*Atom) Kind() Kind      { return AtomKind }
func (*String) Kind() Kind    { return StringKind }
func (*Var) Kind() Kind       { return VarKind }
func (*QualName) Kind() Kind  { return QualNameKind }
func (*OpCall) Kind() Kind    { return OpCallKind }
func (*Call) Kind() Kind      { return CallKind }
func (*DotCall) Kind() Kind   { return DotCallKind }
func (*Index) Kind() Kind     { return IndexKind }
func (*KeyVal) Kind() Kind    { return KeyValKind }
func (*Seq) Kind() Kind       { return SeqKind }
func (*Clause) Kind() Kind    { return ClauseKind }
func (*List) Kind() Kind      { return ListKind }
func (*Tuple) Kind() Kind     { return TupleKind }
func (*Block) Kind() Kind     { return BlockKind }
func (*Bitstring) Kind() Kind { return BitstringKind }
func (*Interp) Kind() Kind    { return InterpKind }
func (*Sigil) Kind() Kind     { return SigilKind }

// Constructors. Composite literals cannot reach the embedded metadata, so
// trees are built through these.

func NewNumber(m Meta, token string) *Number {
	n := &Number{Token: token}
	n.M = m
	return n
}

func NewAtom(m Meta, name string) *Atom {
	n := &Atom{Name: name}
	n.M = m
	return n
}

func NewString(m Meta, value string) *String {
	n := &String{Value: value}
	n.M = m
	return n
}

func NewVar(m Meta, name string) *Var {
	n := &Var{Name: name}
	n.M = m
	return n
}

func NewQualName(m Meta, base Node, segments ...string) *QualName {
	n := &QualName{Base: base, Segments: segments}
	n.M = m
	return n
}

func NewOpCall(m Meta, op string, operands ...Node) *OpCall {
	n := &OpCall{Op: op, Operands: operands}
	n.M = m
	return n
}

func NewCall(m Meta, name string, args ...Node) *Call {
	n := &Call{Name: name, Args: args}
	n.M = m
	return n
}

func NewDotCall(m Meta, receiver Node, name string, namePos Position, parens bool, args ...Node) *DotCall {
	n := &DotCall{Receiver: receiver, Name: name, NamePos: namePos, Parens: parens, Args: args}
	n.M = m
	return n
}

func NewIndex(m Meta, target Node, args ...Node) *Index {
	n := &Index{Target: target, Args: args}
	n.M = m
	return n
}

func NewKeyVal(m Meta, key, val Node) *KeyVal {
	n := &KeyVal{Key: key, Val: val}
	n.M = m
	return n
}

func NewSeq(m Meta, items ...Node) *Seq {
	n := &Seq{Items: items}
	n.M = m
	return n
}

func NewClause(m Meta, pattern, body Node) *Clause {
	n := &Clause{Pattern: pattern, Body: body}
	n.M = m
	return n
}

func NewList(m Meta, items ...Node) *List {
	n := &List{Items: items}
	n.M = m
	return n
}

func NewTuple(m Meta, items ...Node) *Tuple {
	n := &Tuple{Items: items}
	n.M = m
	return n
}

func NewBlock(m Meta, exprs ...Node) *Block {
	n := &Block{Exprs: exprs}
	n.M = m
	return n
}

func NewBitstring(m Meta, elems ...Node) *Bitstring {
	n := &Bitstring{Elems: elems}
	n.M = m
	return n
}

func NewInterp(m Meta, segments ...Segment) *Interp {
	n := &Interp{Segments: segments}
	n.M = m
	return n
}

func NewSigil(m Meta, letter string, modifiers string, segments ...Segment) *Sigil {
	n := &Sigil{Letter: letter, Modifiers: modifiers, Segments: segments}
	n.M = m
	return n
}

// Segment is one piece of an interpolated literal: either literal text or an
// embedded expression.
type Segment interface {
	segment()
}

// Text is a literal-text segment. It may contain newlines.
type Text string

func (Text) segment() {}

// Embed is an embedded-expression segment. Meta.Closing is the position of
// the expression's closing brace.
type Embed struct {
	M    Meta
	Expr Node
}

func (*Embed) segment() {}

// Children returns n's sub-nodes in source order. Embedded expressions of
// interpolated literals are included; literal text segments are not nodes.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Number, *Atom, *String, *Var:
		return nil
	case *QualName:
		if n.Base != nil {
			return []Node{n.Base}
		}
		return nil
	case *OpCall:
		return n.Operands
	case *Call:
		return n.Args
	case *DotCall:
		res := make([]Node, 0, len(n.Args)+1)
		res = append(res, n.Receiver)
		return append(res, n.Args...)
	case *Index:
		res := make([]Node, 0, len(n.Args)+1)
		res = append(res, n.Target)
		return append(res, n.Args...)
	case *KeyVal:
		return []Node{n.Key, n.Val}
	case *Seq:
		return n.Items
	case *Clause:
		res := make([]Node, 0, 2)
		if n.Pattern != nil {
			res = append(res, n.Pattern)
		}
		if n.Body != nil {
			res = append(res, n.Body)
		}
		return res
	case *List:
		return n.Items
	case *Tuple:
		return n.Items
	case *Block:
		return n.Exprs
	case *Bitstring:
		return n.Elems
	case *Interp:
		return segmentExprs(n.Segments)
	case *Sigil:
		return segmentExprs(n.Segments)
	}
	return nil
}

func segmentExprs(segs []Segment) []Node {
	var res []Node
	for _, seg := range segs {
		if em, ok := seg.(*Embed); ok {
			res = append(res, em.Expr)
		}
	}
	return res
}

// Visit walks the tree rooted at n in source order, calling f before and
// after each node's children. A false pre-order return skips the children.
func Visit(n Node, f func(n Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range Children(n) {
			if err := Visit(c, f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
