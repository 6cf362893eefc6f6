package ast

// Operator classification. The tables are fixed: the parser only ever emits
// operator tags drawn from them, and the span package uses the predicates to
// pick the unary or binary layout rule. A few operators (+, -, +++, ---) are
// both unary and binary; operand count disambiguates.

// StepRangeOp is the three-operand stepped-range operator. It is neither
// unary nor binary; its span runs from the first operand to the third.
const StepRangeOp = "..//"

var unaryOps = map[string]bool{
	"@":   true,
	"+":   true,
	"-":   true,
	"!":   true,
	"^":   true,
	"not": true,
	"~~~": true,
	"&":   true,
}

var binaryOps = map[string]bool{
	"**":     true,
	"*":      true,
	"/":      true,
	"+":      true,
	"-":      true,
	"++":     true,
	"--":     true,
	"+++":    true,
	"---":    true,
	"..":     true,
	"<>":     true,
	"in":     true,
	"not in": true,
	"|>":     true,
	"<<<":    true,
	">>>":    true,
	"<<~":    true,
	"~>>":    true,
	"<~":     true,
	"~>":     true,
	"<~>":    true,
	"<|>":    true,
	"<":      true,
	">":      true,
	"<=":     true,
	">=":     true,
	"==":     true,
	"!=":     true,
	"=~":     true,
	"===":    true,
	"!==":    true,
	"&&":     true,
	"&&&":    true,
	"and":    true,
	"||":     true,
	"|||":    true,
	"or":     true,
	"=":      true,
	"|":      true,
	"::":     true,
	"when":   true,
	"<-":     true,
	"\\\\":   true,
	"//":     true,
	".":      true,
}

// OpArity is the set of arities an operator tag may be applied with. Dual
// operators like + and - carry both the unary and the binary bit.
type OpArity int

const (
	NoOp     OpArity = 0
	UnaryOp  OpArity = 1 << 0
	BinaryOp OpArity = 1 << 1
	StepOp   OpArity = 1 << 2
)

// OpKind classifies an operator tag.
func OpKind(op string) OpArity {
	k := NoOp
	if unaryOps[op] {
		k |= UnaryOp
	}
	if binaryOps[op] {
		k |= BinaryOp
	}
	if op == StepRangeOp {
		k |= StepOp
	}
	return k
}

// IsUnaryOp reports whether op may be applied to a single operand.
func IsUnaryOp(op string) bool {
	return OpKind(op)&UnaryOp != 0
}

// IsBinaryOp reports whether op may be applied to two operands.
func IsBinaryOp(op string) bool {
	return OpKind(op)&BinaryOp != 0
}

// IsOp reports whether op is a recognized operator tag of any arity.
func IsOp(op string) bool {
	return OpKind(op) != NoOp
}
