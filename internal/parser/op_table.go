package parser

import "github.com/lineCode/mjs-1/internal/token"

// Binary and ternary/assignment operator precedence. Higher numbers bind
// looser, not tighter: multiplicative sits at the bottom of the binary
// climb and sequence (the comma operator) sits above everything, never
// entering the climb at all. Every level from precConditional upward is
// right-associative; the rest are left-associative. '&&' and '||' share
// a single level (precLogical), both left-associative, so 'a || b && c'
// groups as '(a || b) && c'.
const (
	precMultiplicative = 5  // * / %
	precAdditive       = 6  // + -
	precShift          = 7  // << >> >>>
	precRelational     = 8  // < <= > >= in
	precEquality       = 9  // == !=
	precBitAnd         = 10 // &
	precBitXor         = 11 // ^
	precBitOr          = 12 // |
	precLogical        = 13 // && ||
	precConditional    = 15 // ?: (right-associative)
	precAssignment     = 15 // = += -= ... (right-associative)
)

// binaryPrec returns the precedence of k as a binary operator, and
// whether it is a valid one at all. allowIn controls whether KwIn is
// accepted — it must be excluded while parsing a for-loop's init clause,
// where 'in' instead introduces a for-in header.
func binaryPrec(k token.Kind, allowIn bool) (int, bool) {
	switch k {
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Shl, token.Shr, token.UShr:
		return precShift, true
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precRelational, true
	case token.KwIn:
		if allowIn {
			return precRelational, true
		}
		return 0, false
	case token.EqEq, token.BangEq:
		return precEquality, true
	case token.Amp:
		return precBitAnd, true
	case token.Caret:
		return precBitXor, true
	case token.Pipe:
		return precBitOr, true
	case token.AndAnd, token.OrOr:
		return precLogical, true
	default:
		return 0, false
	}
}

// isUnaryOp reports whether k can prefix a unary expression.
func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.KwTypeof, token.KwVoid, token.KwDelete:
		return true
	default:
		return false
	}
}
