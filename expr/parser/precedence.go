package parser

const (
	PrecLowest  = 0
	PrecSum     = 10 // + -
	PrecProduct = 20 // * /
	PrecPower   = 30 // ^
	PrecPostfix = 40 // !
)

var precedences = map[string]int{
	"+": PrecSum,
	"-": PrecSum,
	"*": PrecProduct,
	"/": PrecProduct,
	"^": PrecPower,
	"!": PrecPostfix,
}

// BindingPower returns the binding power of an operator lexeme. Anything
// that is not an operator, including the empty literal of EOF, binds at
// PrecLowest, which is what ends the climbing loop in Parse.
func BindingPower(lexeme string) int {
	return precedences[lexeme]
}

var kindPrecedences = [numTokenKinds]int{
	TokenPlus:  PrecSum,
	TokenMinus: PrecSum,
	TokenStar:  PrecProduct,
	TokenSlash: PrecProduct,
	TokenCaret: PrecPower,
	TokenBang:  PrecPostfix,
}

// BindingPowerOf is BindingPower keyed by token kind. Number, parentheses
// and EOF bind at PrecLowest.
func BindingPowerOf(kind TokenKind) int {
	if !kind.Valid() {
		return PrecLowest
	}
	return kindPrecedences[kind]
}
