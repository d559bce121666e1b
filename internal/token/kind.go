package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwSoldier represents the 'soldier' integer type keyword.
	KwSoldier // soldier
	// KwForce represents the 'force' float type keyword.
	KwForce // force
	// KwIntel represents the 'intel' string type keyword.
	KwIntel // intel
	// KwFlag represents the 'flag' boolean type keyword.
	KwFlag // flag
	// KwShield represents the 'shield' conditional keyword.
	KwShield // shield
	// KwRetreat represents the 'retreat' else keyword.
	KwRetreat // retreat
	// KwMarch represents the 'march' while keyword.
	KwMarch // march
	// KwDeploy represents the 'deploy' for keyword.
	KwDeploy // deploy
	// KwShout represents the 'shout' output keyword.
	KwShout // shout
	// KwScout represents the 'scout' input keyword.
	KwScout // scout

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// BoolLit represents the 'Ally' / 'Enemy' boolean literal token.
	BoolLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the logical-not operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Semicolon represents the statement terminator token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwSoldier: "KwSoldier",
	KwForce:   "KwForce",
	KwIntel:   "KwIntel",
	KwFlag:    "KwFlag",
	KwShield:  "KwShield",
	KwRetreat: "KwRetreat",
	KwMarch:   "KwMarch",
	KwDeploy:  "KwDeploy",
	KwShout:   "KwShout",
	KwScout:   "KwScout",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	BoolLit:   "BoolLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	PlusPlus:  "PlusPlus",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Semicolon: "Semicolon",
	Comma:     "Comma",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}

// Describe returns the human-facing spelling used in diagnostics:
// the literal lexeme for operators/punctuation, a category name otherwise.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case StringLit:
		return "string literal"
	case BoolLit:
		return "boolean literal"
	case KwSoldier, KwForce, KwIntel, KwFlag, KwShield, KwRetreat, KwMarch, KwDeploy, KwShout, KwScout:
		if kw, ok := keywordSpelling(k); ok {
			return "'" + kw + "'"
		}
		return "keyword"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case Slash:
		return "'/'"
	case Percent:
		return "'%'"
	case Assign:
		return "'='"
	case EqEq:
		return "'=='"
	case Bang:
		return "'!'"
	case BangEq:
		return "'!='"
	case Lt:
		return "'<'"
	case LtEq:
		return "'<='"
	case Gt:
		return "'>'"
	case GtEq:
		return "'>='"
	case AndAnd:
		return "'&&'"
	case OrOr:
		return "'||'"
	case PlusPlus:
		return "'++'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Semicolon:
		return "';'"
	case Comma:
		return "','"
	default:
		return "invalid token"
	}
}
