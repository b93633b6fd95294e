package js

import "strconv"

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	WhitespaceToken
	LineTerminatorToken // \r \n \r\n
	CommentToken
	CommentLineTerminatorToken // comment containing a line terminator
	StringToken
	NumericToken
	BigIntToken
	RegExpToken
	TemplateToken       // `...` without substitutions
	TemplateStartToken  // `...${
	TemplateMiddleToken // }...${
	TemplateEndToken    // }...`
)

// Punctuator token values.
const (
	PunctuatorToken   TokenType = 0x1000 + iota
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBracketToken            // [
	CloseBracketToken           // ]
	DotToken                    // .
	SemicolonToken              // ;
	CommaToken                  // ,
	QuestionToken               // ?
	ColonToken                  // :
	ArrowToken                  // =>
	EllipsisToken               // ...
	OptChainToken               // ?.
)

// Operator token values.
const (
	OperatorToken TokenType = 0x3000 + iota
	EqToken                 // =
	EqEqToken               // ==
	EqEqEqToken             // ===
	NotToken                // !
	NotEqToken              // !=
	NotEqEqToken            // !==
	LtToken                 // <
	LtEqToken               // <=
	LtLtToken               // <<
	LtLtEqToken             // <<=
	GtToken                 // >
	GtEqToken               // >=
	GtGtToken               // >>
	GtGtEqToken             // >>=
	GtGtGtToken             // >>>
	GtGtGtEqToken           // >>>=
	AddToken                // +
	AddEqToken              // +=
	IncrToken               // ++
	SubToken                // -
	SubEqToken              // -=
	DecrToken               // --
	MulToken                // *
	MulEqToken              // *=
	ExpToken                // **
	ExpEqToken              // **=
	DivToken                // /
	DivEqToken              // /=
	ModToken                // %
	ModEqToken              // %=
	BitAndToken             // &
	BitOrToken              // |
	BitXorToken             // ^
	BitNotToken             // ~
	BitAndEqToken           // &=
	BitOrEqToken            // |=
	BitXorEqToken           // ^=
	AndToken                // &&
	OrToken                 // ||
	NullishToken            // ??
	AndEqToken              // &&=
	OrEqToken               // ||=
	NullishEqToken          // ??=
)

// Identifier token values. The contextual keywords are valid identifiers in sloppy mode.
const (
	IdentifierToken     TokenType = 0x4000 + iota
	EscapedKeywordToken         // reserved word written with unicode escapes
	AsyncToken
	AwaitToken
	LetToken
	StaticToken
	YieldToken
	ImplementsToken
	InterfaceToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
)

// Reserved word token values.
const (
	ReservedToken TokenType = 0x4800 + iota
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	EnumToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImportToken
	InToken
	InstanceofToken
	NewToken
	NullToken
	ReturnToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken
)

// IsPunctuator returns true if the token is a punctuator or an operator.
func IsPunctuator(tt TokenType) bool {
	return tt&0x1000 != 0
}

// IsOperator returns true if the token is an operator.
func IsOperator(tt TokenType) bool {
	return tt&0x2000 != 0
}

// IsIdentifierName returns true if the token is an IdentifierName, which includes all keywords.
func IsIdentifierName(tt TokenType) bool {
	return tt&0x4000 != 0
}

// IsReservedWord returns true for the words that can never be an identifier.
func IsReservedWord(tt TokenType) bool {
	return tt&0x4800 == 0x4800 || tt == EscapedKeywordToken
}

// IsIdentifier returns true for the tokens that may be an identifier, depending on the context.
func IsIdentifier(tt TokenType) bool {
	return IsIdentifierName(tt) && !IsReservedWord(tt)
}

// IsAssignOperator returns true for = and the compound assignment operators.
func IsAssignOperator(tt TokenType) bool {
	switch tt {
	case EqToken, AddEqToken, SubEqToken, MulEqToken, DivEqToken, ModEqToken, ExpEqToken,
		LtLtEqToken, GtGtEqToken, GtGtGtEqToken, BitAndEqToken, BitOrEqToken, BitXorEqToken,
		AndEqToken, OrEqToken, NullishEqToken:
		return true
	}
	return false
}

// IsTemplate returns true for all template tokens.
func IsTemplate(tt TokenType) bool {
	return TemplateToken <= tt && tt <= TemplateEndToken
}

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case WhitespaceToken:
		return "Whitespace"
	case LineTerminatorToken:
		return "LineTerminator"
	case CommentToken:
		return "Comment"
	case CommentLineTerminatorToken:
		return "CommentLineTerminator"
	case StringToken:
		return "String"
	case NumericToken:
		return "Numeric"
	case BigIntToken:
		return "BigInt"
	case RegExpToken:
		return "RegExp"
	case TemplateToken:
		return "Template"
	case TemplateStartToken:
		return "TemplateStart"
	case TemplateMiddleToken:
		return "TemplateMiddle"
	case TemplateEndToken:
		return "TemplateEnd"
	case PunctuatorToken:
		return "Punctuator"
	case OperatorToken:
		return "Operator"
	case IdentifierToken:
		return "Identifier"
	case EscapedKeywordToken:
		return "EscapedKeyword"
	case ReservedToken:
		return "Reserved"
	}
	if s, ok := tokenStrings[tt]; ok {
		return s
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

var tokenStrings = map[TokenType]string{
	OpenBraceToken:    "{",
	CloseBraceToken:   "}",
	OpenParenToken:    "(",
	CloseParenToken:   ")",
	OpenBracketToken:  "[",
	CloseBracketToken: "]",
	DotToken:          ".",
	SemicolonToken:    ";",
	CommaToken:        ",",
	QuestionToken:     "?",
	ColonToken:        ":",
	ArrowToken:        "=>",
	EllipsisToken:     "...",
	OptChainToken:     "?.",
	EqToken:           "=",
	EqEqToken:         "==",
	EqEqEqToken:       "===",
	NotToken:          "!",
	NotEqToken:        "!=",
	NotEqEqToken:      "!==",
	LtToken:           "<",
	LtEqToken:         "<=",
	LtLtToken:         "<<",
	LtLtEqToken:       "<<=",
	GtToken:           ">",
	GtEqToken:         ">=",
	GtGtToken:         ">>",
	GtGtEqToken:       ">>=",
	GtGtGtToken:       ">>>",
	GtGtGtEqToken:     ">>>=",
	AddToken:          "+",
	AddEqToken:        "+=",
	IncrToken:         "++",
	SubToken:          "-",
	SubEqToken:        "-=",
	DecrToken:         "--",
	MulToken:          "*",
	MulEqToken:        "*=",
	ExpToken:          "**",
	ExpEqToken:        "**=",
	DivToken:          "/",
	DivEqToken:        "/=",
	ModToken:          "%",
	ModEqToken:        "%=",
	BitAndToken:       "&",
	BitOrToken:        "|",
	BitXorToken:       "^",
	BitNotToken:       "~",
	BitAndEqToken:     "&=",
	BitOrEqToken:      "|=",
	BitXorEqToken:     "^=",
	AndToken:          "&&",
	OrToken:           "||",
	NullishToken:      "??",
	AndEqToken:        "&&=",
	OrEqToken:         "||=",
	NullishEqToken:    "??=",
	AsyncToken:        "async",
	AwaitToken:        "await",
	LetToken:          "let",
	StaticToken:       "static",
	YieldToken:        "yield",
	ImplementsToken:   "implements",
	InterfaceToken:    "interface",
	PackageToken:      "package",
	PrivateToken:      "private",
	ProtectedToken:    "protected",
	PublicToken:       "public",
	BreakToken:        "break",
	CaseToken:         "case",
	CatchToken:        "catch",
	ClassToken:        "class",
	ConstToken:        "const",
	ContinueToken:     "continue",
	DebuggerToken:     "debugger",
	DefaultToken:      "default",
	DeleteToken:       "delete",
	DoToken:           "do",
	ElseToken:         "else",
	EnumToken:         "enum",
	ExportToken:       "export",
	ExtendsToken:      "extends",
	FalseToken:        "false",
	FinallyToken:      "finally",
	ForToken:          "for",
	FunctionToken:     "function",
	IfToken:           "if",
	ImportToken:       "import",
	InToken:           "in",
	InstanceofToken:   "instanceof",
	NewToken:          "new",
	NullToken:         "null",
	ReturnToken:       "return",
	SuperToken:        "super",
	SwitchToken:       "switch",
	ThisToken:         "this",
	ThrowToken:        "throw",
	TrueToken:         "true",
	TryToken:          "try",
	TypeofToken:       "typeof",
	VarToken:          "var",
	VoidToken:         "void",
	WhileToken:        "while",
	WithToken:         "with",
}
