package js

// OpPrec is the operator precedence of binary operators, higher binds stronger.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	OpEnd OpPrec = iota
	OpComma
	OpYield
	OpAssign
	OpCond
	OpCoalesce
	OpOr
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
	OpPrefix
	OpPostfix
	OpNew
	OpCall
	OpGroup
)

// Keywords is a map of all keywords and contextual keywords to their token type.
var Keywords = map[string]TokenType{
	"async":      AsyncToken,
	"await":      AwaitToken,
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"enum":       EnumToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"function":   FunctionToken,
	"if":         IfToken,
	"implements": ImplementsToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"interface":  InterfaceToken,
	"let":        LetToken,
	"new":        NewToken,
	"null":       NullToken,
	"package":    PackageToken,
	"private":    PrivateToken,
	"protected":  ProtectedToken,
	"public":     PublicToken,
	"return":     ReturnToken,
	"static":     StaticToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,
	"yield":      YieldToken,
}

// strictReserved are the words that are reserved in strict mode code only.
var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"let":        true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
}

// IsStrictReserved returns true if name is reserved in strict mode code.
func IsStrictReserved(name string) bool {
	return strictReserved[name]
}

// binaryPrec returns the precedence of a binary operator, OpEnd if tt is not one.
// The in operator is excluded when disallowIn is set.
func binaryPrec(tt TokenType, disallowIn bool) OpPrec {
	switch tt {
	case NullishToken:
		return OpCoalesce
	case OrToken:
		return OpOr
	case AndToken:
		return OpAnd
	case BitOrToken:
		return OpBitOr
	case BitXorToken:
		return OpBitXor
	case BitAndToken:
		return OpBitAnd
	case EqEqToken, NotEqToken, EqEqEqToken, NotEqEqToken:
		return OpEquals
	case LtToken, GtToken, LtEqToken, GtEqToken, InstanceofToken:
		return OpCompare
	case InToken:
		if disallowIn {
			return OpEnd
		}
		return OpCompare
	case LtLtToken, GtGtToken, GtGtGtToken:
		return OpShift
	case AddToken, SubToken:
		return OpAdd
	case MulToken, DivToken, ModToken:
		return OpMul
	case ExpToken:
		return OpExp
	}
	return OpEnd
}

func isLogicalOperator(tt TokenType) bool {
	return tt == AndToken || tt == OrToken || tt == NullishToken
}
