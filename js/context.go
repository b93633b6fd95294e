package js

// Context is the grammatical context a parse function runs in. It is passed by value so that a child parse derives
// its own context and the caller's context is restored simply by returning.
type Context uint32

// Context values.
const (
	CtxStrict Context = 1 << iota
	CtxModule
	CtxDisallowIn
	CtxInIteration
	CtxInSwitch
	CtxAllowNewTarget
	CtxSuperCall
	CtxSuperProperty
	CtxInYield
	CtxInAwait
	CtxInGlobal
	CtxInFunctionBody
	CtxSingleStatement // body of a loop, if or with statement

	OptLoc
	OptRaw
	OptDirectives
	OptGlobalReturn
	OptDisableWebCompat
	OptImpliedStrict
)

// With returns the context with the bits of x set.
func (ctx Context) With(x Context) Context {
	return ctx | x
}

// Without returns the context with the bits of x cleared.
func (ctx Context) Without(x Context) Context {
	return ctx &^ x
}

func (ctx Context) Strict() bool { return ctx&CtxStrict != 0 }
func (ctx Context) Module() bool { return ctx&CtxModule != 0 }
func (ctx Context) DisallowIn() bool { return ctx&CtxDisallowIn != 0 }
func (ctx Context) InIteration() bool { return ctx&CtxInIteration != 0 }
func (ctx Context) InSwitch() bool { return ctx&CtxInSwitch != 0 }
func (ctx Context) AllowNewTarget() bool { return ctx&CtxAllowNewTarget != 0 }
func (ctx Context) SuperCall() bool { return ctx&CtxSuperCall != 0 }
func (ctx Context) SuperProperty() bool { return ctx&CtxSuperProperty != 0 }
func (ctx Context) InYield() bool { return ctx&CtxInYield != 0 }
func (ctx Context) InAwait() bool { return ctx&CtxInAwait != 0 }
func (ctx Context) InGlobal() bool { return ctx&CtxInGlobal != 0 }
func (ctx Context) InFunctionBody() bool { return ctx&CtxInFunctionBody != 0 }
func (ctx Context) SingleStatement() bool { return ctx&CtxSingleStatement != 0 }
func (ctx Context) WebCompat() bool { return ctx&OptDisableWebCompat == 0 }
func (ctx Context) AllowGlobalReturn() bool { return ctx&OptGlobalReturn != 0 }

// functionBoundary are the bits that never leak from an enclosing function into a nested one.
const functionBoundary = CtxDisallowIn | CtxInIteration | CtxInSwitch | CtxSuperCall |
	CtxSuperProperty | CtxInYield | CtxInAwait | CtxInGlobal | CtxInFunctionBody | CtxSingleStatement

////////////////////////////////////////////////////////////////

// Flags are transient facts discovered by a sub-parse and consumed by an enclosing one.
type Flags uint16

// Flags values.
const (
	FlagSeenYield Flags = 1 << iota
	FlagSeenAwait
	FlagOctals
	FlagAwaitIdentifier
)

////////////////////////////////////////////////////////////////

// Destructible describes whether an expression-shaped construct can still be reinterpreted as a pattern.
type Destructible uint8

// Destructible values.
const (
	NotDestructible Destructible = 1 << iota
	MustDestruct
	AssignableDestruct
	SeenProto
)

func (d Destructible) String() string {
	s := ""
	if d&NotDestructible != 0 {
		s += "|NotDestructible"
	}
	if d&MustDestruct != 0 {
		s += "|MustDestruct"
	}
	if d&AssignableDestruct != 0 {
		s += "|AssignableDestruct"
	}
	if d&SeenProto != 0 {
		s += "|SeenProto"
	}
	if s == "" {
		return "Destructible"
	}
	return s[1:]
}
