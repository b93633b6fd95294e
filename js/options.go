package js

import "fmt"

// SourceType values.
const (
	SourceScript = "script"
	SourceModule = "module"
)

// DefaultMaxDepth is the nesting depth at which parsing gives up.
const DefaultMaxDepth = 500

// Options are the parser options.
type Options struct {
	SourceType       string // script or module, empty is script
	Loc              bool   // attach start, end and loc to every node
	Raw              bool   // keep raw source text of literals
	Directives       bool   // set the directive field on directive prologue statements
	GlobalReturn     bool   // allow return outside of functions
	DisableWebCompat bool   // disable the Annex B allowances of sloppy mode
	ImpliedStrict    bool   // parse as if the code started with "use strict"
	MaxDepth         int    // zero is DefaultMaxDepth
}

// DefaultOptions parses scripts without positions or raw values.
var DefaultOptions = Options{
	SourceType: SourceScript,
	MaxDepth:   DefaultMaxDepth,
}

// Validate returns an error for unknown source types or a negative depth.
func (o Options) Validate() error {
	if o.SourceType != "" && o.SourceType != SourceScript && o.SourceType != SourceModule {
		return fmt.Errorf("invalid source type %q, must be %q or %q", o.SourceType, SourceScript, SourceModule)
	} else if o.MaxDepth < 0 {
		return fmt.Errorf("invalid maximum depth %d", o.MaxDepth)
	}
	return nil
}

func (o Options) sourceType() string {
	if o.SourceType == "" {
		return SourceScript
	}
	return o.SourceType
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// context returns the initial parse context for the options.
func (o Options) context() Context {
	ctx := CtxInGlobal
	if o.sourceType() == SourceModule {
		ctx |= CtxModule | CtxStrict | CtxInAwait
	}
	if o.ImpliedStrict {
		ctx |= CtxStrict | OptImpliedStrict
	}
	if o.Loc {
		ctx |= OptLoc
	}
	if o.Raw {
		ctx |= OptRaw
	}
	if o.Directives {
		ctx |= OptDirectives
	}
	if o.GlobalReturn {
		ctx |= OptGlobalReturn | CtxInFunctionBody
	}
	if o.DisableWebCompat {
		ctx |= OptDisableWebCompat
	}
	return ctx
}
