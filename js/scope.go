package js

// ScopeKind is the kind of a lexical scope.
type ScopeKind uint8

// ScopeKind values.
const (
	ScopeNone ScopeKind = iota
	ScopeBlock
	ScopeCatchIdentifier
	ScopeCatchBlock
	ScopeFunctionBody
	ScopeFunctionRoot
	ScopeArrowParams
)

// ScopeID indexes the scope arena of a parser, noScope means no scope.
type ScopeID int

const noScope ScopeID = -1

// BindingKind classifies a declared name.
type BindingKind uint16

// BindingKind values.
const (
	BindingVariable BindingKind = 1 << iota
	BindingLet
	BindingConst
	BindingClass
	BindingFunctionLexical
	BindingArgumentList
	BindingCatchIdentifier
	BindingCatchPattern

	bindingLexical = BindingLet | BindingConst | BindingClass | BindingFunctionLexical | BindingCatchPattern
)

// Origin describes where a declaration appears.
type Origin uint8

// Origin values.
const (
	OriginNone Origin = 1 << iota
	OriginStatement
	OriginExport
	OriginTopLevel
)

// DeferredError is an error that only applies once the enclosing construct turns out to be strict.
type DeferredError struct {
	Kind   ErrorKind
	Params []string
	Index  int
	Line   int
	Column int
}

type scopeRecord struct {
	kind     ScopeKind
	parent   ScopeID
	names    map[string]BindingKind
	deferred *DeferredError
}

// openScope pushes a new scope with the given parent.
func (p *Parser) openScope(parent ScopeID, kind ScopeKind) ScopeID {
	p.scopes = append(p.scopes, scopeRecord{
		kind:   kind,
		parent: parent,
		names:  map[string]BindingKind{},
	})
	return ScopeID(len(p.scopes) - 1)
}

// closeScope raises a deferred error of a block or switch scope when the redeclaration turned out illegal.
func (p *Parser) closeScope(ctx Context, scope ScopeID) {
	if ctx.Strict() || !ctx.WebCompat() {
		p.raiseDeferred(scope)
	}
}

func (p *Parser) scope(id ScopeID) *scopeRecord {
	return &p.scopes[id]
}

// deferError records an error at n on the scope, only the first is kept.
func (p *Parser) deferError(scope ScopeID, n INode, kind ErrorKind, params ...string) {
	s := p.scope(scope)
	if s.deferred == nil {
		at := startOf(n)
		s.deferred = &DeferredError{
			Kind:   kind,
			Params: params,
			Index:  at.offset,
			Line:   at.line,
			Column: at.column,
		}
	}
}

// raiseDeferred raises the deferred error of the scope, if any.
func (p *Parser) raiseDeferred(scope ScopeID) {
	if scope == noScope {
		return
	} else if d := p.scope(scope).deferred; d != nil {
		panic(bailout{&Error{Kind: d.Kind, Params: d.Params, Index: d.Index, Line: d.Line, Column: d.Column}})
	}
}

// addVarOrBlock registers a binding, dispatching on its kind.
func (p *Parser) addVarOrBlock(ctx Context, scope ScopeID, id *Identifier, kind BindingKind, origin Origin) {
	if kind&(BindingVariable|BindingArgumentList) != 0 {
		p.addVarName(ctx, scope, id, kind)
	} else {
		p.addBlockName(ctx, scope, id, kind, origin)
	}
	if origin&OriginExport != 0 {
		p.declareUnboundVariable(id.Name)
		p.addBindingToExports(id.Name, startOf(id))
	}
}

// addVarName registers a var binding in scope and every ancestor up to and including the function root.
func (p *Parser) addVarName(ctx Context, scope ScopeID, ident *Identifier, kind BindingKind) {
	name := ident.Name
	for id := scope; id != noScope; {
		s := p.scope(id)
		if existing, ok := s.names[name]; ok {
			if existing&bindingLexical != 0 {
				p.failAtNode(ident, ErrDuplicateBinding, name)
			} else if existing&BindingCatchIdentifier != 0 && !ctx.WebCompat() {
				p.failAtNode(ident, ErrDuplicateBinding, name)
			} else if existing&BindingArgumentList != 0 && kind&BindingArgumentList != 0 {
				p.deferError(id, ident, ErrDuplicateBinding, name)
			}
		}
		s.names[name] |= kind
		if s.kind == ScopeFunctionRoot || s.kind == ScopeArrowParams {
			break
		}
		id = s.parent
	}
}

// addBlockName registers a lexical binding in scope only.
func (p *Parser) addBlockName(ctx Context, scope ScopeID, id *Identifier, kind BindingKind, origin Origin) {
	name := id.Name
	s := p.scope(scope)
	if existing, ok := s.names[name]; ok {
		if existing&BindingFunctionLexical != 0 && kind&BindingFunctionLexical != 0 && origin&OriginTopLevel == 0 {
			// function f(){} function f(){} in a sloppy block or switch
			if ctx.Strict() || !ctx.WebCompat() {
				p.failAtNode(id, ErrDuplicateBinding, name)
			}
			p.deferError(scope, id, ErrDuplicateBinding, name)
		} else if existing&BindingCatchIdentifier != 0 || s.kind == ScopeCatchBlock && existing&BindingCatchPattern != 0 {
			p.failAtNode(id, ErrShadowedCatchClause, name)
		} else {
			p.failAtNode(id, ErrDuplicateBinding, name)
		}
	}

	if s.kind == ScopeFunctionBody && s.parent != noScope {
		if params, ok := p.scope(s.parent).names[name]; ok && params&BindingArgumentList != 0 {
			p.failAtNode(id, ErrDuplicateBinding, name)
		}
	} else if s.kind == ScopeCatchBlock && s.parent != noScope {
		if params, ok := p.scope(s.parent).names[name]; ok && params&(BindingCatchIdentifier|BindingCatchPattern) != 0 {
			p.failAtNode(id, ErrShadowedCatchClause, name)
		}
	}
	s.names[name] = kind
}

// checkForOfVar rejects a var binding of a for-of head that redeclares a catch parameter, web compatibility only
// allows that for var statements and for-in heads.
func (p *Parser) checkForOfVar(scope ScopeID, ident *Identifier) {
	for id := scope; id != noScope; {
		s := p.scope(id)
		if s.names[ident.Name]&BindingCatchIdentifier != 0 {
			p.failAtNode(ident, ErrDuplicateBinding, ident.Name)
		}
		if s.kind == ScopeFunctionRoot || s.kind == ScopeArrowParams {
			break
		}
		id = s.parent
	}
}

// declareUnboundVariable registers an exported name, exporting the same name twice is illegal.
func (p *Parser) declareUnboundVariable(name string) {
	if p.exportedNames == nil {
		return
	} else if p.exportedNames[name] {
		p.failAt(ErrDuplicateExport, name)
	}
	p.exportedNames[name] = true
}

// addBindingToExports records a local name that must be declared at module top level once parsing completes.
func (p *Parser) addBindingToExports(name string, at mark) {
	if p.exportedBindings == nil {
		return
	} else if _, ok := p.exportedBindings[name]; !ok {
		p.exportedBindings[name] = at
		p.exportedOrder = append(p.exportedOrder, name)
	}
}

// checkExportedBindings verifies that every exported local name is declared at module top level.
func (p *Parser) checkExportedBindings(root ScopeID) {
	for _, name := range p.exportedOrder {
		if _, ok := p.scope(root).names[name]; !ok {
			p.failAtMark(p.exportedBindings[name], ErrUndeclaredExport, name)
		}
	}
}
