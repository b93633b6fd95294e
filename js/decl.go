package js

type declFlags uint8

const (
	declPlain     declFlags = 1 << iota // no generator, as the body of a labelled or if statement
	declAnonymous                       // name is optional, for export default
)

// functionBindingKind returns how a function declaration binds its name. Functions are var-scoped at the top level
// of scripts and functions, but lexical in blocks and at the top level of modules. Async and generator functions in
// blocks do not get the sloppy mode allowance of duplicate declarations.
func functionBindingKind(ctx Context, origin Origin, async, generator bool) BindingKind {
	if origin&OriginTopLevel != 0 {
		if ctx.Module() && ctx.InGlobal() {
			return BindingFunctionLexical
		}
		return BindingVariable
	} else if async || generator {
		return BindingLet
	}
	return BindingFunctionLexical
}

func (p *Parser) parseFunctionDeclaration(ctx Context, scope ScopeID, start mark, origin Origin, async bool, flags declFlags) *FunctionDeclaration {
	p.expect(FunctionToken)
	generator := false
	if p.tok.TokenType == MulToken {
		if flags&declPlain != 0 {
			p.failAtMark(start, ErrFunctionInSingleStatement)
		}
		p.next()
		generator = true
	}

	var id *Identifier
	if isIdentifierToken(p.tok.TokenType) {
		kind := functionBindingKind(ctx, origin, async, generator)
		id = p.parseBindingIdentifier(ctx, kind)
		p.addVarOrBlock(ctx, scope, id, kind, origin)
	} else if flags&declAnonymous == 0 {
		p.failAt(ErrFunctionNameRequired)
	}

	f := p.parseFunctionRest(ctx, id, async, generator)
	return &FunctionDeclaration{Node: p.node("FunctionDeclaration", start), Function: f}
}

func (p *Parser) parseFunctionExpression(ctx Context, start mark, async bool) *FunctionExpression {
	p.expect(FunctionToken)
	generator := false
	if p.tok.TokenType == MulToken {
		p.next()
		generator = true
	}

	var id *Identifier
	if isIdentifierToken(p.tok.TokenType) {
		// the name of a function expression follows the yield and await rules of the function itself
		nameCtx := ctx.Without(CtxInYield | CtxInAwait)
		if generator {
			nameCtx = nameCtx.With(CtxInYield)
		}
		if async {
			nameCtx = nameCtx.With(CtxInAwait)
		}
		id = p.parseBindingIdentifier(nameCtx, BindingVariable)
	}

	f := p.parseFunctionRest(ctx, id, async, generator)
	return &FunctionExpression{Node: p.node("FunctionExpression", start), Function: f}
}

// parseFunctionRest parses the parameters and body of a function.
func (p *Parser) parseFunctionRest(ctx Context, id *Identifier, async, generator bool) Function {
	ctx = ctx.Without(functionBoundary).With(CtxAllowNewTarget | CtxInFunctionBody)
	if async {
		ctx = ctx.With(CtxInAwait)
	}
	if generator {
		ctx = ctx.With(CtxInYield)
	}

	flags := p.flags
	p.flags = 0
	scope := p.openScope(noScope, ScopeFunctionRoot)
	params, simple := p.parseParams(ctx, scope)
	body, strict := p.parseFunctionBody(ctx, scope, simple, func() {
		if id != nil {
			p.checkStrictBinding(id)
		}
		p.checkStrictParams(params)
	})
	if strict || !simple {
		p.raiseDeferred(scope)
	}
	p.flags = flags

	return Function{
		Id:        id,
		Params:    params,
		Body:      body,
		Async:     async,
		Generator: generator,
	}
}

// parseParams parses a formal parameter list and returns whether it is simple, that is, only identifiers.
func (p *Parser) parseParams(ctx Context, scope ScopeID) ([]IPattern, bool) {
	p.expect(OpenParenToken)
	ctx = ctx.Without(CtxDisallowIn)

	params := []IPattern{}
	simple := true
	for p.tok.TokenType != CloseParenToken {
		if p.tok.TokenType == EllipsisToken {
			params = append(params, p.parseBindingRest(ctx, scope, BindingArgumentList, OriginNone, CloseParenToken))
			simple = false
			break
		}

		param := p.parseBindingElement(ctx, scope, BindingArgumentList, OriginNone)
		if _, ok := param.(*Identifier); !ok {
			simple = false
		}
		params = append(params, param)
		if p.tok.TokenType != CloseParenToken {
			p.expect(CommaToken)
		}
	}
	p.expect(CloseParenToken)

	if p.flags&FlagSeenYield != 0 {
		p.failAt(ErrYieldInParams)
	} else if p.flags&FlagSeenAwait != 0 {
		p.failAt(ErrAwaitInParams)
	}
	return params, simple
}

// parseFunctionBody parses the body of a function or arrow function whose parameters are in paramScope, and returns
// whether the body is strict.
func (p *Parser) parseFunctionBody(ctx Context, paramScope ScopeID, simple bool, onStrict func()) (*BlockStatement, bool) {
	start := p.mark()
	p.expect(OpenBraceToken)
	scope := p.openScope(paramScope, ScopeFunctionBody)

	labels, labelSetStart := p.labels, p.labelSetStart
	p.labels = nil
	ctx = ctx.Without(CtxInIteration | CtxInSwitch | CtxDisallowIn | CtxInGlobal).With(CtxInFunctionBody)

	ctx, body := p.parseDirectives(ctx, scope, simple, onStrict)
	for p.tok.TokenType != CloseBraceToken {
		if p.tok.TokenType == ErrorToken {
			p.unexpected()
		}
		body = append(body, p.parseStatementListItem(ctx, scope, OriginTopLevel))
	}
	p.next()

	p.labels, p.labelSetStart = labels, labelSetStart
	return &BlockStatement{Node: p.node("BlockStatement", start), Body: body}, ctx.Strict()
}

// parseMethod parses the parameters and body of an object or class method, starting at the opening parenthesis.
func (p *Parser) parseMethod(ctx Context, kind string, async, generator, superCall bool) *FunctionExpression {
	start := p.mark()
	ctx = ctx.Without(functionBoundary).With(CtxAllowNewTarget | CtxInFunctionBody | CtxSuperProperty)
	if superCall {
		ctx = ctx.With(CtxSuperCall)
	}
	if async {
		ctx = ctx.With(CtxInAwait)
	}
	if generator {
		ctx = ctx.With(CtxInYield)
	}

	flags := p.flags
	p.flags = 0
	scope := p.openScope(noScope, ScopeFunctionRoot)
	params, simple := p.parseParams(ctx, scope)
	switch kind {
	case "get":
		if len(params) != 0 {
			p.failAtMark(start, ErrGetterArity)
		}
	case "set":
		if len(params) != 1 {
			p.failAtMark(start, ErrSetterArity)
		} else if _, ok := params[0].(*RestElement); ok {
			p.failAtMark(start, ErrSetterRest)
		}
	}
	body, _ := p.parseFunctionBody(ctx, scope, simple, func() {
		p.checkStrictParams(params)
	})
	p.raiseDeferred(scope) // methods never allow duplicate parameters
	p.flags = flags

	return &FunctionExpression{
		Node: p.node("FunctionExpression", start),
		Function: Function{
			Params:    params,
			Body:      body,
			Async:     async,
			Generator: generator,
		},
	}
}

////////////////////////////////////////////////////////////////

// parseClass parses a class declaration or expression, starting at the class keyword. Class bodies are strict.
// A declaration binds its name in scope.
func (p *Parser) parseClass(ctx Context, scope ScopeID, origin Origin, decl, anonymous bool) Class {
	p.expect(ClassToken)
	ctx = ctx.With(CtxStrict)

	var id *Identifier
	if isIdentifierToken(p.tok.TokenType) {
		id = p.parseBindingIdentifier(ctx, BindingClass)
		if decl {
			p.addVarOrBlock(ctx, scope, id, BindingClass, origin)
		}
	} else if decl && !anonymous {
		p.failAt(ErrClassNameRequired)
	}

	var superClass IExpr
	if p.tok.TokenType == ExtendsToken {
		p.next()
		superClass = p.parseLHS(ctx, false)
	}
	body := p.parseClassBody(ctx, superClass != nil)
	return Class{Id: id, SuperClass: superClass, Body: body}
}

func (p *Parser) parseClassDeclaration(ctx Context, scope ScopeID, origin Origin) *ClassDeclaration {
	start := p.mark()
	c := p.parseClass(ctx, scope, origin, true, false)
	return &ClassDeclaration{Node: p.node("ClassDeclaration", start), Class: c}
}

func (p *Parser) parseClassExpression(ctx Context) *ClassExpression {
	start := p.mark()
	c := p.parseClass(ctx, noScope, OriginNone, false, false)
	return &ClassExpression{Node: p.node("ClassExpression", start), Class: c}
}

func (p *Parser) parseClassBody(ctx Context, derived bool) *ClassBody {
	start := p.mark()
	p.expect(OpenBraceToken)

	methods := []*MethodDefinition{}
	hasConstructor := false
	for p.tok.TokenType != CloseBraceToken {
		if p.tok.TokenType == SemicolonToken {
			p.next()
			continue
		} else if p.tok.TokenType == ErrorToken {
			p.unexpected()
		}

		m := p.parseClassElement(ctx, derived)
		if m.Kind == "constructor" {
			if hasConstructor {
				p.failAtNode(m, ErrDuplicateConstructor)
			}
			hasConstructor = true
		}
		methods = append(methods, m)
	}
	p.next()
	return &ClassBody{Node: p.node("ClassBody", start), Body: methods}
}

func (p *Parser) parseClassElement(ctx Context, derived bool) *MethodDefinition {
	start := p.mark()
	static := false
	kind, async, generator := "method", false, false

	var key IExpr
	var name string
	computed := false
	if p.tok.TokenType == StaticToken {
		word := p.identifier()
		if p.tok.TokenType == OpenParenToken {
			key, name = word, word.Name
		} else {
			static = true
		}
	}
	if key == nil {
		if p.isContextual("get") || p.isContextual("set") || p.tok.TokenType == AsyncToken {
			tt := p.tok.TokenType
			word := p.identifier()
			if p.tok.TokenType == OpenParenToken {
				key, name = word, word.Name
			} else if tt == AsyncToken {
				if p.newline {
					p.unexpected()
				}
				async = true
				if p.tok.TokenType == MulToken {
					p.next()
					generator = true
				}
			} else {
				kind = word.Name
			}
		} else if p.tok.TokenType == MulToken {
			p.next()
			generator = true
		}
	}
	if key == nil {
		key, name, computed = p.parsePropertyKey(ctx)
	}

	isConstructor := !static && !computed && name == "constructor"
	if isConstructor {
		switch {
		case kind == "get":
			p.failAtNode(key, ErrInvalidConstructor, "getter")
		case kind == "set":
			p.failAtNode(key, ErrInvalidConstructor, "setter")
		case generator:
			p.failAtNode(key, ErrInvalidConstructor, "generator")
		case async:
			p.failAtNode(key, ErrInvalidConstructor, "async method")
		}
		kind = "constructor"
	} else if static && !computed && name == "prototype" {
		p.failAtNode(key, ErrStaticPrototype)
	}

	if p.tok.TokenType != OpenParenToken {
		p.unexpected()
	}
	value := p.parseMethod(ctx, kind, async, generator, isConstructor && derived)
	return &MethodDefinition{
		Node:     p.node("MethodDefinition", start),
		Key:      key,
		Value:    value,
		Kind:     kind,
		Computed: computed,
		Static:   static,
	}
}
