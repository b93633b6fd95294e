package js

// parseStatementListItem parses a statement or a declaration.
func (p *Parser) parseStatementListItem(ctx Context, scope ScopeID, origin Origin) IStmt {
	p.enter()
	defer p.leave()

	p.inLabelSet = false
	start := p.mark()
	switch p.tok.TokenType {
	case FunctionToken:
		return p.parseFunctionDeclaration(ctx, scope, start, origin, false, 0)
	case ClassToken:
		return p.parseClassDeclaration(ctx, scope, origin)
	case ConstToken:
		p.next()
		return p.parseLexicalDeclaration(ctx, scope, start, "const", origin)
	case LetToken:
		p.next()
		if p.startsLexicalBinding() {
			return p.parseLexicalDeclaration(ctx, scope, start, "let", origin)
		}
		expr := p.parseLetExpression(ctx, start)
		return p.parseExpressionStatement(ctx, scope, start, expr, false)
	case AsyncToken:
		p.next()
		if !p.newline && p.tok.TokenType == FunctionToken {
			return p.parseFunctionDeclaration(ctx, scope, start, origin, true, 0)
		}
		expr := p.parseAsyncRest(ctx, start, true)
		return p.parseExpressionStatement(ctx, scope, start, expr, false)
	case ImportToken:
		p.next()
		if p.tok.TokenType == OpenParenToken || p.tok.TokenType == DotToken {
			expr := p.parseImportRest(ctx, start)
			return p.parseExpressionStatement(ctx, scope, start, expr, false)
		}
		return p.parseImportDeclaration(ctx, scope, start, origin)
	case ExportToken:
		return p.parseExportDeclaration(ctx, scope, start, origin)
	}
	return p.parseStatement(ctx, scope)
}

// startsLexicalBinding returns true if the token after let starts a binding, making it a declaration.
func (p *Parser) startsLexicalBinding() bool {
	tt := p.tok.TokenType
	return tt == OpenBracketToken || tt == OpenBraceToken || isIdentifierToken(tt)
}

// parseLetExpression returns let as an identifier reference, or as the parameter of an arrow function.
func (p *Parser) parseLetExpression(ctx Context, start mark) IExpr {
	if ctx.Strict() {
		p.failAtMark(start, ErrStrictReserved, "let")
	}
	id := &Identifier{Node: p.node("Identifier", start), Name: "let"}
	if p.tok.TokenType == ArrowToken {
		return p.parseArrowFromIdentifier(ctx, start, id, false)
	}
	return id
}

func (p *Parser) parseLexicalDeclaration(ctx Context, scope ScopeID, start mark, kind string, origin Origin) *VariableDeclaration {
	decl := p.parseVariableDeclaration(ctx, scope, start, kind, origin, false)
	p.consumeSemicolon()
	decl.Node = p.node("VariableDeclaration", start)
	return decl
}

// parseStatement parses a statement in a position where declarations are not allowed.
func (p *Parser) parseStatement(ctx Context, scope ScopeID) IStmt {
	p.enter()
	defer p.leave()

	continued := p.inLabelSet
	p.inLabelSet = false

	// only a labelled statement looks at the single statement bit
	labelled := ctx
	ctx = ctx.Without(CtxSingleStatement)

	start := p.mark()
	switch p.tok.TokenType {
	case OpenBraceToken:
		return p.parseBlockStatement(ctx, scope)
	case SemicolonToken:
		p.next()
		return &EmptyStatement{Node: p.node("EmptyStatement", start)}
	case VarToken:
		p.next()
		return p.parseLexicalDeclaration(ctx, scope, start, "var", OriginStatement)
	case IfToken:
		return p.parseIfStatement(ctx, scope)
	case ForToken:
		return p.parseForStatement(ctx, scope, continued)
	case WhileToken:
		return p.parseWhileStatement(ctx, scope, continued)
	case DoToken:
		return p.parseDoWhileStatement(ctx, scope, continued)
	case ContinueToken, BreakToken:
		return p.parseBreakContinue(ctx)
	case ReturnToken:
		return p.parseReturnStatement(ctx)
	case WithToken:
		return p.parseWithStatement(ctx, scope)
	case SwitchToken:
		return p.parseSwitchStatement(ctx, scope)
	case ThrowToken:
		return p.parseThrowStatement(ctx)
	case TryToken:
		return p.parseTryStatement(ctx, scope)
	case DebuggerToken:
		p.next()
		p.consumeSemicolon()
		return &DebuggerStatement{Node: p.node("DebuggerStatement", start)}
	case FunctionToken:
		p.failAt(ErrFunctionInSingleStatement)
	case ClassToken, ConstToken:
		p.failAt(ErrLexicalInSingleStatement)
	case LetToken:
		p.next()
		if p.tok.TokenType == OpenBracketToken {
			p.failAtMark(start, ErrLexicalInSingleStatement)
		}
		expr := p.parseLetExpression(ctx, start)
		return p.parseExpressionStatement(labelled, scope, start, expr, continued)
	case AsyncToken:
		p.next()
		if !p.newline && p.tok.TokenType == FunctionToken {
			p.failAtMark(start, ErrFunctionInSingleStatement)
		}
		expr := p.parseAsyncRest(ctx, start, true)
		return p.parseExpressionStatement(labelled, scope, start, expr, continued)
	case ImportToken:
		p.next()
		if p.tok.TokenType != OpenParenToken && p.tok.TokenType != DotToken {
			p.checkModuleItem(ctx, start, OriginStatement, "import")
		}
		expr := p.parseImportRest(ctx, start)
		return p.parseExpressionStatement(labelled, scope, start, expr, continued)
	case ExportToken:
		p.checkModuleItem(ctx, start, OriginStatement, "export")
	}
	return p.parseExpressionStatement(labelled, scope, start, nil, continued)
}

// parseExpressionStatement parses an expression statement or a labelled statement. The leading expression is
// continued when expr is given.
func (p *Parser) parseExpressionStatement(ctx Context, scope ScopeID, start mark, expr IExpr, continued bool) IStmt {
	if expr == nil {
		expr = p.parseExpression(ctx)
	} else {
		expr = p.parseExpressionFrom(ctx, start, expr)
	}
	if id, ok := expr.(*Identifier); ok && !id.paren && p.tok.TokenType == ColonToken {
		return p.parseLabelledStatement(ctx, scope, start, id, continued)
	}
	p.consumeSemicolon()
	return &ExpressionStatement{Node: p.node("ExpressionStatement", start), Expression: expr}
}

func (p *Parser) parseLabelledStatement(ctx Context, scope ScopeID, start mark, id *Identifier, continued bool) IStmt {
	for _, l := range p.labels {
		if l.name == id.Name {
			p.failAtNode(id, ErrDuplicateLabel, id.Name)
		}
	}
	p.next()

	n := len(p.labels)
	if !continued {
		p.labelSetStart = n
	}
	p.labels = append(p.labels, label{name: id.Name})
	p.inLabelSet = true

	var body IStmt
	if p.tok.TokenType == FunctionToken {
		if ctx.Strict() || !ctx.WebCompat() || ctx.SingleStatement() {
			p.failAt(ErrFunctionInSingleStatement)
		}
		origin := OriginStatement
		if kind := p.scope(scope).kind; kind == ScopeFunctionRoot || kind == ScopeFunctionBody {
			origin = OriginTopLevel
		}
		body = p.parseFunctionDeclaration(ctx, scope, p.mark(), origin, false, declPlain)
	} else {
		body = p.parseStatement(ctx, scope)
	}
	p.labels = p.labels[:n]
	p.inLabelSet = false
	return &LabeledStatement{Node: p.node("LabeledStatement", start), Label: id, Body: body}
}

// markIteration marks the labels directly in front of a loop as iteration labels, which continue may target.
func (p *Parser) markIteration(continued bool) {
	if !continued {
		return
	}
	for i := p.labelSetStart; i < len(p.labels); i++ {
		p.labels[i].iteration = true
	}
}

func (p *Parser) parseBreakContinue(ctx Context) IStmt {
	start := p.mark()
	isContinue := p.tok.TokenType == ContinueToken
	p.next()

	var lab *Identifier
	if !p.newline && isIdentifierToken(p.tok.TokenType) {
		lab = p.parseIdentifier(ctx)
		found := false
		for _, l := range p.labels {
			if l.name == lab.Name {
				found = true
				if isContinue && !l.iteration {
					p.failAtNode(lab, ErrIllegalContinueLabel, lab.Name)
				}
			}
		}
		if !found {
			p.failAtNode(lab, ErrUnknownLabel, lab.Name)
		}
	} else if isContinue && !ctx.InIteration() {
		p.failAtMark(start, ErrIllegalContinue)
	} else if !isContinue && !ctx.InIteration() && !ctx.InSwitch() {
		p.failAtMark(start, ErrIllegalBreak)
	}
	p.consumeSemicolon()

	if isContinue {
		return &ContinueStatement{Node: p.node("ContinueStatement", start), Label: lab}
	}
	return &BreakStatement{Node: p.node("BreakStatement", start), Label: lab}
}

func (p *Parser) parseParenthesized(ctx Context) IExpr {
	p.expect(OpenParenToken)
	expr := p.parseExpression(ctx.Without(CtxDisallowIn))
	p.expect(CloseParenToken)
	return expr
}

func (p *Parser) parseIfStatement(ctx Context, scope ScopeID) IStmt {
	start := p.mark()
	p.next()
	test := p.parseParenthesized(ctx)
	consequent := p.parseIfBody(ctx, scope)
	var alternate IStmt
	if p.tok.TokenType == ElseToken {
		p.next()
		alternate = p.parseIfBody(ctx, scope)
	}
	return &IfStatement{Node: p.node("IfStatement", start), Test: test, Consequent: consequent, Alternate: alternate}
}

// parseIfBody allows a plain function declaration as the body of an if statement in sloppy mode, as if it were
// wrapped in a block.
func (p *Parser) parseIfBody(ctx Context, scope ScopeID) IStmt {
	if p.tok.TokenType == FunctionToken && !ctx.Strict() && ctx.WebCompat() {
		block := p.openScope(scope, ScopeBlock)
		fn := p.parseFunctionDeclaration(ctx, block, p.mark(), OriginStatement, false, declPlain)
		p.closeScope(ctx, block)
		return fn
	}
	return p.parseStatement(ctx.With(CtxSingleStatement), scope)
}

func (p *Parser) parseWhileStatement(ctx Context, scope ScopeID, continued bool) IStmt {
	start := p.mark()
	p.next()
	p.markIteration(continued)
	test := p.parseParenthesized(ctx)
	body := p.parseStatement(ctx.With(CtxInIteration|CtxSingleStatement), scope)
	return &WhileStatement{Node: p.node("WhileStatement", start), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement(ctx Context, scope ScopeID, continued bool) IStmt {
	start := p.mark()
	p.next()
	p.markIteration(continued)
	body := p.parseStatement(ctx.With(CtxInIteration|CtxSingleStatement), scope)
	p.expect(WhileToken)
	test := p.parseParenthesized(ctx)
	if p.tok.TokenType == SemicolonToken {
		p.next()
	}
	return &DoWhileStatement{Node: p.node("DoWhileStatement", start), Body: body, Test: test}
}

func (p *Parser) parseReturnStatement(ctx Context) IStmt {
	start := p.mark()
	if !ctx.InFunctionBody() {
		p.failAt(ErrIllegalReturn)
	}
	p.next()

	var arg IExpr
	if tt := p.tok.TokenType; !p.newline && tt != SemicolonToken && tt != CloseBraceToken && tt != ErrorToken {
		arg = p.parseExpression(ctx)
	}
	p.consumeSemicolon()
	return &ReturnStatement{Node: p.node("ReturnStatement", start), Argument: arg}
}

func (p *Parser) parseWithStatement(ctx Context, scope ScopeID) IStmt {
	start := p.mark()
	if ctx.Strict() {
		p.failAt(ErrStrictWith)
	}
	p.next()
	object := p.parseParenthesized(ctx)
	body := p.parseStatement(ctx.With(CtxSingleStatement), scope)
	return &WithStatement{Node: p.node("WithStatement", start), Object: object, Body: body}
}

func (p *Parser) parseSwitchStatement(ctx Context, scope ScopeID) IStmt {
	start := p.mark()
	p.next()
	discriminant := p.parseParenthesized(ctx)
	p.expect(OpenBraceToken)

	block := p.openScope(scope, ScopeBlock)
	ctx = ctx.With(CtxInSwitch)
	cases := []*SwitchCase{}
	hasDefault := false
	for p.tok.TokenType != CloseBraceToken {
		caseStart := p.mark()
		var test IExpr
		if p.tok.TokenType == CaseToken {
			p.next()
			test = p.parseExpression(ctx.Without(CtxDisallowIn))
		} else if p.tok.TokenType == DefaultToken {
			if hasDefault {
				p.failAt(ErrMultipleDefaults)
			}
			hasDefault = true
			p.next()
		} else {
			p.unexpected()
		}
		p.expect(ColonToken)

		consequent := []IStmt{}
		for tt := p.tok.TokenType; tt != CaseToken && tt != DefaultToken && tt != CloseBraceToken; tt = p.tok.TokenType {
			if tt == ErrorToken {
				p.unexpected()
			}
			consequent = append(consequent, p.parseStatementListItem(ctx, block, OriginNone))
		}
		cases = append(cases, &SwitchCase{Node: p.node("SwitchCase", caseStart), Test: test, Consequent: consequent})
	}
	p.next()
	p.closeScope(ctx, block)
	return &SwitchStatement{Node: p.node("SwitchStatement", start), Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseThrowStatement(ctx Context) IStmt {
	start := p.mark()
	p.next()
	if p.newline {
		p.failAtMark(start, ErrNewlineAfterThrow)
	}
	arg := p.parseExpression(ctx)
	p.consumeSemicolon()
	return &ThrowStatement{Node: p.node("ThrowStatement", start), Argument: arg}
}

func (p *Parser) parseTryStatement(ctx Context, scope ScopeID) IStmt {
	start := p.mark()
	p.next()
	block := p.parseBlockStatement(ctx, scope)

	var handler *CatchClause
	if p.tok.TokenType == CatchToken {
		catchStart := p.mark()
		p.next()

		var param IPattern
		var bodyScope ScopeID
		if p.tok.TokenType == OpenParenToken {
			p.next()
			paramScope := p.openScope(scope, ScopeCatchIdentifier)
			kind := BindingCatchIdentifier
			if p.tok.TokenType == OpenBracketToken || p.tok.TokenType == OpenBraceToken {
				kind = BindingCatchPattern
			}
			param = p.parseBindingTarget(ctx, paramScope, kind, OriginNone)
			p.expect(CloseParenToken)
			bodyScope = p.openScope(paramScope, ScopeCatchBlock)
		} else {
			bodyScope = p.openScope(scope, ScopeCatchBlock)
		}
		body := p.parseBlock(ctx, bodyScope)
		handler = &CatchClause{Node: p.node("CatchClause", catchStart), Param: param, Body: body}
	}

	var finalizer *BlockStatement
	if p.tok.TokenType == FinallyToken {
		p.next()
		finalizer = p.parseBlockStatement(ctx, scope)
	}
	if handler == nil && finalizer == nil {
		p.failAt(ErrNoCatchOrFinally)
	}
	return &TryStatement{Node: p.node("TryStatement", start), Block: block, Handler: handler, Finalizer: finalizer}
}

// parseBlockStatement parses a block in a new scope.
func (p *Parser) parseBlockStatement(ctx Context, scope ScopeID) *BlockStatement {
	return p.parseBlock(ctx, p.openScope(scope, ScopeBlock))
}

// parseBlock parses a block whose declarations go into scope.
func (p *Parser) parseBlock(ctx Context, scope ScopeID) *BlockStatement {
	start := p.mark()
	p.expect(OpenBraceToken)
	body := []IStmt{}
	for p.tok.TokenType != CloseBraceToken {
		if p.tok.TokenType == ErrorToken {
			p.unexpected()
		}
		body = append(body, p.parseStatementListItem(ctx, scope, OriginNone))
	}
	p.next()
	p.closeScope(ctx, scope)
	return &BlockStatement{Node: p.node("BlockStatement", start), Body: body}
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseForStatement(ctx Context, scope ScopeID, continued bool) IStmt {
	start := p.mark()
	p.next()
	await := false
	if p.tok.TokenType == AwaitToken {
		if !ctx.InAwait() {
			p.unexpected()
		}
		p.next()
		await = true
	}
	p.expect(OpenParenToken)
	p.markIteration(continued)

	forScope := p.openScope(scope, ScopeBlock)
	head := ctx.With(CtxDisallowIn)
	body := ctx.With(CtxInIteration | CtxSingleStatement)

	var init INode
	initStart := p.mark()
	switch p.tok.TokenType {
	case SemicolonToken:
	case VarToken:
		p.next()
		init = p.parseVariableDeclaration(head, forScope, initStart, "var", OriginStatement, true)
	case ConstToken:
		p.next()
		init = p.parseVariableDeclaration(head, forScope, initStart, "const", OriginStatement, true)
	case LetToken:
		p.next()
		if p.startsLexicalBinding() {
			init = p.parseVariableDeclaration(head, forScope, initStart, "let", OriginStatement, true)
		} else {
			expr := p.parseLetExpression(head, initStart)
			init = p.parseExpressionFrom(head, initStart, expr)
			if p.isContextual("of") {
				p.failAtMark(initStart, ErrForOfLet)
			}
		}
	default:
		async := p.tok.TokenType == AsyncToken
		expr := p.parseExpression(head)
		if id, ok := expr.(*Identifier); ok && async && !id.paren && !await && p.isContextual("of") {
			p.failAtMark(initStart, ErrForOfAsync)
		}
		init = expr
	}

	if p.tok.TokenType == InToken || p.isContextual("of") {
		isOf := p.tok.TokenType != InToken
		keyword := "for-in"
		if isOf {
			keyword = "for-of"
		} else if await {
			p.failAtMark(start, ErrForAwaitWithoutOf)
		}

		var left INode
		switch n := init.(type) {
		case nil:
			p.unexpected()
		case *VariableDeclaration:
			if len(n.Declarations) != 1 {
				p.failAtMark(initStart, ErrForInOfMultipleBindings, keyword)
			}
			if decl := n.Declarations[0]; decl.Init != nil {
				_, simple := decl.Id.(*Identifier)
				if isOf || ctx.Strict() || !ctx.WebCompat() || n.Kind != "var" || !simple {
					p.failAtMark(initStart, ErrForInOfInitializer, keyword)
				}
			}
			if isOf && n.Kind == "var" {
				bindingNames(n.Declarations[0].Id, func(id *Identifier) {
					p.checkForOfVar(forScope, id)
				})
			}
			left = n
		case IExpr:
			left = p.forTarget(ctx, n, keyword)
		}
		p.next()

		var right IExpr
		if isOf {
			right = p.parseAssignment(ctx.Without(CtxDisallowIn))
		} else {
			right = p.parseExpression(ctx.Without(CtxDisallowIn))
		}
		p.expect(CloseParenToken)
		stmt := p.parseStatement(body, forScope)
		p.closeScope(ctx, forScope)
		if isOf {
			return &ForOfStatement{Node: p.node("ForOfStatement", start), Left: left, Right: right, Body: stmt, Await: await}
		}
		return &ForInStatement{Node: p.node("ForInStatement", start), Left: left, Right: right, Body: stmt}
	} else if await {
		p.failAtMark(start, ErrForAwaitWithoutOf)
	}

	if decl, ok := init.(*VariableDeclaration); ok {
		for _, d := range decl.Declarations {
			if d.Init != nil {
				continue
			} else if decl.Kind == "const" {
				p.failAtNode(d, ErrMissingInitializer, "const")
			} else if _, ok := d.Id.(*Identifier); !ok {
				p.failAtNode(d, ErrMissingInitializer, "destructuring")
			}
		}
	} else if expr, ok := init.(IExpr); ok && expr == p.destructLit {
		p.checkExpressionLiteral(p.destructD)
	}
	p.expect(SemicolonToken)

	var test, update IExpr
	if p.tok.TokenType != SemicolonToken {
		test = p.parseExpression(ctx.Without(CtxDisallowIn))
	}
	p.expect(SemicolonToken)
	if p.tok.TokenType != CloseParenToken {
		update = p.parseExpression(ctx.Without(CtxDisallowIn))
	}
	p.expect(CloseParenToken)
	stmt := p.parseStatement(body, forScope)
	p.closeScope(ctx, forScope)
	return &ForStatement{Node: p.node("ForStatement", start), Init: init, Test: test, Update: update, Body: stmt}
}

// forTarget validates the left-hand side of a for-in or for-of statement.
func (p *Parser) forTarget(ctx Context, expr IExpr, keyword string) INode {
	switch expr.(type) {
	case *ArrayExpression, *ObjectExpression:
		if !expr.base().paren {
			if expr == p.destructLit && p.destructD&NotDestructible != 0 {
				p.failAtNode(expr, ErrInvalidDestructuringTarget)
			}
			return p.reinterpret(ctx, expr, false)
		}
	}
	return p.checkSimpleTarget(ctx, expr, ErrInvalidLHSInFor, keyword)
}

// parseVariableDeclaration parses the declarators following var, let or const. Initializers are only enforced
// outside of for statement heads, where the for statement checks them itself.
func (p *Parser) parseVariableDeclaration(ctx Context, scope ScopeID, start mark, kind string, origin Origin, inFor bool) *VariableDeclaration {
	bindingKind := BindingVariable
	if kind == "let" {
		bindingKind = BindingLet
	} else if kind == "const" {
		bindingKind = BindingConst
	}

	decls := []*VariableDeclarator{}
	for {
		declStart := p.mark()
		id := p.parseBindingTarget(ctx, scope, bindingKind, origin)
		var init IExpr
		if p.tok.TokenType == EqToken {
			p.next()
			init = p.parseAssignment(ctx)
		} else if !inFor {
			if kind == "const" {
				p.failAt(ErrMissingInitializer, "const")
			} else if _, ok := id.(*Identifier); !ok {
				p.failAt(ErrMissingInitializer, "destructuring")
			}
		}
		decls = append(decls, &VariableDeclarator{Node: p.node("VariableDeclarator", declStart), Id: id, Init: init})
		if p.tok.TokenType != CommaToken {
			break
		}
		p.next()
	}
	return &VariableDeclaration{Node: p.node("VariableDeclaration", start), Declarations: decls, Kind: kind}
}
