package js

// parseExpression parses a comma separated list of assignment expressions.
func (p *Parser) parseExpression(ctx Context) IExpr {
	start := p.mark()
	expr := p.parseAssignment(ctx)
	return p.parseSequenceRest(ctx, start, expr)
}

// parseExpressionFrom continues an expression of which the leading primary expression was already parsed.
func (p *Parser) parseExpressionFrom(ctx Context, start mark, expr IExpr) IExpr {
	return p.parseSequenceRest(ctx, start, p.parseAssignmentFrom(ctx, start, expr))
}

// parseAssignmentFrom continues an assignment expression of which the leading primary expression was already parsed.
func (p *Parser) parseAssignmentFrom(ctx Context, start mark, expr IExpr) IExpr {
	expr = p.parseLHSRest(ctx, start, expr, true)
	expr = p.parsePostfix(ctx, start, expr)
	expr = p.parseBinaryRest(ctx, start, OpCoalesce, expr)
	expr = p.parseConditionalRest(ctx, start, expr)
	return p.parseAssignmentRest(ctx, start, expr)
}

func (p *Parser) parseSequenceRest(ctx Context, start mark, expr IExpr) IExpr {
	if p.tok.TokenType != CommaToken {
		return expr
	}
	exprs := []IExpr{expr}
	for p.tok.TokenType == CommaToken {
		p.next()
		exprs = append(exprs, p.parseAssignment(ctx))
	}
	return &SequenceExpression{Node: p.node("SequenceExpression", start), Expressions: exprs}
}

func (p *Parser) parseAssignment(ctx Context) IExpr {
	p.enter()
	defer p.leave()

	start := p.mark()
	if p.tok.TokenType == YieldToken && ctx.InYield() {
		return p.parseYield(ctx)
	}
	expr := p.parseConditional(ctx, true)
	return p.parseAssignmentRest(ctx, start, expr)
}

func (p *Parser) parseAssignmentRest(ctx Context, start mark, left IExpr) IExpr {
	if !IsAssignOperator(p.tok.TokenType) {
		return left
	}

	op := p.tok.TokenType
	var target INode
	switch left.(type) {
	case *ArrayExpression, *ObjectExpression:
		if op != EqToken || left.base().paren {
			p.failAt(ErrInvalidLHS)
		} else if left == p.destructLit && p.destructD&NotDestructible != 0 {
			p.failAt(ErrInvalidDestructuringTarget)
		}
		target = p.reinterpret(ctx, left, false)
	default:
		target = p.checkSimpleTarget(ctx, left, ErrInvalidLHS)
	}
	p.next()

	right := p.parseAssignment(ctx)
	return &AssignmentExpression{
		Node:     p.node("AssignmentExpression", start),
		Operator: op.String(),
		Left:     target,
		Right:    right,
	}
}

// checkSimpleTarget returns expr if it is an identifier or member expression and fails with kind otherwise.
func (p *Parser) checkSimpleTarget(ctx Context, expr IExpr, kind ErrorKind, params ...string) IExpr {
	switch n := expr.(type) {
	case *Identifier:
		if ctx.Strict() && (n.Name == "eval" || n.Name == "arguments") {
			p.failAtNode(n, ErrStrictEvalArguments, n.Name)
		}
		return n
	case *MemberExpression:
		return n
	}
	p.failAtNode(expr, kind, params...)
	return nil
}

func (p *Parser) parseYield(ctx Context) IExpr {
	start := p.mark()
	p.next()
	p.flags |= FlagSeenYield

	n := &YieldExpression{}
	if !p.newline {
		if p.tok.TokenType == MulToken {
			p.next()
			n.Delegate = true
			n.Argument = p.parseAssignment(ctx)
		} else if p.startsExpression() {
			n.Argument = p.parseAssignment(ctx)
		}
	}
	n.Node = p.node("YieldExpression", start)
	return n
}

// startsExpression returns true if the current token can begin an expression.
func (p *Parser) startsExpression() bool {
	switch tt := p.tok.TokenType; tt {
	case OpenParenToken, OpenBracketToken, OpenBraceToken, AddToken, SubToken, NotToken, BitNotToken,
		IncrToken, DecrToken, DivToken, DivEqToken, StringToken, NumericToken, BigIntToken, TemplateToken,
		TemplateStartToken:
		return true
	case InToken, InstanceofToken:
		return false
	default:
		return IsIdentifierName(tt)
	}
}

func (p *Parser) parseConditional(ctx Context, canArrow bool) IExpr {
	start := p.mark()
	test := p.parseBinary(ctx, OpCoalesce, canArrow)
	return p.parseConditionalRest(ctx, start, test)
}

func (p *Parser) parseConditionalRest(ctx Context, start mark, test IExpr) IExpr {
	if p.tok.TokenType != QuestionToken || isBareArrow(test) {
		return test
	}
	p.next()
	consequent := p.parseAssignment(ctx.Without(CtxDisallowIn))
	p.expect(ColonToken)
	alternate := p.parseAssignment(ctx)
	return &ConditionalExpression{
		Node:       p.node("ConditionalExpression", start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (p *Parser) parseBinary(ctx Context, minPrec OpPrec, canArrow bool) IExpr {
	p.enter()
	defer p.leave()

	start := p.mark()
	left := p.parseUnary(ctx, canArrow)
	return p.parseBinaryRest(ctx, start, minPrec, left)
}

// parseBinaryRest consumes binary operators binding at least as strong as minPrec by precedence climbing.
func (p *Parser) parseBinaryRest(ctx Context, start mark, minPrec OpPrec, left IExpr) IExpr {
	if isBareArrow(left) {
		return left
	}
	for {
		tt := p.tok.TokenType
		prec := binaryPrec(tt, ctx.DisallowIn())
		if prec == OpEnd || prec < minPrec {
			return left
		}
		if tt == ExpToken && !left.base().paren {
			switch left.(type) {
			case *UnaryExpression, *AwaitExpression:
				p.failAt(ErrUnaryBeforeExponent)
			}
		}
		p.next()

		next := prec + 1
		if tt == ExpToken {
			next = prec // right-associative
		}
		right := p.parseBinary(ctx, next, false)
		if tt == NullishToken && (isMixedLogical(left, true) || isMixedLogical(right, true)) ||
			(tt == AndToken || tt == OrToken) && (isMixedLogical(left, false) || isMixedLogical(right, false)) {
			p.failAt(ErrMixedCoalesce)
		}

		if isLogicalOperator(tt) {
			left = &LogicalExpression{Node: p.node("LogicalExpression", start), Operator: tt.String(), Left: left, Right: right}
		} else {
			left = &BinaryExpression{Node: p.node("BinaryExpression", start), Operator: tt.String(), Left: left, Right: right}
		}
	}
}

// isMixedLogical returns true if n is an unparenthesized logical expression that may not be mixed with ?? (coalesce)
// or with && and || (!coalesce).
func isMixedLogical(n IExpr, coalesce bool) bool {
	l, ok := n.(*LogicalExpression)
	if !ok || l.paren {
		return false
	}
	return (l.Operator == "??") != coalesce
}

func isBareArrow(n IExpr) bool {
	arrow, ok := n.(*ArrowFunctionExpression)
	return ok && !arrow.paren
}

func (p *Parser) parseUnary(ctx Context, canArrow bool) IExpr {
	p.enter()
	defer p.leave()

	start := p.mark()
	switch tt := p.tok.TokenType; tt {
	case DeleteToken, VoidToken, TypeofToken, AddToken, SubToken, BitNotToken, NotToken:
		p.next()
		arg := p.parseUnary(ctx, false)
		if _, ok := arg.(*Identifier); ok && tt == DeleteToken && ctx.Strict() {
			p.failAtMark(start, ErrStrictDelete)
		}
		return &UnaryExpression{Node: p.node("UnaryExpression", start), Operator: tt.String(), Prefix: true, Argument: arg}
	case IncrToken, DecrToken:
		p.next()
		arg := p.parseUnary(ctx, false)
		p.checkSimpleTarget(ctx, arg, ErrInvalidUpdateTarget, "prefix")
		return &UpdateExpression{Node: p.node("UpdateExpression", start), Operator: tt.String(), Prefix: true, Argument: arg}
	case AwaitToken:
		if ctx.InAwait() {
			p.next()
			p.flags |= FlagSeenAwait
			arg := p.parseUnary(ctx, false)
			return &AwaitExpression{Node: p.node("AwaitExpression", start), Argument: arg}
		}
	}
	expr := p.parseLHS(ctx, canArrow)
	return p.parsePostfix(ctx, start, expr)
}

func (p *Parser) parsePostfix(ctx Context, start mark, expr IExpr) IExpr {
	tt := p.tok.TokenType
	if tt != IncrToken && tt != DecrToken || p.newline || isBareArrow(expr) {
		return expr
	}
	p.checkSimpleTarget(ctx, expr, ErrInvalidUpdateTarget, "postfix")
	p.next()
	return &UpdateExpression{Node: p.node("UpdateExpression", start), Operator: tt.String(), Argument: expr}
}

func (p *Parser) parseLHS(ctx Context, canArrow bool) IExpr {
	start := p.mark()
	var expr IExpr
	if p.tok.TokenType == NewToken {
		expr = p.parseNew(ctx)
	} else {
		expr = p.parsePrimary(ctx, canArrow)
	}
	return p.parseLHSRest(ctx, start, expr, true)
}

// parseLHSRest parses member accesses, calls, optional chains and tagged templates following expr.
// Calls are not consumed for the callee of a new expression.
func (p *Parser) parseLHSRest(ctx Context, start mark, expr IExpr, allowCall bool) IExpr {
	if isBareArrow(expr) {
		return expr
	}

	chain := false
	for {
		switch p.tok.TokenType {
		case DotToken:
			p.next()
			property := p.identifier()
			expr = &MemberExpression{Node: p.node("MemberExpression", start), Object: expr, Property: property}
		case OpenBracketToken:
			p.next()
			property := p.parseExpression(ctx.Without(CtxDisallowIn))
			p.expect(CloseBracketToken)
			expr = &MemberExpression{Node: p.node("MemberExpression", start), Object: expr, Property: property, Computed: true}
		case OptChainToken:
			if !allowCall {
				p.failAt(ErrInvalidOptionalChain, "new expression")
			}
			p.next()
			chain = true
			switch p.tok.TokenType {
			case OpenParenToken:
				args := p.parseArguments(ctx)
				expr = &CallExpression{Node: p.node("CallExpression", start), Callee: expr, Arguments: args, Optional: true}
			case OpenBracketToken:
				p.next()
				property := p.parseExpression(ctx.Without(CtxDisallowIn))
				p.expect(CloseBracketToken)
				expr = &MemberExpression{Node: p.node("MemberExpression", start), Object: expr, Property: property, Computed: true, Optional: true}
			case TemplateToken, TemplateStartToken:
				p.failAt(ErrInvalidOptionalChain, "tagged template")
			default:
				property := p.identifier()
				expr = &MemberExpression{Node: p.node("MemberExpression", start), Object: expr, Property: property, Optional: true}
			}
		case OpenParenToken:
			if !allowCall {
				return p.wrapChain(start, expr, chain)
			}
			args := p.parseArguments(ctx)
			expr = &CallExpression{Node: p.node("CallExpression", start), Callee: expr, Arguments: args}
		case TemplateToken, TemplateStartToken:
			if chain {
				p.failAt(ErrInvalidOptionalChain, "tagged template")
			}
			quasi := p.parseTemplate(ctx, true)
			expr = &TaggedTemplateExpression{Node: p.node("TaggedTemplateExpression", start), Tag: expr, Quasi: quasi}
		default:
			return p.wrapChain(start, expr, chain)
		}
	}
}

func (p *Parser) wrapChain(start mark, expr IExpr, chain bool) IExpr {
	if !chain {
		return expr
	}
	return &ChainExpression{Node: p.node("ChainExpression", start), Expression: expr}
}

func (p *Parser) parseArguments(ctx Context) []IExpr {
	p.expect(OpenParenToken)
	ctx = ctx.Without(CtxDisallowIn)
	args := []IExpr{}
	for p.tok.TokenType != CloseParenToken {
		if p.tok.TokenType == EllipsisToken {
			start := p.mark()
			p.next()
			arg := p.parseAssignment(ctx)
			args = append(args, &SpreadElement{Node: p.node("SpreadElement", start), Argument: arg})
		} else {
			args = append(args, p.parseAssignment(ctx))
		}
		if p.tok.TokenType != CloseParenToken {
			p.expect(CommaToken)
		}
	}
	p.next()
	return args
}

func (p *Parser) parseNew(ctx Context) IExpr {
	p.enter()
	defer p.leave()

	start := p.mark()
	p.next()
	if p.tok.TokenType == DotToken {
		meta := &Identifier{Node: p.node("Identifier", start), Name: "new"}
		p.next()
		if !p.isContextual("target") {
			p.failAt(ErrExpected, "target")
		} else if !ctx.AllowNewTarget() {
			p.failAtMark(start, ErrInvalidNewTarget)
		}
		property := p.identifier()
		return &MetaProperty{Node: p.node("MetaProperty", start), Meta: meta, Property: property}
	}

	calleeStart := p.mark()
	var callee IExpr
	switch p.tok.TokenType {
	case NewToken:
		callee = p.parseNew(ctx)
	case ImportToken:
		p.unexpected()
	default:
		callee = p.parsePrimary(ctx, false)
	}
	callee = p.parseLHSRest(ctx, calleeStart, callee, false)

	args := []IExpr{}
	if p.tok.TokenType == OpenParenToken {
		args = p.parseArguments(ctx)
	}
	return &NewExpression{Node: p.node("NewExpression", start), Callee: callee, Arguments: args}
}

func (p *Parser) parsePrimary(ctx Context, canArrow bool) IExpr {
	start := p.mark()
	switch tt := p.tok.TokenType; tt {
	case ThisToken:
		p.next()
		return &ThisExpression{Node: p.node("ThisExpression", start)}
	case NullToken, TrueToken, FalseToken:
		n := &Literal{raw: string(p.tok.Data)}
		if tt != NullToken {
			n.Value = tt == TrueToken
		}
		if p.opts.Raw {
			n.Raw = n.raw
		}
		p.next()
		n.Node = p.node("Literal", start)
		return n
	case StringToken, NumericToken, BigIntToken:
		return p.literal(ctx)
	case DivToken, DivEqToken:
		p.regexp()
		n := &Literal{
			raw:   string(p.tok.Data),
			Regex: &RegExpLiteral{Pattern: p.tok.Value, Flags: p.tok.Flags},
		}
		if p.opts.Raw {
			n.Raw = n.raw
		}
		p.next()
		n.Node = p.node("Literal", start)
		return n
	case TemplateToken, TemplateStartToken:
		return p.parseTemplate(ctx, false)
	case OpenBracketToken, OpenBraceToken:
		var lit IExpr
		var d Destructible
		if tt == OpenBracketToken {
			lit, d = p.parseArrayLiteral(ctx)
		} else {
			lit, d = p.parseObjectLiteral(ctx)
		}
		if p.tok.TokenType == EqToken || ctx.DisallowIn() && (p.tok.TokenType == InToken || p.isContextual("of")) {
			// the enclosing assignment or for statement decides between expression and pattern
			p.destructLit, p.destructD = lit, d
		} else {
			p.checkExpressionLiteral(d)
		}
		return lit
	case OpenParenToken:
		return p.parseGroup(ctx, start, canArrow)
	case FunctionToken:
		return p.parseFunctionExpression(ctx, start, false)
	case ClassToken:
		return p.parseClassExpression(ctx)
	case SuperToken:
		return p.parseSuper(ctx)
	case ImportToken:
		p.next()
		return p.parseImportRest(ctx, start)
	case AsyncToken:
		p.next()
		return p.parseAsyncRest(ctx, start, canArrow)
	}

	if !isIdentifierToken(p.tok.TokenType) {
		p.unexpected()
	}
	id := p.parseIdentifier(ctx)
	if p.tok.TokenType == ArrowToken && canArrow {
		return p.parseArrowFromIdentifier(ctx, start, id, false)
	}
	return id
}

// checkExpressionLiteral fails for an array or object literal that can only be valid as a pattern.
func (p *Parser) checkExpressionLiteral(d Destructible) {
	if d&SeenProto != 0 {
		p.failAt(ErrDuplicateProto)
	} else if d&MustDestruct != 0 {
		p.failAt(ErrInvalidShorthandInit)
	}
}

func (p *Parser) parseSuper(ctx Context) IExpr {
	start := p.mark()
	p.next()
	switch p.tok.TokenType {
	case OpenParenToken:
		if !ctx.SuperCall() {
			p.failAtMark(start, ErrInvalidSuperCall)
		}
	case DotToken, OpenBracketToken:
		if !ctx.SuperProperty() {
			p.failAtMark(start, ErrInvalidSuperProperty)
		}
	default:
		p.failAtMark(start, ErrInvalidSuperCall)
	}
	return &Super{Node: p.node("Super", start)}
}

// parseImportRest parses import() or import.meta after the import keyword.
func (p *Parser) parseImportRest(ctx Context, start mark) IExpr {
	switch p.tok.TokenType {
	case OpenParenToken:
		p.next()
		source := p.parseAssignment(ctx.Without(CtxDisallowIn))
		p.expect(CloseParenToken)
		return &ImportExpression{Node: p.node("ImportExpression", start), Source: source}
	case DotToken:
		meta := &Identifier{Node: p.node("Identifier", start), Name: "import"}
		p.next()
		if !p.isContextual("meta") {
			p.failAt(ErrExpected, "meta")
		} else if !ctx.Module() {
			p.failAtMark(start, ErrImportMetaOutsideModule)
		}
		property := p.identifier()
		return &MetaProperty{Node: p.node("MetaProperty", start), Meta: meta, Property: property}
	}
	p.unexpected()
	return nil
}

// parseAsyncRest parses what follows an unescaped async: an async function or arrow function, a call to a function
// named async or the identifier itself.
func (p *Parser) parseAsyncRest(ctx Context, start mark, canArrow bool) IExpr {
	async := &Identifier{Node: p.node("Identifier", start), Name: "async"}
	if p.newline {
		if p.tok.TokenType == ArrowToken && canArrow {
			p.failAt(ErrNewlineBeforeArrow)
		}
		return async
	}

	switch tt := p.tok.TokenType; {
	case tt == FunctionToken:
		return p.parseFunctionExpression(ctx, start, true)
	case tt == ArrowToken && canArrow:
		return p.parseArrowFromIdentifier(ctx, start, async, false)
	case isIdentifierToken(tt) && canArrow:
		id := p.parseBindingIdentifier(ctx.With(CtxInAwait), BindingArgumentList)
		if p.tok.TokenType != ArrowToken {
			if id.Name == "of" && ctx.DisallowIn() {
				p.failAtMark(start, ErrForOfAsync)
			}
			p.failAt(ErrExpected, "=>")
		}
		return p.parseArrowFromIdentifier(ctx, start, id, true)
	case tt == OpenParenToken:
		return p.parseAsyncCallOrArrow(ctx, start, async, canArrow)
	}
	return async
}

// parseAsyncCallOrArrow parses the parenthesized list after async, which are arguments of a call unless an arrow
// follows, in which case they are reinterpreted as parameters.
func (p *Parser) parseAsyncCallOrArrow(ctx Context, start mark, callee *Identifier, canArrow bool) IExpr {
	p.next()
	inner := ctx.Without(CtxDisallowIn)
	flags := p.flags
	p.flags &^= FlagSeenYield | FlagSeenAwait | FlagAwaitIdentifier

	var d Destructible
	args := []IExpr{}
	for p.tok.TokenType != CloseParenToken {
		if p.tok.TokenType == EllipsisToken {
			spreadStart := p.mark()
			p.next()
			arg, ad := p.parseTargetElement(inner)
			if _, ok := arg.(*AssignmentExpression); ok {
				ad |= NotDestructible
			}
			d |= ad
			args = append(args, &SpreadElement{Node: p.node("SpreadElement", spreadStart), Argument: arg})
			if p.tok.TokenType != CloseParenToken {
				d |= NotDestructible
			}
		} else {
			arg, ad := p.parseTargetElement(inner)
			d |= ad
			args = append(args, arg)
		}
		if p.tok.TokenType != CloseParenToken {
			p.expect(CommaToken)
		}
	}
	p.next()

	if p.tok.TokenType == ArrowToken && canArrow {
		if d&(NotDestructible|AssignableDestruct) != 0 {
			p.failAtMark(start, ErrInvalidArrowParams)
		} else if p.flags&(FlagSeenAwait|FlagAwaitIdentifier) != 0 {
			p.failAtMark(start, ErrAwaitInParams)
		} else if p.flags&FlagSeenYield != 0 {
			p.failAtMark(start, ErrYieldInParams)
		}
		p.flags = flags
		return p.parseArrowFromParams(ctx, start, args, true)
	}

	p.flags = flags | p.flags&(FlagSeenYield|FlagSeenAwait|FlagAwaitIdentifier)
	p.checkExpressionLiteral(d)
	return &CallExpression{Node: p.node("CallExpression", start), Callee: callee, Arguments: args}
}

// parseGroup parses a parenthesized expression or the parameters of an arrow function.
func (p *Parser) parseGroup(ctx Context, start mark, canArrow bool) IExpr {
	p.next()
	inner := ctx.Without(CtxDisallowIn)
	if p.tok.TokenType == CloseParenToken {
		p.next()
		if p.tok.TokenType != ArrowToken || !canArrow {
			p.unexpected()
		}
		return p.parseArrowFromParams(ctx, start, nil, false)
	}

	flags := p.flags
	p.flags &^= FlagSeenYield | FlagSeenAwait | FlagAwaitIdentifier

	var d Destructible
	needsArrow := false // rest element or trailing comma
	exprs := []IExpr{}
	seqStart := p.mark()
	for {
		if p.tok.TokenType == EllipsisToken {
			restStart := p.mark()
			p.next()
			arg, ad := p.parseTargetElement(inner)
			if _, ok := arg.(*AssignmentExpression); ok {
				p.failAt(ErrRestInitializer)
			}
			exprs = append(exprs, &SpreadElement{Node: p.node("SpreadElement", restStart), Argument: arg})
			d |= ad
			needsArrow = true
			if p.tok.TokenType == CommaToken {
				comma := p.mark()
				p.next()
				if p.tok.TokenType == CloseParenToken {
					p.failAtMark(comma, ErrRestTrailingComma)
				}
				p.failAtMark(comma, ErrRestNotLast)
			}
			break
		}

		expr, ed := p.parseTargetElement(inner)
		d |= ed
		exprs = append(exprs, expr)
		if p.tok.TokenType != CommaToken {
			break
		}
		p.next()
		if p.tok.TokenType == CloseParenToken {
			needsArrow = true // trailing comma
			break
		}
	}
	seqEnd := p.prevEnd
	p.expect(CloseParenToken)

	if p.tok.TokenType == ArrowToken && canArrow {
		if d&(NotDestructible|AssignableDestruct) != 0 {
			p.failAtMark(start, ErrInvalidArrowParams)
		} else if p.flags&FlagSeenYield != 0 {
			p.failAtMark(start, ErrYieldInParams)
		} else if p.flags&FlagSeenAwait != 0 {
			p.failAtMark(start, ErrAwaitInParams)
		}
		p.flags = flags
		return p.parseArrowFromParams(ctx, start, exprs, false)
	}

	p.flags = flags | p.flags&(FlagSeenYield|FlagSeenAwait|FlagAwaitIdentifier)
	if needsArrow {
		p.failAt(ErrExpected, "=>")
	} else if d&SeenProto != 0 {
		p.failAtMark(start, ErrDuplicateProto)
	} else if d&MustDestruct != 0 {
		p.failAtMark(start, ErrInvalidShorthandInit)
	}

	var expr IExpr
	if len(exprs) == 1 {
		expr = exprs[0]
	} else {
		expr = &SequenceExpression{Node: p.nodeAt("SequenceExpression", seqStart, seqEnd), Expressions: exprs}
	}
	expr.base().paren = true
	return expr
}

// parseArrowFromIdentifier parses an arrow function with a single unparenthesized parameter.
func (p *Parser) parseArrowFromIdentifier(ctx Context, start mark, id *Identifier, async bool) IExpr {
	if p.newline {
		p.failAt(ErrNewlineBeforeArrow)
	} else if ctx.Strict() && (id.Name == "eval" || id.Name == "arguments") {
		p.failAtMark(start, ErrStrictEvalArguments, id.Name)
	}
	scope := p.openScope(noScope, ScopeArrowParams)
	p.addVarName(ctx, scope, id, BindingArgumentList)
	return p.parseArrowFunction(ctx, start, scope, []IPattern{id}, async, true)
}

// parseArrowFromParams reinterprets the expressions of a group or async call as arrow parameters.
func (p *Parser) parseArrowFromParams(ctx Context, start mark, exprs []IExpr, async bool) IExpr {
	if p.newline {
		p.failAt(ErrNewlineBeforeArrow)
	}

	scope := p.openScope(noScope, ScopeArrowParams)
	params := make([]IPattern, len(exprs))
	simple := true
	for i, expr := range exprs {
		if spread, ok := expr.(*SpreadElement); ok {
			params[i] = p.restElement(ctx, spread, true)
		} else {
			params[i] = p.reinterpret(ctx, expr, true)
		}
		if _, ok := params[i].(*Identifier); !ok {
			simple = false
		}
		bindingNames(params[i], func(id *Identifier) {
			p.addVarName(ctx, scope, id, BindingArgumentList)
		})
	}
	return p.parseArrowFunction(ctx, start, scope, params, async, simple)
}

// parseArrowFunction parses the arrow and the body of an arrow function whose parameters were registered in scope.
func (p *Parser) parseArrowFunction(ctx Context, start mark, scope ScopeID, params []IPattern, async, simple bool) IExpr {
	p.expect(ArrowToken)
	p.raiseDeferred(scope)

	ctx = ctx.Without(CtxInYield | CtxInAwait | CtxInGlobal)
	if async {
		ctx = ctx.With(CtxInAwait)
	}

	flags := p.flags
	p.flags = 0
	n := &ArrowFunctionExpression{Params: params, Async: async}
	if p.tok.TokenType == OpenBraceToken {
		ctx = ctx.Without(CtxDisallowIn | CtxInIteration | CtxInSwitch | CtxSingleStatement).With(CtxInFunctionBody)
		n.Body, _ = p.parseFunctionBody(ctx, scope, simple, func() {
			p.checkStrictParams(params)
		})
	} else {
		n.Body = p.parseAssignment(ctx)
		n.Expression = true
	}
	p.flags = flags
	n.Node = p.node("ArrowFunctionExpression", start)
	return n
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseTemplate(ctx Context, tagged bool) *TemplateLiteral {
	start := p.mark()
	n := &TemplateLiteral{Quasis: []*TemplateElement{}, Expressions: []IExpr{}}
	for {
		tt := p.tok.TokenType
		tail := tt == TemplateToken || tt == TemplateEndToken
		n.Quasis = append(n.Quasis, p.templateElement(tagged, tail))
		p.next()
		if tail {
			break
		}
		n.Expressions = append(n.Expressions, p.parseExpression(ctx.Without(CtxDisallowIn)))
		if p.tok.TokenType != TemplateMiddleToken && p.tok.TokenType != TemplateEndToken {
			p.failAt(ErrExpected, "}")
		}
	}
	n.Node = p.node("TemplateLiteral", start)
	return n
}

// templateElement returns the element of the current template token, excluding its delimiters.
func (p *Parser) templateElement(tagged, tail bool) *TemplateElement {
	tok := p.tok
	trim := 2 // ${
	if tail {
		trim = 1 // `
	}
	el := &TemplateElement{
		Value: TemplateValue{Raw: normalizeLineTerminators(tok.Data[1 : len(tok.Data)-trim])},
		Tail:  tail,
	}
	if tok.Invalid {
		if !tagged {
			p.failAt(ErrInvalidTemplateEscape)
		}
	} else {
		cooked := tok.Value
		el.Value.Cooked = &cooked
	}
	start := mark{tok.Start + 1, tok.Line, tok.Column + 1}
	end := mark{tok.End - trim, tok.EndLine, tok.EndColumn - trim}
	el.Node = p.nodeAt("TemplateElement", start, end)
	return el
}

////////////////////////////////////////////////////////////////

// parseArrayLiteral parses an array literal and returns whether it could be reinterpreted as a pattern.
func (p *Parser) parseArrayLiteral(ctx Context) (*ArrayExpression, Destructible) {
	start := p.mark()
	p.next()
	ctx = ctx.Without(CtxDisallowIn)

	var d Destructible
	elements := []IExpr{}
	for p.tok.TokenType != CloseBracketToken {
		if p.tok.TokenType == CommaToken {
			p.next()
			elements = append(elements, nil)
			continue
		}

		if p.tok.TokenType == EllipsisToken {
			spreadStart := p.mark()
			p.next()
			arg, ad := p.parseTargetElement(ctx)
			if _, ok := arg.(*AssignmentExpression); ok {
				ad |= NotDestructible
			}
			d |= ad
			elements = append(elements, &SpreadElement{Node: p.node("SpreadElement", spreadStart), Argument: arg})
			if p.tok.TokenType != CloseBracketToken {
				d |= NotDestructible // rest must be last without a trailing comma
			}
		} else {
			el, ed := p.parseTargetElement(ctx)
			d |= ed
			elements = append(elements, el)
		}
		if p.tok.TokenType != CloseBracketToken {
			p.expect(CommaToken)
		}
	}
	p.next()

	if d&NotDestructible != 0 && d&MustDestruct != 0 {
		p.failAtMark(start, ErrInvalidDestructuringTarget)
	}
	return &ArrayExpression{Node: p.node("ArrayExpression", start), Elements: elements}, d
}

// parseObjectLiteral parses an object literal and returns whether it could be reinterpreted as a pattern.
func (p *Parser) parseObjectLiteral(ctx Context) (*ObjectExpression, Destructible) {
	start := p.mark()
	p.next()
	ctx = ctx.Without(CtxDisallowIn)

	var d Destructible
	protoSeen := false
	properties := []INode{}
	for p.tok.TokenType != CloseBraceToken {
		if p.tok.TokenType == EllipsisToken {
			spreadStart := p.mark()
			p.next()
			arg, ad := p.parseTargetElement(ctx)
			switch arg.(type) {
			case *Identifier, *MemberExpression:
				d |= ad
			default:
				d |= ad | NotDestructible // the rest of an object pattern cannot be nested
			}
			properties = append(properties, &SpreadElement{Node: p.node("SpreadElement", spreadStart), Argument: arg})
		} else {
			prop, pd := p.parseProperty(ctx, &protoSeen)
			d |= pd
			properties = append(properties, prop)
		}
		if p.tok.TokenType != CloseBraceToken {
			p.expect(CommaToken)
		}
	}
	p.next()

	if d&NotDestructible != 0 && d&MustDestruct != 0 {
		p.failAtMark(start, ErrInvalidDestructuringTarget)
	}
	return &ObjectExpression{Node: p.node("ObjectExpression", start), Properties: properties}, d
}

// isPropertyNameEnd returns true if the current token ends a property name, meaning that a preceding get, set or
// async is the name itself.
func (p *Parser) isPropertyNameEnd() bool {
	switch p.tok.TokenType {
	case CommaToken, ColonToken, OpenParenToken, CloseBraceToken, EqToken:
		return true
	}
	return false
}

func (p *Parser) parseProperty(ctx Context, protoSeen *bool) (INode, Destructible) {
	start := p.mark()
	kind, async, generator := "init", false, false

	keyTok := p.tok
	var key IExpr
	var name string
	computed := false
	if p.isContextual("get") || p.isContextual("set") || p.tok.TokenType == AsyncToken {
		word := p.identifier()
		if p.isPropertyNameEnd() {
			key, name = word, word.Name
		} else if keyTok.TokenType == AsyncToken {
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
	if key == nil {
		keyTok = p.tok
		key, name, computed = p.parsePropertyKey(ctx)
	}

	if kind != "init" || async || generator || p.tok.TokenType == OpenParenToken {
		if p.tok.TokenType != OpenParenToken {
			p.unexpected()
		}
		methodKind := kind
		if kind == "init" {
			methodKind = "method"
		}
		value := p.parseMethod(ctx, methodKind, async, generator, false)
		return &Property{
			Node:     p.node("Property", start),
			Key:      key,
			Value:    value,
			Kind:     kind,
			Method:   kind == "init",
			Computed: computed,
		}, NotDestructible
	}

	if p.tok.TokenType == ColonToken {
		p.next()
		var d Destructible
		if !computed && name == "__proto__" {
			if *protoSeen {
				d |= SeenProto
			}
			*protoSeen = true
		}
		value, vd := p.parseTargetElement(ctx)
		return &Property{Node: p.node("Property", start), Key: key, Value: value, Kind: "init", Computed: computed}, d | vd
	}

	// shorthand
	if computed || !IsIdentifierName(keyTok.TokenType) {
		p.unexpected()
	}
	p.checkIdentifier(ctx, keyTok, false, 0)
	id := key.(*Identifier)
	value := &Identifier{Node: id.Node, Name: id.Name}
	if p.tok.TokenType == EqToken {
		p.next()
		right := p.parseAssignment(ctx)
		assign := &AssignmentExpression{Node: p.node("AssignmentExpression", start), Operator: "=", Left: value, Right: right}
		return &Property{Node: p.node("Property", start), Key: key, Value: assign, Kind: "init", Shorthand: true}, MustDestruct
	}
	return &Property{Node: p.node("Property", start), Key: key, Value: value, Kind: "init", Shorthand: true}, 0
}

// parsePropertyKey parses a literal, identifier or computed property name and returns the key with its static name.
func (p *Parser) parsePropertyKey(ctx Context) (key IExpr, name string, computed bool) {
	switch tt := p.tok.TokenType; {
	case tt == StringToken:
		name = p.tok.Value
		key = p.literal(ctx)
	case tt == NumericToken || tt == BigIntToken:
		key = p.literal(ctx)
	case tt == OpenBracketToken:
		p.next()
		key = p.parseAssignment(ctx.Without(CtxDisallowIn))
		p.expect(CloseBracketToken)
		computed = true
	case IsIdentifierName(tt):
		name = p.tok.Value
		key = p.identifier()
	default:
		p.unexpected()
	}
	return
}
