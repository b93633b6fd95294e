package js

// parseTargetElement parses an element of an array or object literal, or of a parenthesized list, that may later be
// reinterpreted as a pattern. It returns the element together with what that reinterpretation would allow.
func (p *Parser) parseTargetElement(ctx Context) (IExpr, Destructible) {
	p.enter()
	defer p.leave()

	start := p.mark()
	tt := p.tok.TokenType
	if tt != OpenBracketToken && tt != OpenBraceToken {
		expr := p.parseAssignment(ctx)
		return expr, classify(expr)
	}

	var lit IExpr
	var d Destructible
	if tt == OpenBracketToken {
		lit, d = p.parseArrayLiteral(ctx)
	} else {
		lit, d = p.parseObjectLiteral(ctx)
	}

	switch p.tok.TokenType {
	case EqToken:
		if d&NotDestructible != 0 {
			p.failAt(ErrInvalidDestructuringTarget)
		}
		target := p.reinterpret(ctx, lit, false)
		p.next()
		right := p.parseAssignment(ctx)
		assign := &AssignmentExpression{Node: p.node("AssignmentExpression", start), Operator: "=", Left: target, Right: right}
		return assign, d & AssignableDestruct
	case CommaToken, CloseBracketToken, CloseBraceToken, CloseParenToken:
		return lit, d
	}

	p.checkExpressionLiteral(d)
	expr := p.parseAssignmentFrom(ctx, start, lit)
	return expr, classify(expr)
}

// classify returns how an expression that is not an array or object literal behaves as a pattern element.
func classify(expr IExpr) Destructible {
	switch n := expr.(type) {
	case *Identifier:
		if n.paren {
			return AssignableDestruct
		}
		return 0
	case *MemberExpression:
		return AssignableDestruct
	case *AssignmentExpression:
		if n.Operator != "=" || n.paren {
			return NotDestructible
		}
		switch left := n.Left.(type) {
		case *Identifier:
			if left.paren {
				return AssignableDestruct
			}
			return 0
		case *MemberExpression:
			return AssignableDestruct
		}
	}
	return NotDestructible
}

func retype(n Node, typ string) Node {
	n.Type = typ
	n.paren = false
	return n
}

// reinterpret converts an expression into an assignment pattern, or into a binding pattern when binding is set,
// which excludes member expressions and parenthesized identifiers.
func (p *Parser) reinterpret(ctx Context, n INode, binding bool) IPattern {
	switch n := n.(type) {
	case *Identifier:
		if binding && n.paren {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		} else if ctx.Strict() && (n.Name == "eval" || n.Name == "arguments") {
			p.failAtNode(n, ErrStrictEvalArguments, n.Name)
		}
		return n
	case *MemberExpression:
		if binding {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		}
		return n
	case *ArrayExpression:
		if n.paren {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		}
		elements := make([]IPattern, len(n.Elements))
		for i, el := range n.Elements {
			if el == nil {
				continue
			} else if spread, ok := el.(*SpreadElement); ok {
				if i != len(n.Elements)-1 {
					p.failAtNode(spread, ErrRestNotLast)
				}
				elements[i] = p.restElement(ctx, spread, binding)
			} else {
				elements[i] = p.reinterpret(ctx, el, binding)
			}
		}
		return &ArrayPattern{Node: retype(n.Node, "ArrayPattern"), Elements: elements}
	case *ObjectExpression:
		if n.paren {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		}
		properties := make([]INode, len(n.Properties))
		for i, prop := range n.Properties {
			if spread, ok := prop.(*SpreadElement); ok {
				if binding && i != len(n.Properties)-1 {
					p.failAtNode(spread, ErrRestNotLast)
				}
				switch spread.Argument.(type) {
				case *Identifier:
				case *MemberExpression:
					if binding {
						p.failAtNode(spread.Argument, ErrInvalidDestructuringTarget)
					}
				default:
					p.failAtNode(spread.Argument, ErrInvalidDestructuringTarget)
				}
				properties[i] = p.restElement(ctx, spread, binding)
			} else {
				properties[i] = p.reinterpret(ctx, prop, binding)
			}
		}
		return &ObjectPattern{Node: retype(n.Node, "ObjectPattern"), Properties: properties}
	case *Property:
		if n.Kind != "init" || n.Method {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		}
		prop := *n
		prop.Value = p.reinterpret(ctx, n.Value, binding)
		return &prop
	case *AssignmentExpression:
		if n.Operator != "=" || n.paren {
			p.failAtNode(n, ErrInvalidDestructuringTarget)
		}
		left := p.reinterpret(ctx, n.Left, binding)
		return &AssignmentPattern{Node: retype(n.Node, "AssignmentPattern"), Left: left, Right: n.Right}
	case *ArrayPattern:
		if binding {
			for _, el := range n.Elements {
				if el != nil {
					p.reinterpret(ctx, el, binding)
				}
			}
		}
		return n
	case *ObjectPattern:
		if binding {
			for _, prop := range n.Properties {
				p.reinterpret(ctx, prop, binding)
			}
		}
		return n
	case *AssignmentPattern:
		n.Left = p.reinterpret(ctx, n.Left, binding)
		return n
	case *RestElement:
		n.Argument = p.reinterpret(ctx, n.Argument, binding)
		return n
	}
	p.failAtNode(n, ErrInvalidDestructuringTarget)
	return nil
}

func (p *Parser) restElement(ctx Context, spread *SpreadElement, binding bool) *RestElement {
	arg := p.reinterpret(ctx, spread.Argument, binding)
	if _, ok := arg.(*AssignmentPattern); ok {
		p.failAtNode(arg, ErrRestInitializer)
	}
	return &RestElement{Node: retype(spread.Node, "RestElement"), Argument: arg}
}

////////////////////////////////////////////////////////////////

// parseBindingTarget parses a binding identifier or pattern and declares its names in scope.
func (p *Parser) parseBindingTarget(ctx Context, scope ScopeID, kind BindingKind, origin Origin) IPattern {
	p.enter()
	defer p.leave()

	switch p.tok.TokenType {
	case OpenBracketToken:
		return p.parseArrayBindingPattern(ctx, scope, kind, origin)
	case OpenBraceToken:
		return p.parseObjectBindingPattern(ctx, scope, kind, origin)
	}
	id := p.parseBindingIdentifier(ctx, kind)
	p.addVarOrBlock(ctx, scope, id, kind, origin)
	return id
}

// parseBindingElement parses a binding target with an optional default value.
func (p *Parser) parseBindingElement(ctx Context, scope ScopeID, kind BindingKind, origin Origin) IPattern {
	start := p.mark()
	target := p.parseBindingTarget(ctx, scope, kind, origin)
	if p.tok.TokenType != EqToken {
		return target
	}
	p.next()
	right := p.parseAssignment(ctx.Without(CtxDisallowIn))
	return &AssignmentPattern{Node: p.node("AssignmentPattern", start), Left: target, Right: right}
}

// parseBindingRest parses a rest element, which must be the last element before closer.
func (p *Parser) parseBindingRest(ctx Context, scope ScopeID, kind BindingKind, origin Origin, closer TokenType) *RestElement {
	start := p.mark()
	p.next()

	var arg IPattern
	if closer == CloseBraceToken {
		id := p.parseBindingIdentifier(ctx, kind)
		p.addVarOrBlock(ctx, scope, id, kind, origin)
		arg = id
	} else {
		arg = p.parseBindingTarget(ctx, scope, kind, origin)
	}

	if p.tok.TokenType == EqToken {
		p.failAt(ErrRestInitializer)
	} else if p.tok.TokenType == CommaToken {
		comma := p.mark()
		p.next()
		if p.tok.TokenType == closer {
			p.failAtMark(comma, ErrRestTrailingComma)
		}
		p.failAtMark(comma, ErrRestNotLast)
	}
	return &RestElement{Node: p.node("RestElement", start), Argument: arg}
}

func (p *Parser) parseArrayBindingPattern(ctx Context, scope ScopeID, kind BindingKind, origin Origin) *ArrayPattern {
	start := p.mark()
	p.next()

	elements := []IPattern{}
	for p.tok.TokenType != CloseBracketToken {
		if p.tok.TokenType == CommaToken {
			p.next()
			elements = append(elements, nil)
			continue
		} else if p.tok.TokenType == EllipsisToken {
			elements = append(elements, p.parseBindingRest(ctx, scope, kind, origin, CloseBracketToken))
			break
		}

		elements = append(elements, p.parseBindingElement(ctx, scope, kind, origin))
		if p.tok.TokenType != CloseBracketToken {
			p.expect(CommaToken)
		}
	}
	p.expect(CloseBracketToken)
	return &ArrayPattern{Node: p.node("ArrayPattern", start), Elements: elements}
}

func (p *Parser) parseObjectBindingPattern(ctx Context, scope ScopeID, kind BindingKind, origin Origin) *ObjectPattern {
	start := p.mark()
	p.next()

	properties := []INode{}
	for p.tok.TokenType != CloseBraceToken {
		if p.tok.TokenType == EllipsisToken {
			properties = append(properties, p.parseBindingRest(ctx, scope, kind, origin, CloseBraceToken))
			break
		}

		propStart := p.mark()
		keyTok := p.tok
		key, _, computed := p.parsePropertyKey(ctx)
		if p.tok.TokenType == ColonToken {
			p.next()
			value := p.parseBindingElement(ctx, scope, kind, origin)
			properties = append(properties, &Property{
				Node:     p.node("Property", propStart),
				Key:      key,
				Value:    value,
				Kind:     "init",
				Computed: computed,
			})
		} else {
			if computed || !IsIdentifierName(keyTok.TokenType) {
				p.unexpected()
			}
			p.checkIdentifier(ctx, keyTok, true, kind)
			id := key.(*Identifier)
			p.addVarOrBlock(ctx, scope, id, kind, origin)

			var value IPattern = &Identifier{Node: id.Node, Name: id.Name}
			if p.tok.TokenType == EqToken {
				p.next()
				right := p.parseAssignment(ctx.Without(CtxDisallowIn))
				value = &AssignmentPattern{Node: p.node("AssignmentPattern", propStart), Left: value, Right: right}
			}
			properties = append(properties, &Property{
				Node:      p.node("Property", propStart),
				Key:       key,
				Value:     value,
				Kind:      "init",
				Shorthand: true,
			})
		}
		if p.tok.TokenType != CloseBraceToken {
			p.expect(CommaToken)
		}
	}
	p.next()
	return &ObjectPattern{Node: p.node("ObjectPattern", start), Properties: properties}
}

////////////////////////////////////////////////////////////////

// bindingNames calls f for every identifier bound by pattern n.
func bindingNames(n INode, f func(*Identifier)) {
	switch n := n.(type) {
	case *Identifier:
		f(n)
	case *ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				bindingNames(el, f)
			}
		}
	case *ObjectPattern:
		for _, prop := range n.Properties {
			bindingNames(prop, f)
		}
	case *Property:
		bindingNames(n.Value, f)
	case *RestElement:
		bindingNames(n.Argument, f)
	case *AssignmentPattern:
		bindingNames(n.Left, f)
	}
}

// checkStrictParams validates the parameter names of a function whose body turned out to be strict.
func (p *Parser) checkStrictParams(params []IPattern) {
	for _, param := range params {
		bindingNames(param, p.checkStrictBinding)
	}
}
