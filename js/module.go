package js

// checkModuleItem fails for an import or export declaration outside the top level of a module.
func (p *Parser) checkModuleItem(ctx Context, start mark, origin Origin, keyword string) {
	if !ctx.Module() {
		p.failAtMark(start, ErrImportExportOutsideModule, keyword)
	} else if origin&OriginTopLevel == 0 || !ctx.InGlobal() {
		p.failAtMark(start, ErrImportExportNotTopLevel, keyword)
	}
}

// parseModuleSource parses the module specifier string of an import or export.
func (p *Parser) parseModuleSource(ctx Context) *Literal {
	if p.tok.TokenType != StringToken {
		if p.tok.TokenType == ErrorToken {
			p.failAt(ErrUnexpectedEOF)
		}
		p.failAt(ErrExpected, "string")
	}
	return p.literal(ctx)
}

// parseImportBinding parses an imported local name, imports are immutable bindings.
func (p *Parser) parseImportBinding(ctx Context, scope ScopeID) *Identifier {
	id := p.parseBindingIdentifier(ctx, BindingConst)
	p.addBlockName(ctx, scope, id, BindingConst, OriginTopLevel)
	return id
}

// parseImportDeclaration parses an import declaration after the import keyword.
func (p *Parser) parseImportDeclaration(ctx Context, scope ScopeID, start mark, origin Origin) IStmt {
	p.checkModuleItem(ctx, start, origin, "import")

	specifiers := []INode{}
	if p.tok.TokenType == StringToken {
		source := p.parseModuleSource(ctx)
		p.consumeSemicolon()
		return &ImportDeclaration{Node: p.node("ImportDeclaration", start), Specifiers: specifiers, Source: source}
	}

	clause := true
	if isIdentifierToken(p.tok.TokenType) {
		specStart := p.mark()
		local := p.parseImportBinding(ctx, scope)
		specifiers = append(specifiers, &ImportDefaultSpecifier{Node: p.node("ImportDefaultSpecifier", specStart), Local: local})
		clause = p.tok.TokenType == CommaToken
		if clause {
			p.next()
		}
	}

	if clause {
		switch p.tok.TokenType {
		case MulToken:
			specStart := p.mark()
			p.next()
			p.expectContextual("as")
			local := p.parseImportBinding(ctx, scope)
			specifiers = append(specifiers, &ImportNamespaceSpecifier{Node: p.node("ImportNamespaceSpecifier", specStart), Local: local})
		case OpenBraceToken:
			p.next()
			for p.tok.TokenType != CloseBraceToken {
				specStart := p.mark()
				tok := p.tok
				imported := p.identifier()
				var local *Identifier
				if p.isContextual("as") {
					p.next()
					local = p.parseImportBinding(ctx, scope)
				} else {
					p.checkIdentifier(ctx, tok, true, BindingConst)
					local = &Identifier{Node: imported.Node, Name: imported.Name}
					p.addBlockName(ctx, scope, local, BindingConst, OriginTopLevel)
				}
				specifiers = append(specifiers, &ImportSpecifier{Node: p.node("ImportSpecifier", specStart), Imported: imported, Local: local})
				if p.tok.TokenType != CloseBraceToken {
					p.expect(CommaToken)
				}
			}
			p.next()
		default:
			p.unexpected()
		}
	}

	p.expectContextual("from")
	source := p.parseModuleSource(ctx)
	p.consumeSemicolon()
	return &ImportDeclaration{Node: p.node("ImportDeclaration", start), Specifiers: specifiers, Source: source}
}

// parseExportDeclaration parses an export declaration, starting at the export keyword.
func (p *Parser) parseExportDeclaration(ctx Context, scope ScopeID, start mark, origin Origin) IStmt {
	p.next()
	p.checkModuleItem(ctx, start, origin, "export")

	switch p.tok.TokenType {
	case MulToken:
		p.next()
		var exported *Identifier
		if p.isContextual("as") {
			p.next()
			exported = p.identifier()
			p.declareUnboundVariable(exported.Name)
		}
		p.expectContextual("from")
		source := p.parseModuleSource(ctx)
		p.consumeSemicolon()
		return &ExportAllDeclaration{Node: p.node("ExportAllDeclaration", start), Exported: exported, Source: source}
	case DefaultToken:
		p.next()
		declStart := p.mark()
		var decl INode
		switch p.tok.TokenType {
		case FunctionToken:
			decl = p.parseFunctionDeclaration(ctx, scope, declStart, OriginTopLevel, false, declAnonymous)
		case ClassToken:
			c := p.parseClass(ctx, scope, OriginTopLevel, true, true)
			decl = &ClassDeclaration{Node: p.node("ClassDeclaration", declStart), Class: c}
		case AsyncToken:
			p.next()
			if !p.newline && p.tok.TokenType == FunctionToken {
				decl = p.parseFunctionDeclaration(ctx, scope, declStart, OriginTopLevel, true, declAnonymous)
			} else {
				expr := p.parseAsyncRest(ctx, declStart, true)
				decl = p.parseAssignmentFrom(ctx, declStart, expr)
				p.consumeSemicolon()
			}
		default:
			decl = p.parseAssignment(ctx)
			p.consumeSemicolon()
		}
		p.declareUnboundVariable("default")
		return &ExportDefaultDeclaration{Node: p.node("ExportDefaultDeclaration", start), Declaration: decl}
	case OpenBraceToken:
		p.next()
		specifiers := []*ExportSpecifier{}
		locals := []Token{}
		for p.tok.TokenType != CloseBraceToken {
			specStart := p.mark()
			locals = append(locals, p.tok)
			local := p.identifier()
			exported := &Identifier{Node: local.Node, Name: local.Name}
			if p.isContextual("as") {
				p.next()
				exported = p.identifier()
			}
			p.declareUnboundVariable(exported.Name)
			specifiers = append(specifiers, &ExportSpecifier{Node: p.node("ExportSpecifier", specStart), Local: local, Exported: exported})
			if p.tok.TokenType != CloseBraceToken {
				p.expect(CommaToken)
			}
		}
		p.next()

		var source *Literal
		if p.isContextual("from") {
			p.next()
			source = p.parseModuleSource(ctx)
		} else {
			// without a source, the local names refer to bindings of this module
			for _, tok := range locals {
				p.checkIdentifier(ctx, tok, false, 0)
				p.addBindingToExports(tok.Value, mark{tok.Start, tok.Line, tok.Column})
			}
		}
		p.consumeSemicolon()
		return &ExportNamedDeclaration{Node: p.node("ExportNamedDeclaration", start), Specifiers: specifiers, Source: source}
	}

	declStart := p.mark()
	exportOrigin := OriginExport | OriginTopLevel
	var decl IStmt
	switch p.tok.TokenType {
	case VarToken, LetToken, ConstToken:
		kind := p.tok.TokenType.String()
		p.next()
		decl = p.parseLexicalDeclaration(ctx, scope, declStart, kind, exportOrigin)
	case FunctionToken:
		decl = p.parseFunctionDeclaration(ctx, scope, declStart, exportOrigin, false, 0)
	case AsyncToken:
		p.next()
		if p.newline || p.tok.TokenType != FunctionToken {
			p.unexpected()
		}
		decl = p.parseFunctionDeclaration(ctx, scope, declStart, exportOrigin, true, 0)
	case ClassToken:
		decl = p.parseClassDeclaration(ctx, scope, exportOrigin)
	default:
		p.unexpected()
	}
	return &ExportNamedDeclaration{Node: p.node("ExportNamedDeclaration", start), Declaration: decl, Specifiers: []*ExportSpecifier{}}
}
