package js

import (
	"github.com/tdewolff/esparse"
)

type mark struct {
	offset int
	line   int
	column int
}

type label struct {
	name      string
	iteration bool
}

// bailout unwinds the parser on the first error, it is recovered in Parse.
type bailout struct {
	err *Error
}

// Parser is the state for the parser.
type Parser struct {
	l    *Lexer
	opts Options

	tok     Token
	newline bool // line terminator before the current token
	prevEnd mark

	flags Flags

	// array or object literal that was followed by = or a for-in/of keyword, with its destructibility
	destructLit IExpr
	destructD   Destructible

	scopes           []scopeRecord
	labels           []label
	labelSetStart    int
	inLabelSet       bool
	exportedNames    map[string]bool
	exportedBindings map[string]mark
	exportedOrder    []string

	depth    int
	maxDepth int
}

// Parse returns an ESTree Program for the source in r, or the first syntax or early error.
func Parse(r *esparse.Input, opts Options) (program *Program, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	defer r.Restore()

	ctx := opts.context()
	l := NewLexer(r)
	l.module = ctx.Module()
	p := &Parser{
		l:        l,
		opts:     opts,
		maxDepth: opts.maxDepth(),
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			program, err = nil, b.err
		}
	}()

	p.next()
	return p.parseProgram(ctx), nil
}

// ParseString parses a source string.
func ParseString(src string, opts Options) (*Program, error) {
	return Parse(esparse.NewInputString(src), opts)
}

////////////////////////////////////////////////////////////////

func (p *Parser) next() {
	p.prevEnd = mark{p.tok.End, p.tok.EndLine, p.tok.EndColumn}
	p.newline = false
	for {
		p.tok = p.l.Next()
		switch p.tok.TokenType {
		case WhitespaceToken, CommentToken:
			continue
		case LineTerminatorToken, CommentLineTerminatorToken:
			p.newline = true
			continue
		case ErrorToken:
			if p.l.err != nil {
				panic(bailout{p.l.err})
			}
		}
		return
	}
}

// regexp reinterprets the current / or /= token as a regular expression.
func (p *Parser) regexp() {
	p.tok = p.l.RegExp(p.tok)
	if p.tok.TokenType == ErrorToken {
		panic(bailout{p.l.err})
	}
}

func (p *Parser) mark() mark {
	return mark{p.tok.Start, p.tok.Line, p.tok.Column}
}

func startOf(n INode) mark {
	return n.base().at
}

// node returns the base of a node spanning from start to the end of the previous token.
func (p *Parser) node(typ string, start mark) Node {
	return p.nodeAt(typ, start, p.prevEnd)
}

func (p *Parser) nodeAt(typ string, start, end mark) Node {
	n := Node{Type: typ, at: start}
	if p.opts.Loc {
		n.Span = &Span{
			Start: start.offset,
			End:   end.offset,
			Loc: &SourceLocation{
				Start: Position{start.line, start.column},
				End:   Position{end.line, end.column},
			},
		}
	}
	return n
}

func (p *Parser) enter() {
	p.depth++
	if p.maxDepth < p.depth {
		p.failAt(ErrTooDeep)
	}
}

func (p *Parser) leave() {
	p.depth--
}

////////////////////////////////////////////////////////////////

func (p *Parser) failAt(kind ErrorKind, params ...string) {
	p.failAtMark(p.mark(), kind, params...)
}

func (p *Parser) failAtNode(n INode, kind ErrorKind, params ...string) {
	p.failAtMark(startOf(n), kind, params...)
}

func (p *Parser) failAtMark(m mark, kind ErrorKind, params ...string) {
	panic(bailout{&Error{
		Kind:   kind,
		Params: params,
		Index:  m.offset,
		Line:   m.line,
		Column: m.column,
	}})
}

// unexpected fails on the current token.
func (p *Parser) unexpected() {
	if p.tok.TokenType == ErrorToken {
		p.failAt(ErrUnexpectedEOF)
	}
	p.failAt(ErrUnexpectedToken, string(p.tok.Data))
}

func (p *Parser) expect(tt TokenType) {
	if p.tok.TokenType != tt {
		if p.tok.TokenType == ErrorToken {
			p.failAt(ErrUnexpectedEOF)
		}
		p.failAt(ErrExpected, tt.String())
	}
	p.next()
}

// isContextual returns true if the current token is the unescaped contextual keyword name.
func (p *Parser) isContextual(name string) bool {
	return p.tok.TokenType == IdentifierToken && !p.tok.Escaped && p.tok.Value == name
}

func (p *Parser) expectContextual(name string) {
	if !p.isContextual(name) {
		if p.tok.TokenType == ErrorToken {
			p.failAt(ErrUnexpectedEOF)
		}
		p.failAt(ErrExpected, name)
	}
	p.next()
}

// consumeSemicolon consumes an explicit semicolon or applies automatic semicolon insertion.
func (p *Parser) consumeSemicolon() {
	if p.tok.TokenType == SemicolonToken {
		p.next()
	} else if p.tok.TokenType != CloseBraceToken && p.tok.TokenType != ErrorToken && !p.newline {
		p.unexpected()
	}
}

// isIdentifierToken returns true for tokens that can be an identifier, possibly illegal in the current context.
func isIdentifierToken(tt TokenType) bool {
	return IsIdentifier(tt) || tt == EscapedKeywordToken
}

// checkIdentifier validates an identifier reference or binding name against the context.
func (p *Parser) checkIdentifier(ctx Context, tok Token, binding bool, kind BindingKind) {
	name := tok.Value
	start := mark{tok.Start, tok.Line, tok.Column}
	if tok.TokenType == EscapedKeywordToken {
		p.failAtMark(start, ErrInvalidEscapedKeyword)
	} else if IsReservedWord(tok.TokenType) {
		p.failAtMark(start, ErrReservedWord, name)
	}

	switch name {
	case "yield":
		if ctx.InYield() || ctx.Strict() {
			p.failAtMark(start, ErrReservedWord, name)
		}
	case "await":
		if ctx.InAwait() || ctx.Module() {
			p.failAtMark(start, ErrReservedWord, name)
		}
		p.flags |= FlagAwaitIdentifier
	case "let":
		if ctx.Strict() {
			p.failAtMark(start, ErrStrictReserved, name)
		} else if binding && kind&(BindingLet|BindingConst|BindingClass) != 0 {
			p.failAtMark(start, ErrReservedWord, name)
		}
	case "eval", "arguments":
		if binding && ctx.Strict() {
			p.failAtMark(start, ErrStrictEvalArguments, name)
		}
	case "enum":
		p.failAtMark(start, ErrReservedWord, name)
	default:
		if ctx.Strict() && IsStrictReserved(name) {
			p.failAtMark(start, ErrStrictReserved, name)
		}
	}
}

// checkStrictBinding validates a binding name once the enclosing function turned out to be strict.
func (p *Parser) checkStrictBinding(n *Identifier) {
	start := startOf(n)
	if n.Name == "eval" || n.Name == "arguments" {
		p.failAtMark(start, ErrStrictEvalArguments, n.Name)
	} else if IsStrictReserved(n.Name) {
		p.failAtMark(start, ErrStrictReserved, n.Name)
	}
}

// parseIdentifier parses an identifier reference.
func (p *Parser) parseIdentifier(ctx Context) *Identifier {
	if !isIdentifierToken(p.tok.TokenType) {
		p.unexpected()
	}
	p.checkIdentifier(ctx, p.tok, false, 0)
	return p.identifier()
}

// parseBindingIdentifier parses a name that is being declared.
func (p *Parser) parseBindingIdentifier(ctx Context, kind BindingKind) *Identifier {
	if !isIdentifierToken(p.tok.TokenType) {
		p.unexpected()
	}
	p.checkIdentifier(ctx, p.tok, true, kind)
	return p.identifier()
}

// identifier consumes any IdentifierName.
func (p *Parser) identifier() *Identifier {
	if !IsIdentifierName(p.tok.TokenType) {
		p.unexpected()
	}
	start := p.mark()
	name := p.tok.Value
	p.next()
	return &Identifier{Node: p.node("Identifier", start), Name: name}
}

// literal consumes a string, numeric or bigint token.
func (p *Parser) literal(ctx Context) *Literal {
	start := p.mark()
	tok := p.tok
	n := &Literal{raw: string(tok.Data)}
	switch tok.TokenType {
	case StringToken:
		if tok.Octal && ctx.Strict() {
			p.failAt(ErrStrictOctalEscape)
		}
		n.Value = tok.Value
	case NumericToken:
		if tok.Octal && ctx.Strict() {
			p.failAt(ErrStrictOctalLiteral)
		}
		n.Value = tok.Number
	case BigIntToken:
		n.Bigint = tok.Value
	default:
		p.unexpected()
	}
	if p.opts.Raw {
		n.Raw = n.raw
	}
	p.next()
	n.Node = p.node("Literal", start)
	return n
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseProgram(ctx Context) *Program {
	root := p.openScope(noScope, ScopeFunctionRoot)
	if ctx.Module() {
		p.exportedNames = map[string]bool{}
		p.exportedBindings = map[string]mark{}
	}

	ctx, body := p.parseDirectives(ctx, root, true, nil)
	for p.tok.TokenType != ErrorToken {
		body = append(body, p.parseStatementListItem(ctx, root, OriginTopLevel))
	}
	if ctx.Module() {
		p.checkExportedBindings(root)
	}

	n := &Program{
		Node:       p.nodeAt("Program", mark{0, 1, 0}, p.mark()),
		SourceType: p.opts.sourceType(),
		Body:       body,
	}
	return n
}

// parseDirectives parses the directive prologue of a script or function body and returns the context,
// which is strict when a use strict directive was found. A non-simple parameter list forbids use strict,
// onStrict is called when the prologue turns the context strict.
func (p *Parser) parseDirectives(ctx Context, scope ScopeID, simple bool, onStrict func()) (Context, []IStmt) {
	body := []IStmt{}
	p.flags &^= FlagOctals
	for p.tok.TokenType == StringToken {
		tok := p.tok
		stmt := p.parseStatementListItem(ctx, scope, OriginTopLevel)
		body = append(body, stmt)

		exprStmt, ok := stmt.(*ExpressionStatement)
		if !ok {
			break
		}
		lit, ok := exprStmt.Expression.(*Literal)
		if !ok || lit.paren || lit.raw != string(tok.Data) {
			break
		}

		raw := string(tok.Data[1 : len(tok.Data)-1])
		if p.opts.Directives {
			exprStmt.Directive = raw
		}
		if tok.Octal {
			p.flags |= FlagOctals
		}
		if raw == "use strict" {
			if !simple {
				p.failAtMark(mark{tok.Start, tok.Line, tok.Column}, ErrIllegalUseStrict)
			} else if p.flags&FlagOctals != 0 {
				p.failAtMark(mark{tok.Start, tok.Line, tok.Column}, ErrStrictOctalEscape)
			}
			if !ctx.Strict() {
				ctx = ctx.With(CtxStrict)
				if onStrict != nil {
					onStrict()
				}
			}
		}
	}
	return ctx, body
}
