// Package js is an ECMAScript lexer and parser producing an ESTree AST, following the specifications at https://tc39.es/ecma262/.
package js

import (
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/esparse"
	"github.com/tdewolff/esparse/strconv"
)

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// Token is a single lexed token together with its decoded value and source position.
// Line is 1-based, Column is the 0-based byte offset from the start of the line.
type Token struct {
	TokenType
	Data      []byte
	Value     string // identifier name, cooked string or template, regexp pattern or bigint digits
	Flags     string // regexp flags
	Number    float64
	Start     int
	End       int
	Line      int
	Column    int
	EndLine   int
	EndColumn int
	Escaped   bool // identifier written with unicode escapes
	Octal     bool // legacy octal literal or escape, or \8 and \9
	Invalid   bool // template contains an invalid escape and has no cooked value
}

////////////////////////////////////////////////////////////////

// Lexer is the state for the lexer.
type Lexer struct {
	r      *esparse.Input
	err    *Error
	module bool

	prevLineTerminator bool
	line               int
	lineStart          int
	level              int
	templateLevels     []int

	// decoded value of the current token
	value   []byte
	flags   string
	num     float64
	escaped bool
	octal   bool
	invalid bool
}

// NewLexer returns a new Lexer for a given input.
func NewLexer(r *esparse.Input) *Lexer {
	return &Lexer{
		r:                  r,
		prevLineTerminator: true,
		line:               1,
	}
}

// Err returns the error encountered during lexing, this is often io.EOF but also other errors can be returned.
func (l *Lexer) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.r.Err()
}

// Offset returns the current position in the input stream.
func (l *Lexer) Offset() int {
	return l.r.Offset()
}

// Next returns the next Token. It returns ErrorToken when an error was encountered or at the end of the input. Using Err() one can retrieve the error.
func (l *Lexer) Next() Token {
	start, line, column := l.r.Offset(), l.line, l.r.Offset()-l.lineStart
	tt := l.next()
	return l.token(tt, start, line, column)
}

// RegExp reparses the input stream for a regular expression. It is assumed that we just received DivToken or DivEqToken with Next(). This function will go back and read that as a regular expression.
func (l *Lexer) RegExp(prev Token) Token {
	if prev.TokenType != DivToken && prev.TokenType != DivEqToken {
		return prev
	}
	l.r.Move(prev.Start - l.r.Offset())
	l.r.Skip()
	l.resetValue()
	tt := l.consumeRegExpToken()
	return l.token(tt, prev.Start, prev.Line, prev.Column)
}

func (l *Lexer) token(tt TokenType, start, line, column int) Token {
	t := Token{
		TokenType: tt,
		Data:      l.r.Shift(),
		Start:     start,
		End:       l.r.Offset(),
		Line:      line,
		Column:    column,
		EndLine:   l.line,
		EndColumn: l.r.Offset() - l.lineStart,
		Flags:     l.flags,
		Number:    l.num,
		Escaped:   l.escaped,
		Octal:     l.octal,
		Invalid:   l.invalid,
	}
	if l.value != nil {
		t.Value = string(l.value)
	}
	return t
}

func (l *Lexer) resetValue() {
	l.value = nil
	l.flags = ""
	l.num = 0
	l.escaped = false
	l.octal = false
	l.invalid = false
}

func (l *Lexer) fail(kind ErrorKind, params ...string) TokenType {
	if l.err == nil {
		l.err = &Error{
			Kind:   kind,
			Params: params,
			Index:  l.r.Offset(),
			Line:   l.line,
			Column: l.r.Offset() - l.lineStart,
		}
	}
	return ErrorToken
}

func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.r.Offset()
}

func (l *Lexer) next() TokenType {
	l.resetValue()
	prevLineTerminator := l.prevLineTerminator
	l.prevLineTerminator = false

	c := l.r.Peek(0)
	switch c {
	case '(':
		l.r.Move(1)
		return OpenParenToken
	case ')':
		l.r.Move(1)
		return CloseParenToken
	case '{':
		l.level++
		l.r.Move(1)
		return OpenBraceToken
	case '}':
		l.level--
		if len(l.templateLevels) != 0 && l.level == l.templateLevels[len(l.templateLevels)-1] {
			return l.consumeTemplateToken(false)
		}
		l.r.Move(1)
		return CloseBraceToken
	case ']':
		l.r.Move(1)
		return CloseBracketToken
	case '[':
		l.r.Move(1)
		return OpenBracketToken
	case ';':
		l.r.Move(1)
		return SemicolonToken
	case ',':
		l.r.Move(1)
		return CommaToken
	case ':':
		l.r.Move(1)
		return ColonToken
	case '~':
		l.r.Move(1)
		return BitNotToken
	case '<', '-':
		if l.consumeHTMLLikeCommentToken(prevLineTerminator) {
			return CommentToken
		} else if l.err != nil {
			return ErrorToken
		}
		return l.consumeOperatorToken()
	case '?':
		if l.r.Peek(1) == '.' && (l.r.Peek(2) < '0' || '9' < l.r.Peek(2)) {
			l.r.Move(2)
			return OptChainToken
		}
		return l.consumeOperatorToken()
	case '>', '=', '!', '+', '*', '%', '&', '|', '^':
		return l.consumeOperatorToken()
	case '/':
		if tt := l.consumeCommentToken(); tt == CommentToken {
			l.prevLineTerminator = prevLineTerminator
			return tt
		} else if tt != ErrorToken || l.err != nil {
			return tt
		}
		return l.consumeOperatorToken()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.consumeNumericToken()
	case '.':
		if c := l.r.Peek(1); '0' <= c && c <= '9' {
			return l.consumeNumericToken()
		} else if c == '.' && l.r.Peek(2) == '.' {
			l.r.Move(3)
			return EllipsisToken
		}
		l.r.Move(1)
		return DotToken
	case '\'', '"':
		return l.consumeStringToken()
	case ' ', '\t', '\v', '\f':
		l.r.Move(1)
		for l.consumeWhitespace() {
		}
		l.prevLineTerminator = prevLineTerminator
		return WhitespaceToken
	case '\n', '\r':
		for l.consumeLineTerminator() {
		}
		l.prevLineTerminator = true
		return LineTerminatorToken
	case '`':
		l.templateLevels = append(l.templateLevels, l.level)
		return l.consumeTemplateToken(true)
	case '#':
		if l.r.Offset() == 0 && l.r.Peek(1) == '!' {
			// hashbang
			l.r.Move(2)
			l.consumeSingleLineComment()
			return CommentToken
		}
	default:
		if tt := l.consumeIdentifierToken(); tt != ErrorToken || l.err != nil {
			return tt
		} else if c >= 0xC0 {
			if l.consumeWhitespace() {
				for l.consumeWhitespace() {
				}
				l.prevLineTerminator = prevLineTerminator
				return WhitespaceToken
			} else if l.consumeLineTerminator() {
				for l.consumeLineTerminator() {
				}
				l.prevLineTerminator = true
				return LineTerminatorToken
			}
		} else if c == 0 && l.r.Err() != nil {
			return ErrorToken
		}
	}

	r, _ := l.r.PeekRune(0)
	return l.fail(ErrInvalidCharacter, esparse.Printable(r))
}

////////////////////////////////////////////////////////////////

/*
The following functions follow the specifications at https://tc39.es/ecma262/#sec-ecmascript-language-lexical-grammar
*/

func (l *Lexer) consumeWhitespace() bool {
	c := l.r.Peek(0)
	if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
		l.r.Move(1)
		return true
	} else if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); esparse.IsWhitespace(r) {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) consumeLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' {
		l.r.Move(1)
		l.newline()
		return true
	} else if c == '\r' {
		if l.r.Peek(1) == '\n' {
			l.r.Move(2)
		} else {
			l.r.Move(1)
		}
		l.newline()
		return true
	} else if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
			l.r.Move(n)
			l.newline()
			return true
		}
	}
	return false
}

func (l *Lexer) consumeSingleLineComment() {
	for {
		c := l.r.Peek(0)
		if c == '\r' || c == '\n' || c == 0 && l.r.Err() != nil {
			break
		} else if c >= 0xC0 {
			if r, _ := l.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
				break
			}
		}
		l.r.Move(1)
	}
}

func (l *Lexer) consumeHTMLLikeCommentToken(prevLineTerminator bool) bool {
	c := l.r.Peek(0)
	if c == '<' && l.r.Peek(1) == '!' && l.r.Peek(2) == '-' && l.r.Peek(3) == '-' {
		if l.module {
			l.fail(ErrInvalidHTMLComment)
			return false
		}
		// opening HTML-style single line comment
		l.r.Move(4)
		l.consumeSingleLineComment()
		return true
	} else if !l.module && prevLineTerminator && c == '-' && l.r.Peek(1) == '-' && l.r.Peek(2) == '>' {
		// closing HTML-style single line comment
		// (only if current line didn't contain any meaningful tokens)
		l.r.Move(3)
		l.consumeSingleLineComment()
		return true
	}
	return false
}

func (l *Lexer) consumeCommentToken() TokenType {
	c := l.r.Peek(1)
	if c == '/' {
		// single line comment
		l.r.Move(2)
		l.consumeSingleLineComment()
		return CommentToken
	} else if c == '*' {
		// block comment (potentially multiline)
		tt := CommentToken
		l.r.Move(2)
		for {
			c := l.r.Peek(0)
			if c == '*' && l.r.Peek(1) == '/' {
				l.r.Move(2)
				break
			} else if c == 0 && l.r.Err() != nil {
				return l.fail(ErrUnterminatedComment)
			} else if l.consumeLineTerminator() {
				tt = CommentLineTerminatorToken
				l.prevLineTerminator = true
			} else {
				l.r.Move(1)
			}
		}
		return tt
	}
	return ErrorToken
}

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
	'?': QuestionToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
	'?': NullishToken,
}

var opOpEqTokens = map[byte]TokenType{
	'*': ExpEqToken,
	'&': AndEqToken,
	'|': OrEqToken,
	'?': NullishEqToken,
}

func (l *Lexer) consumeOperatorToken() TokenType {
	c := l.r.Peek(0)
	l.r.Move(1)
	if l.r.Peek(0) == '=' && c != '?' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '!' || c == '=') {
			l.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if l.r.Peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|' || c == '?') {
		l.r.Move(1)
		if tt, ok := opOpEqTokens[c]; ok && l.r.Peek(0) == '=' {
			l.r.Move(1)
			return tt
		}
		return opOpTokens[c]
	} else if c == '=' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		return ArrowToken
	} else if c == '<' && l.r.Peek(0) == '<' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		if l.r.Peek(0) == '>' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

// consumeUnicodeEscape reads the escape after \u, either XXXX or {X...}.
func (l *Lexer) consumeUnicodeEscape() (rune, bool) {
	var r rune
	if l.r.Peek(0) == '{' {
		l.r.Move(1)
		n := 0
		for {
			c := l.r.Peek(0)
			d, ok := hexDigit(c)
			if !ok {
				break
			}
			r = r*16 + d
			if 0x10FFFF < r {
				return 0, false
			}
			l.r.Move(1)
			n++
		}
		if n == 0 || l.r.Peek(0) != '}' {
			return 0, false
		}
		l.r.Move(1)
		return r, true
	}
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(l.r.Peek(0))
		if !ok {
			return 0, false
		}
		r = r*16 + d
		l.r.Move(1)
	}
	return r, true
}

func hexDigit(c byte) (rune, bool) {
	if '0' <= c && c <= '9' {
		return rune(c - '0'), true
	} else if 'a' <= c && c <= 'f' {
		return rune(c-'a') + 10, true
	} else if 'A' <= c && c <= 'F' {
		return rune(c-'A') + 10, true
	}
	return 0, false
}

func isIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return identifierStartTable[r]
	}
	return unicode.IsOneOf(identifierStart, r)
}

func isIdentifierContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return identifierTable[r]
	}
	return r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r)
}

func (l *Lexer) consumeIdentifierToken() TokenType {
	first := true
	escaped := false
	var b []byte
	for {
		c := l.r.Peek(0)
		if c == '\\' {
			if l.r.Peek(1) != 'u' {
				if first {
					return ErrorToken
				}
				return l.fail(ErrInvalidUnicodeEscape)
			}
			l.r.Move(2)
			r, ok := l.consumeUnicodeEscape()
			if !ok || first && !isIdentifierStart(r) || !first && !isIdentifierContinue(r) {
				return l.fail(ErrInvalidUnicodeEscape)
			}
			escaped = true
			b = appendRune(b, r)
		} else if c < utf8.RuneSelf {
			if first && !identifierStartTable[c] || !first && !identifierTable[c] {
				break
			}
			b = append(b, c)
			l.r.Move(1)
		} else {
			r, n := l.r.PeekRune(0)
			if first && !isIdentifierStart(r) || !first && !isIdentifierContinue(r) {
				break
			}
			b = appendRune(b, r)
			l.r.Move(n)
		}
		first = false
	}
	if first {
		return ErrorToken
	}

	l.value = b
	l.escaped = escaped
	if keyword, ok := Keywords[string(b)]; ok {
		if !escaped {
			return keyword
		} else if IsReservedWord(keyword) {
			return EscapedKeywordToken
		}
	}
	return IdentifierToken
}

func appendRune(b []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(b, buf[:n]...)
}

// consumeDigits consumes digits allowed by isDigit with numeric separators in between.
// It returns the number of digits consumed, or -1 on a misplaced separator.
func (l *Lexer) consumeDigits(isDigit func(byte) bool, separators bool) int {
	n := 0
	for {
		c := l.r.Peek(0)
		if isDigit(c) {
			l.r.Move(1)
			n++
		} else if c == '_' && separators {
			if n == 0 || !isDigit(l.r.Peek(1)) {
				return -1
			}
			l.r.Move(1)
		} else {
			return n
		}
	}
}

func isDecimal(c byte) bool { return '0' <= c && c <= '9' }
func isOctal(c byte) bool   { return '0' <= c && c <= '7' }
func isBinary(c byte) bool  { return c == '0' || c == '1' }
func isHex(c byte) bool {
	_, ok := hexDigit(c)
	return ok
}

func (l *Lexer) consumeNumericToken() TokenType {
	// assume to be on 0 1 2 3 4 5 6 7 8 9 .
	start := l.r.Pos()
	tt := NumericToken
	c := l.r.Peek(0)
	if c == '0' && (l.r.Peek(1) == 'x' || l.r.Peek(1) == 'X' || l.r.Peek(1) == 'o' || l.r.Peek(1) == 'O' || l.r.Peek(1) == 'b' || l.r.Peek(1) == 'B') {
		isDigit := isHex
		if c := l.r.Peek(1); c == 'o' || c == 'O' {
			isDigit = isOctal
		} else if c == 'b' || c == 'B' {
			isDigit = isBinary
		}
		l.r.Move(2)
		if n := l.consumeDigits(isDigit, true); n == -1 {
			return l.fail(ErrInvalidSeparator)
		} else if n == 0 {
			return l.fail(ErrInvalidNumber)
		}
		if l.r.Peek(0) == 'n' {
			l.r.Move(1)
			tt = BigIntToken
		}
	} else if c == '0' && (isDecimal(l.r.Peek(1)) || l.r.Peek(1) == '_') {
		// legacy octal or non-octal decimal integer
		l.r.Move(1)
		l.octal = true
		if l.consumeDigits(isDecimal, false); l.r.Peek(0) == '_' {
			return l.fail(ErrInvalidSeparator)
		} else if l.r.Peek(0) == 'n' {
			return l.fail(ErrInvalidBigInt)
		}
		legacy := true
		for _, c := range l.r.Lexeme()[start:] {
			if !isOctal(c) {
				legacy = false
			}
		}
		if !legacy {
			if l.consumeFraction() == ErrorToken {
				return ErrorToken
			}
		}
	} else {
		integer := c != '.'
		if integer {
			if n := l.consumeDigits(isDecimal, true); n == -1 {
				return l.fail(ErrInvalidSeparator)
			}
		}
		if c == '0' && l.r.Peek(0) == '_' {
			return l.fail(ErrInvalidSeparator)
		}
		mark := l.r.Pos()
		if l.consumeFraction() == ErrorToken {
			return ErrorToken
		}
		if l.r.Peek(0) == 'n' {
			if !integer || mark != l.r.Pos() {
				return l.fail(ErrInvalidBigInt)
			}
			l.r.Move(1)
			tt = BigIntToken
		}
	}

	if c := l.r.Peek(0); isDecimal(c) || c == '\\' || c < utf8.RuneSelf && identifierStartTable[c] {
		return l.fail(ErrIdentifierAfterNumber)
	} else if c >= 0xC0 {
		if r, _ := l.r.PeekRune(0); isIdentifierStart(r) {
			return l.fail(ErrIdentifierAfterNumber)
		}
	}

	lexeme := l.r.Lexeme()[start:]
	if tt == BigIntToken {
		l.value = []byte(strconv.BigInt(lexeme))
		return tt
	}
	num, err := strconv.ParseNumber(lexeme)
	if err != nil {
		return l.fail(ErrInvalidNumber)
	}
	l.num = num
	return tt
}

// consumeFraction consumes the optional fraction and exponent of a decimal literal.
func (l *Lexer) consumeFraction() TokenType {
	if l.r.Peek(0) == '.' {
		l.r.Move(1)
		if n := l.consumeDigits(isDecimal, true); n == -1 || l.r.Peek(0) == '_' {
			return l.fail(ErrInvalidSeparator)
		}
	}
	if c := l.r.Peek(0); c == 'e' || c == 'E' {
		l.r.Move(1)
		if c := l.r.Peek(0); c == '+' || c == '-' {
			l.r.Move(1)
		}
		if n := l.consumeDigits(isDecimal, true); n == -1 {
			return l.fail(ErrInvalidSeparator)
		} else if n == 0 {
			return l.fail(ErrInvalidNumber)
		}
	}
	return NumericToken
}

// consumeEscape decodes an escape sequence in a string or template, positioned after the backslash.
// In templates an invalid escape marks the token invalid instead of failing.
func (l *Lexer) consumeEscape(b []byte, template bool) ([]byte, bool) {
	c := l.r.Peek(0)
	switch c {
	case 'n':
		b = append(b, '\n')
	case 't':
		b = append(b, '\t')
	case 'r':
		b = append(b, '\r')
	case 'b':
		b = append(b, '\b')
	case 'f':
		b = append(b, '\f')
	case 'v':
		b = append(b, '\v')
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if c == '0' && !isDecimal(l.r.Peek(1)) {
			b = append(b, 0)
			break
		} else if template {
			l.invalid = true
			break
		}
		l.octal = true
		max := 3
		if '4' <= c {
			max = 2
		}
		var r rune
		for i := 0; i < max && isOctal(l.r.Peek(0)); i++ {
			r = r*8 + rune(l.r.Peek(0)-'0')
			l.r.Move(1)
		}
		return appendRune(b, r), true
	case '8', '9':
		if template {
			l.invalid = true
			break
		}
		l.octal = true
		b = append(b, c)
	case 'x':
		l.r.Move(1)
		hi, ok1 := hexDigit(l.r.Peek(0))
		lo, ok2 := hexDigit(l.r.Peek(1))
		if !ok1 || !ok2 {
			if template {
				l.invalid = true
				return b, true
			}
			l.fail(ErrInvalidEscape)
			return b, false
		}
		l.r.Move(2)
		return appendRune(b, hi*16+lo), true
	case 'u':
		l.r.Move(1)
		r, ok := l.consumeUnicodeEscape()
		if !ok {
			if template {
				l.invalid = true
				return b, true
			}
			l.fail(ErrInvalidUnicodeEscape)
			return b, false
		}
		if 0xD800 <= r && r <= 0xDBFF && l.r.Peek(0) == '\\' && l.r.Peek(1) == 'u' {
			// surrogate pair
			mark := l.r.Pos()
			l.r.Move(2)
			if r2, ok := l.consumeUnicodeEscape(); ok && 0xDC00 <= r2 && r2 <= 0xDFFF {
				r = (r-0xD800)<<10 + (r2 - 0xDC00) + 0x10000
			} else {
				l.r.Rewind(mark)
			}
		}
		return appendRune(b, r), true
	case '\n', '\r':
		// line continuation
		l.consumeLineTerminator()
		return b, true
	case 0:
		if l.r.Err() != nil {
			return b, true
		}
		b = append(b, 0)
	default:
		if c >= 0xC0 {
			if l.consumeLineTerminator() {
				return b, true
			}
			r, n := l.r.PeekRune(0)
			l.r.Move(n)
			return appendRune(b, r), true
		}
		b = append(b, c)
	}
	l.r.Move(1)
	return b, true
}

func (l *Lexer) consumeStringToken() TokenType {
	// assume to be on ' or "
	delim := l.r.Peek(0)
	l.r.Move(1)
	b := []byte{}
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			break
		} else if c == '\\' {
			l.r.Move(1)
			var ok bool
			if b, ok = l.consumeEscape(b, false); !ok {
				return ErrorToken
			}
			continue
		} else if c == '\n' || c == '\r' || c == 0 && l.r.Err() != nil {
			return l.fail(ErrUnterminatedString)
		} else if c >= 0xC0 {
			r, n := l.r.PeekRune(0)
			if r == '\u2028' || r == '\u2029' {
				b = appendRune(b, r)
				l.consumeLineTerminator()
				continue
			}
			b = appendRune(b, r)
			l.r.Move(n)
			continue
		}
		b = append(b, c)
		l.r.Move(1)
	}
	l.value = b
	return StringToken
}

func (l *Lexer) consumeRegExpToken() TokenType {
	// assume to be on /
	l.r.Move(1)
	start := l.r.Pos()
	inClass := false
	for {
		c := l.r.Peek(0)
		if !inClass && c == '/' {
			break
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '\\' {
			l.r.Move(1)
			c = l.r.Peek(0)
			if c == '\n' || c == '\r' || c == 0 && l.r.Err() != nil {
				return l.fail(ErrUnterminatedRegExp)
			}
		} else if c == '\n' || c == '\r' || c == 0 && l.r.Err() != nil {
			return l.fail(ErrUnterminatedRegExp)
		} else if c >= 0xC0 {
			if r, _ := l.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
				return l.fail(ErrUnterminatedRegExp)
			}
		}
		l.r.Move(1)
	}
	l.value = append([]byte{}, l.r.Lexeme()[start:]...)
	l.r.Move(1)

	// flags
	start = l.r.Pos()
	seen := map[byte]bool{}
	for {
		c := l.r.Peek(0)
		if c == 'd' || c == 'g' || c == 'i' || c == 'm' || c == 's' || c == 'u' || c == 'y' {
			if seen[c] {
				return l.fail(ErrInvalidRegExpFlags)
			}
			seen[c] = true
			l.r.Move(1)
		} else if c == '\\' || c < utf8.RuneSelf && identifierTable[c] {
			return l.fail(ErrInvalidRegExpFlags)
		} else if c >= 0xC0 {
			if r, _ := l.r.PeekRune(0); isIdentifierContinue(r) {
				return l.fail(ErrInvalidRegExpFlags)
			}
			break
		} else {
			break
		}
	}
	l.flags = string(l.r.Lexeme()[start:])
	return RegExpToken
}

// consumeTemplateToken consumes a template chunk, starting at ` or at } when already within a template.
func (l *Lexer) consumeTemplateToken(head bool) TokenType {
	l.r.Move(1)
	b := []byte{}
	for {
		c := l.r.Peek(0)
		if c == '`' {
			l.templateLevels = l.templateLevels[:len(l.templateLevels)-1]
			l.r.Move(1)
			l.value = b
			if head {
				return TemplateToken
			}
			return TemplateEndToken
		} else if c == '$' && l.r.Peek(1) == '{' {
			l.level++
			l.r.Move(2)
			l.value = b
			if head {
				return TemplateStartToken
			}
			return TemplateMiddleToken
		} else if c == '\\' {
			l.r.Move(1)
			b, _ = l.consumeEscape(b, true)
			continue
		} else if c == '\r' {
			// <CR> and <CR><LF> are normalized to <LF> in both cooked and raw values
			b = append(b, '\n')
			l.consumeLineTerminator()
			continue
		} else if c == 0 && l.r.Err() != nil {
			return l.fail(ErrUnterminatedTemplate)
		} else if c == '\n' || c >= 0xC0 {
			r, n := l.r.PeekRune(0)
			b = appendRune(b, r)
			if !l.consumeLineTerminator() {
				l.r.Move(n)
			}
			continue
		}
		b = append(b, c)
		l.r.Move(1)
	}
}

var identifierStartTable = [128]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}

var identifierTable = [128]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}
