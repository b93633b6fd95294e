package js

import (
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/esparse"
)

func assertTokens(t *testing.T, s string, tokentypes ...TokenType) {
	stringify := helperStringify(t, s)
	l := NewLexer(esparse.NewInputString(s))
	i := 0
	for {
		tok := l.Next()
		if tok.TokenType == ErrorToken {
			assert.Equal(t, io.EOF, l.Err(), "error must be EOF in "+stringify)
			assert.Equal(t, len(tokentypes), i, "when error occurred we must be at the end in "+stringify)
			break
		} else if tok.TokenType == WhitespaceToken {
			continue
		}
		assert.False(t, i >= len(tokentypes), "index must not exceed tokentypes size in "+stringify)
		if i < len(tokentypes) {
			assert.Equal(t, tokentypes[i], tok.TokenType, "tokentypes must match at index "+strconv.Itoa(i)+" in "+stringify)
		}
		i++
	}
}

func helperStringify(t *testing.T, input string) string {
	s := ""
	l := NewLexer(esparse.NewInputString(input))
	for i := 0; i < 10; i++ {
		tok := l.Next()
		if tok.TokenType == ErrorToken {
			s += tok.TokenType.String() + "('" + l.Err().Error() + "')"
			break
		} else if tok.TokenType == WhitespaceToken {
			continue
		} else {
			s += tok.TokenType.String() + "('" + string(tok.Data) + "') "
		}
	}
	return s
}

func lexFirst(s string) (Token, *Lexer) {
	l := NewLexer(esparse.NewInputString(s))
	for {
		tok := l.Next()
		if tok.TokenType != WhitespaceToken && tok.TokenType != LineTerminatorToken {
			return tok, l
		}
	}
}

////////////////////////////////////////////////////////////////

func TestTokens(t *testing.T) {
	assertTokens(t, " \t\v\f\u00A0\uFEFF\u2000") // WhitespaceToken
	assertTokens(t, "\n\r\r\n\u2028\u2029", LineTerminatorToken)
	assertTokens(t, "5.2 .04 0x0F 5e99", NumericToken, NumericToken, NumericToken, NumericToken)
	assertTokens(t, "a = 'string'", IdentifierToken, EqToken, StringToken)
	assertTokens(t, "/*comment*/ //comment", CommentToken, CommentToken)
	assertTokens(t, "/*co\nmment*/", CommentLineTerminatorToken)
	assertTokens(t, "{ } ( ) [ ]", OpenBraceToken, CloseBraceToken, OpenParenToken, CloseParenToken, OpenBracketToken, CloseBracketToken)
	assertTokens(t, ". ; , < > <=", DotToken, SemicolonToken, CommaToken, LtToken, GtToken, LtEqToken)
	assertTokens(t, ">= == != === !==", GtEqToken, EqEqToken, NotEqToken, EqEqEqToken, NotEqEqToken)
	assertTokens(t, "+ - * % ++ --", AddToken, SubToken, MulToken, ModToken, IncrToken, DecrToken)
	assertTokens(t, "<< >> >>> & | ^", LtLtToken, GtGtToken, GtGtGtToken, BitAndToken, BitOrToken, BitXorToken)
	assertTokens(t, "! ~ && || ? :", NotToken, BitNotToken, AndToken, OrToken, QuestionToken, ColonToken)
	assertTokens(t, "= += -= *= %= <<=", EqToken, AddEqToken, SubEqToken, MulEqToken, ModEqToken, LtLtEqToken)
	assertTokens(t, ">>= >>>= &= |= ^= =>", GtGtEqToken, GtGtGtEqToken, BitAndEqToken, BitOrEqToken, BitXorEqToken, ArrowToken)
	assertTokens(t, "** **= ?? ??= &&= ||=", ExpToken, ExpEqToken, NullishToken, NullishEqToken, AndEqToken, OrEqToken)
	assertTokens(t, "?. ?.5 ...", OptChainToken, QuestionToken, NumericToken, EllipsisToken)
	assertTokens(t, ">>>=>>>>=", GtGtGtEqToken, GtGtGtToken, GtEqToken)
	assertTokens(t, "/", DivToken)
	assertTokens(t, "/=", DivEqToken)
	assertTokens(t, "1n 0x1Fn 1_000", BigIntToken, BigIntToken, NumericToken)
	assertTokens(t, "010 08.5", NumericToken, NumericToken)
	assertTokens(t, "'str\\i\\'ng'", StringToken)
	assertTokens(t, "'str\\\\'abc", StringToken, IdentifierToken)
	assertTokens(t, "'str\\\ni\\\\u00A0ng'", StringToken)
	assertTokens(t, "$ _\u200C \\u0061", IdentifierToken, IdentifierToken, IdentifierToken)

	// keywords
	assertTokens(t, "var let const async await yield static", VarToken, LetToken, ConstToken, AsyncToken, AwaitToken, YieldToken, StaticToken)
	assertTokens(t, "get set of as from target meta", IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken)
	assertTokens(t, "v\\u0061r", EscapedKeywordToken)
	assertTokens(t, "l\\u0065t", IdentifierToken)

	// templates
	assertTokens(t, "`a`", TemplateToken)
	assertTokens(t, "`a${b}c`", TemplateStartToken, IdentifierToken, TemplateEndToken)
	assertTokens(t, "`a${b}c${d}e`", TemplateStartToken, IdentifierToken, TemplateMiddleToken, IdentifierToken, TemplateEndToken)
	assertTokens(t, "`a${{b}}c`", TemplateStartToken, OpenBraceToken, IdentifierToken, CloseBraceToken, TemplateEndToken)
	assertTokens(t, "`a${`b${c}`}d`", TemplateStartToken, TemplateStartToken, IdentifierToken, TemplateEndToken, TemplateEndToken)

	// comments
	assertTokens(t, "#!/usr/bin/env node\na", CommentToken, LineTerminatorToken, IdentifierToken)
	assertTokens(t, "<!-- comment\na", CommentToken, LineTerminatorToken, IdentifierToken)
	assertTokens(t, "a\n--> comment", IdentifierToken, LineTerminatorToken, CommentToken)
	assertTokens(t, "a --> b", IdentifierToken, DecrToken, GtToken, IdentifierToken)
}

func TestTokenValues(t *testing.T) {
	var tests = []struct {
		js    string
		value string
	}{
		{"abc", "abc"},
		{"\\u0061b\\u{63}", "abc"},
		{"'a\\nb'", "a\nb"},
		{"'\\x41\\u0042\\u{43}'", "ABC"},
		{"'\\101'", "A"},
		{"'\\uD83D\\uDE00'", "\U0001F600"},
		{"'a\\\nb'", "ab"},
		{"\"'\"", "'"},
		{"`a\\tb`", "a\tb"},
		{"`a\r\nb`", "a\nb"},
		{"0x1Fn", "0x1F"},
		{"1_000n", "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tok, _ := lexFirst(tt.js)
			assert.Equal(t, tt.value, tok.Value, "value must match in "+tt.js)
		})
	}
}

func TestTokenNumbers(t *testing.T) {
	var tests = []struct {
		js     string
		number float64
		octal  bool
	}{
		{"5", 5, false},
		{"5.25", 5.25, false},
		{".5", 0.5, false},
		{"1e3", 1000, false},
		{"1_000", 1000, false},
		{"0x1F", 31, false},
		{"0o17", 15, false},
		{"0b101", 5, false},
		{"017", 15, true},
		{"019", 19, true},
		{"08.5", 8.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tok, _ := lexFirst(tt.js)
			assert.Equal(t, NumericToken, tok.TokenType, "must be numeric in "+tt.js)
			assert.Equal(t, tt.number, tok.Number, "number must match in "+tt.js)
			assert.Equal(t, tt.octal, tok.Octal, "octal flag must match in "+tt.js)
		})
	}
}

func TestTokenFlags(t *testing.T) {
	tok, _ := lexFirst("'\\08'")
	assert.True(t, tok.Octal, "\\08 is a legacy octal escape")

	tok, _ = lexFirst("'\\0'")
	assert.False(t, tok.Octal, "\\0 is not a legacy octal escape")

	tok, _ = lexFirst("\\u0061")
	assert.True(t, tok.Escaped, "identifier with escapes")

	tok, _ = lexFirst("`\\unicode`")
	assert.Equal(t, TemplateToken, tok.TokenType)
	assert.True(t, tok.Invalid, "invalid escape in template")
}

func TestRegExp(t *testing.T) {
	var tests = []struct {
		js      string
		pattern string
		flags   string
	}{
		{"/abc/", "abc", ""},
		{"/a\\/b/gi", "a\\/b", "gi"},
		{"/[/]/", "[/]", ""},
		{"/=/y", "=", "y"},
		{"/a/dgimsuy", "a", "dgimsuy"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tok, l := lexFirst(tt.js)
			tok = l.RegExp(tok)
			assert.Equal(t, RegExpToken, tok.TokenType, "must be a regexp in "+tt.js)
			assert.Equal(t, tt.pattern, tok.Value, "pattern must match in "+tt.js)
			assert.Equal(t, tt.flags, tok.Flags, "flags must match in "+tt.js)
			assert.Equal(t, tt.js, string(tok.Data), "data must span the literal in "+tt.js)
		})
	}

	// regexp is only reparsed after a division token
	tok, l := lexFirst("a")
	assert.Equal(t, IdentifierToken, l.RegExp(tok).TokenType)
}

func TestLexErrors(t *testing.T) {
	var tests = []struct {
		js   string
		kind ErrorKind
	}{
		{"'abc", ErrUnterminatedString},
		{"'a\nb'", ErrUnterminatedString},
		{"`abc", ErrUnterminatedTemplate},
		{"/* abc", ErrUnterminatedComment},
		{"0x", ErrInvalidNumber},
		{"1__0", ErrInvalidSeparator},
		{"1_", ErrInvalidSeparator},
		{"0_1", ErrInvalidSeparator},
		{"1.5n", ErrInvalidBigInt},
		{"01n", ErrInvalidBigInt},
		{"3in", ErrIdentifierAfterNumber},
		{"1e", ErrInvalidNumber},
		{"'\\x4'", ErrInvalidEscape},
		{"'\\u{110000}'", ErrInvalidUnicodeEscape},
		{"\\u0030", ErrInvalidUnicodeEscape},
		{"a\\x", ErrInvalidUnicodeEscape},
		{"@", ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer(esparse.NewInputString(tt.js))
			for {
				tok := l.Next()
				if tok.TokenType == ErrorToken {
					break
				}
			}
			err, ok := l.Err().(*Error)
			if assert.True(t, ok, "must return a syntax error in "+tt.js) {
				assert.Equal(t, tt.kind, err.Kind, "error kind must match in "+tt.js)
			}
		})
	}

	// unterminated regular expression
	tok, l := lexFirst("/abc\n/")
	tok = l.RegExp(tok)
	assert.Equal(t, ErrorToken, tok.TokenType)
	assert.Equal(t, ErrUnterminatedRegExp, l.Err().(*Error).Kind)

	tok, l = lexFirst("/a/gg")
	tok = l.RegExp(tok)
	assert.Equal(t, ErrorToken, tok.TokenType)
	assert.Equal(t, ErrInvalidRegExpFlags, l.Err().(*Error).Kind)

	// HTML comments are not allowed in modules
	l = NewLexer(esparse.NewInputString("<!-- a"))
	l.module = true
	assert.Equal(t, ErrorToken, l.Next().TokenType)
	assert.Equal(t, ErrInvalidHTMLComment, l.Err().(*Error).Kind)
}

func TestTokenPositions(t *testing.T) {
	l := NewLexer(esparse.NewInputString("a\n  bc\r\n`x\ny`"))
	var toks []Token
	for {
		tok := l.Next()
		if tok.TokenType == ErrorToken {
			break
		} else if tok.TokenType == IdentifierToken || IsTemplate(tok.TokenType) {
			toks = append(toks, tok)
		}
	}

	assert.Equal(t, 3, len(toks))
	assert.Equal(t, []int{0, 1, 0}, []int{toks[0].Start, toks[0].Line, toks[0].Column})
	assert.Equal(t, []int{4, 2, 2, 6, 2, 4}, []int{toks[1].Start, toks[1].Line, toks[1].Column, toks[1].End, toks[1].EndLine, toks[1].EndColumn})
	assert.Equal(t, []int{8, 3, 0, 13, 4, 2}, []int{toks[2].Start, toks[2].Line, toks[2].Column, toks[2].End, toks[2].EndLine, toks[2].EndColumn})
}

func TestOffset(t *testing.T) {
	l := NewLexer(esparse.NewInputString(`var i=5;`))
	assert.Equal(t, 0, l.Offset())
	_ = l.Next()
	assert.Equal(t, 3, l.Offset()) // var
	_ = l.Next()
	assert.Equal(t, 4, l.Offset()) // ws
	_ = l.Next()
	assert.Equal(t, 5, l.Offset()) // i
	_ = l.Next()
	assert.Equal(t, 6, l.Offset()) // =
	_ = l.Next()
	assert.Equal(t, 7, l.Offset()) // 5
	_ = l.Next()
	assert.Equal(t, 8, l.Offset()) // ;
}
