package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenTypeString(t *testing.T) {
	test.T(t, ErrorToken.String(), "Error")
	test.T(t, TemplateMiddleToken.String(), "TemplateMiddle")
	test.T(t, OptChainToken.String(), "?.")
	test.T(t, NullishEqToken.String(), "??=")
	test.T(t, AsyncToken.String(), "async")
	test.T(t, WithToken.String(), "with")
	test.T(t, EscapedKeywordToken.String(), "EscapedKeyword")
	test.T(t, TokenType(100).String(), "Invalid(100)")
}

func TestTokenClasses(t *testing.T) {
	test.That(t, IsPunctuator(SemicolonToken), "; is a punctuator")
	test.That(t, IsPunctuator(AddToken), "+ is a punctuator")
	test.That(t, !IsPunctuator(IdentifierToken), "identifier is not a punctuator")
	test.That(t, IsOperator(ExpEqToken), "**= is an operator")
	test.That(t, !IsOperator(ArrowToken), "=> is not an operator")

	test.That(t, IsIdentifierName(IdentifierToken))
	test.That(t, IsIdentifierName(YieldToken))
	test.That(t, IsIdentifierName(WhileToken))
	test.That(t, IsIdentifierName(EscapedKeywordToken))
	test.That(t, !IsIdentifierName(StringToken))

	test.That(t, IsReservedWord(WhileToken), "while is reserved")
	test.That(t, IsReservedWord(EscapedKeywordToken), "escaped keywords are reserved")
	test.That(t, !IsReservedWord(LetToken), "let is not reserved")
	test.That(t, !IsReservedWord(PublicToken), "public is not reserved")

	test.That(t, IsIdentifier(LetToken))
	test.That(t, IsIdentifier(AwaitToken))
	test.That(t, !IsIdentifier(ThisToken))

	test.That(t, IsAssignOperator(EqToken))
	test.That(t, IsAssignOperator(NullishEqToken))
	test.That(t, !IsAssignOperator(EqEqToken))

	test.That(t, IsTemplate(TemplateToken))
	test.That(t, IsTemplate(TemplateEndToken))
	test.That(t, !IsTemplate(StringToken))
}

func TestKeywords(t *testing.T) {
	for word, tt := range Keywords {
		test.T(t, tt.String(), word)
		test.That(t, IsIdentifierName(tt), word)
	}
	test.That(t, IsStrictReserved("implements"))
	test.That(t, IsStrictReserved("yield"))
	test.That(t, !IsStrictReserved("await"))
	test.That(t, !IsStrictReserved("enum"))
}

func TestBinaryPrec(t *testing.T) {
	test.T(t, binaryPrec(NullishToken, false), OpCoalesce)
	test.T(t, binaryPrec(ExpToken, false), OpExp)
	test.T(t, binaryPrec(InToken, false), OpCompare)
	test.T(t, binaryPrec(InToken, true), OpEnd)
	test.T(t, binaryPrec(InstanceofToken, true), OpCompare)
	test.T(t, binaryPrec(EqToken, false), OpEnd)
	test.That(t, binaryPrec(MulToken, false) > binaryPrec(AddToken, false))
	test.That(t, binaryPrec(AndToken, false) > binaryPrec(OrToken, false))
}
