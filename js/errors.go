package js

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/esparse"
)

// ErrorKind enumerates all syntax and early errors the parser can raise.
type ErrorKind uint16

// ErrorKind values.
const (
	ErrUnexpected ErrorKind = iota
	ErrUnexpectedToken
	ErrUnexpectedEOF
	ErrExpected
	ErrInvalidCharacter
	ErrUnterminatedString
	ErrUnterminatedTemplate
	ErrUnterminatedComment
	ErrUnterminatedRegExp
	ErrInvalidRegExpFlags
	ErrInvalidNumber
	ErrInvalidBigInt
	ErrIdentifierAfterNumber
	ErrInvalidSeparator
	ErrInvalidEscape
	ErrInvalidUnicodeEscape
	ErrInvalidTemplateEscape
	ErrStrictOctalLiteral
	ErrStrictOctalEscape
	ErrInvalidEscapedKeyword
	ErrDuplicateBinding
	ErrShadowedCatchClause
	ErrDuplicateExport
	ErrUndeclaredExport
	ErrInvalidLHS
	ErrInvalidLHSInFor
	ErrInvalidUpdateTarget
	ErrInvalidDestructuringTarget
	ErrInvalidArrowParams
	ErrNewlineBeforeArrow
	ErrRestNotLast
	ErrRestInitializer
	ErrRestTrailingComma
	ErrInvalidShorthandInit
	ErrDuplicateProto
	ErrMixedCoalesce
	ErrUnaryBeforeExponent
	ErrStrictEvalArguments
	ErrStrictReserved
	ErrReservedWord
	ErrYieldInParams
	ErrAwaitInParams
	ErrStrictDelete
	ErrStrictWith
	ErrFunctionInSingleStatement
	ErrLexicalInSingleStatement
	ErrIllegalReturn
	ErrIllegalBreak
	ErrIllegalContinue
	ErrUnknownLabel
	ErrIllegalContinueLabel
	ErrDuplicateLabel
	ErrMultipleDefaults
	ErrNewlineAfterThrow
	ErrNoCatchOrFinally
	ErrForInOfInitializer
	ErrForInOfMultipleBindings
	ErrForOfLet
	ErrForOfAsync
	ErrForAwaitWithoutOf
	ErrMissingInitializer
	ErrInvalidNewTarget
	ErrInvalidSuperCall
	ErrInvalidSuperProperty
	ErrImportMetaOutsideModule
	ErrImportExportOutsideModule
	ErrImportExportNotTopLevel
	ErrIllegalUseStrict
	ErrDuplicateConstructor
	ErrInvalidConstructor
	ErrStaticPrototype
	ErrGetterArity
	ErrSetterArity
	ErrSetterRest
	ErrFunctionNameRequired
	ErrClassNameRequired
	ErrInvalidOptionalChain
	ErrInvalidHTMLComment
	ErrTooDeep
)

var errorMessages = map[ErrorKind]string{
	ErrUnexpected:                 "Unexpected token",
	ErrUnexpectedToken:            "Unexpected token '%s'",
	ErrUnexpectedEOF:              "Unexpected end of input",
	ErrExpected:                   "Expected '%s'",
	ErrInvalidCharacter:           "Invalid character '%s'",
	ErrUnterminatedString:         "Unterminated string literal",
	ErrUnterminatedTemplate:       "Unterminated template literal",
	ErrUnterminatedComment:        "Multiline comment was not closed properly",
	ErrUnterminatedRegExp:         "Unterminated regular expression",
	ErrInvalidRegExpFlags:         "Invalid regular expression flags",
	ErrInvalidNumber:              "Invalid numeric literal",
	ErrInvalidBigInt:              "Invalid BigInt syntax",
	ErrIdentifierAfterNumber:      "Identifier starts immediately after numeric literal",
	ErrInvalidSeparator:           "Numeric separators are not allowed here",
	ErrInvalidEscape:              "Invalid escape sequence",
	ErrInvalidUnicodeEscape:       "Invalid Unicode escape sequence",
	ErrInvalidTemplateEscape:      "Invalid escape sequence in template",
	ErrStrictOctalLiteral:         "Octal literals are not allowed in strict mode",
	ErrStrictOctalEscape:          "Octal escape sequences are not allowed in strict mode",
	ErrInvalidEscapedKeyword:      "Keywords cannot contain escape characters",
	ErrDuplicateBinding:           "Identifier '%s' has already been declared",
	ErrShadowedCatchClause:        "Identifier '%s' shadows a catch clause parameter",
	ErrDuplicateExport:            "Duplicate export of '%s'",
	ErrUndeclaredExport:           "Exported binding '%s' is not declared",
	ErrInvalidLHS:                 "Invalid left-hand side in assignment",
	ErrInvalidLHSInFor:            "Invalid left-hand side in for-%s loop",
	ErrInvalidUpdateTarget:        "Invalid left-hand side expression in %s operation",
	ErrInvalidDestructuringTarget: "Invalid destructuring assignment target",
	ErrInvalidArrowParams:         "Invalid arrow function parameters",
	ErrNewlineBeforeArrow:         "Line terminator not permitted before arrow",
	ErrRestNotLast:                "Rest element must be last element",
	ErrRestInitializer:            "Rest element may not have a default initializer",
	ErrRestTrailingComma:          "A rest element may not have a trailing comma",
	ErrInvalidShorthandInit:       "Invalid shorthand property initializer",
	ErrDuplicateProto:             "Property name __proto__ appears more than once in object literal",
	ErrMixedCoalesce:              "Nullish coalescing operator (??) requires parentheses when mixing with logical operators",
	ErrUnaryBeforeExponent:        "Unary operator used immediately before exponentiation expression, parentheses must be used",
	ErrStrictEvalArguments:        "Unexpected '%s' in strict mode",
	ErrStrictReserved:             "Unexpected strict mode reserved word '%s'",
	ErrReservedWord:               "Unexpected reserved word '%s'",
	ErrYieldInParams:              "Yield expression not allowed in formal parameters",
	ErrAwaitInParams:              "Await expression not allowed in formal parameters",
	ErrStrictDelete:               "Delete of an unqualified identifier in strict mode",
	ErrStrictWith:                 "Strict mode code may not include a with statement",
	ErrFunctionInSingleStatement:  "Functions can only be declared at the top level or inside a block",
	ErrLexicalInSingleStatement:   "Lexical declaration cannot appear in a single-statement context",
	ErrIllegalReturn:              "Illegal return statement",
	ErrIllegalBreak:               "Illegal break statement",
	ErrIllegalContinue:            "Illegal continue statement: no surrounding iteration statement",
	ErrUnknownLabel:               "Undefined label '%s'",
	ErrIllegalContinueLabel:       "Illegal continue statement: '%s' does not denote an iteration statement",
	ErrDuplicateLabel:             "Label '%s' has already been declared",
	ErrMultipleDefaults:           "More than one default clause in switch statement",
	ErrNewlineAfterThrow:          "Illegal newline after throw",
	ErrNoCatchOrFinally:           "Missing catch or finally after try",
	ErrForInOfInitializer:         "for-%s loop variable declaration may not have an initializer",
	ErrForInOfMultipleBindings:    "Invalid left-hand side in for-%s loop: must have a single binding",
	ErrForOfLet:                   "The left-hand side of a for-of loop may not be 'let'",
	ErrForOfAsync:                 "The left-hand side of a for-of loop may not be 'async'",
	ErrForAwaitWithoutOf:          "for await is only valid with for-of loops",
	ErrMissingInitializer:         "Missing initializer in %s declaration",
	ErrInvalidNewTarget:           "new.target expression is not allowed here",
	ErrInvalidSuperCall:           "'super' keyword unexpected here",
	ErrInvalidSuperProperty:       "'super' property access is not allowed here",
	ErrImportMetaOutsideModule:    "Cannot use 'import.meta' outside a module",
	ErrImportExportOutsideModule:  "Cannot use '%s' outside a module",
	ErrImportExportNotTopLevel:    "'%s' may only appear at the top level",
	ErrIllegalUseStrict:           "Illegal 'use strict' directive in function with non-simple parameter list",
	ErrDuplicateConstructor:       "A class may only have one constructor",
	ErrInvalidConstructor:         "Class constructor may not be a %s",
	ErrStaticPrototype:            "Classes may not have a static property named 'prototype'",
	ErrGetterArity:                "Getter must not have any formal parameters",
	ErrSetterArity:                "Setter must have exactly one formal parameter",
	ErrSetterRest:                 "Setter function argument must not be a rest parameter",
	ErrFunctionNameRequired:       "Function statements require a function name",
	ErrClassNameRequired:          "Class statements require a class name",
	ErrInvalidOptionalChain:       "Invalid %s in optional chain",
	ErrInvalidHTMLComment:         "HTML comments are not allowed in modules",
	ErrTooDeep:                    "Maximum nesting depth exceeded",
}

// String returns the message template of the error kind.
func (k ErrorKind) String() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Error is the single structured error returned by a failed parse.
// Index is a byte offset, Line is 1-based and Column is a 0-based byte offset within the line.
type Error struct {
	Kind   ErrorKind
	Params []string
	Index  int
	Line   int
	Column int
}

// Message renders the message template with the parameters.
func (e *Error) Message() string {
	msg := e.Kind.String()
	if n := strings.Count(msg, "%s"); 0 < n {
		params := make([]interface{}, n)
		for i := range params {
			if i < len(e.Params) {
				params[i] = e.Params[i]
			} else {
				params[i] = ""
			}
		}
		msg = fmt.Sprintf(msg, params...)
	}
	return msg
}

// Error returns the message together with the position.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message(), e.Line, e.Column)
}

// Context renders the error against the source it was produced from, including the offending line and a caret.
func (e *Error) Context(src []byte) *esparse.Error {
	return esparse.NewError(bytes.NewBuffer(src), e.Index, e.Message())
}
