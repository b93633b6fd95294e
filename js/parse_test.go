package js

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tdewolff/esparse"
	"github.com/tdewolff/test"
)

var moduleOptions = Options{SourceType: SourceModule}

func TestParse(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"", ""},
		{";", ";"},
		{"a+b*c", "(a + (b * c));"},
		{"a ** b ** c", "(a ** (b ** c));"},
		{"(-x) ** 2", "((-x) ** 2);"},
		{"a = b ? c : d", "(a = (b ? c : d));"},
		{"a = b = c", "(a = (b = c));"},
		{"a += 1", "(a += 1);"},
		{"x.y ||= z", "(x.y ||= z);"},
		{"a, b", "(a, b);"},
		{"(a, b)", "(a, b);"},
		{"a ?? b ?? c", "((a ?? b) ?? c);"},
		{"(a ?? b) || c", "((a ?? b) || c);"},
		{"a || b && c", "(a || (b && c));"},
		{"delete a.b, void 0, typeof x", "((delete a.b), (void 0), (typeof x));"},
		{"a in b instanceof c", "((a in b) instanceof c);"},
		{"a?.[0]?.(x)", "a?.[0]?.(x);"},
		{"a.b?.c.d", "a.b?.c.d;"},
		{"new A", "(new A());"},
		{"new a.b.c(1)", "(new a.b.c(1));"},
		{"new new A()()", "(new (new A())());"},
		{"f(...a, b)", "f(...a, b);"},
		{"import('x')", "import('x');"},
		{"`a${b}c`", "`a${b}c`;"},
		{"tag`x${y}`", "tag`x${y}`;"},
		{"/ab+c/gi.test(s)", "/ab+c/gi.test(s);"},
		{"a = /=/", "(a = /=/);"},
		{"x = function () {}", "(x = (function() {}));"},
		{"x = class extends B {}", "(x = (class extends B {}));"},
		{"({a: 1, 'b': 2, 3: c, [d]: e})", "{a: 1, 'b': 2, 3: c, [d]: e};"},
		{"({get a() {}, set a(v) {}, b() {}, async *c() {}, [d]: 1})", "{get a() {}, set a(v) {}, b() {}, async *c() {}, [d]: 1};"},
		{"({get, set, async})", "{get, set, async};"},
		{"[...a, b,]", "[...a, b];"},
		{"[a, , b]", "[a, , b];"},

		// arrow functions
		{"x => x", "((x) => x);"},
		{"() => {}", "(() => {});"},
		{"a => ({})", "((a) => {});"},
		{"async (a, b) => a", "(async (a, b) => a);"},
		{"async x => await x", "(async (x) => (await x));"},
		{"async () => {}", "(async () => {});"},
		{"async(a, b)", "async(a, b);"},
		{"(a = 1, [b], {c}) => 0", "((a = 1, [b], {c}) => 0);"},
		{"(a, ...b) => 0", "((a, ...b) => 0);"},
		{"({a: [b], ...c}) => 0", "(({a: [b], ...c}) => 0);"},

		// destructuring assignment
		{"({a, b: [c], ...d} = e)", "({a, b: [c], ...d} = e);"},
		{"[a, , b = 1, ...c] = d", "([a, , b = 1, ...c] = d);"},
		{"[a.b, c[0]] = d", "([a.b, c[0]] = d);"},
		{"({a = 1} = b)", "({a = 1} = b);"},
		{"[[a] = [1]] = b", "([[a] = [1]] = b);"},
		{"({__proto__: a, __proto__: b} = c)", "({__proto__: a, __proto__: b} = c);"},

		// declarations
		{"var a = 1, b;", "var a = 1, b;"},
		{"let [a] = b, {c} = d;", "let [a] = b, {c} = d;"},
		{"var {a, b: c = 1} = d;", "var {a, b: c = 1} = d;"},
		{"const a = 1;", "const a = 1;"},
		{"function f(a, b = 1, ...c) { return a; }", "function f(a, b = 1, ...c) { return a; }"},
		{"function* g() { yield* a; yield; }", "function* g() { (yield* a); (yield); }"},
		{"async function f() { await a; }", "async function f() { (await a); }"},
		{"class A extends B { constructor() { super(); } static m() {} get x() {} set x(v) {} }", "class A extends B { constructor() { super(); } static m() {} get x() {} set x(v) {} }"},
		{"class A { static async *[x]() {} 'constructor'() {} ; static() {} }", "class A { static async *[x]() {} 'constructor'() {} static() {} }"},
		{"class A { m() { super.x; } }", "class A { m() { super.x; } }"},

		// statements
		{"if (a) b; else c", "if (a) b; else c;"},
		{"if (a) function f() {}", "if (a) function f() {}"},
		{"for (var i = 0; i < n; i++) {}", "for (var i = 0; (i < n); (i++)) {}"},
		{"for (;;) {}", "for (; ; ) {}"},
		{"for (const [k, v] of m) {}", "for (const [k, v] of m) {}"},
		{"for (x in y);", "for (x in y) ;"},
		{"for ([a, b] of c);", "for ([a, b] of c) ;"},
		{"for (let in x);", "for (let in x) ;"},
		{"for (var a = 1 in b);", "for (var a = 1 in b) ;"},
		{"for (async of => {}; ;);", "for ((async (of) => {}); ; ) ;"},
		{"async function f() { for await (x of y); }", "async function f() { for await (x of y) ; }"},
		{"while (a) b", "while (a) b;"},
		{"do x; while (y)", "do x; while (y);"},
		{"do x\nwhile (y) z", "do x; while (y); z;"},
		{"a: { break a; }", "a: { break a; }"},
		{"a: b: while (c) { continue a; }", "a: b: while (c) { continue a; }"},
		{"l: function f() {}", "l: function f() {}"},
		{"switch (a) { case 1: b; default: }", "switch (a) { case 1: b; default: }"},
		{"try { a } catch ({ message }) { b } finally { c }", "try { a; } catch ({message}) { b; } finally { c; }"},
		{"try {} catch {}", "try {} catch {}"},
		{"try {} catch (e) { var e; }", "try {} catch (e) { var e; }"},
		{"throw a", "throw a;"},
		{"with (a) b", "with (a) b;"},
		{"debugger", "debugger;"},
		{"{ let a; } { let a; }", "{ let a; } { let a; }"},
		{"{ function f() {} function f() {} }", "{ function f() {} function f() {} }"},

		// automatic semicolon insertion and contextual words
		{"async\nfunction f() {}", "async; function f() {}"},
		{"let = 1", "(let = 1);"},
		{"let\nfoo", "let foo;"},
		{"yield = 1", "(yield = 1);"},
		{"await = 1", "(await = 1);"},
		{"a\n++b", "a; (++b);"},
		{"a\n(b)", "a(b);"},
		{"return\n", "return;"},
		{"var of, get, set, target, meta, from, as;", "var of, get, set, target, meta, from, as;"},
		{"'use strict'; x", "'use strict'; x;"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			opts := Options{}
			if tt.js == "return\n" {
				opts.GlobalReturn = true
			}
			ast, err := ParseString(tt.js, opts)
			if err != nil {
				t.Fatal(err)
			}
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseModule(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"import 'x';", "import 'x';"},
		{"import a, * as ns from 'x';", "import a, * as ns from 'x';"},
		{"import { b as c, d } from 'x'; export { c, d as e };", "import { b as c, d } from 'x'; export { c, d as e };"},
		{"import a, { b } from 'x';", "import a, { b } from 'x';"},
		{"export * from 'x';", "export * from 'x';"},
		{"export * as ns from 'x';", "export * as ns from 'x';"},
		{"export { a as b } from 'x';", "export { a as b } from 'x';"},
		{"export {};", "export {};"},
		{"export default class {}", "export default class {}"},
		{"export default function () {}", "export default function() {}"},
		{"export default async function f() {}", "export default async function f() {}"},
		{"export default (a + b);", "export default (a + b);"},
		{"export default async () => {};", "export default (async () => {});"},
		{"export function f() {} export let x = 1, y;", "export function f() {} export let x = 1, y;"},
		{"export class A {} export const b = 1;", "export class A {} export const b = 1;"},
		{"export { a as default }; var a;", "export { a as default }; var a;"},
		{"await x;", "(await x);"},
		{"import.meta.url;", "import.meta.url;"},
		{"function f() {} { function g() {} function h() {} }", "function f() {} { function g() {} function h() {} }"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := ParseString(tt.js, moduleOptions)
			if err != nil {
				t.Fatal(err)
			}
			test.String(t, ast.String(), tt.expected)
			test.T(t, ast.SourceType, SourceModule)
		})
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		js     string
		module bool
		kind   ErrorKind
	}{
		// lexer
		{"'abc", false, ErrUnterminatedString},
		{"/a/gg", false, ErrInvalidRegExpFlags},
		{"`${a`", false, ErrUnterminatedTemplate},
		{"`${a", false, ErrExpected},
		{"`\\unicode`", false, ErrInvalidTemplateEscape},
		{"<!-- a", true, ErrInvalidHTMLComment},

		// expressions
		{"a +", false, ErrUnexpectedEOF},
		{"a b", false, ErrUnexpectedToken},
		{"1 = 2", false, ErrInvalidLHS},
		{"a + b = c", false, ErrInvalidLHS},
		{"({a}) += 1", false, ErrInvalidLHS},
		{"1++", false, ErrInvalidUpdateTarget},
		{"++1", false, ErrInvalidUpdateTarget},
		{"a?.b++", false, ErrInvalidUpdateTarget},
		{"a?.b = 1", false, ErrInvalidLHS},
		{"({a:1} = 2)", false, ErrInvalidDestructuringTarget},
		{"[a + b] = c", false, ErrInvalidDestructuringTarget},
		{"[...a, b] = c", false, ErrInvalidDestructuringTarget},
		{"({a: b.c}) => 1", false, ErrInvalidArrowParams},
		{"(a + b) => 1", false, ErrInvalidArrowParams},
		{"(a.b) => 1", false, ErrInvalidArrowParams},
		{"a\n=> 1", false, ErrNewlineBeforeArrow},
		{"(a)\n=> 1", false, ErrNewlineBeforeArrow},
		{"async\n() => 1", false, ErrUnexpectedToken},
		{"(...a, b) => 1", false, ErrRestNotLast},
		{"(...a,) => 1", false, ErrRestTrailingComma},
		{"(...a = 1) => 1", false, ErrRestInitializer},
		{"(...a)", false, ErrExpected},
		{"(a, b,)", false, ErrExpected},
		{"({a = 1})", false, ErrInvalidShorthandInit},
		{"x = {a = 1}", false, ErrInvalidShorthandInit},
		{"({__proto__: 1, __proto__: 2})", false, ErrDuplicateProto},
		{"a ?? b || c", false, ErrMixedCoalesce},
		{"a && b ?? c", false, ErrMixedCoalesce},
		{"-a ** b", false, ErrUnaryBeforeExponent},
		{"new a?.b", false, ErrInvalidOptionalChain},
		{"a?.`x`", false, ErrInvalidOptionalChain},
		{"(a, a) => 1", false, ErrDuplicateBinding},
		{"function* g(a = yield) {}", false, ErrYieldInParams},
		{"async function f(a = await 1) {}", false, ErrAwaitInParams},
		{"async (a = await) => 1", false, ErrAwaitInParams},
		{"new.target", false, ErrInvalidNewTarget},
		{"function f() { super() }", false, ErrInvalidSuperCall},
		{"function f() { super.x }", false, ErrInvalidSuperProperty},
		{"({ m() { super() } })", false, ErrInvalidSuperCall},
		{"class A { constructor() { super() } }", false, ErrInvalidSuperCall},
		{"import.meta", false, ErrImportMetaOutsideModule},

		// strict mode
		{"'use strict'; with (a) {}", false, ErrStrictWith},
		{"'use strict'; delete a", false, ErrStrictDelete},
		{"'use strict'; eval = 1", false, ErrStrictEvalArguments},
		{"'use strict'; ({eval} = x)", false, ErrStrictEvalArguments},
		{"'use strict'; 010", false, ErrStrictOctalLiteral},
		{"'use strict'; '\\01'", false, ErrStrictOctalEscape},
		{"'\\01'; 'use strict'", false, ErrStrictOctalEscape},
		{"'use strict'; function f(a, a) {}", false, ErrDuplicateBinding},
		{"function f(a, a) { 'use strict' }", false, ErrDuplicateBinding},
		{"function f(a, a = 1) {}", false, ErrDuplicateBinding},
		{"function f(a = 1) { 'use strict' }", false, ErrIllegalUseStrict},
		{"function eval() { 'use strict' }", false, ErrStrictEvalArguments},
		{"function f() { 'use strict'; var eval; }", false, ErrStrictEvalArguments},
		{"'use strict'; var let", false, ErrStrictReserved},
		{"'use strict'; var public", false, ErrStrictReserved},
		{"'use strict'; var yield", false, ErrReservedWord},
		{"'use strict'; let = 1", false, ErrStrictReserved},
		{"'use strict'; if (a) function f() {}", false, ErrFunctionInSingleStatement},
		{"function* g() { var yield }", false, ErrReservedWord},
		{"let let = 1", false, ErrReservedWord},
		{"v\\u0061r a", false, ErrInvalidEscapedKeyword},

		// declarations and scopes
		{"let a; var a;", false, ErrDuplicateBinding},
		{"var a; let a;", false, ErrDuplicateBinding},
		{"let a; let a;", false, ErrDuplicateBinding},
		{"let {a, a} = b;", false, ErrDuplicateBinding},
		{"const a;", false, ErrMissingInitializer},
		{"let [a];", false, ErrMissingInitializer},
		{"for (const a;;) {}", false, ErrMissingInitializer},
		{"function f(a) { let a; }", false, ErrDuplicateBinding},
		{"try {} catch (e) { let e; }", false, ErrShadowedCatchClause},
		{"try {} catch ([e]) { var e; }", false, ErrDuplicateBinding},
		{"'use strict'; { function f() {} function f() {} }", false, ErrDuplicateBinding},
		{"{ async function f() {} function f() {} }", false, ErrDuplicateBinding},
		{"let [...a, b] = c;", false, ErrRestNotLast},
		{"function f(...a,) {}", false, ErrRestTrailingComma},
		{"function f(...a = 1) {}", false, ErrRestInitializer},
		{"function () {}", false, ErrFunctionNameRequired},
		{"class {}", false, ErrClassNameRequired},
		{"class A { constructor() {} constructor() {} }", false, ErrDuplicateConstructor},
		{"class A { get constructor() {} }", false, ErrInvalidConstructor},
		{"class A { *constructor() {} }", false, ErrInvalidConstructor},
		{"class A { async constructor() {} }", false, ErrInvalidConstructor},
		{"class A { static prototype() {} }", false, ErrStaticPrototype},
		{"({ get a(b) {} })", false, ErrGetterArity},
		{"({ set a() {} })", false, ErrSetterArity},
		{"({ set a(...b) {} })", false, ErrSetterRest},

		// statements
		{"return", false, ErrIllegalReturn},
		{"break", false, ErrIllegalBreak},
		{"continue", false, ErrIllegalContinue},
		{"switch (a) { case 1: continue; }", false, ErrIllegalContinue},
		{"while (a) continue b", false, ErrUnknownLabel},
		{"a: { continue a; }", false, ErrIllegalContinueLabel},
		{"a: a: b", false, ErrDuplicateLabel},
		{"switch (a) { default: default: }", false, ErrMultipleDefaults},
		{"throw\na", false, ErrNewlineAfterThrow},
		{"try {}", false, ErrNoCatchOrFinally},
		{"for (let a = 1 of b) {}", false, ErrForInOfInitializer},
		{"for (let a = 1 in b) {}", false, ErrForInOfInitializer},
		{"for (var [a] = 1 in b) {}", false, ErrForInOfInitializer},
		{"for (var a, b in c) {}", false, ErrForInOfMultipleBindings},
		{"for (async of x) {}", false, ErrForOfAsync},
		{"for (a + b of c) {}", false, ErrInvalidLHSInFor},
		{"for await (x of y) {}", false, ErrUnexpectedToken},
		{"async function f() { for await (x in y) {} }", false, ErrForAwaitWithoutOf},
		{"if (a) class A {}", false, ErrLexicalInSingleStatement},
		{"if (a) const b = 1", false, ErrLexicalInSingleStatement},
		{"if (a) let [b] = c", false, ErrLexicalInSingleStatement},
		{"while (a) function f() {}", false, ErrFunctionInSingleStatement},
		{"while (a) async function f() {}", false, ErrFunctionInSingleStatement},
		{"l: function* g() {}", false, ErrFunctionInSingleStatement},
		{"while (1) l: function f() {}", false, ErrFunctionInSingleStatement},
		{"if (a) l: function f() {}", false, ErrFunctionInSingleStatement},
		{"if (a) b; else l: function f() {}", false, ErrFunctionInSingleStatement},
		{"for (;;) l: m: function f() {}", false, ErrFunctionInSingleStatement},
		{"for (a in b) l: function f() {}", false, ErrFunctionInSingleStatement},
		{"do l: function f() {} while (a)", false, ErrFunctionInSingleStatement},
		{"with (a) l: function f() {}", false, ErrFunctionInSingleStatement},
		{"for (let.x of y);", false, ErrForOfLet},
		{"for (let.x.y of z);", false, ErrForOfLet},

		// modules
		{"import a from 'x'", false, ErrImportExportOutsideModule},
		{"export var a", false, ErrImportExportOutsideModule},
		{"export default 1", false, ErrImportExportOutsideModule},
		{"{ import a from 'x' }", true, ErrImportExportNotTopLevel},
		{"function f() { export var a }", true, ErrImportExportNotTopLevel},
		{"export { a }", true, ErrUndeclaredExport},
		{"export var a; export { a }", true, ErrDuplicateExport},
		{"export default 1; export default 2", true, ErrDuplicateExport},
		{"import a from 'x'; let a;", true, ErrDuplicateBinding},
		{"function f() {} function f() {}", true, ErrDuplicateBinding},
		{"var await", true, ErrReservedWord},
		{"with (a) {}", true, ErrStrictWith},
		{"import a from b", true, ErrExpected},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			opts := Options{}
			if tt.module {
				opts = moduleOptions
			}
			_, err := ParseString(tt.js, opts)
			test.That(t, err != nil, "must fail")
			if perr, ok := err.(*Error); ok {
				test.T(t, perr.Kind, tt.kind, perr.Error())
			} else {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("a\n  +", Options{})
	perr, ok := err.(*Error)
	test.That(t, ok, "syntax error")
	test.T(t, perr.Kind, ErrUnexpectedEOF)
	test.T(t, perr.Index, 5, "index")
	test.T(t, perr.Line, 2, "line")
	test.T(t, perr.Column, 3, "column")
	test.String(t, perr.Error(), "Unexpected end of input (2:3)")

	_, err = ParseString("let a;\nlet a;", Options{})
	perr = err.(*Error)
	test.T(t, perr.Message(), "Identifier 'a' has already been declared")
	test.T(t, perr.Line, 2, "line")

	ctxErr := perr.Context([]byte("let a;\nlet a;"))
	test.T(t, ctxErr.Line, 2, "context line")
}

func TestErrorMessages(t *testing.T) {
	for kind := ErrUnexpected; kind <= ErrTooDeep; kind++ {
		_, ok := errorMessages[kind]
		test.That(t, ok, "missing message for error kind", int(kind))
	}
	test.String(t, ErrorKind(9999).String(), "Invalid(9999)")
	test.String(t, (&Error{Kind: ErrExpected, Params: []string{";"}}).Message(), "Expected ';'")
	test.String(t, (&Error{Kind: ErrExpected}).Message(), "Expected ''")
}

func TestLabelledFunctions(t *testing.T) {
	// a labelled function is only allowed in a statement list
	for _, src := range []string{
		"l: function f() {}",
		"l: m: function f() {}",
		"{ l: function f() {} }",
		"while (a) { l: function f() {} }",
		"if (a) { l: function f() {} }",
		"while (a) (function () { l: function f() {} });",
		"while (a) () => { l: function f() {} };",
		"while (a) l: b;",
		"for (let.x in y);",
	} {
		_, err := ParseString(src, Options{})
		test.Error(t, err, src)
	}
}

func TestMaxDepth(t *testing.T) {
	_, err := ParseString("((((((a))))))", Options{MaxDepth: 10})
	perr, ok := err.(*Error)
	test.That(t, ok, "syntax error")
	test.T(t, perr.Kind, ErrTooDeep)

	_, err = ParseString("((((((a))))))", Options{})
	test.Error(t, err)

	// nested declarations and right-associative operators are bounded as well
	for _, src := range []string{
		strings.Repeat("function f(){", 100000),
		strings.Repeat("a**", 100000) + "a",
		strings.Repeat("class A { m() {", 100000),
	} {
		_, err = ParseString(src, Options{})
		perr, ok = err.(*Error)
		test.That(t, ok, "syntax error")
		test.T(t, perr.Kind, ErrTooDeep, src[:16])
	}
}

func TestOptions(t *testing.T) {
	_, err := ParseString("a", Options{SourceType: "commonjs"})
	test.That(t, err != nil, "invalid source type")
	_, ok := err.(*Error)
	test.That(t, !ok, "option errors are not syntax errors")

	_, err = ParseString("a", Options{MaxDepth: -1})
	test.That(t, err != nil, "invalid depth")

	test.Error(t, DefaultOptions.Validate())

	// global return
	_, err = ParseString("return 1", Options{GlobalReturn: true})
	test.Error(t, err)

	// implied strict
	_, err = ParseString("with (a) {}", Options{ImpliedStrict: true})
	test.That(t, err != nil, "implied strict")

	// web compatibility
	_, err = ParseString("if (a) function f() {}", Options{DisableWebCompat: true})
	test.That(t, err != nil, "annex B function in if")
}

func TestRaw(t *testing.T) {
	ast, err := ParseString("'a'; 0x10; true; null; /a/g; 1n", Options{Raw: true})
	test.Error(t, err)

	raws := []string{}
	for _, stmt := range ast.Body {
		lit := stmt.(*ExpressionStatement).Expression.(*Literal)
		raws = append(raws, lit.Raw)
	}
	test.T(t, raws, []string{"'a'", "0x10", "true", "null", "/a/g", "1n"})

	lit := ast.Body[1].(*ExpressionStatement).Expression.(*Literal)
	test.T(t, lit.Value, 16.0)
	lit = ast.Body[4].(*ExpressionStatement).Expression.(*Literal)
	test.T(t, lit.Regex.Pattern, "a")
	test.T(t, lit.Regex.Flags, "g")
	test.T(t, lit.Value, nil)
	lit = ast.Body[5].(*ExpressionStatement).Expression.(*Literal)
	test.T(t, lit.Bigint, "1")

	ast, err = ParseString("'a'", Options{})
	test.Error(t, err)
	test.T(t, ast.Body[0].(*ExpressionStatement).Expression.(*Literal).Raw, "")
}

func TestDirectives(t *testing.T) {
	ast, err := ParseString("'use strict'; \"other\"; ('paren'); 'after'", Options{Directives: true})
	test.Error(t, err)
	test.T(t, ast.Body[0].(*ExpressionStatement).Directive, "use strict")
	test.T(t, ast.Body[1].(*ExpressionStatement).Directive, "other")
	test.T(t, ast.Body[2].(*ExpressionStatement).Directive, "")
	test.T(t, ast.Body[3].(*ExpressionStatement).Directive, "")

	ast, err = ParseString("function f() { 'use strict' }", Options{Directives: true})
	test.Error(t, err)
	body := ast.Body[0].(*FunctionDeclaration).Body
	test.T(t, body.Body[0].(*ExpressionStatement).Directive, "use strict")
}

func TestTemplateValues(t *testing.T) {
	ast, err := ParseString("tag`a\\u{g}${b}c\r\nd`", Options{})
	test.Error(t, err)
	quasi := ast.Body[0].(*ExpressionStatement).Expression.(*TaggedTemplateExpression).Quasi
	test.T(t, len(quasi.Quasis), 2)
	test.T(t, quasi.Quasis[0].Value.Raw, "a\\u{g}")
	test.That(t, quasi.Quasis[0].Value.Cooked == nil, "invalid escape has no cooked value")
	test.T(t, quasi.Quasis[1].Value.Raw, "c\nd")
	test.T(t, *quasi.Quasis[1].Value.Cooked, "c\nd")
	test.That(t, quasi.Quasis[1].Tail, "last element is the tail")
}

func TestLoc(t *testing.T) {
	ast, err := ParseString("a", Options{Loc: true})
	test.Error(t, err)

	b, err := json.Marshal(ast)
	test.Error(t, err)
	loc := `"start":0,"end":1,"loc":{"start":{"line":1,"column":0},"end":{"line":1,"column":1}}`
	test.String(t, string(b), `{"type":"Program",`+loc+`,"sourceType":"script","body":[{"type":"ExpressionStatement",`+loc+`,"expression":{"type":"Identifier",`+loc+`,"name":"a"}}]}`)

	ast, err = ParseString("var a = {\n  b: 1\n};", Options{Loc: true})
	test.Error(t, err)
	decl := ast.Body[0].(*VariableDeclaration)
	test.T(t, decl.Start, 0)
	test.T(t, decl.End, 19)
	test.T(t, decl.Loc.End, Position{3, 2})

	obj := decl.Declarations[0].Init.(*ObjectExpression)
	prop := obj.Properties[0].(*Property)
	test.T(t, prop.Loc.Start, Position{2, 2})
	test.T(t, prop.Loc.End, Position{2, 6})

	// function declared in a switch case of strict code
	ast, err = ParseString("switch (true) { case true: function g() {} }", Options{Loc: true, ImpliedStrict: true})
	test.Error(t, err)
	sw := ast.Body[0].(*SwitchStatement)
	sc := sw.Cases[0]
	fn := sc.Consequent[0].(*FunctionDeclaration)
	var spans = []struct {
		n          INode
		start, end int
	}{
		{sw, 0, 44},
		{sc, 16, 42},
		{sc.Test, 21, 25},
		{fn, 27, 42},
		{fn.Id, 36, 37},
		{fn.Body, 40, 42},
	}
	for _, tt := range spans {
		test.T(t, tt.n.base().Start, tt.start, tt.n.NodeType())
		test.T(t, tt.n.base().End, tt.end, tt.n.NodeType())
	}

	// positions are left out by default
	ast, err = ParseString("a", Options{})
	test.Error(t, err)
	test.That(t, ast.Span == nil, "no span")
	b, err = json.Marshal(ast)
	test.Error(t, err)
	test.String(t, string(b), `{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"a"}}]}`)
}

func TestLiteralJSON(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"1", `{"type":"Literal","value":1}`},
		{"'a'", `{"type":"Literal","value":"a"}`},
		{"null", `{"type":"Literal","value":null}`},
		{"true", `{"type":"Literal","value":true}`},
		{"1e400", `{"type":"Literal","value":null}`},
		{"/a/g", `{"type":"Literal","value":null,"regex":{"pattern":"a","flags":"g"}}`},
		{"10n", `{"type":"Literal","value":null,"bigint":"10"}`},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := ParseString(tt.js, Options{})
			test.Error(t, err)
			b, err := json.Marshal(ast.Body[0].(*ExpressionStatement).Expression)
			test.Error(t, err)
			test.String(t, string(b), tt.expected)
		})
	}
}

func TestParseInput(t *testing.T) {
	r := esparse.NewInputString("a; b")
	ast, err := Parse(r, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(ast.Body), 2)
	test.T(t, ast.SourceType, SourceScript)
}
