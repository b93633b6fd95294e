package js

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Position is a line and column pair, lines start at 1 and columns at 0.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the loc field of a node.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Span holds the source range of a node, it is only set when positions are requested.
type Span struct {
	Start int             `json:"start"`
	End   int             `json:"end"`
	Loc   *SourceLocation `json:"loc,omitempty"`
}

// Node is embedded in every AST node.
type Node struct {
	Type string `json:"type"`
	*Span

	at    mark // start, also kept when positions are not requested
	paren bool // wrapped in parentheses
}

// NodeType returns the ESTree type tag.
func (n *Node) NodeType() string { return n.Type }

func (n *Node) base() *Node { return n }

// INode is any AST node.
type INode interface {
	NodeType() string
	String() string
	base() *Node
}

// IStmt is a statement, declaration or module declaration.
type IStmt interface {
	INode
	stmtNode()
}

// IExpr is an expression.
type IExpr interface {
	INode
	exprNode()
}

// IPattern is a binding or assignment target.
type IPattern interface {
	INode
	patternNode()
}

// NodeTypes is the fixed set of node types the parser produces.
var NodeTypes = []string{
	"Program",
	"ExpressionStatement", "BlockStatement", "EmptyStatement", "DebuggerStatement", "WithStatement",
	"ReturnStatement", "LabeledStatement", "BreakStatement", "ContinueStatement", "IfStatement", "SwitchStatement",
	"SwitchCase", "ThrowStatement", "TryStatement", "CatchClause", "WhileStatement", "DoWhileStatement",
	"ForStatement", "ForInStatement", "ForOfStatement",
	"FunctionDeclaration", "VariableDeclaration", "VariableDeclarator", "ClassDeclaration", "ClassBody",
	"MethodDefinition",
	"Identifier", "Literal", "ThisExpression", "Super", "ArrayExpression", "ObjectExpression", "Property",
	"FunctionExpression", "ArrowFunctionExpression", "ClassExpression", "TemplateLiteral", "TemplateElement",
	"TaggedTemplateExpression", "UnaryExpression", "UpdateExpression", "BinaryExpression", "LogicalExpression",
	"AssignmentExpression", "ConditionalExpression", "CallExpression", "NewExpression", "MemberExpression",
	"ChainExpression", "SequenceExpression", "YieldExpression", "AwaitExpression", "ImportExpression",
	"MetaProperty", "SpreadElement",
	"ObjectPattern", "ArrayPattern", "RestElement", "AssignmentPattern",
	"ImportDeclaration", "ImportSpecifier", "ImportDefaultSpecifier", "ImportNamespaceSpecifier",
	"ExportNamedDeclaration", "ExportSpecifier", "ExportDefaultDeclaration", "ExportAllDeclaration",
}

func nodeString(n INode) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

func joinNodes(sep string, ns ...INode) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = nodeString(n)
	}
	return strings.Join(s, sep)
}

////////////////////////////////////////////////////////////////

// Program is the root node.
type Program struct {
	Node
	SourceType string  `json:"sourceType"`
	Body       []IStmt `json:"body"`
}

func (n *Program) String() string {
	s := make([]string, len(n.Body))
	for i, item := range n.Body {
		s[i] = item.String()
	}
	return strings.Join(s, " ")
}

////////////////////////////////////////////////////////////////

type ExpressionStatement struct {
	Node
	Expression IExpr  `json:"expression"`
	Directive  string `json:"directive,omitempty"`
}

func (n *ExpressionStatement) String() string {
	return n.Expression.String() + ";"
}

type BlockStatement struct {
	Node
	Body []IStmt `json:"body"`
}

func (n *BlockStatement) String() string {
	if len(n.Body) == 0 {
		return "{}"
	}
	s := "{"
	for _, item := range n.Body {
		s += " " + item.String()
	}
	return s + " }"
}

type EmptyStatement struct {
	Node
}

func (n *EmptyStatement) String() string {
	return ";"
}

type DebuggerStatement struct {
	Node
}

func (n *DebuggerStatement) String() string {
	return "debugger;"
}

type WithStatement struct {
	Node
	Object IExpr `json:"object"`
	Body   IStmt `json:"body"`
}

func (n *WithStatement) String() string {
	return "with (" + n.Object.String() + ") " + n.Body.String()
}

type ReturnStatement struct {
	Node
	Argument IExpr `json:"argument"`
}

func (n *ReturnStatement) String() string {
	if n.Argument == nil {
		return "return;"
	}
	return "return " + n.Argument.String() + ";"
}

type LabeledStatement struct {
	Node
	Label *Identifier `json:"label"`
	Body  IStmt       `json:"body"`
}

func (n *LabeledStatement) String() string {
	return n.Label.String() + ": " + n.Body.String()
}

type BreakStatement struct {
	Node
	Label *Identifier `json:"label"`
}

func (n *BreakStatement) String() string {
	if n.Label == nil {
		return "break;"
	}
	return "break " + n.Label.String() + ";"
}

type ContinueStatement struct {
	Node
	Label *Identifier `json:"label"`
}

func (n *ContinueStatement) String() string {
	if n.Label == nil {
		return "continue;"
	}
	return "continue " + n.Label.String() + ";"
}

type IfStatement struct {
	Node
	Test       IExpr `json:"test"`
	Consequent IStmt `json:"consequent"`
	Alternate  IStmt `json:"alternate"` // can be nil
}

func (n *IfStatement) String() string {
	s := "if (" + n.Test.String() + ") " + n.Consequent.String()
	if n.Alternate != nil {
		s += " else " + n.Alternate.String()
	}
	return s
}

type SwitchStatement struct {
	Node
	Discriminant IExpr         `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

func (n *SwitchStatement) String() string {
	s := "switch (" + n.Discriminant.String() + ") {"
	for _, c := range n.Cases {
		s += " " + c.String()
	}
	return s + " }"
}

type SwitchCase struct {
	Node
	Test       IExpr   `json:"test"` // nil for default
	Consequent []IStmt `json:"consequent"`
}

func (n *SwitchCase) String() string {
	s := "default:"
	if n.Test != nil {
		s = "case " + n.Test.String() + ":"
	}
	for _, item := range n.Consequent {
		s += " " + item.String()
	}
	return s
}

type ThrowStatement struct {
	Node
	Argument IExpr `json:"argument"`
}

func (n *ThrowStatement) String() string {
	return "throw " + n.Argument.String() + ";"
}

type TryStatement struct {
	Node
	Block     *BlockStatement `json:"block"`
	Handler   *CatchClause    `json:"handler"`
	Finalizer *BlockStatement `json:"finalizer"`
}

func (n *TryStatement) String() string {
	s := "try " + n.Block.String()
	if n.Handler != nil {
		s += " " + n.Handler.String()
	}
	if n.Finalizer != nil {
		s += " finally " + n.Finalizer.String()
	}
	return s
}

type CatchClause struct {
	Node
	Param IPattern        `json:"param"` // can be nil
	Body  *BlockStatement `json:"body"`
}

func (n *CatchClause) String() string {
	if n.Param == nil {
		return "catch " + n.Body.String()
	}
	return "catch (" + n.Param.String() + ") " + n.Body.String()
}

type WhileStatement struct {
	Node
	Test IExpr `json:"test"`
	Body IStmt `json:"body"`
}

func (n *WhileStatement) String() string {
	return "while (" + n.Test.String() + ") " + n.Body.String()
}

type DoWhileStatement struct {
	Node
	Body IStmt `json:"body"`
	Test IExpr `json:"test"`
}

func (n *DoWhileStatement) String() string {
	return "do " + n.Body.String() + " while (" + n.Test.String() + ");"
}

type ForStatement struct {
	Node
	Init   INode `json:"init"` // VariableDeclaration, expression or nil
	Test   IExpr `json:"test"`
	Update IExpr `json:"update"`
	Body   IStmt `json:"body"`
}

func (n *ForStatement) String() string {
	return "for (" + headString(n.Init) + "; " + nodeString(n.Test) + "; " + nodeString(n.Update) + ") " + n.Body.String()
}

type ForInStatement struct {
	Node
	Left  INode `json:"left"` // VariableDeclaration or pattern
	Right IExpr `json:"right"`
	Body  IStmt `json:"body"`
}

func (n *ForInStatement) String() string {
	return "for (" + headString(n.Left) + " in " + n.Right.String() + ") " + n.Body.String()
}

type ForOfStatement struct {
	Node
	Left  INode `json:"left"`
	Right IExpr `json:"right"`
	Body  IStmt `json:"body"`
	Await bool  `json:"await"`
}

func (n *ForOfStatement) String() string {
	s := "for ("
	if n.Await {
		s = "for await ("
	}
	return s + headString(n.Left) + " of " + n.Right.String() + ") " + n.Body.String()
}

func headString(n INode) string {
	if decl, ok := n.(*VariableDeclaration); ok {
		return decl.declString()
	}
	return nodeString(n)
}

////////////////////////////////////////////////////////////////

// Function holds the fields shared by function declarations and expressions.
type Function struct {
	Id        *Identifier     `json:"id"`
	Params    []IPattern      `json:"params"`
	Body      *BlockStatement `json:"body"`
	Async     bool            `json:"async"`
	Generator bool            `json:"generator"`
}

func (f *Function) signature(keyword bool) string {
	s := ""
	if f.Async {
		s += "async "
	}
	if keyword {
		s += "function"
		if f.Generator {
			s += "*"
		}
		if f.Id != nil {
			s += " " + f.Id.String()
		}
	} else if f.Generator {
		s += "*"
	}
	return s + "(" + joinPatterns(f.Params) + ") " + f.Body.String()
}

func joinPatterns(ps []IPattern) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = nodeString(p)
	}
	return strings.Join(s, ", ")
}

type FunctionDeclaration struct {
	Node
	Function
}

func (n *FunctionDeclaration) String() string {
	return n.signature(true)
}

type VariableDeclaration struct {
	Node
	Declarations []*VariableDeclarator `json:"declarations"`
	Kind         string                `json:"kind"`
}

func (n *VariableDeclaration) declString() string {
	s := make([]string, len(n.Declarations))
	for i, d := range n.Declarations {
		s[i] = d.String()
	}
	return n.Kind + " " + strings.Join(s, ", ")
}

func (n *VariableDeclaration) String() string {
	return n.declString() + ";"
}

type VariableDeclarator struct {
	Node
	Id   IPattern `json:"id"`
	Init IExpr    `json:"init"`
}

func (n *VariableDeclarator) String() string {
	if n.Init == nil {
		return n.Id.String()
	}
	return n.Id.String() + " = " + n.Init.String()
}

// Class holds the fields shared by class declarations and expressions.
type Class struct {
	Id         *Identifier `json:"id"`
	SuperClass IExpr       `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func (c *Class) signature() string {
	s := "class"
	if c.Id != nil {
		s += " " + c.Id.String()
	}
	if c.SuperClass != nil {
		s += " extends " + c.SuperClass.String()
	}
	return s + " " + c.Body.String()
}

type ClassDeclaration struct {
	Node
	Class
}

func (n *ClassDeclaration) String() string {
	return n.signature()
}

type ClassBody struct {
	Node
	Body []*MethodDefinition `json:"body"`
}

func (n *ClassBody) String() string {
	if len(n.Body) == 0 {
		return "{}"
	}
	s := "{"
	for _, m := range n.Body {
		s += " " + m.String()
	}
	return s + " }"
}

type MethodDefinition struct {
	Node
	Key      IExpr               `json:"key"`
	Value    *FunctionExpression `json:"value"`
	Kind     string              `json:"kind"` // constructor, method, get or set
	Computed bool                `json:"computed"`
	Static   bool                `json:"static"`
}

func (n *MethodDefinition) String() string {
	s := ""
	if n.Static {
		s += "static "
	}
	if n.Kind == "get" || n.Kind == "set" {
		s += n.Kind + " "
	}
	return s + methodString(n.Key, n.Computed, &n.Value.Function)
}

func methodString(key IExpr, computed bool, f *Function) string {
	s := ""
	if f.Async {
		s += "async "
	}
	if f.Generator {
		s += "*"
	}
	if computed {
		s += "[" + key.String() + "]"
	} else {
		s += key.String()
	}
	return s + "(" + joinPatterns(f.Params) + ") " + f.Body.String()
}

////////////////////////////////////////////////////////////////

type Identifier struct {
	Node
	Name string `json:"name"`
}

func (n *Identifier) String() string {
	return n.Name
}

// RegExpLiteral is the regex field of a regular expression literal.
type RegExpLiteral struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Literal is a string, number, boolean, null, regular expression or bigint literal.
type Literal struct {
	Node
	Value  interface{}    `json:"value"`
	Raw    string         `json:"raw,omitempty"`
	Regex  *RegExpLiteral `json:"regex,omitempty"`
	Bigint string         `json:"bigint,omitempty"`

	raw string
}

// MarshalJSON encodes non-finite numbers as null.
func (n *Literal) MarshalJSON() ([]byte, error) {
	v := n.Value
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		v = nil
	}
	return json.Marshal(&struct {
		Node
		Value  interface{}    `json:"value"`
		Raw    string         `json:"raw,omitempty"`
		Regex  *RegExpLiteral `json:"regex,omitempty"`
		Bigint string         `json:"bigint,omitempty"`
	}{n.Node, v, n.Raw, n.Regex, n.Bigint})
}

func (n *Literal) String() string {
	if n.raw != "" {
		return n.raw
	}
	switch v := n.Value.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	if n.Regex != nil {
		return "/" + n.Regex.Pattern + "/" + n.Regex.Flags
	} else if n.Bigint != "" {
		return n.Bigint + "n"
	}
	return "null"
}

type ThisExpression struct {
	Node
}

func (n *ThisExpression) String() string {
	return "this"
}

type Super struct {
	Node
}

func (n *Super) String() string {
	return "super"
}

type ArrayExpression struct {
	Node
	Elements []IExpr `json:"elements"` // nil elements are holes
}

func (n *ArrayExpression) String() string {
	s := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		s[i] = nodeString(e)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

type ObjectExpression struct {
	Node
	Properties []INode `json:"properties"` // Property or SpreadElement
}

func (n *ObjectExpression) String() string {
	return "{" + joinNodes(", ", n.Properties...) + "}"
}

// Property is a property of an object literal or an object pattern.
type Property struct {
	Node
	Key       IExpr  `json:"key"`
	Value     INode  `json:"value"`
	Kind      string `json:"kind"` // init, get or set
	Method    bool   `json:"method"`
	Shorthand bool   `json:"shorthand"`
	Computed  bool   `json:"computed"`
}

func (n *Property) String() string {
	if n.Shorthand {
		return n.Value.String()
	} else if f, ok := n.Value.(*FunctionExpression); ok && (n.Method || n.Kind != "init") {
		s := ""
		if n.Kind != "init" {
			s = n.Kind + " "
		}
		return s + methodString(n.Key, n.Computed, &f.Function)
	}
	key := n.Key.String()
	if n.Computed {
		key = "[" + key + "]"
	}
	return key + ": " + n.Value.String()
}

type FunctionExpression struct {
	Node
	Function
}

func (n *FunctionExpression) String() string {
	return "(" + n.signature(true) + ")"
}

type ArrowFunctionExpression struct {
	Node
	Id         *Identifier `json:"id"`
	Params     []IPattern  `json:"params"`
	Body       INode       `json:"body"` // BlockStatement or expression
	Async      bool        `json:"async"`
	Generator  bool        `json:"generator"`
	Expression bool        `json:"expression"`
}

func (n *ArrowFunctionExpression) String() string {
	s := "("
	if n.Async {
		s += "async "
	}
	return s + "(" + joinPatterns(n.Params) + ") => " + n.Body.String() + ")"
}

type ClassExpression struct {
	Node
	Class
}

func (n *ClassExpression) String() string {
	return "(" + n.signature() + ")"
}

// TemplateValue holds the raw and cooked strings of a template element, Cooked is nil for invalid escapes.
type TemplateValue struct {
	Raw    string  `json:"raw"`
	Cooked *string `json:"cooked"`
}

type TemplateElement struct {
	Node
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

func (n *TemplateElement) String() string {
	return n.Value.Raw
}

type TemplateLiteral struct {
	Node
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []IExpr            `json:"expressions"`
}

func (n *TemplateLiteral) String() string {
	s := "`"
	for i, q := range n.Quasis {
		s += q.String()
		if i < len(n.Expressions) {
			s += "${" + n.Expressions[i].String() + "}"
		}
	}
	return s + "`"
}

type TaggedTemplateExpression struct {
	Node
	Tag   IExpr            `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func (n *TaggedTemplateExpression) String() string {
	return n.Tag.String() + n.Quasi.String()
}

type UnaryExpression struct {
	Node
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument IExpr  `json:"argument"`
}

func (n *UnaryExpression) String() string {
	if 'a' <= n.Operator[0] && n.Operator[0] <= 'z' {
		return "(" + n.Operator + " " + n.Argument.String() + ")"
	}
	return "(" + n.Operator + n.Argument.String() + ")"
}

type UpdateExpression struct {
	Node
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument IExpr  `json:"argument"`
}

func (n *UpdateExpression) String() string {
	if n.Prefix {
		return "(" + n.Operator + n.Argument.String() + ")"
	}
	return "(" + n.Argument.String() + n.Operator + ")"
}

type BinaryExpression struct {
	Node
	Operator string `json:"operator"`
	Left     IExpr  `json:"left"`
	Right    IExpr  `json:"right"`
}

func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type LogicalExpression struct {
	Node
	Operator string `json:"operator"`
	Left     IExpr  `json:"left"`
	Right    IExpr  `json:"right"`
}

func (n *LogicalExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type AssignmentExpression struct {
	Node
	Operator string `json:"operator"`
	Left     INode  `json:"left"` // pattern or, for compound operators, a simple target
	Right    IExpr  `json:"right"`
}

func (n *AssignmentExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type ConditionalExpression struct {
	Node
	Test       IExpr `json:"test"`
	Consequent IExpr `json:"consequent"`
	Alternate  IExpr `json:"alternate"`
}

func (n *ConditionalExpression) String() string {
	return "(" + n.Test.String() + " ? " + n.Consequent.String() + " : " + n.Alternate.String() + ")"
}

func argsString(args []IExpr) string {
	s := make([]string, len(args))
	for i, arg := range args {
		s[i] = arg.String()
	}
	return "(" + strings.Join(s, ", ") + ")"
}

type CallExpression struct {
	Node
	Callee    IExpr   `json:"callee"`
	Arguments []IExpr `json:"arguments"`
	Optional  bool    `json:"optional"`
}

func (n *CallExpression) String() string {
	if n.Optional {
		return n.Callee.String() + "?." + argsString(n.Arguments)
	}
	return n.Callee.String() + argsString(n.Arguments)
}

type NewExpression struct {
	Node
	Callee    IExpr   `json:"callee"`
	Arguments []IExpr `json:"arguments"`
}

func (n *NewExpression) String() string {
	return "(new " + n.Callee.String() + argsString(n.Arguments) + ")"
}

type MemberExpression struct {
	Node
	Object   IExpr `json:"object"`
	Property IExpr `json:"property"`
	Computed bool  `json:"computed"`
	Optional bool  `json:"optional"`
}

func (n *MemberExpression) String() string {
	s := n.Object.String()
	if n.Optional {
		s += "?."
	}
	if n.Computed {
		return s + "[" + n.Property.String() + "]"
	} else if !n.Optional {
		s += "."
	}
	return s + n.Property.String()
}

type ChainExpression struct {
	Node
	Expression IExpr `json:"expression"`
}

func (n *ChainExpression) String() string {
	return n.Expression.String()
}

type SequenceExpression struct {
	Node
	Expressions []IExpr `json:"expressions"`
}

func (n *SequenceExpression) String() string {
	s := make([]string, len(n.Expressions))
	for i, e := range n.Expressions {
		s[i] = e.String()
	}
	return "(" + strings.Join(s, ", ") + ")"
}

type YieldExpression struct {
	Node
	Argument IExpr `json:"argument"` // can be nil
	Delegate bool  `json:"delegate"`
}

func (n *YieldExpression) String() string {
	s := "(yield"
	if n.Delegate {
		s += "*"
	}
	if n.Argument != nil {
		s += " " + n.Argument.String()
	}
	return s + ")"
}

type AwaitExpression struct {
	Node
	Argument IExpr `json:"argument"`
}

func (n *AwaitExpression) String() string {
	return "(await " + n.Argument.String() + ")"
}

type ImportExpression struct {
	Node
	Source IExpr `json:"source"`
}

func (n *ImportExpression) String() string {
	return "import(" + n.Source.String() + ")"
}

type MetaProperty struct {
	Node
	Meta     *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func (n *MetaProperty) String() string {
	return n.Meta.String() + "." + n.Property.String()
}

type SpreadElement struct {
	Node
	Argument IExpr `json:"argument"`
}

func (n *SpreadElement) String() string {
	return "..." + n.Argument.String()
}

////////////////////////////////////////////////////////////////

type ObjectPattern struct {
	Node
	Properties []INode `json:"properties"` // Property or RestElement
}

func (n *ObjectPattern) String() string {
	return "{" + joinNodes(", ", n.Properties...) + "}"
}

type ArrayPattern struct {
	Node
	Elements []IPattern `json:"elements"` // nil elements are holes
}

func (n *ArrayPattern) String() string {
	return "[" + joinPatterns(n.Elements) + "]"
}

type RestElement struct {
	Node
	Argument IPattern `json:"argument"`
}

func (n *RestElement) String() string {
	return "..." + n.Argument.String()
}

type AssignmentPattern struct {
	Node
	Left  IPattern `json:"left"`
	Right IExpr    `json:"right"`
}

func (n *AssignmentPattern) String() string {
	return n.Left.String() + " = " + n.Right.String()
}

////////////////////////////////////////////////////////////////

type ImportDeclaration struct {
	Node
	Specifiers []INode   `json:"specifiers"`
	Source     *Literal `json:"source"`
}

func (n *ImportDeclaration) String() string {
	if len(n.Specifiers) == 0 {
		return "import " + n.Source.String() + ";"
	}
	var named []string
	s := "import "
	for _, spec := range n.Specifiers {
		if spec, ok := spec.(*ImportSpecifier); ok {
			named = append(named, spec.String())
			continue
		}
		if s != "import " {
			s += ", "
		}
		s += spec.String()
	}
	if named != nil {
		if s != "import " {
			s += ", "
		}
		s += "{ " + strings.Join(named, ", ") + " }"
	}
	return s + " from " + n.Source.String() + ";"
}

type ImportSpecifier struct {
	Node
	Imported *Identifier `json:"imported"`
	Local    *Identifier `json:"local"`
}

func (n *ImportSpecifier) String() string {
	if n.Imported.Name == n.Local.Name {
		return n.Local.String()
	}
	return n.Imported.String() + " as " + n.Local.String()
}

type ImportDefaultSpecifier struct {
	Node
	Local *Identifier `json:"local"`
}

func (n *ImportDefaultSpecifier) String() string {
	return n.Local.String()
}

type ImportNamespaceSpecifier struct {
	Node
	Local *Identifier `json:"local"`
}

func (n *ImportNamespaceSpecifier) String() string {
	return "* as " + n.Local.String()
}

type ExportNamedDeclaration struct {
	Node
	Declaration IStmt              `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal           `json:"source"`
}

func (n *ExportNamedDeclaration) String() string {
	if n.Declaration != nil {
		return "export " + n.Declaration.String()
	}
	s := make([]string, len(n.Specifiers))
	for i, spec := range n.Specifiers {
		s[i] = spec.String()
	}
	clause := "export {}"
	if len(s) != 0 {
		clause = "export { " + strings.Join(s, ", ") + " }"
	}
	if n.Source != nil {
		clause += " from " + n.Source.String()
	}
	return clause + ";"
}

type ExportSpecifier struct {
	Node
	Local    *Identifier `json:"local"`
	Exported *Identifier `json:"exported"`
}

func (n *ExportSpecifier) String() string {
	if n.Local.Name == n.Exported.Name {
		return n.Local.String()
	}
	return n.Local.String() + " as " + n.Exported.String()
}

type ExportDefaultDeclaration struct {
	Node
	Declaration INode `json:"declaration"` // FunctionDeclaration, ClassDeclaration or expression
}

func (n *ExportDefaultDeclaration) String() string {
	if _, ok := n.Declaration.(IExpr); ok {
		return "export default " + n.Declaration.String() + ";"
	}
	return "export default " + n.Declaration.String()
}

type ExportAllDeclaration struct {
	Node
	Exported *Identifier `json:"exported"`
	Source   *Literal    `json:"source"`
}

func (n *ExportAllDeclaration) String() string {
	if n.Exported != nil {
		return "export * as " + n.Exported.String() + " from " + n.Source.String() + ";"
	}
	return "export * from " + n.Source.String() + ";"
}

////////////////////////////////////////////////////////////////

func (n *ExpressionStatement) stmtNode()      {}
func (n *BlockStatement) stmtNode()           {}
func (n *EmptyStatement) stmtNode()           {}
func (n *DebuggerStatement) stmtNode()        {}
func (n *WithStatement) stmtNode()            {}
func (n *ReturnStatement) stmtNode()          {}
func (n *LabeledStatement) stmtNode()         {}
func (n *BreakStatement) stmtNode()           {}
func (n *ContinueStatement) stmtNode()        {}
func (n *IfStatement) stmtNode()              {}
func (n *SwitchStatement) stmtNode()          {}
func (n *ThrowStatement) stmtNode()           {}
func (n *TryStatement) stmtNode()             {}
func (n *WhileStatement) stmtNode()           {}
func (n *DoWhileStatement) stmtNode()         {}
func (n *ForStatement) stmtNode()             {}
func (n *ForInStatement) stmtNode()           {}
func (n *ForOfStatement) stmtNode()           {}
func (n *FunctionDeclaration) stmtNode()      {}
func (n *VariableDeclaration) stmtNode()      {}
func (n *ClassDeclaration) stmtNode()         {}
func (n *ImportDeclaration) stmtNode()        {}
func (n *ExportNamedDeclaration) stmtNode()   {}
func (n *ExportDefaultDeclaration) stmtNode() {}
func (n *ExportAllDeclaration) stmtNode()     {}

func (n *Identifier) exprNode()               {}
func (n *Literal) exprNode()                  {}
func (n *ThisExpression) exprNode()           {}
func (n *Super) exprNode()                    {}
func (n *ArrayExpression) exprNode()          {}
func (n *ObjectExpression) exprNode()         {}
func (n *FunctionExpression) exprNode()       {}
func (n *ArrowFunctionExpression) exprNode()  {}
func (n *ClassExpression) exprNode()          {}
func (n *TemplateLiteral) exprNode()          {}
func (n *TaggedTemplateExpression) exprNode() {}
func (n *UnaryExpression) exprNode()          {}
func (n *UpdateExpression) exprNode()         {}
func (n *BinaryExpression) exprNode()         {}
func (n *LogicalExpression) exprNode()        {}
func (n *AssignmentExpression) exprNode()     {}
func (n *ConditionalExpression) exprNode()    {}
func (n *CallExpression) exprNode()           {}
func (n *NewExpression) exprNode()            {}
func (n *MemberExpression) exprNode()         {}
func (n *ChainExpression) exprNode()          {}
func (n *SequenceExpression) exprNode()       {}
func (n *YieldExpression) exprNode()          {}
func (n *AwaitExpression) exprNode()          {}
func (n *ImportExpression) exprNode()         {}
func (n *MetaProperty) exprNode()             {}
func (n *SpreadElement) exprNode()            {}

func (n *Identifier) patternNode()        {}
func (n *MemberExpression) patternNode()  {}
func (n *ObjectPattern) patternNode()     {}
func (n *ArrayPattern) patternNode()      {}
func (n *RestElement) patternNode()       {}
func (n *AssignmentPattern) patternNode() {}
func (n *Property) patternNode()          {} // only inside object patterns
