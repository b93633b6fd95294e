package js

// IVisitor represents the AST Visitor
// Each INode encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil
type IVisitor interface {
	Enter(n INode) IVisitor
}

// Walk traverses an AST in depth-first order, visiting children in source order
func Walk(v IVisitor, n INode) {
	if isNil(n) {
		return
	}

	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkStmts(v, n.Body)
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		walkStmts(v, n.Body)
	case *EmptyStatement, *DebuggerStatement:
		return
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *ReturnStatement:
		Walk(v, n.Argument)
	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *BreakStatement:
		Walk(v, n.Label)
	case *ContinueStatement:
		Walk(v, n.Label)
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *SwitchCase:
		Walk(v, n.Test)
		walkStmts(v, n.Consequent)
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *TryStatement:
		Walk(v, n.Block)
		Walk(v, n.Handler)
		Walk(v, n.Finalizer)
	case *CatchClause:
		Walk(v, n.Param)
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ForStatement:
		Walk(v, n.Init)
		Walk(v, n.Test)
		Walk(v, n.Update)
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *FunctionDeclaration:
		walkFunction(v, &n.Function)
	case *FunctionExpression:
		walkFunction(v, &n.Function)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *VariableDeclarator:
		Walk(v, n.Id)
		Walk(v, n.Init)
	case *ClassDeclaration:
		walkClass(v, &n.Class)
	case *ClassExpression:
		walkClass(v, &n.Class)
	case *ClassBody:
		for _, m := range n.Body {
			Walk(v, m)
		}
	case *MethodDefinition:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *Identifier, *Literal, *ThisExpression, *Super:
		return
	case *ArrayExpression:
		for _, el := range n.Elements {
			Walk(v, el)
		}
	case *ObjectExpression:
		walkNodes(v, n.Properties)
	case *Property:
		if !n.Shorthand {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)
	case *ArrowFunctionExpression:
		walkPatterns(v, n.Params)
		Walk(v, n.Body)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			Walk(v, q)
			if i < len(n.Expressions) {
				Walk(v, n.Expressions[i])
			}
		}
	case *TemplateElement:
		return
	case *TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *UnaryExpression:
		Walk(v, n.Argument)
	case *UpdateExpression:
		Walk(v, n.Argument)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *CallExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.Arguments)
	case *NewExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.Arguments)
	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *ChainExpression:
		Walk(v, n.Expression)
	case *SequenceExpression:
		walkExprs(v, n.Expressions)
	case *YieldExpression:
		Walk(v, n.Argument)
	case *AwaitExpression:
		Walk(v, n.Argument)
	case *ImportExpression:
		Walk(v, n.Source)
	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)
	case *SpreadElement:
		Walk(v, n.Argument)
	case *ObjectPattern:
		walkNodes(v, n.Properties)
	case *ArrayPattern:
		walkPatterns(v, n.Elements)
	case *RestElement:
		Walk(v, n.Argument)
	case *AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ImportDeclaration:
		walkNodes(v, n.Specifiers)
		Walk(v, n.Source)
	case *ImportSpecifier:
		Walk(v, n.Imported)
		if n.Local.Name != n.Imported.Name {
			Walk(v, n.Local)
		}
	case *ImportDefaultSpecifier:
		Walk(v, n.Local)
	case *ImportNamespaceSpecifier:
		Walk(v, n.Local)
	case *ExportNamedDeclaration:
		Walk(v, n.Declaration)
		for _, spec := range n.Specifiers {
			Walk(v, spec)
		}
		Walk(v, n.Source)
	case *ExportSpecifier:
		Walk(v, n.Local)
		if n.Exported.Name != n.Local.Name {
			Walk(v, n.Exported)
		}
	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	case *ExportAllDeclaration:
		Walk(v, n.Exported)
		Walk(v, n.Source)
	}
}

func walkStmts(v IVisitor, list []IStmt) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkExprs(v IVisitor, list []IExpr) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkPatterns(v IVisitor, list []IPattern) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkNodes(v IVisitor, list []INode) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkFunction(v IVisitor, f *Function) {
	Walk(v, f.Id)
	walkPatterns(v, f.Params)
	Walk(v, f.Body)
}

func walkClass(v IVisitor, c *Class) {
	Walk(v, c.Id)
	Walk(v, c.SuperClass)
	Walk(v, c.Body)
}

// isNil returns true for a nil interface and for an interface holding a nil pointer, which optional fields such as
// IfStatement.Alternate or Function.Id turn into when assigned.
func isNil(n INode) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Program:
		return n == nil
	case *ExpressionStatement:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *EmptyStatement:
		return n == nil
	case *DebuggerStatement:
		return n == nil
	case *WithStatement:
		return n == nil
	case *ReturnStatement:
		return n == nil
	case *LabeledStatement:
		return n == nil
	case *BreakStatement:
		return n == nil
	case *ContinueStatement:
		return n == nil
	case *IfStatement:
		return n == nil
	case *SwitchStatement:
		return n == nil
	case *SwitchCase:
		return n == nil
	case *ThrowStatement:
		return n == nil
	case *TryStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *WhileStatement:
		return n == nil
	case *DoWhileStatement:
		return n == nil
	case *ForStatement:
		return n == nil
	case *ForInStatement:
		return n == nil
	case *ForOfStatement:
		return n == nil
	case *FunctionDeclaration:
		return n == nil
	case *VariableDeclaration:
		return n == nil
	case *VariableDeclarator:
		return n == nil
	case *ClassDeclaration:
		return n == nil
	case *ClassBody:
		return n == nil
	case *MethodDefinition:
		return n == nil
	case *Identifier:
		return n == nil
	case *Literal:
		return n == nil
	case *ThisExpression:
		return n == nil
	case *Super:
		return n == nil
	case *ArrayExpression:
		return n == nil
	case *ObjectExpression:
		return n == nil
	case *Property:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *ArrowFunctionExpression:
		return n == nil
	case *ClassExpression:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *TemplateElement:
		return n == nil
	case *TaggedTemplateExpression:
		return n == nil
	case *UnaryExpression:
		return n == nil
	case *UpdateExpression:
		return n == nil
	case *BinaryExpression:
		return n == nil
	case *LogicalExpression:
		return n == nil
	case *AssignmentExpression:
		return n == nil
	case *ConditionalExpression:
		return n == nil
	case *CallExpression:
		return n == nil
	case *NewExpression:
		return n == nil
	case *MemberExpression:
		return n == nil
	case *ChainExpression:
		return n == nil
	case *SequenceExpression:
		return n == nil
	case *YieldExpression:
		return n == nil
	case *AwaitExpression:
		return n == nil
	case *ImportExpression:
		return n == nil
	case *MetaProperty:
		return n == nil
	case *SpreadElement:
		return n == nil
	case *ObjectPattern:
		return n == nil
	case *ArrayPattern:
		return n == nil
	case *RestElement:
		return n == nil
	case *AssignmentPattern:
		return n == nil
	case *ImportDeclaration:
		return n == nil
	case *ImportSpecifier:
		return n == nil
	case *ImportDefaultSpecifier:
		return n == nil
	case *ImportNamespaceSpecifier:
		return n == nil
	case *ExportNamedDeclaration:
		return n == nil
	case *ExportSpecifier:
		return n == nil
	case *ExportDefaultDeclaration:
		return n == nil
	case *ExportAllDeclaration:
		return n == nil
	}
	return false
}
