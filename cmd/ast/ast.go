package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go && go run . Stmt > ../../internal/stmt.go && gofmt -w ../../internal/expr.go ../../internal/stmt.go"

var grammar = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: keyword *token, expression expr",
		"Var: name *token, initializer expr",
		"Block: stmts []stmt",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"While: keyword *token, condition expr, body stmt",
		"Fn: name *token, params []*token, body []stmt",
		"Return: keyword *token, value expr",
		"Class: name *token, superclass *variableExpr, methods []*fnStmt",
	},
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Conditional: condition expr, question *token, thenBranch expr, elseBranch expr",
		"Get: object expr, name *token",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Logical: left expr, operator *token, right expr",
		"Set: object expr, name *token, value expr",
		"Super: keyword *token, method *token",
		"This: keyword *token",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(2)
	}
	types, ok := grammar[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(2)
	}
	fmt.Print(generateAst(os.Args[1], types))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structName(baseName, name) + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		name := strings.TrimSpace(typeDef[0])
		fields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, name, fields)
	}
	// End structs

	return out
}

func structName(baseName, name string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	sn := structName(baseName, name)
	out := "type " + sn + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + sn + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
