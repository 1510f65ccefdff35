package internal

import (
	"errors"
	"testing"
)

func resolveSource(t *testing.T, source string) (*interpreterState, map[expr]int) {
	t.Helper()
	state := parseSource(source)
	if !state.Valid() {
		t.Fatalf("unexpected parse errors %v", state.errors)
	}
	locals := make(map[expr]int)
	newResolver(state, locals).resolve()
	return state, locals
}

func TestResolveDistances(t *testing.T) {
	state, locals := resolveSource(t, `
	var g = 0;
	{
		var a = 1;
		{
			var a = 2;
			print a;
		}
		print a;
		print g;
	}
	`)
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	outer := state.stmts[1].(*blockStmt)
	inner := outer.stmts[1].(*blockStmt)

	innerRead := inner.stmts[1].(*printStmt).expression
	if d, ok := locals[innerRead]; !ok || d != 0 {
		t.Errorf("inner a should resolve at distance 0, got %d (%v)", d, ok)
	}
	outerRead := outer.stmts[2].(*printStmt).expression
	if d, ok := locals[outerRead]; !ok || d != 0 {
		t.Errorf("outer a should resolve at distance 0, got %d (%v)", d, ok)
	}
	globalRead := outer.stmts[3].(*printStmt).expression
	if _, ok := locals[globalRead]; ok {
		t.Errorf("globals should not be recorded")
	}
}

func TestResolveClosureDistance(t *testing.T) {
	state, locals := resolveSource(t, `
	fun outer() {
		var x = 1;
		fun inner() {
			{
				x = x + 1;
			}
		}
	}
	`)
	fn := state.stmts[0].(*fnStmt)
	inner := fn.body[1].(*fnStmt)
	assign := inner.body[0].(*blockStmt).stmts[0].(*exprStmt).expression.(*assignExpr)
	// block -> inner params/body -> outer params/body
	if d := locals[assign]; d != 2 {
		t.Errorf("assignment target should be 2 scopes away, got %d", d)
	}
	read := assign.value.(*binaryExpr).left
	if d := locals[read]; d != 2 {
		t.Errorf("read should be 2 scopes away, got %d", d)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		source string
		err    error
	}{
		{"{ var a = a; }", errReadInInitializer},
		{"{ var a = 1; var a = 2; }", errAlreadyDeclared},
		{"fun f(a, a) {}", errAlreadyDeclared},
		{"return 1;", errTopLevelReturn},
		{"class A { init() { return 1; } }", errInitializerReturn},
		{"print this;", errThisOutsideClass},
		{"fun f() { return this; }", errThisOutsideClass},
		{"print super.x;", errSuperOutsideClass},
		{"class A { f() { return super.f(); } }", errSuperWithoutSuperclass},
		{"class A < A {}", errInheritFromSelf},
	}
	for _, c := range cases {
		state := parseSource(c.source)
		if !state.Valid() {
			t.Fatalf("unexpected parse errors for %q: %v", c.source, state.errors)
		}
		newResolver(state, make(map[expr]int)).resolve()
		if len(state.errors) != 1 || !errors.Is(state.errors[0], c.err) {
			t.Errorf("%q should fail with %q, got %v", c.source, c.err, state.errors)
		}
	}
}

func TestResolveAllowed(t *testing.T) {
	for _, source := range []string{
		// Globals may be redeclared and read before definition
		"var a = 1; var a = a;",
		"fun f() { return g(); } fun g() { return 1; }",
		// Early return in an initializer is fine
		"class A { init() { return; } }",
		// this inside a function nested in a method
		"class A { m() { fun f() { return this; } return f; } }",
		"class A {} class B < A { m() { return super.m; } }",
	} {
		state, _ := resolveSource(t, source)
		if !state.Valid() {
			t.Errorf("%q should resolve, got %v", source, state.errors)
		}
	}
}

func TestResolveCollectsAllErrors(t *testing.T) {
	checkStaticErrors(t, "print \"never\";\nreturn 1;\n{ var a = a; }\nprint this;",
		"[line 2] Error at 'return': Can't return from top-level code.",
		"[line 3] Error at 'a': Can't read local variable in its own initializer.",
		"[line 4] Error at 'this': Can't use 'this' outside of a class.",
	)
}
