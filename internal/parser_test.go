package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func parseSource(source string) *interpreterState {
	state := scanSource(source)
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state
}

func checkStaticErrors(t *testing.T, source string, expected ...string) {
	t.Helper()
	tp := &testPrinter{}
	outcome := RunSourceWithPrinter(source, tp)
	if outcome != OutcomeStaticError {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected a static error, got %s", source, outcome)
	}
	if tp.printed != "" {
		t.Errorf("nothing should run after a static error, printed %q", tp.printed)
	}
	found := strings.Split(strings.TrimSuffix(tp.errors, "\n"), "\n")
	if len(found) != len(expected) {
		t.Fatalf("\nSource:\n----\n%s\n----\nExpected %d errors, found:\n%s", source, len(expected), tp.errors)
	}
	for i := range expected {
		if found[i] != expected[i] {
			t.Errorf("\nExpected:\n%s\nFound:\n%s", expected[i], found[i])
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	state := parseSource("1 + 2 * 3 - 4 / 5;")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	// ((1 + (2 * 3)) - (4 / 5))
	minus, ok := state.stmts[0].(*exprStmt).expression.(*binaryExpr)
	if !ok || minus.operator.token != tkMinus {
		t.Fatalf("top level should be '-', got %#v", state.stmts[0])
	}
	plus, ok := minus.left.(*binaryExpr)
	if !ok || plus.operator.token != tkPlus {
		t.Fatalf("left of '-' should be '+'")
	}
	if star, ok := plus.right.(*binaryExpr); !ok || star.operator.token != tkStar {
		t.Errorf("right of '+' should be '*'")
	}
	if slash, ok := minus.right.(*binaryExpr); !ok || slash.operator.token != tkSlash {
		t.Errorf("right of '-' should be '/'")
	}
}

func TestParseAssociativity(t *testing.T) {
	state := parseSource("a = b = c; x ? y : z ? 1 : 2;")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	outer := state.stmts[0].(*exprStmt).expression.(*assignExpr)
	if inner, ok := outer.value.(*assignExpr); !ok || inner.name.lexeme != "b" {
		t.Errorf("assignment should be right associative")
	}
	cond := state.stmts[1].(*exprStmt).expression.(*conditionalExpr)
	if _, ok := cond.elseBranch.(*conditionalExpr); !ok {
		t.Errorf("conditional should be right associative")
	}

	state = parseSource("a or b and c;")
	or := state.stmts[0].(*exprStmt).expression.(*logicalExpr)
	if or.operator.token != tkOr {
		t.Errorf("'and' should bind tighter than 'or'")
	}
}

func TestParsePostfixChain(t *testing.T) {
	state := parseSource("a.b().c;")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	get, ok := state.stmts[0].(*exprStmt).expression.(*getExpr)
	if !ok || get.name.lexeme != "c" {
		t.Fatalf("outermost node should be .c")
	}
	call, ok := get.object.(*callExpr)
	if !ok {
		t.Fatalf(".c should apply to a call")
	}
	inner, ok := call.callee.(*getExpr)
	if !ok || inner.name.lexeme != "b" {
		t.Fatalf("call should apply to .b")
	}
	if v, ok := inner.object.(*variableExpr); !ok || v.name.lexeme != "a" {
		t.Errorf(".b should apply to a")
	}

	state = parseSource("a.b = 1;")
	if set, ok := state.stmts[0].(*exprStmt).expression.(*setExpr); !ok || set.name.lexeme != "b" {
		t.Errorf("property assignment should produce a set node")
	}
}

func TestParseForDesugar(t *testing.T) {
	state := parseSource("for (var i = 0; i < 3; i = i + 1) print i;")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	block, ok := state.stmts[0].(*blockStmt)
	if !ok || len(block.stmts) != 2 {
		t.Fatalf("for should desugar to a block with initializer and loop")
	}
	if _, ok := block.stmts[0].(*varStmt); !ok {
		t.Errorf("first statement should be the initializer")
	}
	loop, ok := block.stmts[1].(*whileStmt)
	if !ok {
		t.Fatalf("second statement should be a while loop")
	}
	body, ok := loop.body.(*blockStmt)
	if !ok || len(body.stmts) != 2 {
		t.Fatalf("loop body should hold the original body and the increment")
	}
	if _, ok := body.stmts[1].(*exprStmt).expression.(*assignExpr); !ok {
		t.Errorf("increment should run after the body")
	}

	state = parseSource("for (;;) {}")
	loop, ok = state.stmts[0].(*whileStmt)
	if !ok {
		t.Fatalf("a bare for should desugar to a plain while loop")
	}
	if lit, ok := loop.condition.(*literalExpr); !ok || lit.value != true {
		t.Errorf("missing condition should be true")
	}
}

func TestParseClass(t *testing.T) {
	state := parseSource("class B < A { init(x) { this.x = x; } get() { return super.get(); } }")
	if !state.Valid() {
		t.Fatalf("unexpected errors %v", state.errors)
	}
	class := state.stmts[0].(*classStmt)
	if class.name.lexeme != "B" || class.superclass.name.lexeme != "A" || len(class.methods) != 2 {
		t.Errorf("unexpected class %#v", class)
	}
	if len(class.methods[0].params) != 1 {
		t.Errorf("init should have one parameter")
	}
}

func TestParseErrors(t *testing.T) {
	// Two independent errors, both reported, nothing runs
	checkStaticErrors(t, "print \"start\";\nvar = 1;\nprint (1 + 2;\nprint \"end\";",
		"[line 2] Error at '=': Expect variable name.",
		"[line 3] Error at ';': Expect ')' after expression.",
	)

	checkStaticErrors(t, "print 1",
		"[line 1] Error at end: Expect ';' after value.",
	)

	checkStaticErrors(t, "1 = 2;",
		"[line 1] Error at '=': Invalid assignment target.",
	)

	checkStaticErrors(t, "true ? 1;",
		"[line 1] Error at ';': Expect ':' after then branch of conditional expression.",
	)

	checkStaticErrors(t, "super;",
		"[line 1] Error at ';': Expect '.' after 'super'.",
	)

	// Errors inside blocks recover inside the block
	checkStaticErrors(t, "{\n var a = ;\n var b = ;\n}",
		"[line 2] Error at ';': Expect expression.",
		"[line 3] Error at ';': Expect expression.",
	)

	// Lexical and syntax errors are reported together
	checkStaticErrors(t, "var a = @;",
		"[line 1] Error: Unexpected character '@'.",
		"[line 1] Error at ';': Expect expression.",
	)
}

func TestParseMissingLeftOperand(t *testing.T) {
	for _, op := range []string{"+", "*", "/", "==", "!=", "<", "<=", ">", ">=", "and", "or"} {
		checkStaticErrors(t, fmt.Sprintf("%s 3;", op),
			fmt.Sprintf("[line 1] Error at '%s': Missing left-hand operand for '%s'.", op, op),
		)
	}

	state := parseSource("* 3;")
	if len(state.errors) != 1 || !errors.Is(state.errors[0], errMissingLeftOperand) {
		t.Errorf("expected errMissingLeftOperand, got %v", state.errors)
	}
	if errors.Is(state.errors[0], errExpectedExpr) {
		t.Errorf("missing operand should be distinguishable from a missing expression")
	}

	// '-' is a unary operator, not a missing operand
	if state := parseSource("- 3;"); !state.Valid() {
		t.Errorf("unary minus should parse, got %v", state.errors)
	}
}

func TestParseArgumentLimit(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	state := parseSource(fmt.Sprintf("f(%s);\nprint 1;", strings.Join(args, ", ")))
	if len(state.errors) != 1 || !errors.Is(state.errors[0], errMaxArguments) {
		t.Fatalf("expected a single argument limit error, got %v", state.errors)
	}
	// The error is not fatal, parsing continued
	if len(state.stmts) != 2 {
		t.Errorf("expected 2 statements, got %d", len(state.stmts))
	}

	params := make([]string, 256)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	state = parseSource(fmt.Sprintf("fun f(%s) {}", strings.Join(params, ", ")))
	if len(state.errors) != 1 || !errors.Is(state.errors[0], errMaxParameters) {
		t.Errorf("expected a single parameter limit error, got %v", state.errors)
	}

	state = parseSource(fmt.Sprintf("f(%s);", strings.Join(args[:255], ", ")))
	if !state.Valid() {
		t.Errorf("255 arguments should be accepted, got %v", state.errors)
	}
}
