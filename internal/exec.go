package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type exec struct {
	state   *interpreterState
	printer IPrinter
	logger  *logrus.Logger

	globals *env
	env     *env

	// locals is filled by the resolver and outlives a single run so that
	// closures created by earlier runs keep resolving correctly
	locals map[expr]int
}

// interpret runs every statement until the first runtime error
func (e *exec) interpret() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRunErr := r.(*runtimeError)
			if !isRunErr {
				panic(r)
			}
			e.state.runtimeError = runErr
			e.env = e.globals
			e.logger.WithFields(logrus.Fields{
				"line":   runErr.token.line,
				"lexeme": runErr.token.lexeme,
			}).Debug(runErr.err)
			ok = false
		}
	}()
	for _, s := range e.state.stmts {
		e.execute(s)
	}
	return true
}

func (e *exec) execute(s stmt) {
	s.accept(e)
}

func (e *exec) evaluate(ex expr) interface{} {
	return ex.accept(e)
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	e.evaluate(stmt.expression)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := e.evaluate(stmt.expression)
	e.printer.Println(stringify(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = e.evaluate(stmt.initializer)
	}
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.env))
	return nil
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if truthy(e.evaluate(stmt.condition)) {
		e.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		e.execute(stmt.elseBranch)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for truthy(e.evaluate(stmt.condition)) {
		e.execute(stmt.body)
	}
	return nil
}

func (e *exec) visitFnStmt(stmt *fnStmt) R {
	e.env.define(stmt.name.lexeme, &loxFunction{
		declaration:   stmt,
		closure:       e.env,
		isInitializer: false,
	})
	return nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value interface{}
	if stmt.value != nil {
		value = e.evaluate(stmt.value)
	}
	panic(returnValue{value: value})
}

func (e *exec) visitClassStmt(stmt *classStmt) R {
	var superclass *loxClass
	if stmt.superclass != nil {
		class, isClass := e.evaluate(stmt.superclass).(*loxClass)
		if !isClass {
			throwRuntimeError(errExpectedClass, stmt.superclass.name)
		}
		superclass = class
	}

	e.env.define(stmt.name.lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	class := &loxClass{
		name:       stmt.name.lexeme,
		superclass: superclass,
		methods:    methods,
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	e.env.assign(stmt.name, class)
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := e.evaluate(expr.value)
	if distance, ok := e.locals[expr]; ok {
		e.env.assignAt(distance, expr.name, val)
	} else {
		e.globals.assign(expr.name, val)
	}
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)
	switch expr.operator.token {
	case tkEqualEqual:
		return equal(left, right)
	case tkBangEqual:
		return !equal(left, right)
	case tkGreater:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum <= rightNum
	case tkPlus:
		if leftNum, ok := left.(float64); ok {
			if rightNum, ok := right.(float64); ok {
				return leftNum + rightNum
			}
		}
		if leftStr, ok := left.(string); ok {
			if rightStr, ok := right.(string); ok {
				return leftStr + rightStr
			}
		}
		throwRuntimeError(errNumbersOrStrings, expr.operator)
	case tkMinus:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum * rightNum
	default:
		throwRuntimeError(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) getNums(binExpr *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		throwRuntimeError(errOnlyNumbers, binExpr.operator)
	}
	rightNum, ok := right.(float64)
	if !ok {
		throwRuntimeError(errOnlyNumbers, binExpr.operator)
	}
	return leftNum, rightNum
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.evaluate(expr.callee)
	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = e.evaluate(expr.arguments[i])
	}

	fn, isFn := callee.(callable)
	if !isFn {
		throwRuntimeError(errOnlyFunction, expr.paren)
	}

	if len(arguments) != fn.arity() {
		throwRuntimeError(
			fmt.Errorf("%w: expected %d arguments but got %d.", errInvalidNumberArguments, fn.arity(), len(arguments)),
			expr.paren,
		)
	}

	return fn.call(e, arguments)
}

func (e *exec) visitConditionalExpr(expr *conditionalExpr) R {
	if truthy(e.evaluate(expr.condition)) {
		return e.evaluate(expr.thenBranch)
	}
	return e.evaluate(expr.elseBranch)
}

func (e *exec) visitGetExpr(expr *getExpr) R {
	object, isInstance := e.evaluate(expr.object).(*loxInstance)
	if !isInstance {
		throwRuntimeError(errOnlyInstanceProps, expr.name)
	}
	return object.get(expr.name)
}

func (e *exec) visitSetExpr(expr *setExpr) R {
	object, isInstance := e.evaluate(expr.object).(*loxInstance)
	if !isInstance {
		throwRuntimeError(errOnlyInstanceFields, expr.name)
	}
	value := e.evaluate(expr.value)
	object.set(expr.name, value)
	return value
}

// visitSuperExpr looks the method up starting at the superclass of the
// class that declared the running method, not the receiver's class
func (e *exec) visitSuperExpr(expr *superExpr) R {
	distance := e.locals[expr]
	superclass := e.env.getAt(distance, "super").(*loxClass)

	// "this" always lives one scope inside "super"
	object := e.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.method.lexeme)
	if method == nil {
		throwRuntimeError(fmt.Errorf("%w '%s'.", errUndefinedProp, expr.method.lexeme), expr.method)
	}
	return method.bind(object)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := e.evaluate(expr.left)

	if expr.operator.token == tkOr {
		if truthy(left) {
			return left
		}
	} else if !truthy(left) {
		return left
	}

	return e.evaluate(expr.right)
}

func (e *exec) visitThisExpr(expr *thisExpr) R {
	return e.lookUpVariable(expr.keyword, expr)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := e.evaluate(expr.right)
	switch expr.operator.token {
	case tkBang:
		return !truthy(value)
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			throwRuntimeError(errOnlyNumber, expr.operator)
		}
		return -valueNum
	default:
		throwRuntimeError(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.lookUpVariable(expr.name, expr)
}

// lookUpVariable crosses exactly the distance recorded by the resolver,
// falling back to the globals for unresolved names
func (e *exec) lookUpVariable(name *token, ex expr) interface{} {
	if distance, ok := e.locals[ex]; ok {
		return e.env.getAt(distance, name.lexeme)
	}
	return e.globals.get(name)
}
