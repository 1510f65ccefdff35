package internal

import "errors"

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnclosedString = errors.New("Unterminated string.")
var errUnclosedComment = errors.New("Unterminated block comment.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errMissingLeftOperand = errors.New("Missing left-hand operand")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedSuperDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errExpectedColon = errors.New("Expect ':' after then branch of conditional expression.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedMethodName = errors.New("Expect method name.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedParenAfterName = errors.New("Expect '(' after name.")
var errExpectedBodyBrace = errors.New("Expect '{' before body.")
var errExpectedClassBrace = errors.New("Expect '{' before class body.")
var errUnclosedClass = errors.New("Expect '}' after class body.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errExpectedSemicolon = errors.New("Expect ';' after expression.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectedSemicolonLoop = errors.New("Expect ';' after loop condition.")
var errExpectedParenIf = errors.New("Expect '(' after 'if'.")
var errUnclosedParenIf = errors.New("Expect ')' after if condition.")
var errExpectedParenWhile = errors.New("Expect '(' after 'while'.")
var errUnclosedParenWhile = errors.New("Expect ')' after condition.")
var errExpectedParenFor = errors.New("Expect '(' after 'for'.")
var errUnclosedParenFor = errors.New("Expect ')' after for clauses.")

// Resolver errors
var errReadInInitializer = errors.New("Can't read local variable in its own initializer.")
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUndefinedProp = errors.New("Undefined property")
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errExpectedClass = errors.New("Superclass must be a class.")
var errUndefinedOp = errors.New("Undefined operator")
