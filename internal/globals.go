package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
	defineStr(e)
}

// clock returns the seconds elapsed since the Unix epoch
func defineClock(e *env) {
	e.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	})
}

// str converts any value to its printed representation
func defineStr(e *env) {
	e.define("str", &nativeFn{
		name:       "str",
		arityValue: 1,
		callFn: func(exec *exec, arguments []interface{}) interface{} {
			return stringify(arguments[0])
		},
	})
}
