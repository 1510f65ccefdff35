package internal

import "fmt"

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

// get prefers own fields over methods
func (o *loxInstance) get(tk *token) interface{} {
	if val, ok := o.fields[tk.lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(tk.lexeme); method != nil {
		return method.bind(o)
	}
	throwRuntimeError(fmt.Errorf("%w '%s'.", errUndefinedProp, tk.lexeme), tk)
	return nil
}

func (o *loxInstance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}
