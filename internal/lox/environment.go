package lox

import "fmt"

// Environment stores the bindings of one scope and links to the scope that
// encloses it. A nil enclosing environment marks the global scope.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a new scope nested inside `enclosing`
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Enclosing returns the scope that encloses this one
func (env *Environment) Enclosing() *Environment {
	return env.enclosing
}

// Define binds the name in this scope, overwriting any existing binding of the
// same name in this scope. Bindings in enclosing scopes are left untouched.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

// Assign updates the nearest existing binding of the name. Assignment never
// creates a new binding.
func (env *Environment) Assign(name *Token, value interface{}) error {
	for e := env; e != nil; e = e.enclosing {
		if _, ok := e.values[name.Lexeme]; ok {
			e.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

// Get returns the value of the nearest binding of the name.
func (env *Environment) Get(name *Token) (interface{}, error) {
	for e := env; e != nil; e = e.enclosing {
		if value, ok := e.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

func undefinedVariable(name *Token) error {
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return NewRuntimeError(name, ErrUndefinedVariable, msg)
}
