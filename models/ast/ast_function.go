package ast

import (
	"fmt"
	"strings"
)

type Function int

const (
	FUNC_CONSTANT Function = iota
	FUNC_VARIABLE
	FUNC_UNARY_MINUS
	FUNC_ADD
	FUNC_SUBTRACT
	FUNC_MULTIPLY
	FUNC_DIVIDE
	FUNC_GREATER
	FUNC_GREATER_OR_EQUAL
	FUNC_LESS
	FUNC_LESS_OR_EQUAL
	FUNC_EQUAL
	FUNC_NOT_EQUAL
	FUNC_IF
	FUNC_SUM
	FUNC_AVG
	FUNC_MIN
	FUNC_MAX
	FUNC_UNKNOWN Function = -1
)

// NumberOfArguments is -1 for variadic functions.
type FuncAttributes struct {
	DebugName         string
	AstName           string
	Operator          string
	NumberOfArguments int
}

var FuncAttributesMap = map[Function]FuncAttributes{
	FUNC_CONSTANT: {
		DebugName: "CONSTANT",
	},
	FUNC_VARIABLE: {
		DebugName: "VARIABLE",
	},
	FUNC_UNARY_MINUS: {
		DebugName:         "FUNC_UNARY_MINUS",
		Operator:          "-",
		NumberOfArguments: 1,
	},
	FUNC_ADD: {
		DebugName:         "FUNC_ADD",
		Operator:          "+",
		NumberOfArguments: 2,
	},
	FUNC_SUBTRACT: {
		DebugName:         "FUNC_SUBTRACT",
		Operator:          "-",
		NumberOfArguments: 2,
	},
	FUNC_MULTIPLY: {
		DebugName:         "FUNC_MULTIPLY",
		Operator:          "*",
		NumberOfArguments: 2,
	},
	FUNC_DIVIDE: {
		DebugName:         "FUNC_DIVIDE",
		Operator:          "/",
		NumberOfArguments: 2,
	},
	FUNC_GREATER: {
		DebugName:         "FUNC_GREATER",
		Operator:          ">",
		NumberOfArguments: 2,
	},
	FUNC_GREATER_OR_EQUAL: {
		DebugName:         "FUNC_GREATER_OR_EQUAL",
		Operator:          ">=",
		NumberOfArguments: 2,
	},
	FUNC_LESS: {
		DebugName:         "FUNC_LESS",
		Operator:          "<",
		NumberOfArguments: 2,
	},
	FUNC_LESS_OR_EQUAL: {
		DebugName:         "FUNC_LESS_OR_EQUAL",
		Operator:          "<=",
		NumberOfArguments: 2,
	},
	FUNC_EQUAL: {
		DebugName:         "FUNC_EQUAL",
		Operator:          "==",
		NumberOfArguments: 2,
	},
	FUNC_NOT_EQUAL: {
		DebugName:         "FUNC_NOT_EQUAL",
		Operator:          "!=",
		NumberOfArguments: 2,
	},
	FUNC_IF: {
		DebugName:         "FUNC_IF",
		AstName:           "IF",
		NumberOfArguments: 3,
	},
	FUNC_SUM: {
		DebugName:         "FUNC_SUM",
		AstName:           "SUM",
		NumberOfArguments: -1,
	},
	FUNC_AVG: {
		DebugName:         "FUNC_AVG",
		AstName:           "AVG",
		NumberOfArguments: -1,
	},
	FUNC_MIN: {
		DebugName:         "FUNC_MIN",
		AstName:           "MIN",
		NumberOfArguments: -1,
	},
	FUNC_MAX: {
		DebugName:         "FUNC_MAX",
		AstName:           "MAX",
		NumberOfArguments: -1,
	},
}

func (f Function) Attributes() (FuncAttributes, error) {
	if attributes, ok := FuncAttributesMap[f]; ok {
		return attributes, nil
	}
	return FuncAttributes{}, fmt.Errorf("unknown function: %v %w", f, ErrUnknownFunction)
}

func (f Function) DebugString() string {
	attributes, err := f.Attributes()
	if err != nil {
		return fmt.Sprintf("Invalid function: %d", f)
	}
	return attributes.DebugName
}

func (f Function) IsComparison() bool {
	switch f {
	case FUNC_GREATER, FUNC_GREATER_OR_EQUAL, FUNC_LESS, FUNC_LESS_OR_EQUAL, FUNC_EQUAL, FUNC_NOT_EQUAL:
		return true
	default:
		return false
	}
}

func (f Function) IsAggregate() bool {
	switch f {
	case FUNC_SUM, FUNC_AVG, FUNC_MIN, FUNC_MAX:
		return true
	default:
		return false
	}
}

// FuncFromName resolves a call name to one of the named functions, ignoring case.
func FuncFromName(name string) Function {
	upper := strings.ToUpper(name)
	for f, attributes := range FuncAttributesMap {
		if attributes.AstName != "" && attributes.AstName == upper {
			return f
		}
	}
	return FUNC_UNKNOWN
}

// FuncFromOperator resolves an infix operator. Unary minus is never returned.
func FuncFromOperator(operator string) Function {
	switch operator {
	case "+":
		return FUNC_ADD
	case "-":
		return FUNC_SUBTRACT
	case "*":
		return FUNC_MULTIPLY
	case "/":
		return FUNC_DIVIDE
	case ">":
		return FUNC_GREATER
	case ">=":
		return FUNC_GREATER_OR_EQUAL
	case "<":
		return FUNC_LESS
	case "<=":
		return FUNC_LESS_OR_EQUAL
	case "==":
		return FUNC_EQUAL
	case "!=":
		return FUNC_NOT_EQUAL
	default:
		return FUNC_UNKNOWN
	}
}
