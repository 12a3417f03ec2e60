package evaluate

import (
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

type Evaluator interface {
	Evaluate(arguments ast.Arguments) (null.Float, []error)
}
