package ast

import (
	"github.com/guregu/null/v5"
)

type NodeEvaluation struct {
	Function    Function
	ReturnValue null.Float
	Errors      []error
	// Set on the branch of an IF that was not taken: it was never evaluated.
	Skipped bool

	Children []NodeEvaluation
}

func (root NodeEvaluation) AllErrors() (errs []error) {
	var addEvaluationErrors func(NodeEvaluation)

	addEvaluationErrors = func(child NodeEvaluation) {
		if child.Errors != nil {
			errs = append(errs, child.Errors...)
		}

		for _, child := range child.Children {
			addEvaluationErrors(child)
		}
	}

	addEvaluationErrors(root)
	return errs
}

func (root NodeEvaluation) FirstError() error {
	errs := root.AllErrors()
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
