package ast

import (
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/pure_utils"
)

type NodeEvaluationDto struct {
	ReturnValue null.Float           `json:"return_value"`
	Errors      []EvaluationErrorDto `json:"errors"`
	Children    []NodeEvaluationDto  `json:"children,omitempty"`
	Skipped     bool                 `json:"skipped"`
}

func AdaptNodeEvaluationDto(evaluation NodeEvaluation) NodeEvaluationDto {
	return NodeEvaluationDto{
		ReturnValue: evaluation.ReturnValue,
		Errors:      pure_utils.Map(evaluation.Errors, AdaptEvaluationErrorDto),
		Children:    pure_utils.Map(evaluation.Children, AdaptNodeEvaluationDto),
		Skipped:     evaluation.Skipped,
	}
}

// MergeAstTrees decorates an evaluation with the definition of the node it was computed from,
// so that a formula preview can display each sub-expression next to its value.
func MergeAstTrees(definition Node, evaluation NodeEvaluationDto) NodeEvaluationWithDefinitionDto {
	out := NodeEvaluationWithDefinitionDto{
		ReturnValue: evaluation.ReturnValue,
		Errors:      evaluation.Errors,
		Skipped:     evaluation.Skipped,
		Function:    definition.Function.DebugString(),
		Expression:  definition.String(),
	}
	if definition.Function == FUNC_CONSTANT || definition.Function == FUNC_VARIABLE {
		out.Constant = definition.Constant
	}

	out.Children = make([]NodeEvaluationWithDefinitionDto, 0, len(evaluation.Children))
	for i, child := range evaluation.Children {
		if i >= len(definition.Children) {
			break
		}
		out.Children = append(out.Children, MergeAstTrees(definition.Children[i], child))
	}

	return out
}

type NodeEvaluationWithDefinitionDto struct {
	ReturnValue null.Float                        `json:"return_value"`
	Errors      []EvaluationErrorDto              `json:"errors,omitempty"`
	Children    []NodeEvaluationWithDefinitionDto `json:"children,omitempty"`
	Skipped     bool                              `json:"skipped"`
	Function    string                            `json:"function"`
	Expression  string                            `json:"expression"`
	Constant    any                               `json:"constant,omitempty"`
}
