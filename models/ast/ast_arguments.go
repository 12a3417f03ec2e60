package ast

import "github.com/guregu/null/v5"

// Arguments are the already evaluated children of a function node.
type Arguments struct {
	Args []null.Float
}
