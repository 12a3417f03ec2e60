package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestMatch(t *testing.T) {
	candidates := []string{"Cost", "Revenue", "Conversions", "Clicks"}

	assert.Equal(t, "Revenue", ClosestMatch("Revenu", candidates))
	assert.Equal(t, "Conversions", ClosestMatch("conversions", candidates))
	assert.Equal(t, "", ClosestMatch("Impressions", candidates))
	assert.Equal(t, "", ClosestMatch("Cost", nil))
}

func TestLast(t *testing.T) {
	assert.Equal(t, []int{3, 4}, Last([]int{1, 2, 3, 4}, 2))
	assert.Equal(t, []int{1, 2}, Last([]int{1, 2}, 5))
	assert.Empty(t, Last([]int{1, 2}, 0))
}
