package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("KPI_TEST_INT", "42")
	t.Setenv("KPI_TEST_BOOL", "true")
	t.Setenv("KPI_TEST_STRING", "json")
	t.Setenv("KPI_TEST_DURATION", "3s")
	t.Setenv("KPI_TEST_EMPTY", "")

	assert.Equal(t, 42, GetEnv("KPI_TEST_INT", 0))
	assert.Equal(t, true, GetEnv("KPI_TEST_BOOL", false))
	assert.Equal(t, "json", GetEnv("KPI_TEST_STRING", "text"))
	assert.Equal(t, 3*time.Second, GetEnv("KPI_TEST_DURATION", time.Second))
	assert.Equal(t, 30, GetEnv("KPI_TEST_EMPTY", 30))
	assert.Equal(t, 1.5, GetEnv("KPI_TEST_UNSET", 1.5))
}

func TestGetEnv_invalid_value_panics(t *testing.T) {
	t.Setenv("KPI_TEST_INT", "forty-two")
	assert.Panics(t, func() { GetEnv("KPI_TEST_INT", 0) })
}
