package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv reads an environment variable, returning defaultValue when it is unset or empty.
// It panics when the value can not be converted to the type of defaultValue.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: %s", envVarName, err)
	}
	return value
}

func parseEnvValue[T envVarType](envValue string) (T, error) {
	var zero T
	var parsed any
	var err error

	switch any(zero).(type) {
	case string:
		parsed = envValue
	case int:
		parsed, err = strconv.Atoi(envValue)
	case bool:
		parsed, err = strconv.ParseBool(envValue)
	case float64:
		parsed, err = strconv.ParseFloat(envValue, 64)
	case time.Duration:
		parsed, err = time.ParseDuration(envValue)
	}
	if err != nil {
		return zero, fmt.Errorf("'%s' cannot be converted to %T: %w", envValue, zero, err)
	}
	return parsed.(T), nil
}
