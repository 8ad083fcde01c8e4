package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GivenWrappedError_WhenFormatting_ThenEachCauseIsOnItsOwnLine(t *testing.T) {
	// Given
	cause := errors.New("report path does not exist: reports")
	err := fmt.Errorf("Failed to report test results: %w", fmt.Errorf("failed to collect test results: %w", cause))

	// When
	formatted := formattedError(err)

	// Then
	expected := "Failed to report test results\n" +
		"  failed to collect test results\n" +
		"    report path does not exist: reports"
	assert.Equal(t, expected, formatted)
}

func Test_GivenPlainError_WhenFormatting_ThenMessageIsKept(t *testing.T) {
	assert.Equal(t, "boom", formattedError(errors.New("boom")))
}
