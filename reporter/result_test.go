package reporter

import (
	"strings"
	"testing"
	"time"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/stretchr/testify/assert"
)

func Test_GivenAllCommentInputs_WhenBuildingWireEntry_ThenSectionsAreInFixedOrder(t *testing.T) {
	// Given
	config := Config{CustomComment: "Built on CI"}
	result := NewResult(10, testrail.StatusFailed, 5, "assert 1 == 2\nexpected 2", 0)
	result.Parametrize = "browser=firefox"
	result.TestComments = []string{"first note", "second note"}

	// When
	entry := config.wireEntry(result)

	// Then
	expected := "# Test parametrize: #\nbrowser=firefox\n\n" +
		"# Test comments: #\nfirst note\nsecond note\n\n" +
		"# Test result: #\n    assert 1 == 2\n    expected 2" +
		"Built on CI\n"
	assert.Equal(t, expected, entry.Comment)
}

func Test_GivenPassedResult_WhenBuildingWireEntry_ThenResultSectionIsOmitted(t *testing.T) {
	// Given
	config := Config{}
	result := NewResult(10, testrail.StatusPassed, 5, "captured output", 0)

	// When
	entry := config.wireEntry(result)

	// Then
	assert.Equal(t, "", entry.Comment)
}

func Test_GivenLongFailureText_WhenBuildingWireEntry_ThenTailIsKept(t *testing.T) {
	// Given
	config := Config{}
	head := strings.Repeat("h", 100)
	tail := strings.Repeat("t", commentSizeLimit)
	result := NewResult(10, testrail.StatusFailed, 5, head+tail, 0)

	// When
	entry := config.wireEntry(result)

	// Then
	assert.Equal(t, "# Test result: #\nLog truncated\n...\n    "+tail, entry.Comment)
}

func Test_GivenMultiByteFailureText_WhenTruncating_ThenCountsCharacters(t *testing.T) {
	// Given
	config := Config{}
	text := strings.Repeat("é", commentSizeLimit)
	result := NewResult(10, testrail.StatusFailed, 5, text, 0)

	// When
	entry := config.wireEntry(result)

	// Then
	assert.Equal(t, "# Test result: #\n    "+text, entry.Comment)
}

func Test_GivenDurations_WhenFormattingElapsed_ThenRoundsToWholeSeconds(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero is omitted", duration: 0, want: ""},
		{name: "fraction below one second", duration: 400 * time.Millisecond, want: "1s"},
		{name: "half rounds up", duration: 2500 * time.Millisecond, want: "3s"},
		{name: "below half rounds down", duration: 2400 * time.Millisecond, want: "2s"},
		{name: "whole seconds", duration: 61 * time.Second, want: "61s"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, elapsed(test.duration))
		})
	}
}

func Test_GivenVersionAndDefects_WhenBuildingWireEntry_ThenBothAreAttached(t *testing.T) {
	// Given
	config := Config{Version: "1.4.2"}
	result := NewResult(10, testrail.StatusPassed, 5, "", 1500*time.Millisecond)
	result.Defects = []string{"BUG-1", "BUG-2"}

	// When
	entry := config.wireEntry(result)

	// Then
	assert.Equal(t, testrail.ResultEntry{
		StatusID: testrail.StatusPassed,
		CaseID:   10,
		Defects:  "BUG-1,BUG-2",
		Version:  "1.4.2",
		Elapsed:  "2s",
	}, entry)
}

func Test_GivenNoVersion_WhenBuildingWireEntry_ThenVersionIsEmpty(t *testing.T) {
	// Given
	config := Config{}
	result := NewResult(10, testrail.StatusPassed, 5, "", 0)

	// When
	entry := config.wireEntry(result)

	// Then
	assert.Empty(t, entry.Version)
	assert.Empty(t, entry.Elapsed)
}

func Test_GivenNewResult_WhenCreated_ThenCollectionsAreNotShared(t *testing.T) {
	// Given
	first := NewResult(1, testrail.StatusPassed, 5, "", 0)
	second := NewResult(2, testrail.StatusPassed, 5, "", 0)

	// When
	first.TestComments = append(first.TestComments, "only first")

	// Then
	assert.NotNil(t, second.Defects)
	assert.Empty(t, second.TestComments)
}
