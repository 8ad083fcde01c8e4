package reporter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

const commentSizeLimit = 4000

// Result is the outcome of one executed test for one case.
type Result struct {
	CaseID       int
	StatusID     int
	Comment      string
	Duration     time.Duration
	Defects      []string
	Parametrize  string
	SuiteID      int
	TestComments []string
}

// NewResult ...
func NewResult(caseID, statusID, suiteID int, comment string, duration time.Duration) Result {
	return Result{
		CaseID:       caseID,
		StatusID:     statusID,
		SuiteID:      suiteID,
		Comment:      comment,
		Duration:     duration,
		Defects:      []string{},
		TestComments: []string{},
	}
}

func (c Config) wireEntry(result Result) testrail.ResultEntry {
	entry := testrail.ResultEntry{
		StatusID: result.StatusID,
		CaseID:   result.CaseID,
		Defects:  strings.Join(result.Defects, ","),
		Comment:  composeComment(result, c.CustomComment),
		Elapsed:  elapsed(result.Duration),
	}
	if c.Version != "" {
		entry.Version = c.Version
	}
	return entry
}

// composeComment builds the result comment. The result section label names no
// test framework, reports from JUnit and go test share it.
func composeComment(result Result, customComment string) string {
	var b strings.Builder

	if result.Parametrize != "" {
		b.WriteString("# Test parametrize: #\n")
		b.WriteString(result.Parametrize + "\n\n")
	}

	if len(result.TestComments) > 0 {
		b.WriteString("# Test comments: #\n")
		b.WriteString(strings.Join(result.TestComments, "\n") + "\n\n")
	}

	if result.Comment != "" && result.StatusID != testrail.StatusPassed {
		// Indented so TestRail renders it as preformatted text.
		b.WriteString("# Test result: #\n")
		text := []rune(result.Comment)
		if len(text) > commentSizeLimit {
			b.WriteString("Log truncated\n...\n")
			text = text[len(text)-commentSizeLimit:]
		}
		b.WriteString("    " + strings.ReplaceAll(string(text), "\n", "\n    "))
	}

	if customComment != "" {
		b.WriteString(customComment + "\n")
	}

	return b.String()
}

// elapsed formats a duration the way TestRail accepts it, whole seconds only.
func elapsed(duration time.Duration) string {
	seconds := duration.Seconds()
	if seconds <= 0 {
		return ""
	}
	if seconds < 1 {
		return "1s"
	}
	return fmt.Sprintf("%ds", int(math.Round(seconds)))
}
