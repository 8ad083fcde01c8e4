package collector

import (
	"strings"

	"github.com/joshdk/go-junit"
)

func parseJUnit(pth string) ([]executedTest, error) {
	suites, err := junit.IngestFile(pth)
	if err != nil {
		return nil, err
	}

	var tests []executedTest
	for _, suite := range suites {
		tests = append(tests, junitSuiteTests(suite, nil)...)
	}
	return tests, nil
}

// junitSuiteTests flattens nested suites. Suite properties except the case id are
// inherited by the tests, test level properties take precedence.
func junitSuiteTests(suite junit.Suite, inherited map[string]string) []executedTest {
	properties := mergeProperties(inherited, suite.Properties)
	delete(properties, CaseIDProperty)

	var tests []executedTest
	for _, test := range suite.Tests {
		tests = append(tests, executedTest{
			name:       test.Name,
			status:     junitStatus(test.Status),
			duration:   test.Duration,
			output:     junitOutput(test),
			properties: mergeProperties(properties, test.Properties),
		})
	}
	for _, child := range suite.Suites {
		tests = append(tests, junitSuiteTests(child, properties)...)
	}
	return tests
}

func junitStatus(status junit.Status) string {
	switch status {
	case junit.StatusPassed:
		return statusPassed
	case junit.StatusSkipped:
		return statusSkipped
	default:
		return statusFailed
	}
}

func junitOutput(test junit.Test) string {
	var parts []string
	if message := strings.TrimSpace(test.Message); message != "" {
		parts = append(parts, message)
	}
	if test.Error != nil {
		if body := strings.TrimSpace(test.Error.Error()); body != "" && body != strings.TrimSpace(test.Message) {
			parts = append(parts, body)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(test.SystemErr)
	}
	return strings.Join(parts, "\n")
}

func mergeProperties(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		merged[key] = value
	}
	return merged
}
