package collector

import (
	"bufio"
	"bytes"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const maxEventLineSize = 16 * 1024 * 1024

// testEvent is one line of `go test -json` output.
type testEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

type goTestState struct {
	test   executedTest
	output strings.Builder
	done   bool
}

// parseGoTest reads a `go test -json` stream. Only leaf tests are reported, a parent
// test with sub-tests is represented by its sub-tests.
func (c collector) parseGoTest(pth string) ([]executedTest, error) {
	file, err := c.fileManager.Open(pth)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warnf("Failed to close %s: %s", pth, err)
		}
	}()

	states := map[string]*goTestState{}
	var order []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] != '{' {
			continue
		}

		var event testEvent
		if err := json.Unmarshal(line, &event); err != nil {
			c.logger.Debugf("Skipping malformed test event: %s", err)
			continue
		}
		if event.Test == "" {
			continue
		}

		key := event.Package + "\x00" + event.Test
		state, ok := states[key]
		if !ok {
			state = &goTestState{test: executedTest{name: event.Test, properties: map[string]string{}}}
			states[key] = state
			order = append(order, key)
		}

		switch event.Action {
		case "output":
			state.output.WriteString(event.Output)
		case "pass", "fail", "skip":
			state.done = true
			state.test.status = goTestStatus(event.Action)
			state.test.duration = time.Duration(event.Elapsed * float64(time.Second))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var tests []executedTest
	for _, key := range order {
		state := states[key]
		if !state.done || hasSubTests(states, key) {
			continue
		}
		state.test.output = strings.TrimSpace(state.output.String())
		tests = append(tests, state.test)
	}
	return tests, nil
}

func hasSubTests(states map[string]*goTestState, key string) bool {
	prefix := key + "/"
	for other := range states {
		if strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

func goTestStatus(action string) string {
	switch action {
	case "pass":
		return statusPassed
	case "skip":
		return statusSkipped
	default:
		return statusFailed
	}
}
