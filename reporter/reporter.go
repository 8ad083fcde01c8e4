package reporter

import (
	"strconv"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

const prefix = "[TestRail]"

// Reporter reconciles collected results with TestRail and publishes them.
// Every operation is best effort: transport errors are logged and turned into
// empty or zero values.
type Reporter struct {
	client testrail.Client
	logger log.Logger
}

// New ...
func New(client testrail.Client, logger log.Logger) Reporter {
	return Reporter{
		client: client,
		logger: logger,
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
