package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
)

type suiteCases struct {
	suiteID int
	caseIDs []int
}

// groupBySuite returns the case ids of every suite in order of first appearance,
// leaving out the ones TestRail does not know.
func groupBySuite(results []reporter.Result, diffCaseIDs map[int]bool) []suiteCases {
	var suites []suiteCases
	index := map[int]int{}
	seen := map[int]map[int]bool{}

	for _, result := range results {
		i, ok := index[result.SuiteID]
		if !ok {
			i = len(suites)
			index[result.SuiteID] = i
			seen[result.SuiteID] = map[int]bool{}
			suites = append(suites, suiteCases{suiteID: result.SuiteID, caseIDs: []int{}})
		}
		if diffCaseIDs[result.CaseID] || seen[result.SuiteID][result.CaseID] {
			continue
		}
		seen[result.SuiteID][result.CaseID] = true
		suites[i].caseIDs = append(suites[i].caseIDs, result.CaseID)
	}

	return suites
}

// primarySuite is the configured suite if results were collected for it, the first one otherwise.
func primarySuite(suites []suiteCases, suiteID int) suiteCases {
	for _, suite := range suites {
		if suite.suiteID == suiteID {
			return suite
		}
	}
	if len(suites) > 0 {
		return suites[0]
	}
	return suiteCases{suiteID: suiteID, caseIDs: []int{}}
}

func printLinks(logger log.Logger, session *reporter.Session) {
	if url := session.PlanURL(); url != "" {
		logger.Printf("Test plan: %s", colorstring.Magenta(url))
	}
	if url := session.RunURL(); url != "" {
		logger.Printf("Test run: %s", colorstring.Magenta(url))
	}
	for _, suiteID := range session.Registry.Suites() {
		if session.RunID() != 0 {
			break
		}
		entry, _ := session.Registry.Entry(suiteID)
		logger.Printf("Suite %d: %s", suiteID, colorstring.Magenta(session.RunURLFor(entry.RunID)))
	}
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
