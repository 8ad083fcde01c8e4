package reporter

import (
	"sort"
	"strings"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/goccy/go-json"
)

const (
	maxPayloadSize = 512 * 1024
	// len(`{"results":[]}`)
	emptyPayloadSize = 14
)

// PublishReport summarizes what a publish cycle sent.
type PublishReport struct {
	RunIDs           []int // runs at least one chunk was sent to
	PublishedCaseIDs []int
	IgnoredCaseIDs   []int
	BlockedCaseIDs   []int
	UnroutedCaseIDs  []int
	FailedChunks     int
}

type runResults struct {
	runID   int
	results []Result
}

// PublishResults sends the results to their runs and optionally closes the run or plan.
func (r Reporter) PublishResults(s *Session, results []Result) PublishReport {
	var report PublishReport

	r.logger.Println()
	r.logger.Infof(prefix + " Start publishing")

	if len(results) > 0 {
		diff := s.Registry.DiffCaseIDs()
		filtered, toPublish := FilterPublishResults(results, diff)
		r.logger.Printf(prefix+" Testcases to publish: %s", strings.Join(toPublish, ", "))

		if len(diff) > 0 {
			report.IgnoredCaseIDs = sortedIDs(diff)
			r.logger.Warnf(prefix+" Not found following testcases in suiteID=%d", s.Config.SuiteID)
			r.logger.Warnf(prefix+" Testcases will be ignored: %s", joinIDs(report.IgnoredCaseIDs))
		}

		for _, group := range r.routeResults(s, filtered, &report) {
			r.addResults(s, group.runID, group.results, &report)
		}
	} else {
		r.logger.Printf(prefix + " No data published")
	}

	if s.Config.CloseOnComplete && s.RunID() != 0 {
		r.CloseTestRun(s, s.RunID())
	} else if s.Config.CloseOnComplete && s.PlanID() != 0 {
		r.CloseTestPlan(s, s.PlanID())
	}

	r.logger.Infof(prefix + " End publishing")

	if s.PlanID() != 0 {
		r.logger.Printf(prefix+" Test Plan ID: %d", s.PlanID())
		r.logger.Printf(prefix+" Test Plan URL: %s", s.PlanURL())
	}
	if s.RunID() != 0 {
		r.logger.Printf(prefix+" Test Run ID: %d", s.RunID())
		r.logger.Printf(prefix+" Test Run URL: %s", s.RunURL())
	}

	report.PublishedCaseIDs = unionIDs(report.PublishedCaseIDs, nil)
	return report
}

// routeResults groups results by destination run. With a fixed run only the results
// of the run's suite are kept; otherwise every suite goes to its registry run.
func (r Reporter) routeResults(s *Session, results []Result, report *PublishReport) []runResults {
	var unrouted []int

	if s.RunID() != 0 {
		suiteID, ok := s.Registry.FirstSuite()
		group := runResults{runID: s.RunID()}
		for _, result := range results {
			if ok && result.SuiteID == suiteID {
				group.results = append(group.results, result)
			} else {
				unrouted = append(unrouted, result.CaseID)
			}
		}
		r.reportUnrouted(report, unrouted)
		if len(group.results) == 0 {
			return nil
		}
		return []runResults{group}
	}

	var groups []runResults
	index := map[int]int{}
	for _, result := range results {
		entry, ok := s.Registry.Entry(result.SuiteID)
		if !ok {
			unrouted = append(unrouted, result.CaseID)
			continue
		}
		i, seen := index[entry.RunID]
		if !seen {
			i = len(groups)
			index[entry.RunID] = i
			groups = append(groups, runResults{runID: entry.RunID})
		}
		groups[i].results = append(groups[i].results, result)
	}
	r.reportUnrouted(report, unrouted)
	return groups
}

func (r Reporter) reportUnrouted(report *PublishReport, caseIDs []int) {
	if len(caseIDs) == 0 {
		return
	}
	report.UnroutedCaseIDs = unionIDs(report.UnroutedCaseIDs, caseIDs)
	r.logger.Warnf(prefix+" No testrun found for the suite of following testcases, results dropped: %s", joinIDs(report.UnroutedCaseIDs))
}

func (r Reporter) addResults(s *Session, runID int, results []Result, report *PublishReport) {
	sorted := append([]Result{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CaseID < sorted[j].CaseID
	})

	if !s.Config.PublishBlocked {
		r.logger.Printf(prefix + ` Option "Don't publish blocked testcases" activated`)
		blocked := map[int]bool{}
		for _, test := range r.GetTests(runID) {
			if test.StatusID == testrail.StatusBlocked {
				blocked[test.CaseID] = true
			}
		}
		blockedIDs := sortedIDs(blocked)
		r.logger.Printf(prefix+" Blocked testcases excluded: %s", joinIDs(blockedIDs))
		report.BlockedCaseIDs = unionIDs(report.BlockedCaseIDs, blockedIDs)

		publishable := sorted[:0]
		for _, result := range sorted {
			if !blocked[result.CaseID] {
				publishable = append(publishable, result)
			}
		}
		sorted = publishable
	}

	if s.Config.IncludeAll {
		r.logger.Printf(prefix + ` Option "Include all testcases from test suite for test run" activated`)
	}

	entries := make([]testrail.ResultEntry, 0, len(sorted))
	for _, result := range sorted {
		entries = append(entries, s.Config.wireEntry(result))
	}

	if len(entries) == 0 {
		r.logger.Printf(prefix+" Nothing left to publish to run %d", runID)
		return
	}

	report.RunIDs = append(report.RunIDs, runID)
	for _, chunk := range r.chunkEntries(entries) {
		if err := r.client.AddResults(runID, testrail.AddResultsPayload{Results: chunk}); err != nil {
			r.logger.Warnf(prefix+` Info: Testcases not published for following reason: "%s"`, err)
			report.FailedChunks++
			continue
		}
		for _, entry := range chunk {
			report.PublishedCaseIDs = append(report.PublishedCaseIDs, entry.CaseID)
		}
	}
}

// chunkEntries splits the entries so that every serialized payload stays within
// maxPayloadSize. An entry larger than the limit on its own is sent alone.
func (r Reporter) chunkEntries(entries []testrail.ResultEntry) [][]testrail.ResultEntry {
	var chunks [][]testrail.ResultEntry
	var current []testrail.ResultEntry
	size := emptyPayloadSize

	for _, entry := range entries {
		encoded, err := json.Marshal(entry)
		if err != nil {
			r.logger.Warnf(prefix+" Failed to encode result of testcase C%d: %s", entry.CaseID, err)
			continue
		}

		entrySize := len(encoded)
		if len(current) > 0 {
			entrySize++ // separator
		}

		if len(current) > 0 && size+entrySize > maxPayloadSize {
			chunks = append(chunks, current)
			current = nil
			size = emptyPayloadSize
			entrySize = len(encoded)
		}

		if emptyPayloadSize+len(encoded) > maxPayloadSize {
			r.logger.Warnf(prefix+" Result of testcase C%d exceeds the payload limit on its own", entry.CaseID)
		}

		current = append(current, entry)
		size += entrySize
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
