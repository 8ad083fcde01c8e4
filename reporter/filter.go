package reporter

import (
	"sort"
	"strconv"
)

// FilterPublishResults drops the results whose case is missing remotely and returns
// the remaining results with the deduplicated ids to publish.
func FilterPublishResults(results []Result, diffCaseIDs map[int]bool) ([]Result, []string) {
	filtered := make([]Result, 0, len(results))
	toPublish := map[int]bool{}
	for _, result := range results {
		if diffCaseIDs[result.CaseID] {
			continue
		}
		filtered = append(filtered, result)
		toPublish[result.CaseID] = true
	}

	ids := make([]string, 0, len(toPublish))
	for _, id := range sortedIDs(toPublish) {
		ids = append(ids, strconv.Itoa(id))
	}
	return filtered, ids
}

// Reconcile refreshes the remote suite snapshot and recomputes the diff case ids:
// a case is missing when its suite is not part of the project or the suite does not
// contain it.
func (r Reporter) Reconcile(s *Session, results []Result) {
	s.Registry.ResetDiff()

	suites := r.GetSuites(s.Config.ProjectID)
	suiteIDs := make([]int, 0, len(suites))
	for _, suite := range suites {
		suiteIDs = append(suiteIDs, suite.ID)
	}
	s.Registry.SetAvailableSuites(suiteIDs)

	casesBySuite := map[int][]int{}
	var order []int
	for _, result := range results {
		if _, ok := casesBySuite[result.SuiteID]; !ok {
			order = append(order, result.SuiteID)
		}
		casesBySuite[result.SuiteID] = append(casesBySuite[result.SuiteID], result.CaseID)
	}

	for _, suiteID := range order {
		if s.Registry.HasSuiteSnapshot() && !s.Registry.IsSuiteAvailable(suiteID) {
			r.logger.Warnf(prefix+" Suite with ID=%d not found in project ID=%d", suiteID, s.Config.ProjectID)
			s.Registry.AddDiff(casesBySuite[suiteID]...)
			continue
		}

		cases := r.GetCases(s.Config.ProjectID, suiteID)
		known := make([]int, 0, len(cases))
		for _, c := range cases {
			known = append(known, c.ID)
		}
		s.Registry.SetSuiteCases(suiteID, known)

		for _, caseID := range casesBySuite[suiteID] {
			if !s.Registry.IsKnownCase(suiteID, caseID) {
				s.Registry.AddDiff(caseID)
			}
		}
	}

	if diff := s.Registry.DiffCaseIDs(); len(diff) > 0 {
		r.logger.Debugf(prefix+" Testcases missing in TestRail: %s", joinIDs(sortedIDs(diff)))
	}
}

// RestrictToRun keeps the case ids already present in the run and marks the rest as missing.
func (r Reporter) RestrictToRun(s *Session, runID int, caseIDs []int) []int {
	inRun := map[int]bool{}
	for _, test := range r.GetTests(runID) {
		inRun[test.CaseID] = true
	}

	var kept, missing []int
	for _, id := range caseIDs {
		if inRun[id] {
			kept = append(kept, id)
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		sort.Ints(missing)
		r.logger.Warnf(prefix+" Testcases not present in testrun ID=%d will be skipped: %s", runID, joinIDs(missing))
		s.Registry.AddDiff(missing...)
	}
	return nonNil(kept)
}
