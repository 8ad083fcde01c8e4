package reporter

import "github.com/bitrise-steplib/steps-testrail-report/testrail"

// GetCases returns the cases of a suite, empty on error.
func (r Reporter) GetCases(projectID, suiteID int) []testrail.Case {
	cases, err := r.client.GetCases(projectID, suiteID)
	if err != nil {
		r.logger.Warnf(prefix+` Failed to get tests: "%s" for suite: %d`, err, suiteID)
		return []testrail.Case{}
	}
	return cases
}

// GetSuites returns the suites of a project, empty on error.
func (r Reporter) GetSuites(projectID int) []testrail.Suite {
	suites, err := r.client.GetSuites(projectID)
	if err != nil {
		r.logger.Warnf(prefix+` Failed to get suites: "%s" for project id: %d`, err, projectID)
		return []testrail.Suite{}
	}
	return suites
}

// GetTests returns the tests of a run, empty on error.
func (r Reporter) GetTests(runID int) []testrail.Test {
	tests, err := r.client.GetTests(runID)
	if err != nil {
		r.logger.Warnf(prefix+` Failed to get tests: "%s"`, err)
		return []testrail.Test{}
	}
	return tests
}

// GetPlan returns nil on error.
func (r Reporter) GetPlan(planID int) *testrail.Plan {
	plan, err := r.client.GetPlan(planID)
	if err != nil {
		r.logger.Warnf(prefix+` Failed to retrieve testplan: "%s"`, err)
		return nil
	}
	return &plan
}

// GetRun returns nil on error.
func (r Reporter) GetRun(runID int) *testrail.Run {
	run, err := r.client.GetRun(runID)
	if err != nil {
		r.logger.Warnf(prefix+` Failed to retrieve testrun: "%s"`, err)
		return nil
	}
	return &run
}

// GetTestPlanEntryID finds the plan entry holding the run and stores it on the session.
func (r Reporter) GetTestPlanEntryID(s *Session, planID, runID int) string {
	plan := r.GetPlan(planID)
	if plan == nil {
		return ""
	}
	for _, entry := range plan.Entries {
		for _, run := range entry.Runs {
			if run.ID == runID {
				s.SetPlanEntryID(entry.ID)
				return entry.ID
			}
		}
	}
	return ""
}

// GetAvailableTestRuns returns the ids of the plan's runs that are not completed.
func (r Reporter) GetAvailableTestRuns(planID int) []int {
	runIDs := []int{}
	plan := r.GetPlan(planID)
	if plan == nil {
		return runIDs
	}
	for _, entry := range plan.Entries {
		for _, run := range entry.Runs {
			if !run.IsCompleted {
				runIDs = append(runIDs, run.ID)
			}
		}
	}
	return runIDs
}

// IsTestRunAvailable reports whether the session's run exists and is open.
func (r Reporter) IsTestRunAvailable(s *Session) bool {
	run := r.GetRun(s.RunID())
	return run != nil && !run.IsCompleted
}

// IsTestPlanAvailable reports whether the session's plan exists and is open.
func (r Reporter) IsTestPlanAvailable(s *Session) bool {
	plan := r.GetPlan(s.PlanID())
	return plan != nil && !plan.IsCompleted
}

// FindSuiteRun returns the first open run of the suite inside the plan.
func FindSuiteRun(plan *testrail.Plan, suiteID int) (string, int, bool) {
	if plan == nil {
		return "", 0, false
	}
	for _, entry := range plan.Entries {
		if entry.SuiteID != suiteID {
			continue
		}
		for _, run := range entry.Runs {
			if !run.IsCompleted {
				return entry.ID, run.ID, true
			}
		}
	}
	return "", 0, false
}
