package reporter

import "github.com/bitrise-steplib/steps-testrail-report/testrail"

// NewRun ...
type NewRun struct {
	ProjectID    int
	SuiteID      int
	Name         string
	Description  string
	AssignUserID int
	IncludeAll   bool
	MilestoneID  int
	CaseIDs      []int
}

// NewPlanEntry ...
type NewPlanEntry struct {
	PlanID       int
	SuiteID      int
	Name         string
	Description  string
	AssignUserID int
	IncludeAll   bool
	CaseIDs      []int
}

// NewPlan ...
type NewPlan struct {
	ProjectID   int
	Name        string
	Description string
	MilestoneID int
}

// CreateTestRun creates a run with the collected case ids. Returns 0 on failure.
func (r Reporter) CreateTestRun(s *Session, run NewRun) int {
	created, err := r.client.AddRun(run.ProjectID, testrail.AddRunPayload{
		SuiteID:      run.SuiteID,
		Name:         run.Name,
		Description:  run.Description,
		AssignedToID: run.AssignUserID,
		IncludeAll:   run.IncludeAll,
		CaseIDs:      nonNil(run.CaseIDs),
		MilestoneID:  run.MilestoneID,
	})
	if err != nil {
		r.logger.Warnf(prefix+` Failed to create testrun: "%s"`, err)
		return 0
	}

	s.Registry.Record(run.SuiteID, PlanEntry{RunID: created.ID, CaseIDs: run.CaseIDs})
	s.SetRunID(created.ID)
	r.logger.Donef(prefix+` New testrun created with name "%s" and ID=%d`, run.Name, created.ID)
	return created.ID
}

// CreatePlanEntry adds a run for one suite to a plan. Returns the run id, 0 on failure.
func (r Reporter) CreatePlanEntry(s *Session, entry NewPlanEntry) int {
	created, err := r.client.AddPlanEntry(entry.PlanID, testrail.AddPlanEntryPayload{
		SuiteID:      entry.SuiteID,
		Name:         entry.Name,
		Description:  entry.Description,
		AssignedToID: entry.AssignUserID,
		IncludeAll:   entry.IncludeAll,
		CaseIDs:      nonNil(entry.CaseIDs),
	})
	if err != nil {
		r.logger.Warnf(prefix+` Failed to create testplan entry: "%s"`, err)
		return 0
	}
	if len(created.Runs) == 0 {
		r.logger.Warnf(prefix+` Failed to create testplan entry: "no run returned for entry %s"`, created.ID)
		return 0
	}

	runID := created.Runs[0].ID
	s.Registry.Record(entry.SuiteID, PlanEntry{EntryID: created.ID, RunID: runID, CaseIDs: entry.CaseIDs})
	r.logger.Donef(prefix+` New TestPlan entry created with name "%s" and ID=%d, entry_id=%s`, entry.Name, runID, created.ID)
	return runID
}

// CreatePlan creates a plan and makes it the session's plan. Returns 0 on failure.
func (r Reporter) CreatePlan(s *Session, plan NewPlan) int {
	created, err := r.client.AddPlan(plan.ProjectID, testrail.AddPlanPayload{
		Name:        plan.Name,
		Description: plan.Description,
		MilestoneID: plan.MilestoneID,
	})
	if err != nil {
		r.logger.Warnf(prefix+` Failed to create test plan: "%s"`, err)
		return 0
	}

	s.SetPlanID(created.ID)
	r.logger.Donef(prefix+` New test plan created with name "%s" and ID=%d`, plan.Name, created.ID)
	return created.ID
}

// UpdateTestRun adds the case ids to an existing run, keeping the ones already in it
// unless savePrevious is false.
//
// The registry is updated even if the request fails, so results can still be
// reconciled against the run; local and remote state may differ after a failure.
func (r Reporter) UpdateTestRun(s *Session, runID int, caseIDs []int, suiteID int, savePrevious bool) {
	merged := r.mergeWithRunCases(runID, caseIDs, savePrevious)

	err := r.client.UpdateRun(runID, testrail.UpdateCasesPayload{
		CaseIDs:    merged,
		IncludeAll: s.Config.IncludeAll,
	})
	s.Registry.Record(suiteID, PlanEntry{RunID: runID, CaseIDs: merged})

	if err != nil {
		r.logger.Warnf(prefix+` Failed to update testrun: "%s"`, err)
		return
	}
	r.logger.Donef(prefix+` Testrun updated with name "%s" and ID=%d`, s.Config.RunName, runID)
}

// UpdateTestPlanEntry is UpdateTestRun for a run inside a plan, with the same
// optimistic registry update.
func (r Reporter) UpdateTestPlanEntry(s *Session, planID int, entryID string, runID int, caseIDs []int, suiteID int, savePrevious bool) {
	merged := r.mergeWithRunCases(runID, caseIDs, savePrevious)

	err := r.client.UpdatePlanEntry(planID, entryID, testrail.UpdateCasesPayload{
		CaseIDs:    merged,
		IncludeAll: s.Config.IncludeAll,
	})
	s.Registry.Record(suiteID, PlanEntry{EntryID: entryID, RunID: runID, CaseIDs: merged})

	if err != nil {
		r.logger.Warnf(prefix+` Failed to update testrun: "%s"`, err)
		return
	}
	r.logger.Donef(prefix+` Testrun updated with name "%s" and ID=%d, entry_id=%s`, s.Config.RunName, runID, entryID)
}

func (r Reporter) mergeWithRunCases(runID int, caseIDs []int, savePrevious bool) []int {
	var current []int
	if savePrevious {
		for _, test := range r.GetTests(runID) {
			current = append(current, test.CaseID)
		}
	}
	return unionIDs(caseIDs, current)
}

// CloseTestRun ...
func (r Reporter) CloseTestRun(s *Session, runID int) {
	if err := r.client.CloseRun(runID); err != nil {
		r.logger.Warnf(prefix+` Failed to close test run: "%s"`, err)
		return
	}
	r.logger.Donef(prefix+" Test run with ID=%d was closed", runID)
}

// CloseTestPlan ...
func (r Reporter) CloseTestPlan(s *Session, planID int) {
	if err := r.client.ClosePlan(planID); err != nil {
		r.logger.Warnf(prefix+` Failed to close test plan: "%s"`, err)
		return
	}
	r.logger.Donef(prefix+" Test plan with ID=%d was closed", planID)
}
