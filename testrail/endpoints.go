package testrail

import "fmt"

const (
	addResultsURL      = "add_results_for_cases/%d"
	addRunURL          = "add_run/%d"
	addPlanEntryURL    = "add_plan_entry/%d"
	addPlanURL         = "add_plan/%d"
	updateRunURL       = "update_run/%d"
	updatePlanEntryURL = "update_plan_entry/%d/%s"
	closeRunURL        = "close_run/%d"
	closePlanURL       = "close_plan/%d"
	getRunURL          = "get_run/%d"
	getPlanURL         = "get_plan/%d"
	getTestsURL        = "get_tests/%d"
	getCasesURL        = "get_cases/%d&suite_id=%d"
	getSuitesURL       = "get_suites/%d"
)

func (c *client) AddResults(runID int, payload AddResultsPayload) error {
	return c.sendPost(fmt.Sprintf(addResultsURL, runID), payload, nil)
}

func (c *client) AddRun(projectID int, payload AddRunPayload) (Run, error) {
	var run Run
	err := c.sendPost(fmt.Sprintf(addRunURL, projectID), payload, &run)
	return run, err
}

func (c *client) AddPlanEntry(planID int, payload AddPlanEntryPayload) (PlanEntry, error) {
	var entry PlanEntry
	err := c.sendPost(fmt.Sprintf(addPlanEntryURL, planID), payload, &entry)
	return entry, err
}

func (c *client) AddPlan(projectID int, payload AddPlanPayload) (Plan, error) {
	var plan Plan
	err := c.sendPost(fmt.Sprintf(addPlanURL, projectID), payload, &plan)
	return plan, err
}

func (c *client) UpdateRun(runID int, payload UpdateCasesPayload) error {
	return c.sendPost(fmt.Sprintf(updateRunURL, runID), payload, nil)
}

func (c *client) UpdatePlanEntry(planID int, entryID string, payload UpdateCasesPayload) error {
	return c.sendPost(fmt.Sprintf(updatePlanEntryURL, planID, entryID), payload, nil)
}

func (c *client) CloseRun(runID int) error {
	return c.sendPost(fmt.Sprintf(closeRunURL, runID), nil, nil)
}

func (c *client) ClosePlan(planID int) error {
	return c.sendPost(fmt.Sprintf(closePlanURL, planID), nil, nil)
}

func (c *client) GetRun(runID int) (Run, error) {
	var run Run
	err := c.sendGet(fmt.Sprintf(getRunURL, runID), &run)
	return run, err
}

func (c *client) GetPlan(planID int) (Plan, error) {
	var plan Plan
	err := c.sendGet(fmt.Sprintf(getPlanURL, planID), &plan)
	return plan, err
}

func (c *client) GetTests(runID int) ([]Test, error) {
	return getList[Test](c, fmt.Sprintf(getTestsURL, runID), "tests")
}

func (c *client) GetCases(projectID, suiteID int) ([]Case, error) {
	return getList[Case](c, fmt.Sprintf(getCasesURL, projectID, suiteID), "cases")
}

func (c *client) GetSuites(projectID int) ([]Suite, error) {
	return getList[Suite](c, fmt.Sprintf(getSuitesURL, projectID), "suites")
}
