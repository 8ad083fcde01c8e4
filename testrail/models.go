package testrail

// Test statuses ...
const (
	StatusPassed   = 1
	StatusBlocked  = 2
	StatusUntested = 3
	StatusRetest   = 4
	StatusFailed   = 5
)

// Run ...
type Run struct {
	ID          int    `json:"id"`
	SuiteID     int    `json:"suite_id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
	PlanID      int    `json:"plan_id,omitempty"`
	URL         string `json:"url,omitempty"`
}

// PlanEntry is a run group inside a plan. Entry ids are strings (UUIDs) in TestRail.
type PlanEntry struct {
	ID      string `json:"id"`
	SuiteID int    `json:"suite_id"`
	Name    string `json:"name"`
	Runs    []Run  `json:"runs"`
}

// Plan ...
type Plan struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	IsCompleted bool        `json:"is_completed"`
	Entries     []PlanEntry `json:"entries"`
	URL         string      `json:"url,omitempty"`
}

// Test is a case instance inside a run.
type Test struct {
	ID       int    `json:"id"`
	CaseID   int    `json:"case_id"`
	StatusID int    `json:"status_id"`
	RunID    int    `json:"run_id"`
	Title    string `json:"title"`
}

// Case ...
type Case struct {
	ID      int    `json:"id"`
	SuiteID int    `json:"suite_id"`
	Title   string `json:"title"`
}

// Suite ...
type Suite struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProjectID   int    `json:"project_id"`
	IsCompleted bool   `json:"is_completed"`
}

// ResultEntry is one element of the add_results_for_cases payload.
type ResultEntry struct {
	StatusID int    `json:"status_id"`
	CaseID   int    `json:"case_id"`
	Defects  string `json:"defects,omitempty"`
	Version  string `json:"version,omitempty"`
	Comment  string `json:"comment"`
	Elapsed  string `json:"elapsed,omitempty"`
}

// AddResultsPayload ...
type AddResultsPayload struct {
	Results []ResultEntry `json:"results"`
}

// AddRunPayload ...
type AddRunPayload struct {
	SuiteID      int    `json:"suite_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AssignedToID int    `json:"assignedto_id,omitempty"`
	IncludeAll   bool   `json:"include_all"`
	CaseIDs      []int  `json:"case_ids"`
	MilestoneID  int    `json:"milestone_id,omitempty"`
}

// AddPlanEntryPayload ...
type AddPlanEntryPayload struct {
	SuiteID      int    `json:"suite_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AssignedToID int    `json:"assignedto_id,omitempty"`
	IncludeAll   bool   `json:"include_all"`
	CaseIDs      []int  `json:"case_ids"`
}

// AddPlanPayload ...
type AddPlanPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MilestoneID int    `json:"milestone_id,omitempty"`
}

// UpdateCasesPayload is shared by update_run and update_plan_entry.
type UpdateCasesPayload struct {
	CaseIDs    []int `json:"case_ids"`
	IncludeAll bool  `json:"include_all"`
}
