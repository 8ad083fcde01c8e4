package reporter

import (
	"fmt"
	"strings"
)

// Config holds the settings of one reporting session. It is not modified after NewSession.
type Config struct {
	URL string

	AssignUserID int
	ProjectID    int
	SuiteID      int
	IncludeAll   bool
	MilestoneID  int

	RunID          int
	RunName        string
	RunDescription string

	PlanID          int
	PlanName        string
	PlanDescription string

	Version         string
	CustomComment   string
	CloseOnComplete bool
	PublishBlocked  bool
	SkipMissing     bool
}

// Session is the context every reporter operation works on.
type Session struct {
	Config   Config
	Registry *Registry

	runID       int
	planID      int
	planEntryID string
}

// NewSession ...
func NewSession(config Config) *Session {
	return &Session{
		Config:   config,
		Registry: NewRegistry(),
		runID:    config.RunID,
		planID:   config.PlanID,
	}
}

// RunID is the single run results are published to, 0 when publishing per plan entry.
func (s *Session) RunID() int {
	return s.runID
}

// SetRunID ...
func (s *Session) SetRunID(id int) {
	s.runID = id
}

// PlanID ...
func (s *Session) PlanID() int {
	return s.planID
}

// SetPlanID ...
func (s *Session) SetPlanID(id int) {
	s.planID = id
}

// PlanEntryID ...
func (s *Session) PlanEntryID() string {
	return s.planEntryID
}

// SetPlanEntryID ...
func (s *Session) SetPlanEntryID(id string) {
	s.planEntryID = id
}

// RunURL returns the web URL of the current run or an empty string.
func (s *Session) RunURL() string {
	return s.RunURLFor(s.runID)
}

// RunURLFor ...
func (s *Session) RunURLFor(runID int) string {
	if runID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/index.php?/runs/view/%d", strings.TrimRight(s.Config.URL, "/"), runID)
}

// PlanURL returns the web URL of the current plan or an empty string.
func (s *Session) PlanURL() string {
	if s.planID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/index.php?/plans/view/%d", strings.TrimRight(s.Config.URL, "/"), s.planID)
}
