package reporter

import (
	"errors"
	"testing"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_GivenRunCreation_WhenSucceeds_ThenRegistryAndSessionAreUpdated(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddRun", 1, testrail.AddRunPayload{
		SuiteID:      5,
		Name:         "Nightly",
		Description:  "desc",
		AssignedToID: 2,
		IncludeAll:   false,
		CaseIDs:      []int{10, 20},
		MilestoneID:  9,
	}).Return(testrail.Run{ID: 42}, nil)

	// When
	runID := reporter.CreateTestRun(session, NewRun{
		ProjectID:    1,
		SuiteID:      5,
		Name:         "Nightly",
		Description:  "desc",
		AssignUserID: 2,
		MilestoneID:  9,
		CaseIDs:      []int{10, 20},
	})

	// Then
	assert.Equal(t, 42, runID)
	assert.Equal(t, 42, session.RunID())
	entry, ok := session.Registry.Entry(5)
	require.True(t, ok)
	assert.Equal(t, PlanEntry{RunID: 42, CaseIDs: []int{10, 20}}, entry)
}

func Test_GivenRunCreation_WhenFails_ThenReturnsZeroAndRegistryIsUntouched(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddRun", 1, mock.Anything).Return(testrail.Run{}, errors.New("403 forbidden"))

	// When
	runID := reporter.CreateTestRun(session, NewRun{ProjectID: 1, SuiteID: 5})

	// Then
	assert.Equal(t, 0, runID)
	assert.Equal(t, 0, session.RunID())
	assert.Empty(t, session.Registry.Suites())
}

func Test_GivenNilCaseIDs_WhenCreatingRun_ThenSendsEmptyList(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddRun", 1, mock.MatchedBy(func(payload testrail.AddRunPayload) bool {
		return payload.CaseIDs != nil && payload.IncludeAll
	})).Return(testrail.Run{ID: 1}, nil)

	// When
	reporter.CreateTestRun(session, NewRun{ProjectID: 1, SuiteID: 5, IncludeAll: true})

	// Then
	client.AssertExpectations(t)
}

func Test_GivenPlanEntryCreation_WhenSucceeds_ThenEntryAndRunAreRecorded(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddPlanEntry", 3, mock.Anything).Return(testrail.PlanEntry{
		ID:   "a1b2",
		Runs: []testrail.Run{{ID: 77}},
	}, nil)

	// When
	runID := reporter.CreatePlanEntry(session, NewPlanEntry{PlanID: 3, SuiteID: 6, Name: "Suite 6", CaseIDs: []int{1}})

	// Then
	assert.Equal(t, 77, runID)
	entry, ok := session.Registry.Entry(6)
	require.True(t, ok)
	assert.Equal(t, PlanEntry{EntryID: "a1b2", RunID: 77, CaseIDs: []int{1}}, entry)
	assert.Equal(t, 0, session.RunID())
}

func Test_GivenPlanEntryCreation_WhenFails_ThenReturnsZero(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddPlanEntry", 3, mock.Anything).Return(testrail.PlanEntry{}, errors.New("boom"))

	// When
	runID := reporter.CreatePlanEntry(session, NewPlanEntry{PlanID: 3, SuiteID: 6})

	// Then
	assert.Equal(t, 0, runID)
	_, ok := session.Registry.Entry(6)
	assert.False(t, ok)
}

func Test_GivenPlanCreation_WhenSucceeds_ThenSessionPlanIsSet(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("AddPlan", 1, testrail.AddPlanPayload{Name: "Release", Description: "d", MilestoneID: 4}).
		Return(testrail.Plan{ID: 3}, nil)

	// When
	planID := reporter.CreatePlan(session, NewPlan{ProjectID: 1, Name: "Release", Description: "d", MilestoneID: 4})

	// Then
	assert.Equal(t, 3, planID)
	assert.Equal(t, 3, session.PlanID())
}

func Test_GivenPlanCreation_WhenFails_ThenReturnsZero(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{PlanID: 0})

	client.On("AddPlan", 1, mock.Anything).Return(testrail.Plan{}, errors.New("boom"))

	// When
	planID := reporter.CreatePlan(session, NewPlan{ProjectID: 1})

	// Then
	assert.Equal(t, 0, planID)
	assert.Equal(t, 0, session.PlanID())
}

func Test_GivenExistingTests_WhenUpdatingRun_ThenMergesWithPreviousCases(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{IncludeAll: false})

	client.On("GetTests", 7).Return([]testrail.Test{{CaseID: 1}, {CaseID: 2}}, nil)
	client.On("UpdateRun", 7, testrail.UpdateCasesPayload{CaseIDs: []int{1, 2, 3}}).Return(nil)

	// When
	reporter.UpdateTestRun(session, 7, []int{2, 3}, 5, true)

	// Then
	entry, ok := session.Registry.Entry(5)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, entry.CaseIDs)
}

func Test_GivenTwoOverlappingUpdates_WhenUpdatingRun_ThenRegistryHoldsTheUnion(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("UpdateRun", 7, mock.Anything).Return(nil)

	// When
	reporter.UpdateTestRun(session, 7, []int{1, 2, 3}, 5, false)
	reporter.UpdateTestRun(session, 7, []int{3, 4}, 5, false)

	// Then
	entry, ok := session.Registry.Entry(5)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, entry.CaseIDs)
	client.AssertNotCalled(t, "GetTests", mock.Anything)
}

func Test_GivenFailingUpdate_WhenUpdatingRun_ThenRegistryIsStillUpdated(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("GetTests", 7).Return([]testrail.Test{}, errors.New("timeout"))
	client.On("UpdateRun", 7, mock.Anything).Return(errors.New("timeout"))

	// When
	reporter.UpdateTestRun(session, 7, []int{5}, 5, true)

	// Then
	entry, ok := session.Registry.Entry(5)
	require.True(t, ok)
	assert.Equal(t, PlanEntry{RunID: 7, CaseIDs: []int{5}}, entry)
}

func Test_GivenPlanEntry_WhenUpdating_ThenEntryIsRecordedWithMergedCases(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{IncludeAll: true})

	client.On("GetTests", 77).Return([]testrail.Test{{CaseID: 9}}, nil)
	client.On("UpdatePlanEntry", 3, "a1b2", testrail.UpdateCasesPayload{CaseIDs: []int{1, 9}, IncludeAll: true}).
		Return(errors.New("boom"))

	// When
	reporter.UpdateTestPlanEntry(session, 3, "a1b2", 77, []int{1}, 6, true)

	// Then
	entry, ok := session.Registry.Entry(6)
	require.True(t, ok)
	assert.Equal(t, PlanEntry{EntryID: "a1b2", RunID: 77, CaseIDs: []int{1, 9}}, entry)
}

func Test_GivenRunAndPlan_WhenClosing_ThenSendsCloseRequests(t *testing.T) {
	// Given
	reporter, client := createReporterAndClient(t)
	session := NewSession(Config{})

	client.On("CloseRun", 7).Return(nil)
	client.On("ClosePlan", 3).Return(errors.New("already closed"))

	// When
	reporter.CloseTestRun(session, 7)
	reporter.CloseTestPlan(session, 3)

	// Then
	client.AssertCalled(t, "CloseRun", 7)
	client.AssertCalled(t, "ClosePlan", 3)
	assert.Empty(t, session.Registry.Suites())
}
