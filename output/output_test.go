package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/output/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testingMocks struct {
	outputExporter *mocks.OutputExporter
}

func Test_GivenRun_WhenExporting_ThenSetsRunOutputs(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)
	mocks.outputExporter.On("ExportOutput", mock.Anything, mock.Anything).Return(nil)

	// When
	exporter.ExportRun(42, "https://example.testrail.io/index.php?/runs/view/42")

	// Then
	mocks.outputExporter.AssertCalled(t, "ExportOutput", RunIDKey, "42")
	mocks.outputExporter.AssertCalled(t, "ExportOutput", RunURLKey, "https://example.testrail.io/index.php?/runs/view/42")
}

func Test_GivenNoPlan_WhenExporting_ThenNothingIsSet(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	exporter.ExportPlan(0, "")

	// Then
	mocks.outputExporter.AssertNotCalled(t, "ExportOutput", mock.Anything, mock.Anything)
}

func Test_GivenFailingOutputExport_WhenExportingPlan_ThenDoesNotPanic(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)
	mocks.outputExporter.On("ExportOutput", mock.Anything, mock.Anything).Return(errors.New("envman not found"))

	// When
	exporter.ExportPlan(3, "https://example.testrail.io/index.php?/plans/view/3")

	// Then
	mocks.outputExporter.AssertNumberOfCalls(t, "ExportOutput", 2)
}

func Test_GivenDeployDir_WhenExportingSummary_ThenWritesItAndSetsOutput(t *testing.T) {
	// Given
	tempDir := t.TempDir()
	summaryPath := filepath.Join(tempDir, "testrail-summary.json")

	exporter, mocks := createSutAndMocks(t)
	mocks.outputExporter.On("ExportOutput", SummaryPathKey, summaryPath).Return(nil)

	summary := Summary{
		RunID:            42,
		RunIDs:           []int{42},
		PublishedCaseIDs: []int{10},
		IgnoredCaseIDs:   []int{99},
		BlockedCaseIDs:   []int{},
		UnroutedCaseIDs:  []int{},
	}

	// When
	pth, err := exporter.ExportSummary(tempDir, summary)

	// Then
	require.NoError(t, err)
	assert.Equal(t, summaryPath, pth)

	content, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	var written Summary
	require.NoError(t, json.Unmarshal(content, &written))
	assert.Equal(t, summary, written)
}

func Test_GivenNoDeployDir_WhenExportingSummary_ThenSkips(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	pth, err := exporter.ExportSummary("", Summary{})

	// Then
	assert.NoError(t, err)
	assert.Equal(t, "", pth)
	mocks.outputExporter.AssertNotCalled(t, "ExportOutput", mock.Anything, mock.Anything)
}

// Helpers

func createSutAndMocks(t *testing.T) (Exporter, testingMocks) {
	outputExporter := mocks.NewOutputExporter(t)
	exporter := NewExporter(outputExporter, fileutil.NewFileManager(), log.NewLogger())

	return exporter, testingMocks{
		outputExporter: outputExporter,
	}
}
