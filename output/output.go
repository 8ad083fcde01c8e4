package output

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/goccy/go-json"
)

// Step outputs ...
const (
	RunIDKey       = "TESTRAIL_RUN_ID"
	RunURLKey      = "TESTRAIL_RUN_URL"
	PlanIDKey      = "TESTRAIL_PLAN_ID"
	PlanURLKey     = "TESTRAIL_PLAN_URL"
	SummaryPathKey = "TESTRAIL_SUMMARY_PATH"

	summaryFileName = "testrail-summary.json"
)

// OutputExporter exports a step output. Implemented by go-steputils' export.Exporter.
type OutputExporter interface {
	ExportOutput(key, value string) error
}

// Summary is the publish outcome written to the deploy dir.
type Summary struct {
	RunID   int    `json:"run_id,omitempty"`
	RunURL  string `json:"run_url,omitempty"`
	PlanID  int    `json:"plan_id,omitempty"`
	PlanURL string `json:"plan_url,omitempty"`

	RunIDs           []int `json:"run_ids"`
	PublishedCaseIDs []int `json:"published_case_ids"`
	IgnoredCaseIDs   []int `json:"ignored_case_ids"`
	BlockedCaseIDs   []int `json:"blocked_case_ids"`
	UnroutedCaseIDs  []int `json:"unrouted_case_ids"`
	FailedChunks     int   `json:"failed_chunks"`
}

// Exporter ...
type Exporter interface {
	ExportRun(runID int, runURL string)
	ExportPlan(planID int, planURL string)
	ExportSummary(deployDir string, summary Summary) (string, error)
}

type exporter struct {
	outputExporter OutputExporter
	fileManager    fileutil.FileManager
	logger         log.Logger
}

// NewExporter ...
func NewExporter(outputExporter OutputExporter, fileManager fileutil.FileManager, logger log.Logger) Exporter {
	return &exporter{
		outputExporter: outputExporter,
		fileManager:    fileManager,
		logger:         logger,
	}
}

func (e exporter) ExportRun(runID int, runURL string) {
	if runID == 0 {
		return
	}
	e.export(RunIDKey, strconv.Itoa(runID))
	e.export(RunURLKey, runURL)
}

func (e exporter) ExportPlan(planID int, planURL string) {
	if planID == 0 {
		return
	}
	e.export(PlanIDKey, strconv.Itoa(planID))
	e.export(PlanURLKey, planURL)
}

func (e exporter) ExportSummary(deployDir string, summary Summary) (string, error) {
	if deployDir == "" {
		e.logger.Debugf("No deploy dir set, skipping %s", summaryFileName)
		return "", nil
	}

	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode publish summary: %w", err)
	}

	pth := filepath.Join(deployDir, summaryFileName)
	if err := e.fileManager.WriteBytes(pth, content); err != nil {
		return "", fmt.Errorf("failed to write publish summary to (%s): %w", pth, err)
	}

	e.export(SummaryPathKey, pth)
	return pth, nil
}

func (e exporter) export(key, value string) {
	if err := e.outputExporter.ExportOutput(key, value); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", key, err)
	}
}
