package collector

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

// Supported report formats ...
const (
	FormatJUnit  = "junit"
	FormatGoTest = "gotest"
)

// Collector turns test reports into TestRail results.
type Collector interface {
	Collect(paths []string, defaultSuiteID int) ([]reporter.Result, error)
}

type collector struct {
	pathChecker pathutil.PathChecker
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewCollector ...
func NewCollector(pathChecker pathutil.PathChecker, fileManager fileutil.FileManager, logger log.Logger) Collector {
	return &collector{
		pathChecker: pathChecker,
		fileManager: fileManager,
		logger:      logger,
	}
}

// executedTest is a test case as read from a report, before TestRail markers are applied.
type executedTest struct {
	name       string
	status     string
	duration   time.Duration
	output     string
	properties map[string]string
}

// Collect reads every report under the given paths, in order. A test without a case id
// is skipped, a test with several case ids yields one result per id.
func (c collector) Collect(paths []string, defaultSuiteID int) ([]reporter.Result, error) {
	reports, err := c.resolve(paths)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("no test reports found in: %s", strings.Join(paths, ", "))
	}

	var results []reporter.Result
	for _, report := range reports {
		tests, err := c.parse(report)
		if err != nil {
			return nil, fmt.Errorf("failed to parse test report (%s): %w", report, err)
		}

		var marked int
		for _, test := range tests {
			testResults := toResults(test, defaultSuiteID)
			if len(testResults) == 0 {
				c.logger.Debugf("No TestRail case id for test: %s", test.name)
				continue
			}
			marked++
			results = append(results, testResults...)
		}
		c.logger.Printf("%s: %d tests, %d with TestRail case ids", report, len(tests), marked)
	}

	return results, nil
}

func toResults(test executedTest, defaultSuiteID int) []reporter.Result {
	m := parseMarkers(test.name, test.properties, defaultSuiteID)

	var results []reporter.Result
	for _, caseID := range m.caseIDs {
		result := reporter.NewResult(caseID, statusID(test.status), m.suiteID, test.output, test.duration)
		result.Defects = append(result.Defects, m.defects...)
		result.TestComments = append(result.TestComments, m.comments...)
		result.Parametrize = m.parametrize
		results = append(results, result)
	}
	return results
}

func statusID(status string) int {
	switch status {
	case statusPassed:
		return testrail.StatusPassed
	case statusSkipped:
		return testrail.StatusBlocked
	default:
		return testrail.StatusFailed
	}
}

const (
	statusPassed  = "passed"
	statusFailed  = "failed"
	statusSkipped = "skipped"
)

func (c collector) parse(report string) ([]executedTest, error) {
	switch reportFormat(report) {
	case FormatJUnit:
		return parseJUnit(report)
	case FormatGoTest:
		return c.parseGoTest(report)
	}
	return nil, fmt.Errorf("unsupported report format")
}

func reportFormat(pth string) string {
	switch strings.ToLower(filepath.Ext(pth)) {
	case ".xml":
		return FormatJUnit
	case ".json", ".jsonl":
		return FormatGoTest
	}
	return ""
}

// resolve expands directories and glob patterns into report files. Files in a
// directory are returned in lexical order.
func (c collector) resolve(paths []string) ([]string, error) {
	var reports []string
	seen := map[string]bool{}
	add := func(pth string) {
		if !seen[pth] {
			seen[pth] = true
			reports = append(reports, pth)
		}
	}

	for _, pth := range paths {
		if strings.ContainsAny(pth, "*?[") {
			matches, err := filepath.Glob(pth)
			if err != nil {
				return nil, fmt.Errorf("invalid report path pattern (%s): %w", pth, err)
			}
			sort.Strings(matches)
			for _, match := range matches {
				if reportFormat(match) != "" {
					add(match)
				}
			}
			continue
		}

		exists, err := c.pathChecker.IsPathExists(pth)
		if err != nil {
			return nil, fmt.Errorf("failed to check report path (%s): %w", pth, err)
		}
		if !exists {
			return nil, fmt.Errorf("report path does not exist: %s", pth)
		}

		isDir, err := c.pathChecker.IsDirExists(pth)
		if err != nil {
			return nil, fmt.Errorf("failed to check report path (%s): %w", pth, err)
		}
		if !isDir {
			add(pth)
			continue
		}

		files, err := reportsInDir(pth)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			add(file)
		}
	}

	return reports, nil
}

func reportsInDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && reportFormat(pth) != "" {
			files = append(files, pth)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports in (%s): %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
