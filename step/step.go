package step

import (
	"errors"
	"fmt"
	"time"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/collector"
	"github.com/bitrise-steplib/steps-testrail-report/config"
	"github.com/bitrise-steplib/steps-testrail-report/output"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	shellquote "github.com/kballard/go-shellquote"
)

const defaultRunNameLayout = "02-01-2006 15:04:05"

// Input ...
type Input struct {
	// TestRail connection
	ConfigPath string          `env:"config_path"`
	URL        string          `env:"testrail_url"`
	Email      string          `env:"testrail_email"`
	Password   stepconf.Secret `env:"testrail_password"`
	Timeout    string          `env:"timeout"`
	SSLVerify  string          `env:"ssl_cert_check"`

	// Run and plan
	ProjectID       string `env:"project_id"`
	SuiteID         string `env:"suite_id"`
	IncludeAll      string `env:"include_all"`
	AssignUserID    string `env:"assignedto_id"`
	MilestoneID     string `env:"milestone_id"`
	RunID           string `env:"run_id"`
	RunName         string `env:"run_name"`
	RunDescription  string `env:"run_description"`
	PlanID          string `env:"plan_id"`
	PlanName        string `env:"plan_name"`
	PlanDescription string `env:"plan_description"`

	// Results
	ReportPath      string `env:"report_path"`
	Version         string `env:"version"`
	CustomComment   string `env:"custom_comment"`
	CloseOnComplete bool   `env:"close_on_complete,opt[yes,no]"`
	PublishBlocked  bool   `env:"publish_blocked,opt[yes,no]"`
	SkipMissing     bool   `env:"skip_missing,opt[yes,no]"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	Reporter    reporter.Config
	Client      testrail.Settings
	ReportPaths []string
	DeployDir   string
}

// ConfigParser ...
type ConfigParser struct {
	inputParser   stepconf.InputParser
	envRepository env.Repository
	pathChecker   pathutil.PathChecker
	logger        log.Logger
	now           func() time.Time
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, envRepository env.Repository, pathChecker pathutil.PathChecker, logger log.Logger) ConfigParser {
	return ConfigParser{
		inputParser:   inputParser,
		envRepository: envRepository,
		pathChecker:   pathChecker,
		logger:        logger,
		now:           time.Now,
	}
}

// ProcessConfig ...
func (p ConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()
	p.logger.EnableDebugLog(input.Verbose)

	manager, err := config.NewManager(input.ConfigPath, p.pathChecker, p.logger)
	if err != nil {
		return Config{}, err
	}

	settings, err := p.clientSettings(input, manager)
	if err != nil {
		return Config{}, err
	}

	reporterConfig, err := p.reporterConfig(input, manager)
	if err != nil {
		return Config{}, err
	}
	reporterConfig.URL = settings.URL

	reportPaths, err := p.reportPaths(input.ReportPath)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Reporter:    reporterConfig,
		Client:      settings,
		ReportPaths: reportPaths,
		DeployDir:   input.DeployDir,
	}, nil
}

func (p ConfigParser) clientSettings(input Input, manager config.Manager) (testrail.Settings, error) {
	settings := testrail.Settings{
		URL:      manager.String(input.URL, config.SectionAPI, "url", ""),
		Email:    manager.String(input.Email, config.SectionAPI, "email", ""),
		Password: manager.String(string(input.Password), config.SectionAPI, "password", ""),
	}
	if settings.URL == "" {
		return testrail.Settings{}, errors.New("TestRail URL is not set (testrail_url input or url in the API section)")
	}
	if settings.Email == "" || settings.Password == "" {
		return testrail.Settings{}, errors.New("TestRail credentials are not set (testrail_email and testrail_password inputs or the API section)")
	}

	timeout, err := manager.Int(input.Timeout, config.SectionAPI, "timeout", int(testrail.DefaultTimeout/time.Second))
	if err != nil {
		return testrail.Settings{}, err
	}
	if timeout <= 0 {
		return testrail.Settings{}, fmt.Errorf("timeout must be positive: %d", timeout)
	}
	settings.Timeout = time.Duration(timeout) * time.Second

	if input.SSLVerify != "" {
		settings.CertCheck, err = manager.Bool(input.SSLVerify, "", "ssl_cert_check", true)
	} else {
		var skipCheck bool
		skipCheck, err = manager.Bool("", config.SectionAPI, "no_ssl_cert_check", false)
		settings.CertCheck = !skipCheck
	}
	if err != nil {
		return testrail.Settings{}, err
	}
	if !settings.CertCheck {
		p.logger.Warnf("SSL certificate verification is disabled")
	}

	return settings, nil
}

func (p ConfigParser) reporterConfig(input Input, manager config.Manager) (reporter.Config, error) {
	var (
		c   reporter.Config
		err error
	)

	ints := []struct {
		value   string
		section string
		key     string
		target  *int
	}{
		{input.ProjectID, config.SectionTestRun, "project_id", &c.ProjectID},
		{input.SuiteID, config.SectionTestRun, "suite_id", &c.SuiteID},
		{input.AssignUserID, config.SectionTestRun, "assignedto_id", &c.AssignUserID},
		{input.MilestoneID, config.SectionTestRun, "milestone_id", &c.MilestoneID},
		{input.RunID, "", "run_id", &c.RunID},
		{input.PlanID, config.SectionTestRun, "plan_id", &c.PlanID},
	}
	for _, option := range ints {
		if *option.target, err = manager.Int(option.value, option.section, option.key, 0); err != nil {
			return reporter.Config{}, err
		}
		if *option.target < 0 {
			return reporter.Config{}, fmt.Errorf("%s must not be negative: %d", option.key, *option.target)
		}
	}
	if c.ProjectID == 0 {
		return reporter.Config{}, errors.New("TestRail project id is not set (project_id input or the TESTRUN section)")
	}

	if c.IncludeAll, err = manager.Bool(input.IncludeAll, config.SectionTestRun, "include_all", false); err != nil {
		return reporter.Config{}, err
	}

	c.RunName = manager.String(input.RunName, config.SectionTestRun, "name", "")
	if c.RunName == "" {
		c.RunName = "Automated Run " + p.now().Format(defaultRunNameLayout)
	}
	c.RunDescription = manager.String(input.RunDescription, config.SectionTestRun, "description", "")
	c.PlanName = manager.String(input.PlanName, config.SectionTestRun, "plan_name", "")
	c.PlanDescription = manager.String(input.PlanDescription, config.SectionTestRun, "plan_description", "")
	c.CustomComment = manager.String(input.CustomComment, config.SectionTestCase, "custom_comment", "")

	c.Version = input.Version
	c.CloseOnComplete = input.CloseOnComplete
	c.PublishBlocked = input.PublishBlocked
	c.SkipMissing = input.SkipMissing

	return c, nil
}

func (p ConfigParser) reportPaths(reportPath string) ([]string, error) {
	paths, err := shellquote.Split(reportPath)
	if err != nil {
		return nil, fmt.Errorf("provided report_path (%s) is not a valid CLI parameter list: %w", reportPath, err)
	}
	if len(paths) > 0 {
		return paths, nil
	}

	testDeployDir := p.envRepository.Get(configs.BitriseTestDeployDirEnvKey)
	if testDeployDir == "" {
		return nil, fmt.Errorf("report_path is empty and %s is not set", configs.BitriseTestDeployDirEnvKey)
	}
	p.logger.Printf("No report path given, using %s: %s", configs.BitriseTestDeployDirEnvKey, testDeployDir)
	return []string{testDeployDir}, nil
}

// Result ...
type Result struct {
	Session   *reporter.Session
	Report    reporter.PublishReport
	DeployDir string
}

// ReportRunner ...
type ReportRunner struct {
	logger    log.Logger
	collector collector.Collector
	reporter  reporter.Reporter
	exporter  output.Exporter
}

// NewReportRunner ...
func NewReportRunner(logger log.Logger, collector collector.Collector, reporter reporter.Reporter, exporter output.Exporter) ReportRunner {
	return ReportRunner{
		logger:    logger,
		collector: collector,
		reporter:  reporter,
		exporter:  exporter,
	}
}

// Run collects the results, prepares the TestRail run or plan and publishes.
// Only collection errors are returned, TestRail failures are logged.
func (r ReportRunner) Run(cfg Config) (Result, error) {
	r.logger.Println()
	r.logger.Infof("Collecting test results")

	results, err := r.collector.Collect(cfg.ReportPaths, cfg.Reporter.SuiteID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect test results: %w", err)
	}
	r.logger.Printf("%d results with TestRail case ids", len(results))

	session := reporter.NewSession(cfg.Reporter)
	result := Result{
		Session:   session,
		DeployDir: cfg.DeployDir,
	}
	if len(results) == 0 {
		r.logger.Warnf("No test is marked with a TestRail case id, nothing to publish")
		result.Report = r.reporter.PublishResults(session, nil)
		return result, nil
	}

	r.logger.Println()
	r.logger.Infof("Preparing TestRail run")
	r.reporter.Reconcile(session, results)
	r.prepare(session, results)

	r.logger.Println()
	r.logger.Infof("Publishing results")
	progress.SimpleProgress(".", 5*time.Second, func() {
		result.Report = r.reporter.PublishResults(session, results)
	})

	return result, nil
}

func (r ReportRunner) prepare(s *reporter.Session, results []reporter.Result) {
	cfg := s.Config
	suites := groupBySuite(results, s.Registry.DiffCaseIDs())

	if cfg.PlanName != "" && s.PlanID() == 0 {
		r.reporter.CreatePlan(s, reporter.NewPlan{
			ProjectID:   cfg.ProjectID,
			Name:        cfg.PlanName,
			Description: cfg.PlanDescription,
			MilestoneID: cfg.MilestoneID,
		})
	}

	if s.PlanID() != 0 {
		if plan := r.reporter.GetPlan(s.PlanID()); plan != nil && !plan.IsCompleted {
			r.preparePlan(s, plan, suites)
			return
		}
		r.logger.Warnf("Test plan %d is not available, falling back to a test run", s.PlanID())
		s.SetPlanID(0)
	}

	primary := primarySuite(suites, cfg.SuiteID)

	if s.RunID() != 0 {
		if r.reporter.IsTestRunAvailable(s) {
			if cfg.SkipMissing {
				kept := r.reporter.RestrictToRun(s, s.RunID(), primary.caseIDs)
				s.Registry.Record(primary.suiteID, reporter.PlanEntry{RunID: s.RunID(), CaseIDs: kept})
				return
			}
			r.reporter.UpdateTestRun(s, s.RunID(), primary.caseIDs, primary.suiteID, true)
			return
		}
		r.logger.Warnf("Test run %d is not available, creating a new one", s.RunID())
		s.SetRunID(0)
	}

	r.reporter.CreateTestRun(s, reporter.NewRun{
		ProjectID:    cfg.ProjectID,
		SuiteID:      primary.suiteID,
		Name:         cfg.RunName,
		Description:  cfg.RunDescription,
		AssignUserID: cfg.AssignUserID,
		IncludeAll:   cfg.IncludeAll,
		MilestoneID:  cfg.MilestoneID,
		CaseIDs:      primary.caseIDs,
	})
}

func (r ReportRunner) preparePlan(s *reporter.Session, plan *testrail.Plan, suites []suiteCases) {
	cfg := s.Config
	for _, suite := range suites {
		if entryID, runID, found := reporter.FindSuiteRun(plan, suite.suiteID); found {
			r.reporter.UpdateTestPlanEntry(s, s.PlanID(), entryID, runID, suite.caseIDs, suite.suiteID, true)
			continue
		}
		r.reporter.CreatePlanEntry(s, reporter.NewPlanEntry{
			PlanID:       s.PlanID(),
			SuiteID:      suite.suiteID,
			Name:         cfg.RunName,
			Description:  cfg.RunDescription,
			AssignUserID: cfg.AssignUserID,
			IncludeAll:   cfg.IncludeAll,
			CaseIDs:      suite.caseIDs,
		})
	}
	s.SetRunID(0)
}

// Export ...
func (r ReportRunner) Export(result Result) error {
	if result.Session == nil {
		return nil
	}

	r.logger.Println()
	r.logger.Infof("Exporting outputs")

	session := result.Session
	r.exporter.ExportRun(session.RunID(), session.RunURL())
	r.exporter.ExportPlan(session.PlanID(), session.PlanURL())

	summary := output.Summary{
		RunID:            session.RunID(),
		RunURL:           session.RunURL(),
		PlanID:           session.PlanID(),
		PlanURL:          session.PlanURL(),
		RunIDs:           nonNil(result.Report.RunIDs),
		PublishedCaseIDs: nonNil(result.Report.PublishedCaseIDs),
		IgnoredCaseIDs:   nonNil(result.Report.IgnoredCaseIDs),
		BlockedCaseIDs:   nonNil(result.Report.BlockedCaseIDs),
		UnroutedCaseIDs:  nonNil(result.Report.UnroutedCaseIDs),
		FailedChunks:     result.Report.FailedChunks,
	}
	pth, err := r.exporter.ExportSummary(result.DeployDir, summary)
	if err != nil {
		return err
	}
	if pth != "" {
		r.logger.Donef("Publish summary: %s", pth)
	}

	printLinks(r.logger, session)
	return nil
}
