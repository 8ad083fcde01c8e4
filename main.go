package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/collector"
	"github.com/bitrise-steplib/steps-testrail-report/output"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/step"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	envRepository := env.NewRepository()
	pathChecker := pathutil.NewPathChecker()

	configParser := step.NewConfigParser(stepconf.NewInputParser(envRepository), envRepository, pathChecker, logger)
	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf(formattedError(fmt.Errorf("Failed to process Step inputs: %w", err)))
		return 1
	}

	runner := createRunner(config, envRepository, pathChecker, logger)

	result, runErr := runner.Run(config)
	exportErr := runner.Export(result)

	if runErr != nil {
		logger.Errorf(formattedError(fmt.Errorf("Failed to report test results: %w", runErr)))
		return 1
	}
	if exportErr != nil {
		logger.Errorf(formattedError(fmt.Errorf("Failed to export Step outputs: %w", exportErr)))
		return 1
	}

	return 0
}

func createRunner(config step.Config, envRepository env.Repository, pathChecker pathutil.PathChecker, logger log.Logger) step.ReportRunner {
	fileManager := fileutil.NewFileManager()
	client := testrail.NewClient(config.Client, logger)
	outputExporter := export.NewExporter(command.NewFactory(envRepository), fileManager)

	return step.NewReportRunner(
		logger,
		collector.NewCollector(pathChecker, fileManager, logger),
		reporter.New(client, logger),
		output.NewExporter(&outputExporter, fileManager, logger),
	)
}

// formattedError prints every wrapped error of the chain on its own line.
func formattedError(err error) string {
	var formatted string
	for i := 0; err != nil; i++ {
		message := err.Error()
		if wrapped := errors.Unwrap(err); wrapped != nil {
			message = strings.TrimSuffix(strings.TrimSuffix(message, wrapped.Error()), ": ")
		}
		if i > 0 {
			formatted += "\n" + strings.Repeat("  ", i)
		}
		formatted += message
		err = errors.Unwrap(err)
	}
	return formatted
}
