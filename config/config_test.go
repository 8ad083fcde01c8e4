package config

import (
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `[API]
url = https://example.testrail.io
email = ci@example.com
password = secret
timeout = 30
no_ssl_cert_check = true

[TESTRUN]
assignedto_id = 4
project_id = 1
suite_id = 5
include_all = yes
Name = Nightly

[TESTCASE]
custom_comment = Built on CI
`

func Test_GivenConfigFile_WhenInputIsEmpty_ThenFileValueIsUsed(t *testing.T) {
	// Given
	manager := createManager(t, sampleConfig)

	// When
	url := manager.String("", SectionAPI, "url", "")
	name := manager.String("", SectionTestRun, "name", "")
	projectID, err := manager.Int("", SectionTestRun, "project_id", 0)
	require.NoError(t, err)
	includeAll, err := manager.Bool("", SectionTestRun, "include_all", false)
	require.NoError(t, err)

	// Then
	assert.Equal(t, "https://example.testrail.io", url)
	assert.Equal(t, "Nightly", name)
	assert.Equal(t, 1, projectID)
	assert.True(t, includeAll)
}

func Test_GivenConfigFile_WhenInputIsSet_ThenInputWins(t *testing.T) {
	// Given
	manager := createManager(t, sampleConfig)

	// When
	url := manager.String("https://other.testrail.io", SectionAPI, "url", "")
	suiteID, err := manager.Int("9", SectionTestRun, "suite_id", 0)
	require.NoError(t, err)
	includeAll, err := manager.Bool("no", SectionTestRun, "include_all", false)
	require.NoError(t, err)

	// Then
	assert.Equal(t, "https://other.testrail.io", url)
	assert.Equal(t, 9, suiteID)
	assert.False(t, includeAll)
}

func Test_GivenMissingKey_WhenResolving_ThenDefaultIsUsed(t *testing.T) {
	// Given
	manager := createManager(t, sampleConfig)

	// When
	milestoneID, err := manager.Int("", SectionTestRun, "milestone_id", 0)
	require.NoError(t, err)
	description := manager.String("", SectionTestRun, "description", "default description")
	unknownSection := manager.String("", "UNKNOWN", "url", "fallback")

	// Then
	assert.Equal(t, 0, milestoneID)
	assert.Equal(t, "default description", description)
	assert.Equal(t, "fallback", unknownSection)
}

func Test_GivenNoConfigFile_WhenResolving_ThenDefaultsAreUsed(t *testing.T) {
	// Given
	manager, err := NewManager(filepath.Join(t.TempDir(), "missing.cfg"), pathutil.NewPathChecker(), log.NewLogger())
	require.NoError(t, err)

	// When
	url := manager.String("", SectionAPI, "url", "")
	certCheck, err := manager.Bool("", SectionAPI, "no_ssl_cert_check", false)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "", url)
	assert.False(t, certCheck)
}

func Test_GivenInvalidValues_WhenResolving_ThenFails(t *testing.T) {
	// Given
	manager := createManager(t, "[TESTRUN]\nproject_id = one\ninclude_all = maybe\n")

	// When
	_, intErr := manager.Int("", SectionTestRun, "project_id", 0)
	_, boolErr := manager.Bool("", SectionTestRun, "include_all", false)
	_, inputErr := manager.Int("abc", SectionTestRun, "suite_id", 0)
	_, inputBoolErr := manager.Bool("sometimes", SectionTestRun, "include_all", false)

	// Then
	assert.Error(t, intErr)
	assert.Error(t, boolErr)
	assert.Error(t, inputErr)
	assert.Error(t, inputBoolErr)
}

func Test_GivenMalformedFile_WhenLoading_ThenFails(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "testrail.cfg")
	require.NoError(t, fileutil.NewFileManager().Write(path, "[API\nurl", 0600))

	// When
	_, err := NewManager(path, pathutil.NewPathChecker(), log.NewLogger())

	// Then
	assert.Error(t, err)
}

// Helpers

func createManager(t *testing.T, content string) Manager {
	path := filepath.Join(t.TempDir(), "testrail.cfg")
	require.NoError(t, fileutil.NewFileManager().Write(path, content, 0600))

	manager, err := NewManager(path, pathutil.NewPathChecker(), log.NewLogger())
	require.NoError(t, err)
	return manager
}
