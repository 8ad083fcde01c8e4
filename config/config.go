package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"gopkg.in/ini.v1"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "testrail.cfg"

// testrail.cfg sections
const (
	SectionAPI      = "API"
	SectionTestRun  = "TESTRUN"
	SectionTestCase = "TESTCASE"
)

// Manager resolves an option in the order: step input, testrail.cfg, default.
// An empty input counts as unset.
type Manager interface {
	String(input, section, key, defaultValue string) string
	Int(input, section, key string, defaultValue int) (int, error)
	Bool(input, section, key string, defaultValue bool) (bool, error)
}

type manager struct {
	file *ini.File
}

// NewManager loads the config file if it exists. A missing file is not an error,
// every option then falls back to its input or default.
func NewManager(path string, pathChecker pathutil.PathChecker, logger log.Logger) (Manager, error) {
	if path == "" {
		path = DefaultPath
	}

	exists, err := pathChecker.IsPathExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check if config file exists: %w", err)
	}
	if !exists {
		logger.Debugf("Config file not found at %s, using step inputs only", path)
		return manager{}, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file (%s): %w", path, err)
	}
	logger.Debugf("Using config file: %s", path)

	return manager{file: file}, nil
}

func (m manager) lookup(section, key string) (*ini.Key, bool) {
	if m.file == nil || section == "" {
		return nil, false
	}
	s, err := m.file.GetSection(section)
	if err != nil || !s.HasKey(key) {
		return nil, false
	}
	return s.Key(key), true
}

func (m manager) String(input, section, key, defaultValue string) string {
	if input != "" {
		return input
	}
	if k, ok := m.lookup(section, key); ok {
		return k.String()
	}
	return defaultValue
}

func (m manager) Int(input, section, key string, defaultValue int) (int, error) {
	if input != "" {
		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %s", key, input)
		}
		return value, nil
	}
	if k, ok := m.lookup(section, key); ok {
		value, err := k.Int()
		if err != nil {
			return 0, fmt.Errorf("invalid integer for [%s] %s in config file: %w", section, key, err)
		}
		return value, nil
	}
	return defaultValue, nil
}

func (m manager) Bool(input, section, key string, defaultValue bool) (bool, error) {
	if input != "" {
		return parseBool(key, input)
	}
	if k, ok := m.lookup(section, key); ok {
		value, err := k.Bool()
		if err != nil {
			return false, fmt.Errorf("invalid boolean for [%s] %s in config file: %w", section, key, err)
		}
		return value, nil
	}
	return defaultValue, nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %s", key, value)
}
