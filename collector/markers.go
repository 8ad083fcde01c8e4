package collector

import (
	"regexp"
	"strconv"
	"strings"
)

// Report properties carrying TestRail markers.
const (
	CaseIDProperty  = "testrail_case_id"
	SuiteProperty   = "testrail_suite"
	DefectsProperty = "testrail_defects"
	CommentProperty = "testrail_comment"
)

var (
	caseIDInNamePattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9])C(\d+)`)
	parametrizePattern  = regexp.MustCompile(`\[(.*)\]$`)
)

// markers are the TestRail annotations attached to one executed test.
type markers struct {
	caseIDs     []int
	suiteID     int
	defects     []string
	comments    []string
	parametrize string
}

func parseMarkers(name string, properties map[string]string, defaultSuiteID int) markers {
	m := markers{
		suiteID:  defaultSuiteID,
		defects:  []string{},
		comments: []string{},
	}

	seen := map[int]bool{}
	addCaseID := func(id int) {
		if id > 0 && !seen[id] {
			seen[id] = true
			m.caseIDs = append(m.caseIDs, id)
		}
	}

	for _, match := range caseIDInNamePattern.FindAllStringSubmatch(name, -1) {
		id, err := strconv.Atoi(match[1])
		if err == nil {
			addCaseID(id)
		}
	}
	for _, id := range splitIDs(properties[CaseIDProperty], "C") {
		addCaseID(id)
	}

	if suites := splitIDs(properties[SuiteProperty], "S"); len(suites) > 0 {
		m.suiteID = suites[0]
	}
	m.defects = splitList(properties[DefectsProperty])
	if comment := strings.TrimSpace(properties[CommentProperty]); comment != "" {
		m.comments = append(m.comments, comment)
	}

	m.parametrize = parametrize(name)

	return m
}

// parametrize returns the "name[params]" suffix or the go sub-test path.
func parametrize(name string) string {
	if match := parametrizePattern.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	if idx := strings.Index(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return ""
}

func splitIDs(value, prefix string) []int {
	var ids []int
	for _, item := range splitList(value) {
		item = strings.TrimPrefix(strings.ToUpper(item), prefix)
		id, err := strconv.Atoi(item)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
