package reporter

import "sort"

// PlanEntry is the run a suite was published to.
type PlanEntry struct {
	// EntryID is empty for stand-alone runs.
	EntryID string
	RunID   int
	CaseIDs []int
}

type registryEntry struct {
	entryID string
	runID   int
	caseIDs map[int]bool
}

// Registry maps suites to their remote runs and keeps the remote case snapshot
// used to validate results before publishing.
type Registry struct {
	entries map[int]*registryEntry
	order   []int

	diffCaseIDs       map[int]bool
	availableSuiteIDs map[int]bool
	suiteCaseIDs      map[int]map[int]bool
}

// NewRegistry ...
func NewRegistry() *Registry {
	return &Registry{
		entries:           map[int]*registryEntry{},
		diffCaseIDs:       map[int]bool{},
		availableSuiteIDs: map[int]bool{},
		suiteCaseIDs:      map[int]map[int]bool{},
	}
}

// Record stores the run of a suite. Recording the same run again unions the case ids,
// recording a different run replaces the entry.
func (r *Registry) Record(suiteID int, entry PlanEntry) {
	existing, ok := r.entries[suiteID]
	if !ok {
		r.order = append(r.order, suiteID)
	}
	if !ok || existing.runID != entry.RunID {
		existing = &registryEntry{caseIDs: map[int]bool{}}
		r.entries[suiteID] = existing
	}

	existing.entryID = entry.EntryID
	existing.runID = entry.RunID
	for _, id := range entry.CaseIDs {
		existing.caseIDs[id] = true
	}
}

// Entry ...
func (r *Registry) Entry(suiteID int) (PlanEntry, bool) {
	entry, ok := r.entries[suiteID]
	if !ok {
		return PlanEntry{}, false
	}
	return PlanEntry{
		EntryID: entry.entryID,
		RunID:   entry.runID,
		CaseIDs: sortedIDs(entry.caseIDs),
	}, true
}

// Suites returns the recorded suites in the order they were first recorded.
func (r *Registry) Suites() []int {
	return append([]int{}, r.order...)
}

// FirstSuite ...
func (r *Registry) FirstSuite() (int, bool) {
	if len(r.order) == 0 {
		return 0, false
	}
	return r.order[0], true
}

// SetAvailableSuites replaces the snapshot of the project's suites.
func (r *Registry) SetAvailableSuites(suiteIDs []int) {
	r.availableSuiteIDs = map[int]bool{}
	for _, id := range suiteIDs {
		r.availableSuiteIDs[id] = true
	}
}

// HasSuiteSnapshot reports whether the project's suites were fetched.
func (r *Registry) HasSuiteSnapshot() bool {
	return len(r.availableSuiteIDs) > 0
}

// IsSuiteAvailable ...
func (r *Registry) IsSuiteAvailable(suiteID int) bool {
	return r.availableSuiteIDs[suiteID]
}

// SetSuiteCases replaces the known case ids of a suite.
func (r *Registry) SetSuiteCases(suiteID int, caseIDs []int) {
	cases := map[int]bool{}
	for _, id := range caseIDs {
		cases[id] = true
	}
	r.suiteCaseIDs[suiteID] = cases
}

// IsKnownCase ...
func (r *Registry) IsKnownCase(suiteID, caseID int) bool {
	return r.suiteCaseIDs[suiteID][caseID]
}

// ResetDiff clears the diff case ids before a new reconciliation.
func (r *Registry) ResetDiff() {
	r.diffCaseIDs = map[int]bool{}
}

// AddDiff marks case ids as missing remotely.
func (r *Registry) AddDiff(caseIDs ...int) {
	for _, id := range caseIDs {
		r.diffCaseIDs[id] = true
	}
}

// DiffCaseIDs returns a copy of the case ids missing remotely.
func (r *Registry) DiffCaseIDs() map[int]bool {
	diff := make(map[int]bool, len(r.diffCaseIDs))
	for id := range r.diffCaseIDs {
		diff[id] = true
	}
	return diff
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func unionIDs(a, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		set[id] = true
	}
	return sortedIDs(set)
}
