package entities

import "time"

type AircraftType string

const (
	AircraftTypeCommercial AircraftType = "COMMERCIAL"
	AircraftTypeMilitary   AircraftType = "MILITARY"
)

func (t AircraftType) Valid() bool {
	return t == AircraftTypeCommercial || t == AircraftTypeMilitary
}

type PartType string

const (
	PartTypeDomestic PartType = "DOMESTIC"
	PartTypeImported PartType = "IMPORTED"
)

func (t PartType) Valid() bool {
	return t == PartTypeDomestic || t == PartTypeImported
}

type PartStatus string

const (
	PartStatusInProduction PartStatus = "IN_PRODUCTION"
	PartStatusInTransport  PartStatus = "IN_TRANSPORT"
	PartStatusReady        PartStatus = "READY"
)

func (s PartStatus) Valid() bool {
	switch s {
	case PartStatusInProduction, PartStatusInTransport, PartStatusReady:
		return true
	}
	return false
}

// StageStatus follows PENDING -> IN_PROGRESS -> COMPLETED.
type StageStatus string

const (
	StageStatusPending    StageStatus = "PENDING"
	StageStatusInProgress StageStatus = "IN_PROGRESS"
	StageStatusCompleted  StageStatus = "COMPLETED"
)

type TestType string

const (
	TestTypeElectrical  TestType = "ELECTRICAL"
	TestTypeHydraulic   TestType = "HYDRAULIC"
	TestTypeAerodynamic TestType = "AERODYNAMIC"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeElectrical, TestTypeHydraulic, TestTypeAerodynamic:
		return true
	}
	return false
}

type TestResult string

const (
	TestResultPassed TestResult = "PASSED"
	TestResultFailed TestResult = "FAILED"
)

func (r TestResult) Valid() bool {
	return r == TestResultPassed || r == TestResultFailed
}

// Part, Stage and Test are addressed by callers through their position in the
// owning aircraft's list. ID is a surrogate key so a resolved index keeps
// pointing at the same entity for the rest of the operation.
type Part struct {
	ID       string     `json:"id"`
	Name     string     `json:"nome"`
	Type     PartType   `json:"tipo"`
	Supplier string     `json:"fornecedor"`
	Status   PartStatus `json:"status"`
}

type Stage struct {
	ID           string      `json:"id"`
	Name         string      `json:"nome"`
	DeadlineDays int         `json:"prazoDias"`
	Status       StageStatus `json:"status"`
	Order        int         `json:"ordem"`
	EmployeeIDs  []string    `json:"funcionarios"`
}

type Test struct {
	ID        string     `json:"id"`
	Type      TestType   `json:"tipo"`
	Result    TestResult `json:"resultado"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Aircraft is the production aggregate: scalar fields plus its nested parts,
// stages and tests.
//
// Storage model (DynamoDB):
//   - PK: codigo
//   - nested lists are stored inline so a whole aggregate is written atomically
type Aircraft struct {
	Code      string       `json:"codigo"`
	Model     string       `json:"modelo"`
	Type      AircraftType `json:"tipo"`
	Capacity  int          `json:"capacidade"`
	RangeKm   float64      `json:"alcanceKm"`
	Parts     []Part       `json:"pecas"`
	Stages    []Stage      `json:"etapas"`
	Tests     []Test       `json:"testes"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (a Aircraft) PartAt(idx int) (Part, bool) {
	if idx < 0 || idx >= len(a.Parts) {
		return Part{}, false
	}
	return a.Parts[idx], true
}

func (a Aircraft) StageAt(idx int) (Stage, bool) {
	if idx < 0 || idx >= len(a.Stages) {
		return Stage{}, false
	}
	return a.Stages[idx], true
}

func (a Aircraft) TestAt(idx int) (Test, bool) {
	if idx < 0 || idx >= len(a.Tests) {
		return Test{}, false
	}
	return a.Tests[idx], true
}

// ReplacePart swaps the part carrying p.ID. It reports false when no such part exists.
func (a *Aircraft) ReplacePart(p Part) bool {
	for i := range a.Parts {
		if a.Parts[i].ID == p.ID {
			a.Parts[i] = p
			return true
		}
	}
	return false
}

func (a *Aircraft) RemovePart(id string) bool {
	for i := range a.Parts {
		if a.Parts[i].ID == id {
			a.Parts = append(a.Parts[:i], a.Parts[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Aircraft) ReplaceStage(s Stage) bool {
	for i := range a.Stages {
		if a.Stages[i].ID == s.ID {
			a.Stages[i] = s
			return true
		}
	}
	return false
}

func (a *Aircraft) ReplaceTest(t Test) bool {
	for i := range a.Tests {
		if a.Tests[i].ID == t.ID {
			a.Tests[i] = t
			return true
		}
	}
	return false
}

func (a *Aircraft) RemoveTest(id string) bool {
	for i := range a.Tests {
		if a.Tests[i].ID == id {
			a.Tests = append(a.Tests[:i], a.Tests[i+1:]...)
			return true
		}
	}
	return false
}

// LatestTestResults returns, per test type, the result of the most recently
// inserted test of that type. Later entries in Tests win.
func (a Aircraft) LatestTestResults() map[TestType]TestResult {
	latest := make(map[TestType]TestResult, 3)
	for _, t := range a.Tests {
		latest[t.Type] = t.Result
	}
	return latest
}

// HasPendingFailedTests reports whether any test type's latest result is FAILED.
func (a Aircraft) HasPendingFailedTests() bool {
	for _, r := range a.LatestTestResults() {
		if r == TestResultFailed {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; repositories hand out clones so readers never
// share slices with a writer.
func (a Aircraft) Clone() Aircraft {
	out := a
	out.Parts = append([]Part(nil), a.Parts...)
	out.Tests = append([]Test(nil), a.Tests...)
	out.Stages = make([]Stage, len(a.Stages))
	for i, s := range a.Stages {
		s.EmployeeIDs = append([]string(nil), s.EmployeeIDs...)
		out.Stages[i] = s
	}
	return out
}
