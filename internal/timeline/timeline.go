// Package timeline classifies permit status text into canonical pipeline
// stages and derives progress measures from inspection history.
package timeline

import (
	"math"
	"strings"
	"time"
)

// Stage is a canonical project pipeline stage.
type Stage string

const (
	StageProposed          Stage = "proposed"
	StageInReview          Stage = "in_review"
	StageApproved          Stage = "approved"
	StageAppealed          Stage = "appealed"
	StagePermitted         Stage = "permitted"
	StageUnderConstruction Stage = "under_construction"
	StageCompleted         Stage = "completed"
	StageStalled           Stage = "stalled"
	StageDenied            Stage = "denied"
	StageUnknown           Stage = "unknown"
)

// stageKeywords maps each canonical stage to the raw status phrases that
// indicate it. Matching is case-insensitive substring containment.
var stageKeywords = map[Stage][]string{
	StageProposed: {"Proposed", "Pre-Application", "SB330 Preliminary"},
	StageInReview: {"In Review", "Under Review", "Incomplete Pending Applicant",
		"Corrections Pending Applicant"},
	StageApproved:          {"Approved", "Pending Final Action", "Conditionally Approved"},
	StageAppealed:          {"Appealed", "Appeal Pending"},
	StagePermitted:         {"Permit Issued", "Building Permit Issued"},
	StageUnderConstruction: {"Under Construction", "Active Construction"},
	StageCompleted:         {"Completed", "Certificate of Occupancy", "Final Inspection"},
	StageStalled:           {"Stalled", "Inactive", "Expired"},
	StageDenied:            {"Denied", "Rejected", "Withdrawn"},
}

// stageOrder fixes the evaluation order of stageKeywords so that
// classification is deterministic when several stages' phrases could
// match; earlier pipeline stages take precedence.
var stageOrder = []Stage{
	StageProposed, StageInReview, StageApproved, StageAppealed,
	StagePermitted, StageUnderConstruction, StageCompleted,
	StageStalled, StageDenied,
}

// StageOrder returns the canonical pipeline ordering of the reportable
// stages, earliest first.
func StageOrder() []Stage {
	order := make([]Stage, len(stageOrder))
	copy(order, stageOrder)
	return order
}

// inspectionSequence is the ordered list of building inspections a project
// passes through; index is used to compute construction progress.
var inspectionSequence = []string{
	"Foundation",
	"Framing/Rough",
	"Electrical Rough",
	"Plumbing Rough",
	"Mechanical Rough",
	"Insulation",
	"Drywall",
	"Electrical Final",
	"Plumbing Final",
	"Mechanical Final",
	"Final",
}

// ClassifyStatus maps raw permit status text to its canonical pipeline
// stage. Unrecognized or empty text classifies as StageUnknown.
func ClassifyStatus(statusText string) Stage {
	if statusText == "" {
		return StageUnknown
	}

	statusUpper := strings.ToUpper(statusText)
	for _, stage := range stageOrder {
		for _, keyword := range stageKeywords[stage] {
			if strings.Contains(statusUpper, strings.ToUpper(keyword)) {
				return stage
			}
		}
	}

	return StageUnknown
}

// ProgressPercent estimates construction progress from the set of completed
// inspections: the position of the furthest inspection reached, as a
// percentage of the full sequence, rounded to one decimal place.
func ProgressPercent(inspectionsCompleted []string) float64 {
	if len(inspectionsCompleted) == 0 {
		return 0.0
	}

	highest := -1
	for _, inspection := range inspectionsCompleted {
		inspectionUpper := strings.ToUpper(inspection)
		for i, step := range inspectionSequence {
			if strings.Contains(inspectionUpper, strings.ToUpper(step)) && i > highest {
				highest = i
			}
		}
	}

	if highest < 0 {
		return 0.0
	}

	percent := 100 * float64(highest+1) / float64(len(inspectionSequence))
	return math.Round(percent*10) / 10
}

// DaysBetween returns the whole days from start to end, negative when end
// precedes start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
