package domain

type CategoryStatus string

const (
	StatusNotStarted CategoryStatus = "not_started"
	StatusInProgress CategoryStatus = "in_progress"
	StatusComplete   CategoryStatus = "complete"
)

// ValidCategoryStatuses is the canonical set of accepted category status strings.
var ValidCategoryStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "complete": true,
}

// Canonical aspect names. The checklist source uses one column per aspect;
// every category tracks completion against a subset of these.
const (
	AspectProcess       = "Process"
	AspectPolicy        = "Policy"
	AspectPeople        = "People"
	AspectTechnology    = "Technology"
	AspectReports       = "Reports"
	AspectReviewCadence = "Review Cadence"
	AspectBestPractices = "Best Practices"
)

// CanonicalAspects lists the aspect names in source-column order.
var CanonicalAspects = []string{
	AspectProcess,
	AspectPolicy,
	AspectPeople,
	AspectTechnology,
	AspectReports,
	AspectReviewCadence,
	AspectBestPractices,
}

// ValidAspectNames is the canonical set of accepted aspect names.
var ValidAspectNames = map[string]bool{
	AspectProcess: true, AspectPolicy: true, AspectPeople: true,
	AspectTechnology: true, AspectReports: true,
	AspectReviewCadence: true, AspectBestPractices: true,
}
