package domain

import "strings"

// Kind identifies an activity type: one of the fixed catalog kinds, or
// KindCustom for caller-defined activities that carry their own name and
// point value.
type Kind string

const (
	KindWorkout     Kind = "workout"
	KindSideProject Kind = "side-project"
	KindJobTask     Kind = "job-task"
	KindLearning    Kind = "learning"
	KindReading     Kind = "reading"
	KindCustom      Kind = "custom"
)

// CatalogEntry pairs a catalog kind's display name with its base points.
type CatalogEntry struct {
	Label  string
	Points int
}

var catalog = map[Kind]CatalogEntry{
	KindWorkout:     {Label: "Workout", Points: 10},
	KindSideProject: {Label: "Side Project Work", Points: 15},
	KindJobTask:     {Label: "Job Task", Points: 8},
	KindLearning:    {Label: "Learning/Study", Points: 12},
	KindReading:     {Label: "Reading", Points: 5},
}

// ParseKind normalizes a raw type identifier. The second return value is
// false for identifiers outside the catalog that are not "custom".
func ParseKind(raw string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if kind == KindCustom {
		return kind, true
	}
	if _, ok := catalog[kind]; ok {
		return kind, true
	}
	return "", false
}

// Catalog returns the entry for a catalog kind. ok is false for KindCustom
// and unknown kinds, which have no fixed base points.
func (k Kind) Catalog() (entry CatalogEntry, ok bool) {
	entry, ok = catalog[k]
	return entry, ok
}

// Kinds lists the catalog kinds plus KindCustom, in display order.
func Kinds() []Kind {
	return []Kind{KindWorkout, KindSideProject, KindJobTask, KindLearning, KindReading, KindCustom}
}
