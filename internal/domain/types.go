// Package domain defines the scoring and aggregation logic for the
// productivity leaderboard: users, activities, the activity-type catalog,
// and the ledger service that keeps per-user totals in step with the
// activity log.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoUsers signals an empty registry to callers that render rankings.
	ErrNoUsers = errors.New("no users registered")
	// ErrNoActivities signals an empty activity log to feed renderers.
	ErrNoActivities = errors.New("no activities logged")
)

// ValidationError reports invalid caller input. Operations that return one
// leave both in-memory and persisted state untouched.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// User is an identity record plus running aggregates over that user's
// activities. The aggregates are a cache of derivable sums, never an
// independent source of truth; Reconcile rebuilds them from the log.
// JSON field names match the persisted format of existing data blobs.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalPoints  int     `json:"totalPoints"`
	TotalNoahs   float64 `json:"totalNoahs"`
	TotalNoahSum float64 `json:"totalNoahSum"`
}

// Activity is an immutable log entry. UserName is a denormalized snapshot of
// the owner's name at creation time. Records persisted before the NoahSum
// field existed decode with NoahSum zero; readers fall back to
// Points × Noahs for those.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Type      Kind      `json:"type"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	Noahs     float64   `json:"noahs"`
	NoahSum   float64   `json:"noahSum"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// ResolvedNoahSum returns the stored product, computing it from Points and
// Noahs for records that predate the NoahSum field.
func (a Activity) ResolvedNoahSum() float64 {
	if a.NoahSum != 0 {
		return a.NoahSum
	}
	return float64(a.Points) * a.Noahs
}

// newID generates a time-ordered unique identifier. UUIDv7 keeps ids
// monotonic under the single-writer assumption; the random fallback only
// applies if the system clock source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
