package domain

import (
	"fmt"
	"time"
)

// FeedEntry is one row of the recent-activity feed. NoahSum is the resolved
// product, including the legacy fallback for records without a stored sum.
type FeedEntry struct {
	Activity Activity
	NoahSum  float64
	Age      string
}

// RecentActivities returns up to the configured limit of the newest
// activities. The log is already most-recent-first by construction, so no
// sort happens here. An empty log returns ErrNoActivities.
func (s *Service) RecentActivities() ([]FeedEntry, error) {
	if len(s.activities) == 0 {
		return nil, ErrNoActivities
	}
	return RecentFeed(s.activities, s.feedLimit, s.now()), nil
}

// RecentFeed is the pure feed function over a most-recent-first sequence.
func RecentFeed(activities []Activity, limit int, now time.Time) []FeedEntry {
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	entries := make([]FeedEntry, 0, len(activities))
	for _, a := range activities {
		entries = append(entries, FeedEntry{
			Activity: a,
			NoahSum:  a.ResolvedNoahSum(),
			Age:      AgeLabel(a.Timestamp, now),
		})
	}
	return entries
}

// AgeLabel renders a relative age with integer floor at every unit, so an
// activity 119 minutes old reads "1h ago".
func AgeLabel(timestamp, now time.Time) string {
	diff := now.Sub(timestamp)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", days)
	}
}
