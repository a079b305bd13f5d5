package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

func TestLeaderboardRowsCarryBadgesAndScores(t *testing.T) {
	st := NewStyles(true)
	out := Leaderboard(st, []domain.LeaderboardEntry{
		{Rank: 1, Badge: "🥇", User: domain.User{Name: "Bob", TotalPoints: 20, TotalNoahs: 2, TotalNoahSum: 40}},
		{Rank: 2, Badge: "🥈", User: domain.User{Name: "Alice", TotalPoints: 10, TotalNoahs: 1, TotalNoahSum: 10}},
	})

	require.Contains(t, out, "🏆 Leaderboard")
	require.Contains(t, out, "🥇 Bob  20 pts × 2.0 Noahs  40.0 NoahSum")
	require.Contains(t, out, "🥈 Alice  10 pts × 1.0 Noahs  10.0 NoahSum")
	require.True(t, strings.Index(out, "Bob") < strings.Index(out, "Alice"))
}

func TestEmptyStates(t *testing.T) {
	st := NewStyles(true)
	require.Equal(t, "No users yet! Add some users to get started.\n", EmptyLeaderboard(st))
	require.Equal(t, "No activities logged yet! Start tracking your productivity!\n", EmptyFeed(st))
}

func TestFeedRendersNotesAndAge(t *testing.T) {
	st := NewStyles(true)
	out := Feed(st, []domain.FeedEntry{
		{
			Activity: domain.Activity{
				Name:      "Workout",
				UserName:  "Alice",
				Points:    10,
				Noahs:     1.5,
				Notes:     "morning run",
				Timestamp: time.Now(),
			},
			NoahSum: 15,
			Age:     "Just now",
		},
	})

	require.Contains(t, out, "📝 Recent Activities")
	require.Contains(t, out, "Workout  +10 1.5N 15.0NS")
	require.Contains(t, out, "by Alice")
	require.Contains(t, out, "morning run")
	require.Contains(t, out, "Just now")
}

func TestFeedOmitsEmptyNotes(t *testing.T) {
	st := NewStyles(true)
	out := Feed(st, []domain.FeedEntry{
		{Activity: domain.Activity{Name: "Reading", UserName: "Bob", Points: 5, Noahs: 1}, NoahSum: 5, Age: "2h ago"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4) // title, row, byline, age
}

func TestToastWrapsMessage(t *testing.T) {
	st := NewStyles(true)
	out := Toast(st, "Workout logged! 10 pts × 1.5 Noahs = 15.0 NoahSum")
	require.Contains(t, out, "Workout logged! 10 pts × 1.5 Noahs = 15.0 NoahSum")
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestTrimFloat(t *testing.T) {
	require.Equal(t, "1", trimFloat(1))
	require.Equal(t, "1.5", trimFloat(1.5))
	require.Equal(t, "0.25", trimFloat(0.25))
}
