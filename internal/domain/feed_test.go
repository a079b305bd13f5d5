package domain_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
	"github.com/hurstk8/ProductivityCompetition/internal/persistence"
)

func TestRecentActivitiesEmptyLog(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.RecentActivities()
	require.ErrorIs(t, err, domain.ErrNoActivities)
}

func TestRecentActivitiesCapsAtFeedLimit(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	svc, err := domain.NewService(ctx, store)
	require.NoError(t, err)

	alice, err := svc.AddUser(ctx, "Alice")
	require.NoError(t, err)
	for i := 0; i < domain.DefaultFeedLimit+2; i++ {
		_, _, err := svc.LogActivity(ctx, domain.LogActivityInput{
			UserID: alice.ID,
			Type:   "reading",
			Noahs:  "1",
			Notes:  fmt.Sprintf("book %d", i),
		})
		require.NoError(t, err)
	}

	entries, err := svc.RecentActivities()
	require.NoError(t, err)
	require.Len(t, entries, domain.DefaultFeedLimit)
	require.Equal(t, "book 11", entries[0].Activity.Notes)
	require.Equal(t, "book 2", entries[len(entries)-1].Activity.Notes)
}

func TestRecentFeedResolvesLegacySum(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	entries := domain.RecentFeed([]domain.Activity{
		{Points: 10, Noahs: 1.5, Timestamp: now},
	}, domain.DefaultFeedLimit, now)

	require.Len(t, entries, 1)
	require.InDelta(t, 15.0, entries[0].NoahSum, 1e-9)
	require.Equal(t, "Just now", entries[0].Age)
}

func TestAgeLabel(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{time.Minute, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{time.Hour, "1h ago"},
		{119 * time.Minute, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{73 * time.Hour, "3d ago"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, domain.AgeLabel(now.Add(-tc.age), now))
		})
	}
}
