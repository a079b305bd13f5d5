package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

func TestLeaderboardEmptyRegistry(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Leaderboard()
	require.ErrorIs(t, err, domain.ErrNoUsers)
}

func TestRankUsersOrdersByNoahSum(t *testing.T) {
	entries := domain.RankUsers([]domain.User{
		{ID: "u1", Name: "Alice", TotalNoahSum: 10},
		{ID: "u2", Name: "Bob", TotalNoahSum: 40},
		{ID: "u3", Name: "Carol", TotalNoahSum: 25},
		{ID: "u4", Name: "Dave", TotalNoahSum: 5},
	})

	require.Len(t, entries, 4)
	require.Equal(t, []string{"Bob", "Carol", "Alice", "Dave"}, names(entries))
	require.Equal(t, "🥇", entries[0].Badge)
	require.Equal(t, "🥈", entries[1].Badge)
	require.Equal(t, "🥉", entries[2].Badge)
	require.Equal(t, "#4", entries[3].Badge)
	for i, e := range entries {
		require.Equal(t, i+1, e.Rank)
	}
}

func TestRankUsersTiesKeepRegistrationOrder(t *testing.T) {
	entries := domain.RankUsers([]domain.User{
		{ID: "u1", Name: "Alice", TotalNoahSum: 10},
		{ID: "u2", Name: "Bob", TotalNoahSum: 10},
		{ID: "u3", Name: "Carol", TotalNoahSum: 10},
	})
	require.Equal(t, []string{"Alice", "Bob", "Carol"}, names(entries))
}

func TestRankUsersDoesNotMutateInput(t *testing.T) {
	users := []domain.User{
		{ID: "u1", Name: "Alice", TotalNoahSum: 10},
		{ID: "u2", Name: "Bob", TotalNoahSum: 40},
	}
	domain.RankUsers(users)
	require.Equal(t, "Alice", users[0].Name)
}

func names(entries []domain.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.User.Name
	}
	return out
}
