package domain

import (
	"fmt"
	"sort"
)

// LeaderboardEntry is one ranked row. Badge carries the medal for the top
// three positions and a plain ordinal after that.
type LeaderboardEntry struct {
	Rank  int
	Badge string
	User  User
}

var medals = [...]string{"🥇", "🥈", "🥉"}

// Leaderboard ranks the registry by TotalNoahSum descending. An empty
// registry returns ErrNoUsers rather than an empty ranking.
func (s *Service) Leaderboard() ([]LeaderboardEntry, error) {
	if len(s.users) == 0 {
		return nil, ErrNoUsers
	}
	return RankUsers(s.users), nil
}

// RankUsers is the pure ranking function. The stable sort preserves
// registry insertion order among users with equal scores.
func RankUsers(users []User) []LeaderboardEntry {
	ranked := make([]User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalNoahSum > ranked[j].TotalNoahSum
	})

	entries := make([]LeaderboardEntry, len(ranked))
	for i, user := range ranked {
		badge := fmt.Sprintf("#%d", i+1)
		if i < len(medals) {
			badge = medals[i]
		}
		entries[i] = LeaderboardEntry{Rank: i + 1, Badge: badge, User: user}
	}
	return entries
}
