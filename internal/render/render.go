// Package render turns ledger output into styled terminal text. All
// presentation decisions live here: empty-state copy, rank badge styling,
// and the toast-style confirmation block.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

var (
	gold  = lipgloss.Color("#FFC107")
	green = lipgloss.Color("#48bb78")
	blue  = lipgloss.Color("#2196F3")
	grey  = lipgloss.Color("#8a8f98")
	light = lipgloss.Color("#f2f2f2")
)

// Styles holds the lipgloss styles shared by every view.
type Styles struct {
	Title     lipgloss.Style
	Badge     lipgloss.Style
	Name      lipgloss.Style
	Breakdown lipgloss.Style
	Score     lipgloss.Style
	Muted     lipgloss.Style
	Toast     lipgloss.Style
}

// NewStyles builds the style set. With noColor set, every style renders
// plain text.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:     plain,
			Badge:     plain,
			Name:      plain,
			Breakdown: plain,
			Score:     plain,
			Muted:     plain,
			Toast:     lipgloss.NewStyle().Padding(0, 1),
		}
	}
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(light),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(gold),
		Name:      lipgloss.NewStyle().Bold(true),
		Breakdown: lipgloss.NewStyle().Foreground(grey),
		Score:     lipgloss.NewStyle().Bold(true).Foreground(blue),
		Muted:     lipgloss.NewStyle().Foreground(grey),
		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(light).
			Background(green).
			Padding(0, 1),
	}
}

// Leaderboard renders the ranked users, one row per entry.
func Leaderboard(st Styles, entries []domain.LeaderboardEntry) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("🏆 Leaderboard"))
	sb.WriteString("\n")
	for _, entry := range entries {
		u := entry.User
		sb.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			st.Badge.Render(entry.Badge),
			st.Name.Render(u.Name),
			st.Breakdown.Render(fmt.Sprintf("%d pts × %.1f Noahs", u.TotalPoints, u.TotalNoahs)),
			st.Score.Render(fmt.Sprintf("%.1f NoahSum", u.TotalNoahSum)),
		))
	}
	return sb.String()
}

// EmptyLeaderboard is the empty-state text for a registry with no users.
func EmptyLeaderboard(st Styles) string {
	return st.Muted.Render("No users yet! Add some users to get started.") + "\n"
}

// Feed renders the recent-activity feed.
func Feed(st Styles, entries []domain.FeedEntry) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("📝 Recent Activities"))
	sb.WriteString("\n")
	for _, entry := range entries {
		a := entry.Activity
		sb.WriteString(fmt.Sprintf("%s  %s %s %s\n",
			st.Name.Render(a.Name),
			st.Score.Render(fmt.Sprintf("+%d", a.Points)),
			st.Breakdown.Render(fmt.Sprintf("%sN", trimFloat(a.Noahs))),
			st.Breakdown.Render(fmt.Sprintf("%.1fNS", entry.NoahSum)),
		))
		sb.WriteString(st.Muted.Render(fmt.Sprintf("by %s", a.UserName)))
		sb.WriteString("\n")
		if a.Notes != "" {
			sb.WriteString(st.Muted.Render(a.Notes))
			sb.WriteString("\n")
		}
		sb.WriteString(st.Muted.Render(entry.Age))
		sb.WriteString("\n")
	}
	return sb.String()
}

// EmptyFeed is the empty-state text for an activity log with no entries.
func EmptyFeed(st Styles) string {
	return st.Muted.Render("No activities logged yet! Start tracking your productivity!") + "\n"
}

// UserList renders the registry in insertion order.
func UserList(st Styles, users []domain.User) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Users"))
	sb.WriteString("\n")
	for _, u := range users {
		sb.WriteString(fmt.Sprintf("%s  %s\n", st.Name.Render(u.Name), st.Muted.Render(u.ID)))
	}
	return sb.String()
}

// Toast renders a one-line success confirmation.
func Toast(st Styles, message string) string {
	return st.Toast.Render(message) + "\n"
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
