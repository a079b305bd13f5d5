package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Kind
		ok   bool
	}{
		{"workout", domain.KindWorkout, true},
		{"side-project", domain.KindSideProject, true},
		{"job-task", domain.KindJobTask, true},
		{"learning", domain.KindLearning, true},
		{"reading", domain.KindReading, true},
		{"custom", domain.KindCustom, true},
		{"WORKOUT", domain.KindWorkout, true},
		{"  reading  ", domain.KindReading, true},
		{"swimming", "", false},
		{"", "", false},
		{"side project", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			kind, ok := domain.ParseKind(tc.raw)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, kind)
		})
	}
}

func TestCatalogBasePoints(t *testing.T) {
	want := map[domain.Kind]domain.CatalogEntry{
		domain.KindWorkout:     {Label: "Workout", Points: 10},
		domain.KindSideProject: {Label: "Side Project Work", Points: 15},
		domain.KindJobTask:     {Label: "Job Task", Points: 8},
		domain.KindLearning:    {Label: "Learning/Study", Points: 12},
		domain.KindReading:     {Label: "Reading", Points: 5},
	}
	for kind, entry := range want {
		got, ok := kind.Catalog()
		require.True(t, ok, kind)
		require.Equal(t, entry, got)
	}

	_, ok := domain.KindCustom.Catalog()
	require.False(t, ok, "custom carries its own points")
}

func TestKindsListsCatalogThenCustom(t *testing.T) {
	kinds := domain.Kinds()
	require.Len(t, kinds, 6)
	require.Equal(t, domain.KindWorkout, kinds[0])
	require.Equal(t, domain.KindCustom, kinds[5])
}
