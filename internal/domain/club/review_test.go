package club

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		scores      []int
		unapproved  []int
		wantCount   int
		wantRounded float64
		wantStars   int
	}{
		{name: "no reviews", wantCount: 0},
		{name: "half rounds up", scores: []int{3, 4}, wantCount: 2, wantRounded: 3.5, wantStars: 4},
		{name: "below half rounds down", scores: []int{4, 4, 3}, wantCount: 3, wantRounded: 3.7, wantStars: 4},
		{name: "two and a half rounds up", scores: []int{2, 3}, wantCount: 2, wantRounded: 2.5, wantStars: 3},
		{name: "unapproved ignored", scores: []int{5}, unapproved: []int{1, 1}, wantCount: 1, wantRounded: 5, wantStars: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := make([]Review, 0, len(tc.scores)+len(tc.unapproved))
			for _, s := range tc.scores {
				reviews = append(reviews, Review{Score: s, Approved: true})
			}
			for _, s := range tc.unapproved {
				reviews = append(reviews, Review{Score: s})
			}

			got := Summarize(reviews)
			if got.Count != tc.wantCount {
				t.Fatalf("count: got=%d want=%d", got.Count, tc.wantCount)
			}
			if got.Rounded != tc.wantRounded {
				t.Fatalf("rounded: got=%v want=%v", got.Rounded, tc.wantRounded)
			}
			if got.Stars != tc.wantStars {
				t.Fatalf("stars: got=%d want=%d", got.Stars, tc.wantStars)
			}
		})
	}
}

func TestApprovedReviews_OrderedByUpdated(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	reviews := []Review{
		{ID: 1, Approved: true, UpdatedOn: now},
		{ID: 2, Approved: false, UpdatedOn: now.Add(time.Hour)},
		{ID: 3, Approved: true, UpdatedOn: now.Add(2 * time.Hour)},
	}

	got := ApprovedReviews(reviews)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("unexpected reviews: %+v", got)
	}
}
