package club

import (
	"math"
	"sort"
)

// ReviewSummary aggregates approved reviews for display.
type ReviewSummary struct {
	Count   int
	Average float64
	// Rounded is the average to one decimal place.
	Rounded float64
	// Stars rounds half up, so 3.5 shows four stars.
	Stars int
}

func Summarize(reviews []Review) ReviewSummary {
	var (
		count int
		total int
	)
	for _, r := range reviews {
		if !r.Approved {
			continue
		}
		count++
		total += r.Score
	}
	if count == 0 {
		return ReviewSummary{}
	}

	avg := float64(total) / float64(count)
	return ReviewSummary{
		Count:   count,
		Average: avg,
		Rounded: math.Round(avg*10) / 10,
		Stars:   int(math.Floor(avg + 0.5)),
	}
}

// ApprovedReviews returns approved reviews, most recently updated first.
func ApprovedReviews(reviews []Review) []Review {
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Approved {
			out = append(out, r)
		}
	}
	SortReviews(out)
	return out
}

func SortReviews(reviews []Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		if !reviews[i].UpdatedOn.Equal(reviews[j].UpdatedOn) {
			return reviews[i].UpdatedOn.After(reviews[j].UpdatedOn)
		}
		return reviews[i].ID > reviews[j].ID
	})
}
