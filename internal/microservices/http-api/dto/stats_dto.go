package dto

import (
	"encoding/json"
	"math"
	"strconv"
)

// ReviewAggregate is the mean rating and count of the reviews a user has written.
type ReviewAggregate struct {
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int64   `json:"totalReviews"`
}

// AverageRating renders as the number 0 when there are no reviews, otherwise as the mean
// rounded half away from zero to one decimal and formatted as a string ("4.3").
type AverageRating struct {
	Value float64
	Count int64
}

func (a AverageRating) String() string {
	if a.Count == 0 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(a.Value*10)/10, 'f', 1, 64)
}

func (a AverageRating) MarshalJSON() ([]byte, error) {
	if a.Count == 0 {
		return []byte("0"), nil
	}
	return json.Marshal(a.String())
}

func (a *AverageRating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		a.Value, a.Count = n, 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	// the count is not on the wire; any formatted value implies at least one review
	a.Value, a.Count = v, 1
	return nil
}

// ReaderStats is the reader view of the dashboard.
type ReaderStats struct {
	TotalRead    int64         `json:"totalRead"`
	InProgress   int64         `json:"inProgress"`
	AvgRating    AverageRating `json:"avgRating"`
	TotalReviews int64         `json:"totalReviews"`
}

// AdminStats is the admin/author view. TotalUsers is global, the rest are scoped to the author.
type AdminStats struct {
	TotalBooks      int64 `json:"totalBooks"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalCategories int64 `json:"totalCategories"`
	TotalReviews    int64 `json:"totalReviews"`
	TotalTutorials  int64 `json:"totalTutorials"`
}
