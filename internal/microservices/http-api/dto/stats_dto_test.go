package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   AverageRating
		want string
	}{
		{name: "no reviews is the number zero", in: AverageRating{}, want: `0`},
		{name: "rounds half away from zero", in: AverageRating{Value: 4.25, Count: 4}, want: `"4.3"`},
		{name: "keeps one decimal", in: AverageRating{Value: 4, Count: 2}, want: `"4.0"`},
		{name: "thirds", in: AverageRating{Value: 13.0 / 3.0, Count: 3}, want: `"4.3"`},
		{name: "rounds down", in: AverageRating{Value: 3.04, Count: 5}, want: `"3.0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestReaderStats_UnmarshalBothShapes(t *testing.T) {
	var zero ReaderStats
	require.NoError(t, json.Unmarshal([]byte(`{"avgRating":0,"totalReviews":0}`), &zero))
	assert.Equal(t, "0", zero.AvgRating.String())

	var some ReaderStats
	require.NoError(t, json.Unmarshal([]byte(`{"avgRating":"4.3","totalReviews":3}`), &some))
	assert.Equal(t, "4.3", some.AvgRating.String())
	assert.InDelta(t, 4.3, some.AvgRating.Value, 1e-9)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 12, 25)
	assert.Equal(t, int64(3), p.TotalPages)

	q := PageQuery{Page: 0, Limit: 500}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.Limit)
	assert.Equal(t, 0, q.Offset())
}
