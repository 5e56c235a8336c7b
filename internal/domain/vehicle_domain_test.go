package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYears(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want []int
	}{
		{
			name: "2025 gives eleven years",
			now:  time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			want: []int{2025, 2024, 2023, 2022, 2021, 2020, 2019, 2018, 2017, 2016, 2015},
		},
		{
			name: "first allowed year",
			now:  time.Date(2015, time.December, 31, 23, 0, 0, 0, time.UTC),
			want: []int{2015},
		},
		{
			name: "before first allowed year",
			now:  time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Years(tt.now))
		})
	}
}

func TestYearsDescendingForAnyDate(t *testing.T) {
	for year := 2015; year <= 2060; year++ {
		got := Years(time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC))
		assert.Len(t, got, year-MinModelYear+1)
		assert.Equal(t, year, got[0])
		assert.Equal(t, MinModelYear, got[len(got)-1])
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1]-1, got[i])
		}
	}
}

func TestSelectionReady(t *testing.T) {
	assert.False(t, Selection{}.Ready())
	assert.False(t, Selection{VehicleType: "Toyota"}.Ready())
	assert.False(t, Selection{Year: 2020}.Ready())
	assert.True(t, Selection{VehicleType: "Toyota", Year: 2020}.Ready())
}

func TestSelectionPath(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{Selection{VehicleType: "Alfa Romeo", Year: 2022}, "/result/Alfa%20Romeo/2022"},
		{Selection{VehicleType: "Toyota", Year: 2020}, "/result/Toyota/2020"},
		{Selection{VehicleType: "A/B&C", Year: 2019}, "/result/A%2FB%26C/2019"},
		{Selection{VehicleType: "Citroën", Year: 2021}, "/result/Citro%C3%ABn/2021"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Path())
		})
	}
}

func TestEncodeURIComponentUnreserved(t *testing.T) {
	assert.Equal(t, "AZaz09-_.!~*'()", EncodeURIComponent("AZaz09-_.!~*'()"))
	assert.Equal(t, "%20%2B%3D%3F%23", EncodeURIComponent(" +=?#"))
}

func TestResultRouteValidate(t *testing.T) {
	assert.NoError(t, ResultRoute{MakeID: "Toyota", Year: "2020"}.Validate())
	assert.True(t, errors.Is(ResultRoute{MakeID: "Toyota"}.Validate(), ErrNotFound))
	assert.True(t, errors.Is(ResultRoute{Year: "2020"}.Validate(), ErrNotFound))
	assert.Equal(t, "1/2024", ResultRoute{MakeID: "1", Year: "2024"}.String())
}
