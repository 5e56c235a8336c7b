package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinModelYear is the oldest model year offered on the selector page.
const MinModelYear = 2015

var validate = validator.New()

// VehicleType is a make name as listed by the upstream makes endpoint.
type VehicleType = string

// VehicleModel is a single entry of the models listing.
type VehicleModel struct {
	ModelName string `json:"ModelName"`
}

// Selection is the pair chosen on the selector page.
type Selection struct {
	VehicleType VehicleType `json:"vehicle_type" validate:"required"`
	Year        int         `json:"year" validate:"required"`
}

// Ready reports whether both members of the selection are populated.
func (s Selection) Ready() bool {
	return validate.Struct(s) == nil
}

// Path builds the results route for the selection.
func (s Selection) Path() string {
	return "/result/" + EncodeURIComponent(s.VehicleType) + "/" + strconv.Itoa(s.Year)
}

// ResultRoute carries the results page parameters verbatim.
type ResultRoute struct {
	MakeID string `json:"make_id" validate:"required"`
	Year   string `json:"year" validate:"required"`
}

func (r ResultRoute) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r ResultRoute) String() string {
	return r.MakeID + "/" + r.Year
}

// Years lists model years from now's year down to MinModelYear.
func Years(now time.Time) []int {
	current := now.Year()
	if current < MinModelYear {
		return []int{}
	}
	years := make([]int, 0, current-MinModelYear+1)
	for y := current; y >= MinModelYear; y-- {
		years = append(years, y)
	}
	return years
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
