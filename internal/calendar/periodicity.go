package calendar

import (
	"encoding/json"
	"sort"

	apperrors "scheduler-backend/internal/errors"
)

// PeriodicityType enumerates the closed set of recurrence patterns.
type PeriodicityType string

const (
	PeriodicityDaily    PeriodicityType = "daily"
	PeriodicityWeekly   PeriodicityType = "weekly"
	PeriodicityBiweekly PeriodicityType = "biweekly"
	PeriodicityMonthly  PeriodicityType = "monthly"
)

// Periodicity is a tagged recurrence pattern independent of any date range.
// Weekday indexes follow the rrule convention: 0=Monday .. 6=Sunday.
// Days holds weekdays for weekly patterns and days-of-month (1-31) for
// monthly ones. Week1/Week2 are the alternating weekday sets of a biweekly
// pattern, each anchored a week apart.
type Periodicity struct {
	Type  PeriodicityType `json:"type"`
	Days  []int           `json:"days,omitempty"`
	Week1 []int           `json:"week1,omitempty"`
	Week2 []int           `json:"week2,omitempty"`
}

// NewDailyPeriodicity creates a pattern recurring every day.
func NewDailyPeriodicity() Periodicity {
	return Periodicity{Type: PeriodicityDaily}
}

// NewWeeklyPeriodicity creates a pattern recurring on the given weekdays
// every week.
func NewWeeklyPeriodicity(days []int) (Periodicity, error) {
	p := Periodicity{Type: PeriodicityWeekly, Days: normalize(days)}
	if err := p.Validate(); err != nil {
		return Periodicity{}, err
	}
	return p, nil
}

// NewBiweeklyPeriodicity creates a pattern alternating between two weekly
// weekday sets. Week1 is anchored at the version's start date, week2 seven
// days later.
func NewBiweeklyPeriodicity(week1, week2 []int) (Periodicity, error) {
	p := Periodicity{Type: PeriodicityBiweekly, Week1: normalize(week1), Week2: normalize(week2)}
	if err := p.Validate(); err != nil {
		return Periodicity{}, err
	}
	return p, nil
}

// NewMonthlyPeriodicity creates a pattern recurring on the given days of
// each month. Days that a short month does not have are skipped for that
// month.
func NewMonthlyPeriodicity(days []int) (Periodicity, error) {
	p := Periodicity{Type: PeriodicityMonthly, Days: normalize(days)}
	if err := p.Validate(); err != nil {
		return Periodicity{}, err
	}
	return p, nil
}

// Validate checks the variant's parameter sets for emptiness and domain
// range. Anything that passes here is expandable.
func (p Periodicity) Validate() error {
	switch p.Type {
	case PeriodicityDaily:
		return nil
	case PeriodicityWeekly:
		return validateWeekdays("days", p.Days)
	case PeriodicityBiweekly:
		if err := validateWeekdays("week1", p.Week1); err != nil {
			return err
		}
		return validateWeekdays("week2", p.Week2)
	case PeriodicityMonthly:
		if len(p.Days) == 0 {
			return apperrors.NewInvalidPeriodicityError("monthly pattern has an empty day-of-month set")
		}
		for _, d := range p.Days {
			if d < 1 || d > 31 {
				return apperrors.NewInvalidPeriodicityError("day-of-month %d out of range 1-31", d)
			}
		}
		return nil
	default:
		return apperrors.NewInvalidPeriodicityError("unknown pattern type %q", string(p.Type))
	}
}

// Equal reports whether two patterns are the same variant with the same
// parameter sets.
func (p Periodicity) Equal(other Periodicity) bool {
	return p.Type == other.Type &&
		equalInts(p.Days, other.Days) &&
		equalInts(p.Week1, other.Week1) &&
		equalInts(p.Week2, other.Week2)
}

// UnmarshalJSON decodes and validates a pattern, so a malformed one is
// rejected before it can reach expansion.
func (p *Periodicity) UnmarshalJSON(data []byte) error {
	type alias Periodicity
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Days = normalize(a.Days)
	a.Week1 = normalize(a.Week1)
	a.Week2 = normalize(a.Week2)
	decoded := Periodicity(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*p = decoded
	return nil
}

func validateWeekdays(field string, days []int) error {
	if len(days) == 0 {
		return apperrors.NewInvalidPeriodicityError("%s has an empty weekday set", field)
	}
	for _, d := range days {
		if d < 0 || d > 6 {
			return apperrors.NewInvalidPeriodicityError("%s weekday index %d out of range 0-6", field, d)
		}
	}
	return nil
}

// normalize sorts and deduplicates a parameter set so equality and output
// ordering do not depend on caller input order.
func normalize(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	out := make([]int, 0, len(values))
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
