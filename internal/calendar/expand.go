package calendar

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	apperrors "scheduler-backend/internal/errors"
)

// dailyOccurrenceCap bounds an open-ended daily expansion. A daily pattern
// with no until would otherwise be inexhaustible; callers needing more than
// 30 occurrences from the anchor must pass an explicit until.
const dailyOccurrenceCap = 30

var rruleWeekdays = [7]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// Expand turns a periodicity into the concrete local instants it produces
// within the half-open window [from, to). All date math happens in loc;
// from/to may be expressed in any location and are converted first. The
// recurrence is anchored at anchor (a version's EffectiveFrom), which is
// itself included when it matches the pattern and falls inside the window.
// Expansion is a pure function of its inputs: the same call always yields
// the same ordered result.
func Expand(p Periodicity, loc *time.Location, anchor, from, to time.Time, until *time.Time) ([]time.Time, error) {
	rules, err := buildRules(p, loc, anchor, until)
	if err != nil {
		return nil, err
	}

	localFrom := from.In(loc)
	localTo := to.In(loc)

	var out []time.Time
	for _, r := range rules {
		for _, t := range r.Between(localFrom, localTo, true) {
			// Between is inclusive on both ends; the window is half-open.
			if !t.Before(localTo) {
				continue
			}
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return dedupeTimes(out), nil
}

// buildRules maps a periodicity variant onto one or two RRULEs, the same
// translation the scheduler has always used for its patterns. The biweekly
// variant becomes two interval-2 weekly rules: week1 anchored at the start
// date, week2 anchored seven days later with its own weekday set.
func buildRules(p Periodicity, loc *time.Location, anchor time.Time, until *time.Time) ([]*rrule.RRule, error) {
	dtstart := anchor.In(loc)

	var localUntil time.Time
	if until != nil {
		localUntil = until.In(loc)
	}

	switch p.Type {
	case PeriodicityDaily:
		opt := rrule.ROption{Freq: rrule.DAILY, Dtstart: dtstart}
		if until == nil {
			opt.Count = dailyOccurrenceCap
		} else {
			opt.Until = localUntil
		}
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{r}, nil

	case PeriodicityWeekly:
		opt := rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   dtstart,
			Until:     localUntil,
			Byweekday: toWeekdays(p.Days),
		}
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{r}, nil

	case PeriodicityBiweekly:
		first, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Interval:  2,
			Dtstart:   dtstart,
			Until:     localUntil,
			Byweekday: toWeekdays(p.Week1),
		})
		if err != nil {
			return nil, err
		}
		second, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Interval:  2,
			Dtstart:   dtstart.AddDate(0, 0, 7),
			Until:     localUntil,
			Byweekday: toWeekdays(p.Week2),
		})
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{first, second}, nil

	case PeriodicityMonthly:
		// BYMONTHDAY skips days a short month does not have, which is
		// exactly the clamping contract: never roll into the next month.
		opt := rrule.ROption{
			Freq:       rrule.MONTHLY,
			Dtstart:    dtstart,
			Until:      localUntil,
			Bymonthday: p.Days,
		}
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{r}, nil

	default:
		return nil, apperrors.NewInvalidPeriodicityError("unknown pattern type %q", string(p.Type))
	}
}

func toWeekdays(days []int) []rrule.Weekday {
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, rruleWeekdays[d])
	}
	return out
}

func dedupeTimes(times []time.Time) []time.Time {
	if len(times) < 2 {
		return times
	}
	out := times[:1]
	for _, t := range times[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}
