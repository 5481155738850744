package calendar

import (
	"sort"
	"time"

	apperrors "scheduler-backend/internal/errors"
)

// Merge joins occurrences against their attendance records and emits the
// final calendar events. A record's override interval, when present,
// supersedes the occurrence's nominal time. For each occurrence the
// unassigned placeholder events come first, then one event per assigned
// resource in the record's order; the ordering is fixed so identical inputs
// always produce identical output.
func Merge(occurrences []Occurrence, assignments map[Key]Assignment) []Event {
	events := make([]Event, 0, len(occurrences))

	for _, occ := range occurrences {
		record, ok := assignments[Key{ActivityID: occ.ActivityID, Date: occ.Date}]

		interval := occ.Time
		assigned := 0
		if ok {
			assigned = len(record.ResourceIDs)
			if record.Override != nil {
				interval = *record.Override
			}
		}

		startsAt := occ.Date.At(interval.StartsAt, occ.Location)

		for i := 0; i < occ.RequiredResources-assigned; i++ {
			events = append(events, Event{
				ActivityID:        occ.ActivityID,
				Name:              occ.Name,
				StartsAt:          startsAt,
				Duration:          interval.Duration,
				RequiredResources: occ.RequiredResources,
				AssignedResources: assigned,
			})
		}

		for _, id := range record.ResourceIDs {
			resourceID := id
			events = append(events, Event{
				ActivityID:        occ.ActivityID,
				Name:              occ.Name,
				StartsAt:          startsAt,
				Duration:          interval.Duration,
				RequiredResources: occ.RequiredResources,
				AssignedResources: assigned,
				ResourceID:        &resourceID,
			})
		}
	}

	return events
}

// Compute is the top-level entry point: it assembles every activity's
// occurrence stream over [from, to), merges the streams chronologically and
// overlays the attendance records. One slice of versions per activity, in
// the caller's order. A failure for any activity fails the whole call;
// occurrences are never silently dropped.
func Compute(activities [][]Version, assignments map[Key]Assignment, from, to time.Time) ([]Event, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidWindow
	}

	var occurrences []Occurrence
	for _, versions := range activities {
		list, err := Assemble(versions, from, to)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, list...)
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		a := occurrences[i].Date.At(occurrences[i].Time.StartsAt, occurrences[i].Location)
		b := occurrences[j].Date.At(occurrences[j].Time.StartsAt, occurrences[j].Location)
		if !a.Equal(b) {
			return a.Before(b)
		}
		return occurrences[i].ActivityID.String() < occurrences[j].ActivityID.String()
	})

	return Merge(occurrences, assignments), nil
}
