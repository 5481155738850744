package calendar

import (
	"fmt"
	"time"

	apperrors "scheduler-backend/internal/errors"
)

// Span pairs an activity version with the sub-window of a calendar query
// during which that version was the one in effect.
type Span struct {
	Version Version
	From    time.Time
	To      time.Time
}

// ResolveSpans partitions the query window [from, to) across an activity's
// version history, ordered by EffectiveFrom ascending. Each version covers
// [max(EffectiveFrom, from), min(next EffectiveFrom, to)); empty sub-windows
// are dropped. Adjacent spans never overlap, which is what guarantees no
// date is expanded twice.
func ResolveSpans(versions []Version, from, to time.Time) ([]Span, error) {
	if len(versions) == 0 {
		return nil, apperrors.ErrNoVersionsFound
	}

	spans := make([]Span, 0, len(versions))
	for i, v := range versions {
		start := v.EffectiveFrom
		if start.Before(from) {
			start = from
		}

		end := to
		if i+1 < len(versions) {
			next := versions[i+1].EffectiveFrom
			if next.Before(end) {
				end = next
			}
		}

		if !start.Before(end) {
			continue
		}

		spans = append(spans, Span{Version: v, From: start, To: end})
	}

	return spans, nil
}

// Assemble expands every effective version of a single activity into its
// chronological occurrences within [from, to). The recurrence of each
// version is anchored at the moment the version became effective, so edits
// never rewrite the past: a date before an edit still expands with the old
// name, time and pattern.
func Assemble(versions []Version, from, to time.Time) ([]Occurrence, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidWindow
	}

	spans, err := ResolveSpans(versions, from, to)
	if err != nil {
		if len(versions) == 0 {
			return nil, err
		}
		return nil, fmt.Errorf("activity %s: %w", versions[0].ActivityID, err)
	}

	var occurrences []Occurrence
	for _, span := range spans {
		v := span.Version
		times, err := Expand(v.Periodicity, v.Location, v.EffectiveFrom, span.From, span.To, nil)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", v.ActivityID, err)
		}
		for _, t := range times {
			occurrences = append(occurrences, Occurrence{
				ActivityID:        v.ActivityID,
				Name:              v.Name,
				Date:              DateOf(t),
				Time:              v.Time,
				RequiredResources: v.RequiredResources,
				Location:          v.Location,
			})
		}
	}

	return occurrences, nil
}
