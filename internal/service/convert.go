package service

import (
	"encoding/json"
	"fmt"
	"time"

	"scheduler-backend/internal/calendar"
	"scheduler-backend/internal/database/models"
)

// The date-only wire format used across the API, same as the DB date column.
const dateLayout = "2006-01-02"

// versionToEngine maps a stored version row into the engine's Version type.
// The stored periodicity is validated on decode, so a row that predates a
// schema change cannot smuggle a malformed pattern into expansion.
func versionToEngine(row models.ActivityVersion, loc *time.Location) (calendar.Version, error) {
	var periodicity calendar.Periodicity
	if err := json.Unmarshal(row.Periodicity, &periodicity); err != nil {
		return calendar.Version{}, fmt.Errorf("activity %s version %s: %w", row.ActivityID, row.ID, err)
	}

	return calendar.Version{
		ActivityID:        row.ActivityID,
		Name:              row.Name,
		Periodicity:       periodicity,
		Time:              calendar.TimeInterval{StartsAt: row.TimeStartsAt, Duration: row.TimeDuration},
		RequiredResources: row.RequiredResources,
		EffectiveFrom:     row.EffectiveFrom,
		Location:          loc,
	}, nil
}

// assignmentToEngine maps an attendance row plus its assigned resources into
// the engine's Assignment type.
func assignmentToEngine(row models.Assignment) calendar.Assignment {
	record := calendar.Assignment{
		ActivityID: row.ActivityID,
		Date:       dbDateToLocalDate(row.Date),
	}

	for _, assigned := range row.AssignedResources {
		record.ResourceIDs = append(record.ResourceIDs, assigned.ResourceID)
	}

	if row.TimeStartsAt != nil && row.TimeDuration != nil {
		record.Override = &calendar.TimeInterval{
			StartsAt: *row.TimeStartsAt,
			Duration: *row.TimeDuration,
		}
	}

	return record
}

// localDateToDBDate converts a local calendar date into the canonical form
// stored in the date column: midnight UTC. The column carries a date, not an
// instant; UTC midnight is just its fixed representation.
func localDateToDBDate(d calendar.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func dbDateToLocalDate(t time.Time) calendar.Date {
	y, m, d := t.UTC().Date()
	return calendar.Date{Year: y, Month: m, Day: d}
}
