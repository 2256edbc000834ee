package journal

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DateMigrationReport counts the outcome of a date repair pass. The
// pass is not atomic: entries that fail to parse are skipped and
// counted, and the caller decides whether to retry them.
type DateMigrationReport struct {
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}

const dateTimeLayout = "2006-01-02 15:04"

// MigrateEntryDates repairs entries whose createdAt does not reflect
// their user-facing date and time fields. Older imports stamped
// createdAt with the import moment instead of the entry's own date;
// this pass reparses each entry's date (and time, when present) in the
// local timezone and rewrites createdAt to match. Entries already in
// agreement are left alone.
func (r *Repository) MigrateEntryDates() (*DateMigrationReport, error) {
	entries, err := r.store.AllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	report := &DateMigrationReport{}
	for _, entry := range entries {
		if entry.Date == "" {
			continue
		}
		// Only entries whose createdAt landed on the wrong calendar day
		// need repair.
		if entry.CreatedAt.Local().Format(dateLayout) == entry.Date {
			continue
		}

		parsed, err := parseEntryMoment(entry.Date, entry.Time)
		if err != nil {
			report.Errors++
			r.logger.Warn("skipping entry with unparseable date",
				zap.String("id", entry.ID),
				zap.String("date", entry.Date),
				zap.String("time", entry.Time),
				zap.Error(err))
			continue
		}

		if err := r.store.SetEntryTimestamps(entry.ID, parsed, r.now()); err != nil {
			report.Errors++
			r.logger.Warn("failed to rewrite entry timestamps",
				zap.String("id", entry.ID),
				zap.Error(err))
			continue
		}
		report.Updated++
	}

	if report.Updated > 0 {
		r.invalidate()
	}
	r.logger.Info("entry date migration finished",
		zap.Int("updated", report.Updated),
		zap.Int("errors", report.Errors))
	return report, nil
}

// parseEntryMoment combines an entry's date and time fields into a
// local timestamp. A missing or invalid time falls back to midnight.
func parseEntryMoment(date, clock string) (time.Time, error) {
	if clock != "" {
		if parsed, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.ParseInLocation(dateLayout, date, time.Local)
}
