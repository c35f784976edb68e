package catalog

import (
	"time"

	"github.com/acaihub/delivery-catalog/models"
)

// IsAvailable reports whether the product is purchasable at the given
// instant according to its weekly schedule. Products without scheduled
// availability (or without a schedule document) are always available;
// is_active is evaluated by the caller. The answer is for this instant
// only — callers re-evaluate on every render or tick.
func IsAvailable(p *models.Product, now time.Time) bool {
	if p.AvailabilityType != models.AvailabilityScheduled || len(p.ScheduledDays) == 0 {
		return true
	}
	window, ok := p.ScheduledDays[models.WeekdayKey(now.Weekday())]
	if !ok || !window.Enabled {
		return false
	}
	start, err := models.ParseClock(window.StartTime)
	if err != nil {
		return false
	}
	end, err := models.ParseClock(window.EndTime)
	if err != nil {
		return false
	}
	// Inclusive start, exclusive end. start == end is a zero-length window
	// and never matches.
	minute := now.Hour()*60 + now.Minute()
	return minute >= start && minute < end
}
