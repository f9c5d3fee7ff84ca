package service

import (
	"salon/config"
	"salon/shared/constant"
	"salon/shared/timezone"
	"slices"
	"time"
)

const defaultHorizonDays = 30

// Calendar lists the bookable days and the fixed time slots offered on each of them.
type Calendar struct {
	horizonDays int
	closed      []time.Weekday
	slots       []string
	location    *time.Location
	now         func() time.Time
}

func NewCalendar(horizonDays int, closedWeekdays []int, slots []string, location *time.Location, now func() time.Time) *Calendar {
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}

	closed := make([]time.Weekday, 0, len(closedWeekdays))
	for _, day := range closedWeekdays {
		closed = append(closed, time.Weekday(day))
	}

	if location == nil {
		location = time.UTC
	}

	if now == nil {
		now = time.Now
	}

	return &Calendar{
		horizonDays: horizonDays,
		closed:      closed,
		slots:       append([]string{}, slots...),
		location:    location,
		now:         now,
	}
}

func NewCalendarFromConfig(cfg *config.Config) *Calendar {
	return NewCalendar(cfg.Booking.HorizonDays, cfg.Booking.ClosedWeekdays, cfg.Booking.TimeSlots, timezone.GetLocation(), time.Now)
}

// Dates returns the open days from today up to the horizon, formatted as YYYY-MM-DD.
func (c *Calendar) Dates() []string {
	now := c.now().In(c.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.location)

	dates := make([]string, 0, c.horizonDays)
	for offset := 0; offset < c.horizonDays; offset++ {
		day := today.AddDate(0, 0, offset)
		if slices.Contains(c.closed, day.Weekday()) {
			continue
		}

		dates = append(dates, day.Format(constant.DayFormat))
	}

	return dates
}

func (c *Calendar) IsOpen(day string) bool {
	return slices.Contains(c.Dates(), day)
}

func (c *Calendar) Slots() []string {
	return append([]string{}, c.slots...)
}

func (c *Calendar) HasSlot(slot string) bool {
	return slices.Contains(c.slots, slot)
}
