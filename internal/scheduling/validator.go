// Package scheduling decides whether an interview may be assigned to a
// specialist. It is pure computation over its inputs: no storage access,
// no shared state, safe for concurrent use. Callers load the specialist
// and their current bookings, run Validate, and persist only on acceptance.
package scheduling

import (
	"fmt"
	"math"
	"time"
)

// MatchThreshold is the minimum skill-match percentage required to
// assign an interview when both skill sets are non-empty.
const MatchThreshold = 80.0

// Times of day all parse onto the zero date, so every comparison is
// same-day by construction.
const (
	layoutSeconds = "15:04:05"
	layoutMinutes = "15:04"
)

// Code classifies a validation outcome.
type Code string

const (
	CodeAccepted                Code = "accepted"
	CodeOutOfAvailabilityWindow Code = "out_of_availability_window"
	CodeTimeSlotConflict        Code = "time_slot_conflict"
	CodeInsufficientSkillMatch  Code = "insufficient_skill_match"
)

// Specialist is the snapshot of an interviewer the validator needs.
type Specialist struct {
	AvailableFrom string
	AvailableTo   string
	SkillIDs      []string
}

// Booking is an interview already on a specialist's calendar.
type Booking struct {
	ID              string
	Start           string
	DurationMinutes int
}

// Request is the candidate interview being validated.
type Request struct {
	Start            string
	DurationMinutes  int
	RequiredSkillIDs []string
}

// Decision is the validator's verdict. MatchPercentage is only
// meaningful when Code is CodeInsufficientSkillMatch; it carries the
// computed percentage rounded to the nearest integer.
type Decision struct {
	Code            Code
	MatchPercentage int
}

func (d Decision) Accepted() bool {
	return d.Code == CodeAccepted
}

// RejectionError wraps a non-accepted Decision so repository and
// usecase layers can surface it through ordinary error returns.
type RejectionError struct {
	Decision Decision
}

func (e *RejectionError) Error() string {
	switch e.Decision.Code {
	case CodeOutOfAvailabilityWindow:
		return "interview time is outside the specialist's availability window"
	case CodeTimeSlotConflict:
		return "interview time overlaps an existing booking"
	case CodeInsufficientSkillMatch:
		return fmt.Sprintf("skill match is only %d%%", e.Decision.MatchPercentage)
	default:
		return "scheduling rejected"
	}
}

// Validate runs the full assignment check: availability window, then
// time-slot conflicts against existing bookings, then skill match.
// The first failing check wins. excludeID names a booking to ignore in
// the conflict scan (the interview being transferred); pass "" otherwise.
func Validate(sp Specialist, existing []Booking, req Request, excludeID string) (Decision, error) {
	ok, err := CheckAvailability(sp.AvailableFrom, sp.AvailableTo, req.Start)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return Decision{Code: CodeOutOfAvailabilityWindow}, nil
	}

	conflict, err := CheckConflicts(existing, req.Start, req.DurationMinutes, excludeID)
	if err != nil {
		return Decision{}, err
	}
	if conflict {
		return Decision{Code: CodeTimeSlotConflict}, nil
	}

	if matched, percent := CheckSkillMatch(sp.SkillIDs, req.RequiredSkillIDs); !matched {
		return Decision{Code: CodeInsufficientSkillMatch, MatchPercentage: percent}, nil
	}

	return Decision{Code: CodeAccepted}, nil
}

// CheckAvailability reports whether start lies inside the inclusive
// [from, to] window. Only the start instant is checked; a booking may
// run past the end of the window (this matches the historical policy).
func CheckAvailability(from, to, start string) (bool, error) {
	f, err := parseTimeOfDay(from)
	if err != nil {
		return false, err
	}
	t, err := parseTimeOfDay(to)
	if err != nil {
		return false, err
	}
	s, err := parseTimeOfDay(start)
	if err != nil {
		return false, err
	}
	return !s.Before(f) && !s.After(t), nil
}

// CheckConflicts reports whether the candidate slot collides with any
// existing booking. A collision exists when an existing booking's start,
// or its end, falls within ±duration minutes of the candidate start,
// boundary inclusive. This is a tolerance-window heuristic, not a true
// interval intersection, and both sides of that tradeoff are intentional:
// schedules validated under it must keep validating the same way.
func CheckConflicts(existing []Booking, start string, durationMinutes int, excludeID string) (bool, error) {
	c, err := parseTimeOfDay(start)
	if err != nil {
		return false, err
	}
	tolerance := time.Duration(durationMinutes) * time.Minute
	lo := c.Add(-tolerance)
	hi := c.Add(tolerance)

	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		bs, err := parseTimeOfDay(b.Start)
		if err != nil {
			return false, err
		}
		be := bs.Add(time.Duration(b.DurationMinutes) * time.Minute)
		if within(bs, lo, hi) || within(be, lo, hi) {
			return true, nil
		}
	}
	return false, nil
}

// CheckSkillMatch computes the share of required skills the specialist
// holds and gates it at MatchThreshold. The check is skipped (treated
// as satisfied) when either set is empty. The returned percent is
// rounded half away from zero for reporting; the gate itself compares
// the unrounded ratio.
func CheckSkillMatch(specialistSkills, requiredSkills []string) (bool, int) {
	if len(requiredSkills) == 0 || len(specialistSkills) == 0 {
		return true, 100
	}

	have := make(map[string]struct{}, len(specialistSkills))
	for _, id := range specialistSkills {
		have[id] = struct{}{}
	}

	matches := 0
	for _, id := range requiredSkills {
		if _, ok := have[id]; ok {
			matches++
		}
	}

	percent := float64(matches) / float64(len(requiredSkills)) * 100
	rounded := int(math.Round(percent))
	return percent >= MatchThreshold, rounded
}

func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

func parseTimeOfDay(value string) (time.Time, error) {
	if t, err := time.Parse(layoutSeconds, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutMinutes, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return t, nil
}
