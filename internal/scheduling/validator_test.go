package scheduling_test

import (
	"testing"

	"go-interview-scheduler/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsFreeSlotInsideWindow(t *testing.T) {
	sp := scheduling.Specialist{
		AvailableFrom: "09:00:00",
		AvailableTo:   "17:00:00",
		SkillIDs:      []string{"go", "sql", "networking"},
	}
	req := scheduling.Request{
		Start:            "10:00:00",
		DurationMinutes:  60,
		RequiredSkillIDs: []string{"go", "sql"},
	}

	d, err := scheduling.Validate(sp, nil, req, "")
	require.NoError(t, err)
	assert.True(t, d.Accepted())
	assert.Equal(t, scheduling.CodeAccepted, d.Code)
}

func TestValidateAvailabilityWindow(t *testing.T) {
	sp := scheduling.Specialist{AvailableFrom: "09:00:00", AvailableTo: "17:00:00"}

	cases := []struct {
		name  string
		start string
		code  scheduling.Code
	}{
		{"before window", "08:00:00", scheduling.CodeOutOfAvailabilityWindow},
		{"at window start", "09:00:00", scheduling.CodeAccepted},
		{"inside window", "12:30:00", scheduling.CodeAccepted},
		{"at window end", "17:00:00", scheduling.CodeAccepted},
		{"after window", "17:00:01", scheduling.CodeOutOfAvailabilityWindow},
		{"minute precision input", "08:59", scheduling.CodeOutOfAvailabilityWindow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := scheduling.Validate(sp, nil, scheduling.Request{Start: tc.start, DurationMinutes: 60}, "")
			require.NoError(t, err)
			assert.Equal(t, tc.code, d.Code)
		})
	}
}

func TestValidateOnlyChecksStartInstant(t *testing.T) {
	// A booking starting just inside the window may run past its end.
	sp := scheduling.Specialist{AvailableFrom: "09:00:00", AvailableTo: "17:00:00"}
	req := scheduling.Request{Start: "16:59:00", DurationMinutes: 120}

	d, err := scheduling.Validate(sp, nil, req, "")
	require.NoError(t, err)
	assert.True(t, d.Accepted())
}

func TestCheckConflictsToleranceWindow(t *testing.T) {
	existing := []scheduling.Booking{
		{ID: "iv-1", Start: "10:00:00", DurationMinutes: 60},
	}

	cases := []struct {
		name     string
		start    string
		duration int
		conflict bool
	}{
		{"same slot", "10:00:00", 60, true},
		{"half-hour later", "10:30:00", 60, true},
		{"existing start on tolerance boundary", "11:00:00", 60, true},
		{"existing end on tolerance boundary", "12:00:00", 60, true},
		{"just past both tolerances", "12:01:00", 60, false},
		{"just before tolerance", "08:59:00", 60, false},
		{"existing start inside earlier tolerance", "09:30:00", 60, true},
		{"short candidate far from booking", "13:00:00", 30, false},
		// The tolerance heuristic is blind to how long the existing
		// booking actually runs: a candidate far enough from both the
		// start and end instants passes even if a textbook interval
		// check would flag it.
		{"inside long booking but between tolerances", "12:00:00", 30, false},
	}

	long := []scheduling.Booking{
		{ID: "iv-2", Start: "10:00:00", DurationMinutes: 240},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := existing
			if tc.name == "inside long booking but between tolerances" {
				set = long
			}
			conflict, err := scheduling.CheckConflicts(set, tc.start, tc.duration, "")
			require.NoError(t, err)
			assert.Equal(t, tc.conflict, conflict)
		})
	}
}

func TestCheckConflictsExcludesTransferredInterview(t *testing.T) {
	existing := []scheduling.Booking{
		{ID: "iv-moved", Start: "10:00:00", DurationMinutes: 60},
		{ID: "iv-other", Start: "14:00:00", DurationMinutes: 60},
	}

	// The moved interview's own slot must not collide with itself.
	conflict, err := scheduling.CheckConflicts(existing, "10:00:00", 60, "iv-moved")
	require.NoError(t, err)
	assert.False(t, conflict)

	// But it still collides with genuinely occupied slots.
	conflict, err = scheduling.CheckConflicts(existing, "14:30:00", 60, "iv-moved")
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestCheckSkillMatch(t *testing.T) {
	t.Run("three of five required gives 60 percent and fails", func(t *testing.T) {
		ok, percent := scheduling.CheckSkillMatch(
			[]string{"a", "b", "c"},
			[]string{"a", "b", "c", "d", "e"},
		)
		assert.False(t, ok)
		assert.Equal(t, 60, percent)
	})

	t.Run("four of five required gives exactly 80 percent and passes", func(t *testing.T) {
		ok, percent := scheduling.CheckSkillMatch(
			[]string{"a", "b", "c", "d"},
			[]string{"a", "b", "c", "d", "e"},
		)
		assert.True(t, ok)
		assert.Equal(t, 80, percent)
	})

	t.Run("percent is rounded half away from zero", func(t *testing.T) {
		// 5/6 = 83.33 -> 83, 1/6 = 16.67 -> 17
		_, percent := scheduling.CheckSkillMatch(
			[]string{"a", "b", "c", "d", "e"},
			[]string{"a", "b", "c", "d", "e", "f"},
		)
		assert.Equal(t, 83, percent)

		_, percent = scheduling.CheckSkillMatch(
			[]string{"a"},
			[]string{"a", "x", "y", "z", "w", "v"},
		)
		assert.Equal(t, 17, percent)
	})

	t.Run("empty required set skips the check", func(t *testing.T) {
		ok, _ := scheduling.CheckSkillMatch([]string{"a"}, nil)
		assert.True(t, ok)
	})

	t.Run("specialist with no recorded skills skips the check", func(t *testing.T) {
		ok, _ := scheduling.CheckSkillMatch(nil, []string{"a", "b"})
		assert.True(t, ok)
	})
}

func TestValidateSkillMatchRejection(t *testing.T) {
	sp := scheduling.Specialist{
		AvailableFrom: "09:00:00",
		AvailableTo:   "17:00:00",
		SkillIDs:      []string{"a", "b", "c"},
	}
	req := scheduling.Request{
		Start:            "10:00:00",
		DurationMinutes:  60,
		RequiredSkillIDs: []string{"a", "b", "c", "d", "e"},
	}

	d, err := scheduling.Validate(sp, nil, req, "")
	require.NoError(t, err)
	assert.Equal(t, scheduling.CodeInsufficientSkillMatch, d.Code)
	assert.Equal(t, 60, d.MatchPercentage)
}

func TestValidateCheckOrder(t *testing.T) {
	// Out-of-window wins over a conflict, a conflict wins over skills.
	sp := scheduling.Specialist{
		AvailableFrom: "09:00:00",
		AvailableTo:   "17:00:00",
		SkillIDs:      []string{"a"},
	}
	existing := []scheduling.Booking{{ID: "iv-1", Start: "09:00:00", DurationMinutes: 600}}

	d, err := scheduling.Validate(sp, existing, scheduling.Request{
		Start: "08:00:00", DurationMinutes: 60, RequiredSkillIDs: []string{"x", "y"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, scheduling.CodeOutOfAvailabilityWindow, d.Code)

	d, err = scheduling.Validate(sp, existing, scheduling.Request{
		Start: "10:00:00", DurationMinutes: 60, RequiredSkillIDs: []string{"x", "y"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, scheduling.CodeTimeSlotConflict, d.Code)
}

func TestValidateIsIdempotent(t *testing.T) {
	sp := scheduling.Specialist{
		AvailableFrom: "09:00:00",
		AvailableTo:   "17:00:00",
		SkillIDs:      []string{"a", "b"},
	}
	existing := []scheduling.Booking{{ID: "iv-1", Start: "11:00:00", DurationMinutes: 60}}
	req := scheduling.Request{Start: "11:30:00", DurationMinutes: 60, RequiredSkillIDs: []string{"a"}}

	first, err := scheduling.Validate(sp, existing, req, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := scheduling.Validate(sp, existing, req, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestValidateRejectsMalformedTime(t *testing.T) {
	sp := scheduling.Specialist{AvailableFrom: "09:00:00", AvailableTo: "17:00:00"}

	_, err := scheduling.Validate(sp, nil, scheduling.Request{Start: "25:99", DurationMinutes: 60}, "")
	assert.Error(t, err)
}

func TestRejectionErrorMessages(t *testing.T) {
	err := &scheduling.RejectionError{Decision: scheduling.Decision{
		Code:            scheduling.CodeInsufficientSkillMatch,
		MatchPercentage: 60,
	}}
	assert.Contains(t, err.Error(), "60%")
}
