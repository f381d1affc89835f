package domain

import (
	"fmt"

	"go-interview-scheduler/internal/scheduling"
)

// RevalidationError reports that updating a specialist would invalidate
// one of their already scheduled interviews.
type RevalidationError struct {
	InterviewID   string
	CandidateName string
	InterviewTime string
	Decision      scheduling.Decision
}

func (e *RevalidationError) Error() string {
	switch e.Decision.Code {
	case scheduling.CodeOutOfAvailabilityWindow:
		return fmt.Sprintf("existing interview with %s at %s falls outside the new availability window",
			e.CandidateName, e.InterviewTime)
	case scheduling.CodeInsufficientSkillMatch:
		return fmt.Sprintf("skill match for existing interview with %s at %s is only %d%% (minimum %d%% required)",
			e.CandidateName, e.InterviewTime, e.Decision.MatchPercentage, int(scheduling.MatchThreshold))
	default:
		return fmt.Sprintf("existing interview with %s at %s no longer validates", e.CandidateName, e.InterviewTime)
	}
}
