package api

import (
	"context"

	"task-list/internal/domain"
)

// SampleDrafts returns the tasks a fresh screen shows before the user adds any.
func SampleDrafts() []domain.Draft {
	return []domain.Draft{
		{
			Title:        "Project daily stand-up",
			Description:  "At the conference center",
			TimeLabel:    "9:00 am",
			Participants: domain.NewParticipantSet(0, 1),
			Category:     domain.CategoryMeeting,
			Priority:     domain.PriorityHigh,
		},
		{
			Title:        "Internia new UI style",
			Description:  "Remember to bring presents",
			TimeLabel:    "11:00 am",
			Participants: domain.NewParticipantSet(2),
			Category:     domain.CategoryReview,
			Priority:     domain.PriorityMedium,
		},
		{
			Title:        "Weekly Review",
			Description:  "Wanda Square E5.",
			TimeLabel:    "3:00 pm",
			Participants: domain.NewParticipantSet(1, 3),
			Category:     domain.CategoryDesignProject,
			Priority:     domain.PriorityLow,
		},
		{
			Title:        "Interview",
			Description:  "Remember to bring laptop",
			TimeLabel:    "6:00 pm",
			Participants: domain.NewParticipantSet(0),
			Category:     domain.CategoryMeeting,
			Priority:     domain.PriorityNone,
		},
	}
}

// SeedSample creates the sample tasks through the store, in order.
func (s *session) SeedSample(ctx context.Context) error {
	for _, draft := range SampleDrafts() {
		if _, err := s.services.Store.Create(ctx, draft); err != nil {
			return err
		}
	}
	return nil
}
