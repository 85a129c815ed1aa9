package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/ent/achievementevent"
	"github.com/abhisek/quizforge/ent/attemptevent"
	"github.com/abhisek/quizforge/ent/lessonevent"
	"github.com/abhisek/quizforge/ent/snapshot"
	"github.com/abhisek/quizforge/ent/xpevent"
)

// DeleteLearner removes every event and snapshot belonging to one learner.
// Other learners in the same database are untouched.
func (s *Store) DeleteLearner(ctx context.Context, learnerID string) error {
	if _, err := s.client.AttemptEvent.Delete().
		Where(attemptevent.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete attempt events: %w", err)
	}
	if _, err := s.client.XPEvent.Delete().
		Where(xpevent.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete xp events: %w", err)
	}
	if _, err := s.client.AchievementEvent.Delete().
		Where(achievementevent.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete achievement events: %w", err)
	}
	if _, err := s.client.LessonEvent.Delete().
		Where(lessonevent.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete lesson events: %w", err)
	}
	if _, err := s.client.Snapshot.Delete().
		Where(snapshot.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
