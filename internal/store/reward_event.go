package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/ent"
	"github.com/abhisek/quizforge/ent/achievementevent"
	"github.com/abhisek/quizforge/ent/xpevent"
)

func (r *eventRepo) AppendXPEvent(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetKind(data.Kind).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		SetStreakAfter(data.StreakAfter).
		SetLevelAfter(data.LevelAfter).
		SetTotalXpAfter(data.TotalXPAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryXPEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]XPEventRecord, error) {
	query := r.client.XPEvent.Query().
		Where(xpevent.LearnerID(learnerID)).
		Order(ent.Desc(xpevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(xpevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(xpevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(xpevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query xp events: %w", err)
	}

	records := make([]XPEventRecord, len(events))
	for i, e := range events {
		records[i] = XPEventRecord{
			XPEventData: XPEventData{
				LearnerID:    e.LearnerID,
				Kind:         e.Kind,
				Amount:       e.Amount,
				Reason:       e.Reason,
				StreakAfter:  e.StreakAfter,
				LevelAfter:   e.LevelAfter,
				TotalXPAfter: e.TotalXpAfter,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetAchievementID(data.AchievementID).
		SetName(data.Name).
		SetAchievementType(data.Type).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, learnerID string) ([]AchievementEventRecord, error) {
	events, err := r.client.AchievementEvent.Query().
		Where(achievementevent.LearnerID(learnerID)).
		Order(ent.Asc(achievementevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	records := make([]AchievementEventRecord, len(events))
	for i, e := range events {
		records[i] = AchievementEventRecord{
			AchievementEventData: AchievementEventData{
				LearnerID:     e.LearnerID,
				AchievementID: e.AchievementID,
				Name:          e.Name,
				Type:          e.AchievementType,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetLessonID(data.LessonID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
