package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/ent"
	"github.com/abhisek/quizforge/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetQuizID(data.QuizID).
		SetAttemptID(data.AttemptID).
		SetAction(data.Action).
		SetQuestionID(data.QuestionID).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetTotalQuestions(data.TotalQuestions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, learnerID, quizID string) ([]AttemptEventRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.QuizID(quizID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptEventRecord, len(events))
	for i, e := range events {
		records[i] = AttemptEventRecord{
			AttemptEventData: AttemptEventData{
				LearnerID:      e.LearnerID,
				QuizID:         e.QuizID,
				AttemptID:      e.AttemptID,
				Action:         e.Action,
				QuestionID:     e.QuestionID,
				SelectedIndex:  e.SelectedIndex,
				Correct:        e.Correct,
				Score:          e.Score,
				TimeSpentSecs:  e.TimeSpentSecs,
				TotalQuestions: e.TotalQuestions,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) QueryAttemptSummaries(ctx context.Context, learnerID string, opts QueryOpts) ([]AttemptSummaryRecord, error) {
	query := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.Action(AttemptActionComplete),
		).
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt summaries: %w", err)
	}

	records := make([]AttemptSummaryRecord, len(events))
	for i, e := range events {
		records[i] = AttemptSummaryRecord{
			QuizID:         e.QuizID,
			AttemptID:      e.AttemptID,
			Score:          e.Score,
			TotalQuestions: e.TotalQuestions,
			TimeSpentSecs:  e.TimeSpentSecs,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}
