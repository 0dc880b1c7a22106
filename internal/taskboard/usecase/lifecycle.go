package usecase

import (
	"context"
	"fmt"
	"strings"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/taskboard"
)

// Comment bodies posted by the lifecycle operations. The bold marker
// doubles as the idempotency token for retry detection.
const (
	claimCommentMarker    = "**领取任务**"
	unclaimCommentMarker  = "**放弃任务**"
	completeCommentMarker = "**完成任务**"
)

func claimComment(login string) string {
	return fmt.Sprintf("🙋 %s\n\n@%s 领取了这个任务。", claimCommentMarker, login)
}

func unclaimComment(login string) string {
	return fmt.Sprintf("👋 %s\n\n@%s 放弃了这个任务，任务重新开放。", unclaimCommentMarker, login)
}

func completeComment(login string) string {
	return fmt.Sprintf("✅ %s\n\n@%s 标记任务为已完成。", completeCommentMarker, login)
}

// Claim takes an open task for the caller. Ordered effects: attribution
// comment, 待领 → 进行中, assign. No rollback on partial failure; the
// caller surfaces the error and may retry.
func (uc *implUseCase) Claim(ctx context.Context, sc model.Scope, number int) error {
	if !sc.Authenticated() {
		return taskboard.ErrNotAuthenticated
	}
	login := sc.Profile.Login
	uc.l.Infof(ctx, "taskboard: claim #%d by %s", number, login)

	return uc.runSaga(ctx, "claim", []sagaStep{
		{
			name:    "comment",
			applied: uc.commentApplied(number, login, claimCommentMarker),
			run: func(ctx context.Context) error {
				return uc.repo.AddComment(ctx, sc, number, claimComment(login))
			},
		},
		{
			name: "labels",
			run: func(ctx context.Context) error {
				return uc.UpdateLabels(ctx, sc, number, []string{taskboard.LabelUnclaimed}, []string{taskboard.LabelInProgress})
			},
		},
		{
			name: "assign",
			run: func(ctx context.Context) error {
				return uc.repo.AddAssignee(ctx, sc, number, login)
			},
		},
	})
}

// Unclaim releases a held task: release comment, 进行中 → 待领,
// unassign.
func (uc *implUseCase) Unclaim(ctx context.Context, sc model.Scope, number int) error {
	if !sc.Authenticated() {
		return taskboard.ErrNotAuthenticated
	}
	login := sc.Profile.Login
	uc.l.Infof(ctx, "taskboard: unclaim #%d by %s", number, login)

	return uc.runSaga(ctx, "unclaim", []sagaStep{
		{
			name: "comment",
			run: func(ctx context.Context) error {
				return uc.repo.AddComment(ctx, sc, number, unclaimComment(login))
			},
		},
		{
			name: "labels",
			run: func(ctx context.Context) error {
				return uc.UpdateLabels(ctx, sc, number, []string{taskboard.LabelInProgress}, []string{taskboard.LabelUnclaimed})
			},
		},
		{
			name: "unassign",
			run: func(ctx context.Context) error {
				return uc.repo.RemoveAssignee(ctx, sc, number, login)
			},
		},
	})
}

// Complete marks a task done: completion comment, any of {进行中, 待领}
// replaced by 已完成. The assignee set stays untouched.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, number int) error {
	if !sc.Authenticated() {
		return taskboard.ErrNotAuthenticated
	}
	login := sc.Profile.Login
	uc.l.Infof(ctx, "taskboard: complete #%d by %s", number, login)

	return uc.runSaga(ctx, "complete", []sagaStep{
		{
			name: "comment",
			run: func(ctx context.Context) error {
				return uc.repo.AddComment(ctx, sc, number, completeComment(login))
			},
		},
		{
			name: "labels",
			run: func(ctx context.Context) error {
				return uc.UpdateLabels(ctx, sc, number,
					[]string{taskboard.LabelInProgress, taskboard.LabelUnclaimed},
					[]string{taskboard.LabelCompleted})
			},
		},
	})
}

// UpdateLabels fetches the current label set, applies the swap and
// writes the full set back. The label endpoint is a full replace, so
// the write must carry every label that should survive.
func (uc *implUseCase) UpdateLabels(ctx context.Context, sc model.Scope, number int, toRemove, toAdd []string) error {
	current, err := uc.repo.GetLabels(ctx, number)
	if err != nil {
		return fmt.Errorf("fetch labels: %w", err)
	}

	next := taskboard.UpdateLabelSet(current, toRemove, toAdd)
	if err := uc.repo.SetLabels(ctx, sc, number, next); err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	return nil
}

// commentApplied builds the retry check for an attribution comment:
// the step is already applied when the same actor has posted a comment
// carrying the marker.
func (uc *implUseCase) commentApplied(number int, login, marker string) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		comments, err := uc.repo.ListComments(ctx, number)
		if err != nil {
			return false, err
		}
		for _, c := range comments {
			if c.Author == login && strings.Contains(c.Body, marker) {
				return true, nil
			}
		}
		return false, nil
	}
}
