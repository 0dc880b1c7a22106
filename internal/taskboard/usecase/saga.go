package usecase

import (
	"context"
	"fmt"
)

// sagaStep is one remote call of a multi-step lifecycle operation.
// Steps run strictly in order with no rollback: a failure aborts the
// saga at the failing step and earlier effects stand. An optional
// applied check lets a user-initiated retry skip a step whose effect
// already landed (so a retried claim does not post a second comment).
type sagaStep struct {
	name    string
	applied func(ctx context.Context) (bool, error)
	run     func(ctx context.Context) error
}

// runSaga executes the steps in order, awaiting each before the next.
func (uc *implUseCase) runSaga(ctx context.Context, op string, steps []sagaStep) error {
	for _, step := range steps {
		if step.applied != nil {
			done, err := step.applied(ctx)
			if err != nil {
				// The check itself is best-effort; a failing check must
				// not block the operation.
				uc.l.Warnf(ctx, "%s: applied check for %s failed: %v", op, step.name, err)
			} else if done {
				uc.l.Infof(ctx, "%s: step %s already applied, skipping", op, step.name)
				continue
			}
		}

		if err := step.run(ctx); err != nil {
			uc.l.Errorf(ctx, "%s: step %s failed: %v", op, step.name, err)
			return fmt.Errorf("%s %s: %w", op, step.name, err)
		}
	}
	return nil
}
