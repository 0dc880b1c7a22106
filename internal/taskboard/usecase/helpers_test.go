package usecase

import (
	"context"
	"errors"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/taskboard/repository"
)

// Mock logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeTaskRepo is a single-issue in-memory task repository that records
// call order so tests can assert step sequencing.
type fakeTaskRepo struct {
	tasks     []model.Task
	labels    []string
	assignees []string
	comments  []repository.Comment

	// failOn makes the named method return an error.
	failOn string

	// getErr short-circuits GetTask, for error mapping tests.
	getErr error

	calls []string
}

var errFakeRepo = errors.New("fake repo failure")

func (f *fakeTaskRepo) fail(method string) bool { return f.failOn == method }

func (f *fakeTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	f.calls = append(f.calls, "ListTasks")
	if f.fail("ListTasks") {
		return nil, errFakeRepo
	}
	if len(opt.Labels) > 0 {
		matched := []model.Task{}
		for _, t := range f.tasks {
			for _, l := range t.Labels {
				if l == opt.Labels[0] {
					matched = append(matched, t)
					break
				}
			}
		}
		return matched, nil
	}
	return f.tasks, nil
}

func (f *fakeTaskRepo) GetTask(ctx context.Context, number int) (model.Task, error) {
	f.calls = append(f.calls, "GetTask")
	if f.getErr != nil {
		return model.Task{}, f.getErr
	}
	return model.Task{Number: number, Labels: f.labels, Assignees: f.assignees}, nil
}

func (f *fakeTaskRepo) GetLabels(ctx context.Context, number int) ([]string, error) {
	f.calls = append(f.calls, "GetLabels")
	if f.fail("GetLabels") {
		return nil, errFakeRepo
	}
	return append([]string(nil), f.labels...), nil
}

func (f *fakeTaskRepo) SetLabels(ctx context.Context, sc model.Scope, number int, labels []string) error {
	f.calls = append(f.calls, "SetLabels")
	if f.fail("SetLabels") {
		return errFakeRepo
	}
	f.labels = labels
	return nil
}

func (f *fakeTaskRepo) AddComment(ctx context.Context, sc model.Scope, number int, body string) error {
	f.calls = append(f.calls, "AddComment")
	if f.fail("AddComment") {
		return errFakeRepo
	}
	f.comments = append(f.comments, repository.Comment{Author: sc.Profile.Login, Body: body})
	return nil
}

func (f *fakeTaskRepo) ListComments(ctx context.Context, number int) ([]repository.Comment, error) {
	f.calls = append(f.calls, "ListComments")
	if f.fail("ListComments") {
		return nil, errFakeRepo
	}
	return append([]repository.Comment(nil), f.comments...), nil
}

func (f *fakeTaskRepo) AddAssignee(ctx context.Context, sc model.Scope, number int, login string) error {
	f.calls = append(f.calls, "AddAssignee")
	if f.fail("AddAssignee") {
		return errFakeRepo
	}
	for _, a := range f.assignees {
		if a == login {
			return nil
		}
	}
	f.assignees = append(f.assignees, login)
	return nil
}

func (f *fakeTaskRepo) RemoveAssignee(ctx context.Context, sc model.Scope, number int, login string) error {
	f.calls = append(f.calls, "RemoveAssignee")
	if f.fail("RemoveAssignee") {
		return errFakeRepo
	}
	kept := f.assignees[:0]
	for _, a := range f.assignees {
		if a != login {
			kept = append(kept, a)
		}
	}
	f.assignees = kept
	return nil
}

func scopeFor(login string) model.Scope {
	return model.Scope{
		Token:   "token-" + login,
		Profile: model.Profile{Login: login},
	}
}
