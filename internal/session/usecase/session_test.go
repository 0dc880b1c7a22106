package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grassroots-tasks/internal/session"
	"grassroots-tasks/internal/session/store/memory"
	pkgGithub "grassroots-tasks/pkg/github"
)

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

func newTestUseCase(handler http.Handler) (session.UseCase, session.Store, *httptest.Server) {
	ts := httptest.NewServer(handler)
	client := pkgGithub.NewClient(pkgGithub.Config{
		Owner:      "acme",
		Repo:       "tasks",
		APIBaseURL: ts.URL,
	})
	store := memory.New()
	return New(&mockLogger{}, store, client), store, ts
}

func TestLogin(t *testing.T) {
	uc, store, ts := newTestUseCase(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("path = %s, want /user", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer good-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"login":"alice","avatar_url":"https://a.png","name":"Alice","html_url":"https://github.com/alice"}`))
	}))
	defer ts.Close()

	out, err := uc.Login(context.Background(), session.LoginInput{Token: "good-token"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if out.Profile.Login != "alice" {
		t.Errorf("Profile.Login = %q, want alice", out.Profile.Login)
	}

	sc, ok := store.Get(out.SessionID)
	if !ok {
		t.Fatal("session not stored")
	}
	if sc.Token != "good-token" || sc.Profile.Login != "alice" {
		t.Errorf("stored scope = %+v", sc)
	}
}

func TestLoginInvalidToken(t *testing.T) {
	uc, _, ts := newTestUseCase(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer ts.Close()

	_, err := uc.Login(context.Background(), session.LoginInput{Token: "bad-token"})
	if !errors.Is(err, session.ErrInvalidToken) {
		t.Fatalf("Login() error = %v, want ErrInvalidToken", err)
	}
}

func TestLoginEmptyToken(t *testing.T) {
	uc, _, ts := newTestUseCase(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote store must not be called for an empty token")
	}))
	defer ts.Close()

	_, err := uc.Login(context.Background(), session.LoginInput{})
	if !errors.Is(err, session.ErrInvalidToken) {
		t.Fatalf("Login() error = %v, want ErrInvalidToken", err)
	}
}

func TestCurrentAndLogout(t *testing.T) {
	uc, _, ts := newTestUseCase(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login":"alice"}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	out, err := uc.Login(ctx, session.LoginInput{Token: "t"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	sc, err := uc.Current(ctx, out.SessionID)
	if err != nil || sc.Profile.Login != "alice" {
		t.Fatalf("Current() = %+v, %v", sc, err)
	}

	if err := uc.Logout(ctx, out.SessionID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := uc.Current(ctx, out.SessionID); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("Current() after Logout error = %v, want ErrNoSession", err)
	}

	// Logout for an unknown session is a no-op.
	if err := uc.Logout(ctx, "missing"); err != nil {
		t.Fatalf("Logout(missing) error = %v", err)
	}
}
