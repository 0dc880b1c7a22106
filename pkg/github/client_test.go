package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"grassroots-tasks/pkg/github"
)

func newTestClient(t *testing.T, mux *http.ServeMux) (*github.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client := github.NewClient(github.Config{
		Owner:      "grassroots-project",
		Repo:       "tasks",
		Token:      "test-token",
		APIBaseURL: ts.URL,
		RawBaseURL: ts.URL + "/raw",
	})
	return client, ts
}

func TestIssueOperations(t *testing.T) {
	var putLabels []string
	var postedComment string
	var addedAssignees, removedAssignees []string

	mux := http.NewServeMux()

	mux.HandleFunc("/repos/grassroots-project/tasks/issues", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != "open" {
			t.Errorf("expected state=open, got %q", r.URL.Query().Get("state"))
		}
		issues := []github.Issue{
			{Number: 1, Title: "Build landing page", Labels: []github.Label{{Name: "待领"}, {Name: "frontend"}}},
			{Number: 2, Title: "Some PR", PullRequest: &github.PullRef{URL: "x"}},
		}
		json.NewEncoder(w).Encode(issues)
	})

	mux.HandleFunc("/repos/grassroots-project/tasks/issues/1", func(w http.ResponseWriter, r *http.Request) {
		issue := github.Issue{
			Number:    1,
			Title:     "Build landing page",
			Labels:    []github.Label{{Name: "待领"}, {Name: "frontend"}},
			Assignees: []github.User{{Login: "alice"}},
		}
		json.NewEncoder(w).Encode(issue)
	})

	mux.HandleFunc("/repos/grassroots-project/tasks/issues/1/labels", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		var body struct {
			Labels []string `json:"labels"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		putLabels = body.Labels
		json.NewEncoder(w).Encode([]github.Label{})
	})

	mux.HandleFunc("/repos/grassroots-project/tasks/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var body struct {
				Body string `json:"body"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			postedComment = body.Body
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(github.Comment{ID: 10, Body: body.Body})
			return
		}
		json.NewEncoder(w).Encode([]github.Comment{{ID: 10, Body: "hello", User: github.User{Login: "alice"}}})
	})

	mux.HandleFunc("/repos/grassroots-project/tasks/issues/1/assignees", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Assignees []string `json:"assignees"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		switch r.Method {
		case http.MethodPost:
			addedAssignees = body.Assignees
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			removedAssignees = body.Assignees
		}
		json.NewEncoder(w).Encode(github.Issue{Number: 1})
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("ListIssues", func(t *testing.T) {
		issues, err := client.ListIssues(ctx, github.ListIssuesOptions{
			State: "open", Sort: "created", Direction: "desc", PerPage: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 2 {
			t.Fatalf("expected 2 issues, got %d", len(issues))
		}
		if issues[1].PullRequest == nil {
			t.Errorf("expected pull request marker on second issue")
		}
	})

	t.Run("GetLabels", func(t *testing.T) {
		labels, err := client.GetLabels(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(labels) != 2 || labels[0] != "待领" || labels[1] != "frontend" {
			t.Errorf("unexpected labels: %v", labels)
		}
	})

	t.Run("SetLabels", func(t *testing.T) {
		if err := client.SetLabels(ctx, 1, []string{"进行中", "frontend"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(putLabels) != 2 || putLabels[0] != "进行中" {
			t.Errorf("unexpected PUT labels: %v", putLabels)
		}
	})

	t.Run("AddComment", func(t *testing.T) {
		if err := client.AddComment(ctx, 1, "claiming this"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if postedComment != "claiming this" {
			t.Errorf("unexpected comment body: %q", postedComment)
		}
	})

	t.Run("ListComments", func(t *testing.T) {
		comments, err := client.ListComments(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(comments) != 1 || comments[0].User.Login != "alice" {
			t.Errorf("unexpected comments: %+v", comments)
		}
	})

	t.Run("Assignees", func(t *testing.T) {
		if err := client.AddAssignees(ctx, 1, []string{"bob"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(addedAssignees) != 1 || addedAssignees[0] != "bob" {
			t.Errorf("unexpected added assignees: %v", addedAssignees)
		}
		if err := client.RemoveAssignees(ctx, 1, []string{"bob"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(removedAssignees) != 1 || removedAssignees[0] != "bob" {
			t.Errorf("unexpected removed assignees: %v", removedAssignees)
		}
	})
}

func TestRemoteError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/grassroots-project/tasks/issues/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
	})

	client, _ := newTestClient(t, mux)

	_, err := client.GetIssue(context.Background(), 404)
	if err == nil {
		t.Fatal("expected error")
	}
	re, ok := github.AsRemoteError(err)
	if !ok {
		t.Fatalf("expected RemoteError, got %T", err)
	}
	if re.StatusCode != http.StatusNotFound || re.Message != "Not Found" {
		t.Errorf("unexpected remote error: %+v", re)
	}
}

func TestFetchDocument(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/raw/grassroots-project/tasks/main/data/people.md", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("## 成员\n### Alice\n"))
	})
	mux.HandleFunc("/repos/grassroots-project/tasks/contents/data/resources.md", func(w http.ResponseWriter, r *http.Request) {
		encoded := base64.StdEncoding.EncodeToString([]byte("## 资源列表\n### Server\n"))
		json.NewEncoder(w).Encode(map[string]string{
			"content":  encoded,
			"encoding": "base64",
		})
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("Raw", func(t *testing.T) {
		text, err := client.FetchRawDocument(ctx, "data/people.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "## 成员\n### Alice\n" {
			t.Errorf("unexpected raw text: %q", text)
		}
	})

	t.Run("ContentsFallback", func(t *testing.T) {
		// No raw route for resources.md: FetchDocument must fall back
		// to the contents API and decode base64.
		text, err := client.FetchDocument(ctx, "data/resources.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "## 资源列表\n### Server\n" {
			t.Errorf("unexpected decoded text: %q", text)
		}
	})
}

func TestValidateToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
			return
		}
		json.NewEncoder(w).Encode(github.User{Login: "alice", AvatarURL: "https://example.com/a.png"})
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		user, err := client.ValidateToken(ctx, "good-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Login != "alice" {
			t.Errorf("unexpected login: %s", user.Login)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := client.ValidateToken(ctx, "bad-token")
		if err == nil {
			t.Fatal("expected error for bad token")
		}
		re, ok := github.AsRemoteError(err)
		if !ok || re.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 remote error, got %v", err)
		}
	})
}

func TestWithToken(t *testing.T) {
	var auths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/grassroots-project/tasks/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})
	client, _ := newTestClient(t, mux)

	ctx := context.Background()
	if err := client.WithToken("caller-token").AddComment(ctx, 1, "hi"); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if err := client.WithToken("").AddComment(ctx, 1, "hi"); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	// The derived client presents the given credential; an empty token
	// falls back to the base client untouched.
	want := []string{"Bearer caller-token", "Bearer test-token"}
	if !reflect.DeepEqual(auths, want) {
		t.Errorf("Authorization headers = %q, want %q", auths, want)
	}
	if got := client.WithToken("test-token"); got != client {
		t.Error("WithToken with the base token should return the same client")
	}
}
