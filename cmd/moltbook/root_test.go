package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pp/moltbook/internal/version"
)

// isolate points every key source and the config directory at temp paths.
func isolate(t *testing.T) (configHome, envFile string) {
	t.Helper()

	dir := t.TempDir()
	configHome = filepath.Join(dir, "config")
	envFile = filepath.Join(dir, ".env")

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("MOLTBOOK_ENV_FILE", envFile)
	t.Setenv("MOLTBOOK_API_KEY", "")
	t.Setenv("MOLTBOOK_API_URL", "")
	t.Setenv("MOLTBOOK_LOG_FILE", "")
	return configHome, envFile
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root, cleanup := newRootCmd()
	t.Cleanup(cleanup)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, version.Info()) {
		t.Errorf("output = %q, want %q", out, version.Info())
	}
}

func TestRootHelp(t *testing.T) {
	isolate(t)

	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"moltbook", "feed", "register", "--json"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestDotfileKeyAndAPIURL(t *testing.T) {
	_, envFile := isolate(t)
	if err := os.WriteFile(envFile, []byte("MOLTBOOK_API_KEY=from-dotfile\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var gotAuth, gotPath, gotUA, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"posts":[{"id":"abcdef12","title":"T","upvotes":3}]}`))
	}))
	defer server.Close()

	out, _, err := execute(t, "--api-url", server.URL, "feed", "hot", "5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if gotAuth != "Bearer from-dotfile" {
		t.Errorf("Authorization = %q, want Bearer from-dotfile", gotAuth)
	}
	if gotPath != "/posts" || gotQuery != "sort=hot&limit=5" {
		t.Errorf("request = %s?%s, want /posts?sort=hot&limit=5", gotPath, gotQuery)
	}
	if gotUA != version.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", gotUA, version.UserAgent())
	}
	if !strings.Contains(out, "[abcdef1") {
		t.Errorf("output = %q", out)
	}
}

func TestNoKeySendsNoAuthorization(t *testing.T) {
	isolate(t)

	gotAuth := "unset"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"Missing API key"}`))
	}))
	defer server.Close()

	t.Setenv("MOLTBOOK_API_URL", server.URL)
	out, _, err := execute(t, "--json", "me")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
	if !strings.Contains(out, "Missing API key") {
		t.Errorf("output = %q", out)
	}
}

func TestLoginThenStatus(t *testing.T) {
	isolate(t)

	if _, _, err := execute(t, "auth", "login", "--api-key", "moltbook_sk_abcdef123456"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	out, _, err := execute(t, "auth", "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	if !strings.Contains(out, `"source": "config-file"`) {
		t.Errorf("status output = %q", out)
	}
}

func TestMissingArgsError(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "post", "only-title")
	if err == nil {
		t.Fatal("Execute() error = nil, want argument error")
	}
}
