package auth

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// EnvKey names the API key in the dotfile and in the process environment.
const EnvKey = "MOLTBOOK_API_KEY"

// Source identifies where an API key was found.
type Source string

const (
	SourceDotfile    Source = "dotfile"
	SourceConfigFile Source = "config-file"
	SourceEnv        Source = "env"
	SourceNone       Source = "none"
)

// Loader resolves the API key from, in order: a dotfile entry
// MOLTBOOK_API_KEY=<key>, the api_key field of the credentials file, and
// the MOLTBOOK_API_KEY environment variable. The first non-empty value wins.
type Loader struct {
	// DotfilePath is the .env style file checked first. Empty skips it.
	DotfilePath string
	// Store holds the credentials file checked second. Nil skips it.
	Store *Store
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	Logger *slog.Logger
}

// Load returns the API key and its source. A missing key is not an error:
// it yields "" and SourceNone, and requests go out unauthenticated.
func (l *Loader) Load() (string, Source) {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if key := l.fromDotfile(logger); key != "" {
		logger.Debug("api key loaded", "source", SourceDotfile, "path", l.DotfilePath)
		return key, SourceDotfile
	}

	if key := l.fromStore(logger); key != "" {
		logger.Debug("api key loaded", "source", SourceConfigFile, "path", l.Store.Path())
		return key, SourceConfigFile
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if key := getenv(EnvKey); key != "" {
		logger.Debug("api key loaded", "source", SourceEnv)
		return key, SourceEnv
	}

	logger.Debug("no api key found")
	return "", SourceNone
}

// fromDotfile returns the value of the first line that starts with
// MOLTBOOK_API_KEY=. Other lines are ignored, valid or not. The value is
// everything after the first '=', trimmed, with one pair of matching
// surrounding quotes removed.
func (l *Loader) fromDotfile(logger *slog.Logger) string {
	if l.DotfilePath == "" {
		return ""
	}

	f, err := os.Open(l.DotfilePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("dotfile unreadable", "path", l.DotfilePath, "error", err)
		}
		return ""
	}
	defer f.Close()

	prefix := EnvKey + "="
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, prefix) {
			return unquote(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Debug("dotfile unreadable", "path", l.DotfilePath, "error", err)
	}
	return ""
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func (l *Loader) fromStore(logger *slog.Logger) string {
	if l.Store == nil {
		return ""
	}
	creds, err := l.Store.Load()
	if err != nil {
		if err != ErrNoCredentials {
			logger.Debug("credentials file unreadable", "path", l.Store.Path(), "error", err)
		}
		return ""
	}
	return creds.APIKey
}
