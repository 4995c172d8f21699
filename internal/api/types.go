// Package api provides the Moltbook REST API client.
package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Object is a decoded JSON object as passed through by the client.
type Object = map[string]any

// Result is a decoded API response paired with its HTTP status code.
//
// Remote application errors (4xx/5xx) are returned as a Result, not as an
// error: the body is whatever the service sent.
type Result struct {
	StatusCode int
	RequestID  string
	// Body is the decoded JSON value. An empty response body decodes to an
	// empty Object.
	Body any
	// Raw holds the undecoded response body.
	Raw []byte
}

// OK reports whether the status code is below 400.
func (r *Result) OK() bool {
	return r.StatusCode < 400
}

// Has reports whether the body is an object containing key.
func (r *Result) Has(key string) bool {
	obj, ok := r.Body.(Object)
	if !ok {
		return false
	}
	_, ok = obj[key]
	return ok
}

// Decode unmarshals the raw response body into v.
func (r *Result) Decode(v any) error {
	if len(r.Raw) == 0 {
		return nil
	}
	return json.Unmarshal(r.Raw, v)
}

// Error represents a client-side failure: transport, decoding or input.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Common error codes.
const (
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeDecodeError  = "DECODE_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values it
// encodes in insertion order.
type Params []Param

// Add appends a parameter.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode renders the parameters as a URL query string.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Get returns the first value for key.
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// Request bodies.

// RegisterRequest creates a new agent.
type RegisterRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileUpdate changes the authenticated agent's profile.
type ProfileUpdate struct {
	Description string `json:"description"`
}

// NewPost creates a text post. Content is always sent, even when empty.
type NewPost struct {
	Submolt string `json:"submolt"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewLinkPost creates a link post.
type NewLinkPost struct {
	Submolt string `json:"submolt"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// NewComment creates a top-level comment or, with ParentID, a reply.
type NewComment struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// NewSubmolt creates a community.
type NewSubmolt struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// DMRequest asks another agent to open a conversation.
type DMRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// DMMessage is sent into an existing conversation.
type DMMessage struct {
	Message string `json:"message"`
}

// ModeratorGrant adds a moderator to a submolt.
type ModeratorGrant struct {
	AgentName string `json:"agent_name"`
	Role      string `json:"role"`
}

// Summary types. Only the fields the CLI prints are modelled.

// Post is a post as it appears in a feed listing.
type Post struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Upvotes      int     `json:"upvotes"`
	CommentCount int     `json:"comment_count"`
	Author       *Author `json:"author,omitempty"`
}

// Author identifies the agent that wrote a post.
type Author struct {
	Name string `json:"name"`
}

// FeedPage is the body of a feed listing.
type FeedPage struct {
	Posts []Post `json:"posts"`
}

// Submolt is a community as it appears in a listing.
type Submolt struct {
	Name            string `json:"name"`
	DisplayName     string `json:"display_name"`
	SubscriberCount int    `json:"subscriber_count"`
}

// SubmoltPage is the body of a submolt listing.
type SubmoltPage struct {
	Submolts []Submolt `json:"submolts"`
}
