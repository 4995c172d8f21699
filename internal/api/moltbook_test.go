package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
}

func newRecordingClient(t *testing.T) (*Client, *[]recorded) {
	t.Helper()

	var reqs []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recorded{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			body:   string(b),
		})
		w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(server.Close)

	return NewClient(WithBaseURL(server.URL), WithAPIKey("k")), &reqs
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(c *Client) (*Result, error)
		method string
		path   string
		query  string
		body   string
	}{
		{
			name:   "register",
			call:   func(c *Client) (*Result, error) { return c.Register(ctx, "Shrimp", "an oracle") },
			method: http.MethodPost, path: "/agents/register",
			body: `{"name":"Shrimp","description":"an oracle"}`,
		},
		{
			name:   "me",
			call:   func(c *Client) (*Result, error) { return c.Me(ctx) },
			method: http.MethodGet, path: "/agents/me",
		},
		{
			name:   "status",
			call:   func(c *Client) (*Result, error) { return c.Status(ctx) },
			method: http.MethodGet, path: "/agents/status",
		},
		{
			name:   "profile",
			call:   func(c *Client) (*Result, error) { return c.Profile(ctx, "Clawd") },
			method: http.MethodGet, path: "/agents/profile", query: "name=Clawd",
		},
		{
			name:   "update profile",
			call:   func(c *Client) (*Result, error) { return c.UpdateProfile(ctx, "new bio") },
			method: http.MethodPatch, path: "/agents/me",
			body: `{"description":"new bio"}`,
		},
		{
			name:   "follow",
			call:   func(c *Client) (*Result, error) { return c.Follow(ctx, "Clawd") },
			method: http.MethodPost, path: "/agents/Clawd/follow",
		},
		{
			name:   "unfollow",
			call:   func(c *Client) (*Result, error) { return c.Unfollow(ctx, "Clawd") },
			method: http.MethodDelete, path: "/agents/Clawd/follow",
		},
		{
			name: "create post",
			call: func(c *Client) (*Result, error) {
				return c.CreatePost(ctx, &NewPost{Submolt: "testsub", Title: "Hello", Content: "World"})
			},
			method: http.MethodPost, path: "/posts",
			body: `{"submolt":"testsub","title":"Hello","content":"World"}`,
		},
		{
			name: "create link post defaults submolt",
			call: func(c *Client) (*Result, error) {
				return c.CreateLinkPost(ctx, &NewLinkPost{Title: "Read", URL: "https://example.com"})
			},
			method: http.MethodPost, path: "/posts",
			body: `{"submolt":"general","title":"Read","url":"https://example.com"}`,
		},
		{
			name: "create post keeps empty content",
			call: func(c *Client) (*Result, error) {
				return c.CreatePost(ctx, &NewPost{Title: "Hello"})
			},
			method: http.MethodPost, path: "/posts",
			body: `{"submolt":"general","title":"Hello","content":""}`,
		},
		{
			name: "list posts",
			call: func(c *Client) (*Result, error) {
				return c.ListPosts(ctx, FeedOptions{Sort: "hot", Limit: 5})
			},
			method: http.MethodGet, path: "/posts", query: "sort=hot&limit=5",
		},
		{
			name: "list posts in submolt",
			call: func(c *Client) (*Result, error) {
				return c.ListPosts(ctx, FeedOptions{Sort: "new", Limit: 10, Submolt: "general"})
			},
			method: http.MethodGet, path: "/posts", query: "sort=new&limit=10&submolt=general",
		},
		{
			name:   "personal feed",
			call:   func(c *Client) (*Result, error) { return c.PersonalFeed(ctx, 3) },
			method: http.MethodGet, path: "/feed", query: "sort=new&limit=3",
		},
		{
			name:   "get post",
			call:   func(c *Client) (*Result, error) { return c.GetPost(ctx, "abc") },
			method: http.MethodGet, path: "/posts/abc",
		},
		{
			name:   "get post escapes id",
			call:   func(c *Client) (*Result, error) { return c.GetPost(ctx, "a/b") },
			method: http.MethodGet, path: "/posts/a%2Fb",
		},
		{
			name:   "delete post",
			call:   func(c *Client) (*Result, error) { return c.DeletePost(ctx, "abc") },
			method: http.MethodDelete, path: "/posts/abc",
		},
		{
			name:   "upvote",
			call:   func(c *Client) (*Result, error) { return c.Upvote(ctx, "abc") },
			method: http.MethodPost, path: "/posts/abc/upvote",
		},
		{
			name:   "downvote",
			call:   func(c *Client) (*Result, error) { return c.Downvote(ctx, "abc") },
			method: http.MethodPost, path: "/posts/abc/downvote",
		},
		{
			name:   "pin",
			call:   func(c *Client) (*Result, error) { return c.PinPost(ctx, "abc") },
			method: http.MethodPost, path: "/posts/abc/pin",
		},
		{
			name:   "comment",
			call:   func(c *Client) (*Result, error) { return c.CreateComment(ctx, "abc", "", "nice") },
			method: http.MethodPost, path: "/posts/abc/comments",
			body: `{"content":"nice"}`,
		},
		{
			name:   "reply",
			call:   func(c *Client) (*Result, error) { return c.CreateComment(ctx, "abc", "c1", "agreed") },
			method: http.MethodPost, path: "/posts/abc/comments",
			body: `{"content":"agreed","parent_id":"c1"}`,
		},
		{
			name:   "list comments",
			call:   func(c *Client) (*Result, error) { return c.ListComments(ctx, "abc", "top") },
			method: http.MethodGet, path: "/posts/abc/comments", query: "sort=top",
		},
		{
			name:   "upvote comment",
			call:   func(c *Client) (*Result, error) { return c.UpvoteComment(ctx, "c1") },
			method: http.MethodPost, path: "/comments/c1/upvote",
		},
		{
			name: "create submolt",
			call: func(c *Client) (*Result, error) {
				return c.CreateSubmolt(ctx, &NewSubmolt{Name: "oracles", DisplayName: "Oracles", Description: "d"})
			},
			method: http.MethodPost, path: "/submolts",
			body: `{"name":"oracles","display_name":"Oracles","description":"d"}`,
		},
		{
			name:   "list submolts",
			call:   func(c *Client) (*Result, error) { return c.ListSubmolts(ctx) },
			method: http.MethodGet, path: "/submolts",
		},
		{
			name:   "get submolt",
			call:   func(c *Client) (*Result, error) { return c.GetSubmolt(ctx, "oracles") },
			method: http.MethodGet, path: "/submolts/oracles",
		},
		{
			name:   "subscribe",
			call:   func(c *Client) (*Result, error) { return c.Subscribe(ctx, "oracles") },
			method: http.MethodPost, path: "/submolts/oracles/subscribe",
		},
		{
			name:   "unsubscribe",
			call:   func(c *Client) (*Result, error) { return c.Unsubscribe(ctx, "oracles") },
			method: http.MethodDelete, path: "/submolts/oracles/subscribe",
		},
		{
			name:   "add moderator",
			call:   func(c *Client) (*Result, error) { return c.AddModerator(ctx, "oracles", "Clawd") },
			method: http.MethodPost, path: "/submolts/oracles/moderators",
			body: `{"agent_name":"Clawd","role":"moderator"}`,
		},
		{
			name: "search",
			call: func(c *Client) (*Result, error) {
				return c.Search(ctx, "shrimp oracle", SearchOptions{Type: "posts", Limit: 7})
			},
			method: http.MethodGet, path: "/search", query: "q=shrimp+oracle&type=posts&limit=7",
		},
		{
			name:   "dm check",
			call:   func(c *Client) (*Result, error) { return c.DMCheck(ctx) },
			method: http.MethodGet, path: "/agents/dm/check",
		},
		{
			name:   "dm requests",
			call:   func(c *Client) (*Result, error) { return c.DMRequests(ctx) },
			method: http.MethodGet, path: "/agents/dm/requests",
		},
		{
			name:   "dm approve",
			call:   func(c *Client) (*Result, error) { return c.DMApprove(ctx, "r1") },
			method: http.MethodPost, path: "/agents/dm/requests/r1/approve",
		},
		{
			name:   "dm conversations",
			call:   func(c *Client) (*Result, error) { return c.DMConversations(ctx) },
			method: http.MethodGet, path: "/agents/dm/conversations",
		},
		{
			name:   "dm conversation",
			call:   func(c *Client) (*Result, error) { return c.DMConversation(ctx, "conv1") },
			method: http.MethodGet, path: "/agents/dm/conversations/conv1",
		},
		{
			name:   "dm send",
			call:   func(c *Client) (*Result, error) { return c.DMSend(ctx, "conv1", "hi") },
			method: http.MethodPost, path: "/agents/dm/conversations/conv1/send",
			body: `{"message":"hi"}`,
		},
		{
			name:   "dm request",
			call:   func(c *Client) (*Result, error) { return c.DMRequest(ctx, "Clawd", "hello") },
			method: http.MethodPost, path: "/agents/dm/request",
			body: `{"to":"Clawd","message":"hello"}`,
		},
		{
			name:   "create post raw",
			call:   func(c *Client) (*Result, error) { return c.CreatePostRaw(ctx, Object{"title": "T"}) },
			method: http.MethodPost, path: "/posts",
			body: `{"title":"T"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, reqs := newRecordingClient(t)

			res, err := tt.call(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.OK() {
				t.Errorf("unexpected status %d", res.StatusCode)
			}

			if len(*reqs) != 1 {
				t.Fatalf("expected exactly 1 request, got %d", len(*reqs))
			}
			got := (*reqs)[0]
			if got.method != tt.method {
				t.Errorf("method = %s, want %s", got.method, tt.method)
			}
			if got.path != tt.path {
				t.Errorf("path = %s, want %s", got.path, tt.path)
			}
			if got.query != tt.query {
				t.Errorf("query = %q, want %q", got.query, tt.query)
			}
			if got.body != tt.body {
				t.Errorf("body = %s, want %s", got.body, tt.body)
			}
		})
	}
}
