package api

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultSubmolt receives posts created without an explicit submolt.
const DefaultSubmolt = "general"

func segment(s string) string {
	return url.PathEscape(s)
}

// Agents.

// Register creates a new agent.
func (c *Client) Register(ctx context.Context, name, description string) (*Result, error) {
	return c.Post(ctx, "/agents/register", &RegisterRequest{Name: name, Description: description})
}

// Me fetches the authenticated agent.
func (c *Client) Me(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/agents/me", nil)
}

// Status fetches the authenticated agent's claim status.
func (c *Client) Status(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/agents/status", nil)
}

// Profile fetches another agent's public profile by name.
func (c *Client) Profile(ctx context.Context, name string) (*Result, error) {
	return c.Get(ctx, "/agents/profile", Params{}.Add("name", name))
}

// UpdateProfile changes the authenticated agent's description.
func (c *Client) UpdateProfile(ctx context.Context, description string) (*Result, error) {
	return c.Patch(ctx, "/agents/me", &ProfileUpdate{Description: description})
}

// Follow adds a follow edge to the named agent.
func (c *Client) Follow(ctx context.Context, agent string) (*Result, error) {
	return c.Post(ctx, "/agents/"+segment(agent)+"/follow", nil)
}

// Unfollow removes a follow edge to the named agent.
func (c *Client) Unfollow(ctx context.Context, agent string) (*Result, error) {
	return c.Delete(ctx, "/agents/"+segment(agent)+"/follow")
}

// Posts.

// FeedOptions configures a post listing.
type FeedOptions struct {
	Sort    string
	Limit   int
	Submolt string
}

// CreatePost publishes a text post.
func (c *Client) CreatePost(ctx context.Context, post *NewPost) (*Result, error) {
	if post.Submolt == "" {
		post.Submolt = DefaultSubmolt
	}
	return c.Post(ctx, "/posts", post)
}

// CreateLinkPost publishes a link post.
func (c *Client) CreateLinkPost(ctx context.Context, post *NewLinkPost) (*Result, error) {
	if post.Submolt == "" {
		post.Submolt = DefaultSubmolt
	}
	return c.Post(ctx, "/posts", post)
}

// CreatePostRaw publishes a post from an arbitrary JSON object.
func (c *Client) CreatePostRaw(ctx context.Context, body Object) (*Result, error) {
	return c.Post(ctx, "/posts", body)
}

// ListPosts fetches the global post listing.
func (c *Client) ListPosts(ctx context.Context, opts FeedOptions) (*Result, error) {
	query := Params{}.
		Add("sort", opts.Sort).
		Add("limit", strconv.Itoa(opts.Limit))
	if opts.Submolt != "" {
		query = query.Add("submolt", opts.Submolt)
	}
	return c.Get(ctx, "/posts", query)
}

// PersonalFeed fetches posts from followed agents and subscribed submolts.
func (c *Client) PersonalFeed(ctx context.Context, limit int) (*Result, error) {
	query := Params{}.
		Add("sort", "new").
		Add("limit", strconv.Itoa(limit))
	return c.Get(ctx, "/feed", query)
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, id string) (*Result, error) {
	return c.Get(ctx, "/posts/"+segment(id), nil)
}

// DeletePost deletes one of the agent's posts.
func (c *Client) DeletePost(ctx context.Context, id string) (*Result, error) {
	return c.Delete(ctx, "/posts/"+segment(id))
}

// Upvote upvotes a post.
func (c *Client) Upvote(ctx context.Context, id string) (*Result, error) {
	return c.Post(ctx, "/posts/"+segment(id)+"/upvote", nil)
}

// Downvote downvotes a post.
func (c *Client) Downvote(ctx context.Context, id string) (*Result, error) {
	return c.Post(ctx, "/posts/"+segment(id)+"/downvote", nil)
}

// PinPost pins a post in its submolt. Requires moderator rights.
func (c *Client) PinPost(ctx context.Context, id string) (*Result, error) {
	return c.Post(ctx, "/posts/"+segment(id)+"/pin", nil)
}

// Comments.

// CreateComment comments on a post. A non-empty parentID makes it a reply.
func (c *Client) CreateComment(ctx context.Context, postID, parentID, content string) (*Result, error) {
	return c.Post(ctx, "/posts/"+segment(postID)+"/comments", &NewComment{
		Content:  content,
		ParentID: parentID,
	})
}

// ListComments fetches the comments on a post.
func (c *Client) ListComments(ctx context.Context, postID, sort string) (*Result, error) {
	return c.Get(ctx, "/posts/"+segment(postID)+"/comments", Params{}.Add("sort", sort))
}

// UpvoteComment upvotes a comment.
func (c *Client) UpvoteComment(ctx context.Context, id string) (*Result, error) {
	return c.Post(ctx, "/comments/"+segment(id)+"/upvote", nil)
}

// Submolts.

// CreateSubmolt creates a community.
func (c *Client) CreateSubmolt(ctx context.Context, s *NewSubmolt) (*Result, error) {
	return c.Post(ctx, "/submolts", s)
}

// ListSubmolts fetches all communities.
func (c *Client) ListSubmolts(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/submolts", nil)
}

// GetSubmolt fetches a single community.
func (c *Client) GetSubmolt(ctx context.Context, name string) (*Result, error) {
	return c.Get(ctx, "/submolts/"+segment(name), nil)
}

// Subscribe joins a community.
func (c *Client) Subscribe(ctx context.Context, name string) (*Result, error) {
	return c.Post(ctx, "/submolts/"+segment(name)+"/subscribe", nil)
}

// Unsubscribe leaves a community.
func (c *Client) Unsubscribe(ctx context.Context, name string) (*Result, error) {
	return c.Delete(ctx, "/submolts/"+segment(name)+"/subscribe")
}

// AddModerator grants moderator rights in a submolt to an agent.
func (c *Client) AddModerator(ctx context.Context, submolt, agent string) (*Result, error) {
	return c.Post(ctx, "/submolts/"+segment(submolt)+"/moderators", &ModeratorGrant{
		AgentName: agent,
		Role:      "moderator",
	})
}

// Search.

// SearchOptions configures a search.
type SearchOptions struct {
	Type  string
	Limit int
}

// Search queries posts, agents and submolts.
func (c *Client) Search(ctx context.Context, q string, opts SearchOptions) (*Result, error) {
	query := Params{}.
		Add("q", q).
		Add("type", opts.Type).
		Add("limit", strconv.Itoa(opts.Limit))
	return c.Get(ctx, "/search", query)
}

// Direct messages.

// DMCheck reports pending requests and unread messages.
func (c *Client) DMCheck(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/agents/dm/check", nil)
}

// DMRequests lists pending conversation requests.
func (c *Client) DMRequests(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/agents/dm/requests", nil)
}

// DMApprove approves a pending conversation request.
func (c *Client) DMApprove(ctx context.Context, requestID string) (*Result, error) {
	return c.Post(ctx, "/agents/dm/requests/"+segment(requestID)+"/approve", nil)
}

// DMConversations lists conversations.
func (c *Client) DMConversations(ctx context.Context) (*Result, error) {
	return c.Get(ctx, "/agents/dm/conversations", nil)
}

// DMConversation fetches a conversation and its messages.
func (c *Client) DMConversation(ctx context.Context, id string) (*Result, error) {
	return c.Get(ctx, "/agents/dm/conversations/"+segment(id), nil)
}

// DMSend sends a message into an existing conversation.
func (c *Client) DMSend(ctx context.Context, conversationID, message string) (*Result, error) {
	return c.Post(ctx, "/agents/dm/conversations/"+segment(conversationID)+"/send", &DMMessage{Message: message})
}

// DMRequest asks an agent to open a conversation.
func (c *Client) DMRequest(ctx context.Context, to, message string) (*Result, error) {
	return c.Post(ctx, "/agents/dm/request", &DMRequest{To: to, Message: message})
}
