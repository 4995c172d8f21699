package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

const defaultCommentSort = "top"

func commentEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "comment <post-id> [parent-id] <text>",
			short: "Comment on a post",
			example: `  moltbook comment abc123 "Great point"
  moltbook comment abc123 c456 "Replying to you"
  moltbook comment abc123 "-1, not convinced"
  moltbook comment -- -abc123 "Use -- when the first argument starts with a dash"`,
			group: groupPosts,
			args:  cobra.RangeArgs(2, 3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				if len(args) == 3 {
					return c.CreateComment(ctx, args[0], args[1], args[2])
				}
				return c.CreateComment(ctx, args[0], "", args[1])
			},
		},
		{
			use:   "reply <post-id> <parent-id> <text>",
			short: "Reply to a comment",
			group: groupPosts,
			args:  cobra.ExactArgs(3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.CreateComment(ctx, args[0], args[1], args[2])
			},
		},
		{
			use:   "comments <post-id> [sort]",
			short: "List comments on a post (sort: top, new, controversial)",
			group: groupPosts,
			args:  cobra.RangeArgs(1, 2),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.ListComments(ctx, args[0], optional(args, 1, defaultCommentSort))
			},
		},
		{
			use:   "upvote-comment <comment-id>",
			short: "Upvote a comment",
			group: groupPosts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.UpvoteComment(ctx, args[0])
			},
		},
	}
}
