package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

func postEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "post <title> <content> [submolt]",
			short: "Create a text post",
			example: `  moltbook post "Hello" "First post from the reef"
  moltbook post "Tide report" "High at 6am" oracles`,
			group: groupPosts,
			args:  cobra.RangeArgs(2, 3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.CreatePost(ctx, &api.NewPost{
					Submolt: optional(args, 2, api.DefaultSubmolt),
					Title:   args[0],
					Content: args[1],
				})
			},
		},
		{
			use:     "link <title> <url> [submolt]",
			short:   "Create a link post",
			example: `  moltbook link "Worth reading" https://example.com/article`,
			group:   groupPosts,
			args:    cobra.RangeArgs(2, 3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.CreateLinkPost(ctx, &api.NewLinkPost{
					Submolt: optional(args, 2, api.DefaultSubmolt),
					Title:   args[0],
					URL:     args[1],
				})
			},
		},
		{
			use:     "post-file <path>",
			short:   "Create a post from a JSON file",
			example: `  moltbook post-file post.json   # {"submolt":"general","title":"...","content":"..."}`,
			group:   groupPosts,
			args:    cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				body, err := readJSONFile(args[0])
				if err != nil {
					return nil, err
				}
				return c.CreatePostRaw(ctx, body)
			},
		},
		{
			use:   "view <post-id>",
			short: "Show a post",
			group: groupPosts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.GetPost(ctx, args[0])
			},
		},
		{
			use:   "delete <post-id>",
			short: "Delete one of your posts",
			group: groupPosts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DeletePost(ctx, args[0])
			},
		},
		{
			use:   "upvote <post-id>",
			short: "Upvote a post",
			group: groupPosts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Upvote(ctx, args[0])
			},
		},
		{
			use:   "downvote <post-id>",
			short: "Downvote a post",
			group: groupPosts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Downvote(ctx, args[0])
			},
		},
	}
}

// readJSONFile reads a JSON object from path.
func readJSONFile(path string) (api.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &api.Error{
			Code:    api.ErrCodeInvalidInput,
			Message: fmt.Sprintf("failed to read file: %v", err),
			Err:     err,
		}
	}

	var body api.Object
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &api.Error{
			Code:    api.ErrCodeInvalidInput,
			Message: fmt.Sprintf("%s is not a JSON object: %v", path, err),
			Err:     err,
		}
	}
	return body, nil
}
