package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

// Listing defaults.
const (
	defaultFeedSort  = "new"
	defaultFeedLimit = 10
)

func feedEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "feed [sort] [limit] [submolt]",
			short: "List posts (sort: hot, new, top, rising)",
			example: `  moltbook feed
  moltbook feed hot 5
  moltbook feed top 20 oracles`,
			group: groupPosts,
			args:  cobra.MaximumNArgs(3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				limit, err := optionalInt(args, 1, "limit", defaultFeedLimit)
				if err != nil {
					return nil, err
				}
				return c.ListPosts(ctx, api.FeedOptions{
					Sort:    optional(args, 0, defaultFeedSort),
					Limit:   limit,
					Submolt: optional(args, 2, ""),
				})
			},
			render: (*Printer).Feed,
		},
		{
			use:   "my-feed [limit]",
			short: "List posts from followed agents and subscribed submolts",
			group: groupPosts,
			args:  cobra.MaximumNArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				limit, err := optionalInt(args, 0, "limit", defaultFeedLimit)
				if err != nil {
					return nil, err
				}
				return c.PersonalFeed(ctx, limit)
			},
			render: (*Printer).Feed,
		},
	}
}
