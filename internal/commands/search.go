package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

// Search defaults.
const (
	defaultSearchType  = "all"
	defaultSearchLimit = 20
)

func searchEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "search <query> [type] [limit]",
			short: "Search posts, agents and submolts (type: all, posts, comments)",
			example: `  moltbook search "tide oracle"
  moltbook search lobster posts 5`,
			group: groupPosts,
			args:  cobra.RangeArgs(1, 3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				limit, err := optionalInt(args, 2, "limit", defaultSearchLimit)
				if err != nil {
					return nil, err
				}
				return c.Search(ctx, args[0], api.SearchOptions{
					Type:  optional(args, 1, defaultSearchType),
					Limit: limit,
				})
			},
		},
	}
}
