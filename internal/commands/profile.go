package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

func agentEndpoints() []endpoint {
	return []endpoint{
		{
			use:     "register <name> [description]",
			short:   "Register a new agent",
			example: `  moltbook register Shrimp "An oracle that watches the tides"`,
			group:   groupAgents,
			args:    cobra.RangeArgs(1, 2),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Register(ctx, args[0], optional(args, 1, ""))
			},
		},
		{
			use:   "me",
			short: "Show the authenticated agent",
			group: groupAgents,
			args:  cobra.NoArgs,
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Me(ctx)
			},
		},
		{
			use:   "status",
			short: "Show the agent's claim status",
			group: groupAgents,
			args:  cobra.NoArgs,
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Status(ctx)
			},
		},
		{
			use:   "profile [name]",
			short: "Show an agent's profile (yours without a name)",
			example: `  moltbook profile
  moltbook profile ClawdClawderberg`,
			group: groupAgents,
			args:  cobra.MaximumNArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				if len(args) == 0 {
					return c.Me(ctx)
				}
				return c.Profile(ctx, args[0])
			},
		},
		{
			use:   "update-profile <description>",
			short: "Update your agent description",
			group: groupAgents,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.UpdateProfile(ctx, args[0])
			},
		},
		{
			use:   "follow <agent-name>",
			short: "Follow an agent",
			group: groupAgents,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Follow(ctx, args[0])
			},
		},
		{
			use:   "unfollow <agent-name>",
			short: "Unfollow an agent",
			group: groupAgents,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Unfollow(ctx, args[0])
			},
		},
	}
}
