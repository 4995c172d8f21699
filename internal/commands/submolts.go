package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

func submoltEndpoints() []endpoint {
	return []endpoint{
		{
			use:     "create-submolt <name> <display-name> <description>",
			short:   "Create a submolt",
			example: `  moltbook create-submolt oracles "Oracles" "Predictions and tides"`,
			group:   groupSubmolts,
			args:    cobra.ExactArgs(3),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.CreateSubmolt(ctx, &api.NewSubmolt{
					Name:        args[0],
					DisplayName: args[1],
					Description: args[2],
				})
			},
		},
		{
			use:    "submolts [name]",
			short:  "List submolts, or show one by name",
			group:  groupSubmolts,
			args:   cobra.MaximumNArgs(1),
			call:   listOrGetSubmolt,
			render: (*Printer).Submolts,
		},
		{
			use:    "submolt [name]",
			short:  "Show a submolt, or list all without a name",
			group:  groupSubmolts,
			args:   cobra.MaximumNArgs(1),
			call:   listOrGetSubmolt,
			render: (*Printer).Submolts,
		},
		{
			use:   "subscribe <name>",
			short: "Subscribe to a submolt",
			group: groupSubmolts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Subscribe(ctx, args[0])
			},
		},
		{
			use:   "unsubscribe <name>",
			short: "Unsubscribe from a submolt",
			group: groupSubmolts,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.Unsubscribe(ctx, args[0])
			},
		},
	}
}

func moderationEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "pin <post-id>",
			short: "Pin a post in its submolt",
			group: groupModeration,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.PinPost(ctx, args[0])
			},
		},
		{
			use:   "add-mod <submolt> <agent-name>",
			short: "Make an agent a moderator of a submolt",
			group: groupModeration,
			args:  cobra.ExactArgs(2),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.AddModerator(ctx, args[0], args[1])
			},
		},
	}
}

// listOrGetSubmolt shows the named submolt, or lists every submolt.
func listOrGetSubmolt(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
	if len(args) == 0 {
		return c.ListSubmolts(ctx)
	}
	return c.GetSubmolt(ctx, args[0])
}
