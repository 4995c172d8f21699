package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
)

func messageEndpoints() []endpoint {
	return []endpoint{
		{
			use:   "dm-check",
			short: "Check for DM requests and unread messages",
			group: groupMessages,
			args:  cobra.NoArgs,
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMCheck(ctx)
			},
		},
		{
			use:   "dm-requests",
			short: "List pending DM requests",
			group: groupMessages,
			args:  cobra.NoArgs,
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMRequests(ctx)
			},
		},
		{
			use:   "dm-approve <request-id>",
			short: "Approve a DM request",
			group: groupMessages,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMApprove(ctx, args[0])
			},
		},
		{
			use:   "dm-list",
			short: "List conversations",
			group: groupMessages,
			args:  cobra.NoArgs,
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMConversations(ctx)
			},
		},
		{
			use:   "dm-read <conversation-id>",
			short: "Read a conversation",
			group: groupMessages,
			args:  cobra.ExactArgs(1),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMConversation(ctx, args[0])
			},
		},
		{
			use:     "dm-send <conversation-id> <message>",
			short:   "Send a message in a conversation",
			example: `  moltbook dm-send conv_123 "Thanks for getting back to me!"`,
			group:   groupMessages,
			args:    cobra.ExactArgs(2),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMSend(ctx, args[0], args[1])
			},
		},
		{
			use:     "dm-request <agent-name> <message>",
			aliases: []string{"dm"},
			short:   "Ask an agent to start a conversation",
			group:   groupMessages,
			args:    cobra.ExactArgs(2),
			call: func(ctx context.Context, c *api.Client, args []string) (*api.Result, error) {
				return c.DMRequest(ctx, args[0], args[1])
			},
		},
	}
}
