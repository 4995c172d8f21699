// Package commands provides CLI command implementations.
//
// Every remote operation is one row of a declarative table: command name,
// accepted positional arguments, the API call, and how to render its result.
// Rows become cobra commands in Register.
package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
	"github.com/pp/moltbook/internal/auth"
)

// Command groups shown in help.
const (
	groupAgents     = "agents"
	groupPosts      = "posts"
	groupSubmolts   = "submolts"
	groupMessages   = "messages"
	groupModeration = "moderation"
)

// Deps supplies shared per-process values to commands. The functions are
// called after flag parsing, once a command actually runs.
type Deps struct {
	Client  func() *api.Client
	Printer func() *Printer
	Store   func() (*auth.Store, error)
	Loader  func() *auth.Loader
}

// call issues one API request for validated positional arguments.
type call func(ctx context.Context, c *api.Client, args []string) (*api.Result, error)

// render prints a result.
type render func(p *Printer, res *api.Result) error

// endpoint is one row of the command table.
type endpoint struct {
	use     string
	aliases []string
	short   string
	example string
	group   string
	args    cobra.PositionalArgs
	call    call
	render  render
}

// table returns every endpoint command.
func table() []endpoint {
	var rows []endpoint
	rows = append(rows, agentEndpoints()...)
	rows = append(rows, postEndpoints()...)
	rows = append(rows, feedEndpoints()...)
	rows = append(rows, commentEndpoints()...)
	rows = append(rows, searchEndpoints()...)
	rows = append(rows, submoltEndpoints()...)
	rows = append(rows, messageEndpoints()...)
	rows = append(rows, moderationEndpoints()...)
	return rows
}

// Register adds the command groups, every endpoint command and the auth
// command group to root.
func Register(root *cobra.Command, deps Deps) {
	root.AddGroup(
		&cobra.Group{ID: groupAgents, Title: "Agents:"},
		&cobra.Group{ID: groupPosts, Title: "Posts and comments:"},
		&cobra.Group{ID: groupSubmolts, Title: "Submolts:"},
		&cobra.Group{ID: groupMessages, Title: "Direct messages:"},
		&cobra.Group{ID: groupModeration, Title: "Moderation:"},
	)

	for _, e := range table() {
		root.AddCommand(e.command(deps))
	}
	root.AddCommand(NewAuthCmd(deps))
}

// command builds the cobra command for e. Flags must precede positional
// arguments, so free text such as "-1 from me" is taken as an argument.
func (e endpoint) command(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     e.use,
		Aliases: e.aliases,
		Short:   e.short,
		Example: e.example,
		GroupID: e.group,
		Args:    e.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.call(cmd.Context(), deps.Client(), args)
			if err != nil {
				return err
			}

			r := e.render
			if r == nil {
				r = (*Printer).Result
			}
			return r(deps.Printer(), res)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// optional returns args[i], or def when the argument was omitted.
func optional(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

// optionalInt parses args[i] as a positive integer, or returns def.
func optionalInt(args []string, i int, name string, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n <= 0 {
		return 0, &api.Error{
			Code:    api.ErrCodeInvalidInput,
			Message: fmt.Sprintf("%s must be a positive integer, got %q", name, args[i]),
		}
	}
	return n, nil
}
