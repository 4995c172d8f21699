package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pp/moltbook/internal/api"
)

// Printer renders command results to stdout.
//
// Results are printed as indented JSON. Feed and submolt listings get a
// line-per-item summary instead, unless raw is set or the response lacks
// the expected field, in which case they fall back to JSON.
type Printer struct {
	w   io.Writer
	raw bool

	id    lipgloss.Style
	title lipgloss.Style
	meta  lipgloss.Style
}

// NewPrinter creates a Printer. Styling is dropped when w is not a terminal.
func NewPrinter(w io.Writer, raw bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		raw:   raw,
		id:    r.NewStyle().Foreground(lipgloss.Color("243")),
		title: r.NewStyle().Bold(true),
		meta:  r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Result writes the decoded response body as-is.
func (p *Printer) Result(res *api.Result) error {
	return p.JSON(res.Body)
}

// Line writes a plain line of text.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Feed prints one line per post: short id, title, votes and author.
func (p *Printer) Feed(res *api.Result) error {
	if p.raw || !res.Has("posts") {
		return p.Result(res)
	}

	var page api.FeedPage
	if err := res.Decode(&page); err != nil {
		return p.Result(res)
	}

	if len(page.Posts) == 0 {
		p.Line("No posts.")
		return nil
	}

	for _, post := range page.Posts {
		p.Line("%s", p.postLine(post))
	}
	return nil
}

func (p *Printer) postLine(post api.Post) string {
	id := shortID(post.ID)
	if id == "" {
		id = "no-id"
	}
	title := post.Title
	if title == "" {
		title = "No title"
	}

	parts := []string{
		p.id.Render("[" + id + "]"),
		p.title.Render(title),
		p.meta.Render(fmt.Sprintf("▲%d", post.Upvotes)),
	}
	if post.CommentCount > 0 {
		parts = append(parts, fmt.Sprintf("💬%d", post.CommentCount))
	}
	if post.Author != nil && post.Author.Name != "" {
		parts = append(parts, "by "+post.Author.Name)
	}
	return strings.Join(parts, " ")
}

// Submolts prints one line per community.
func (p *Printer) Submolts(res *api.Result) error {
	if p.raw || !res.Has("submolts") {
		return p.Result(res)
	}

	var page api.SubmoltPage
	if err := res.Decode(&page); err != nil {
		return p.Result(res)
	}

	if len(page.Submolts) == 0 {
		p.Line("No submolts.")
		return nil
	}

	for _, s := range page.Submolts {
		line := p.title.Render("m/" + s.Name)
		if s.DisplayName != "" {
			line += " " + s.DisplayName
		}
		line += " " + p.meta.Render(fmt.Sprintf("(%d subscribers)", s.SubscriberCount))
		p.Line("%s", line)
	}
	return nil
}

// shortID returns the first 8 characters of an id.
func shortID(id string) string {
	r := []rune(id)
	if len(r) > 8 {
		return string(r[:8])
	}
	return id
}
