package search

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// PageSize is how many drivers one chat page lists.
const PageSize = 5

var policy = bluemonday.StrictPolicy()

// LinkFunc builds the driver page URL for an id.
type LinkFunc func(id string) string

// plain strips any markup the server data may carry.
func plain(s string) string {
	return html.UnescapeString(policy.Sanitize(s))
}

// clean is plain escaped for Telegram's HTML mode.
func clean(s string) string {
	return html.EscapeString(plain(s))
}

// RenderHTML renders one page of a result in Telegram HTML. page is zero
// based and clamped to the available pages.
func RenderHTML(r Result, page int, link LinkFunc) string {
	switch r.Kind {
	case ResultCleared:
		return ""
	case ResultEmpty:
		return "<i>" + MsgNoResults + "</i>"
	case ResultFailed:
		return "<b>" + MsgFailed + "</b>"
	}

	from, to := PageBounds(len(r.Drivers), page)

	var b strings.Builder
	for _, d := range r.Drivers[from:to] {
		fmt.Fprintf(&b, "<a href=\"%s\"><b>%s</b></a>  <code>%s</code>\n<i>%s</i>\n\n",
			html.EscapeString(link(d.ID)), clean(d.Nome), clean(d.CPF), clean(d.Celular))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderText renders the whole result as plain text for the console.
func RenderText(r Result, link LinkFunc) string {
	switch r.Kind {
	case ResultCleared:
		return ""
	case ResultEmpty:
		return MsgNoResults
	case ResultFailed:
		return MsgFailed
	}

	var b strings.Builder
	for _, d := range r.Drivers {
		fmt.Fprintf(&b, "%s  %s\n  %s\n  %s\n", plain(d.Nome), plain(d.CPF), plain(d.Celular), link(d.ID))
	}
	return b.String()
}

// Pages is the number of chat pages a result needs.
func Pages(n int) int {
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// PageBounds returns the [from, to) slice bounds of page, clamped.
func PageBounds(n, page int) (int, int) {
	last := Pages(n) - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	from := page * PageSize
	to := from + PageSize
	if to > n {
		to = n
	}
	return from, to
}
