// Package extract pulls structured fields out of the HTML-ish description
// blobs embedded in RSS items. Best-effort only: every function degrades to
// a sentinel or empty string instead of failing.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NoDeadline is the sentinel shown when no deadline could be found.
// It is display text, not an error value.
const NoDeadline = "No deadline provided"

var (
	deadlineLabel = regexp.MustCompile(`(?i)deadline:\s*(.+?)(?:\n|$)`)
	genericDate   = regexp.MustCompile(`(\w+\s+\d{1,2},?\s*\d{4})`)
)

// Deadline locates a labeled deadline inside a description blob.
// It first scans emphasized elements for the word "deadline" and captures
// the text after the label in the enclosing block; failing that it falls
// back to the first thing shaped like "<month> <day>, <year>" anywhere in
// the raw text. Returns NoDeadline when both fail.
func Deadline(markup string) string {
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup)); err == nil {
		found := ""
		doc.Find("strong, b, em").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if !strings.Contains(strings.ToLower(sel.Text()), "deadline") {
				return true
			}
			block := sel.Parent().Text()
			if block == "" {
				block = sel.Text()
			}
			if m := deadlineLabel.FindStringSubmatch(block); m != nil {
				found = strings.TrimSpace(m[1])
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}

	if m := genericDate.FindStringSubmatch(markup); m != nil {
		return strings.TrimSpace(m[1])
	}

	return NoDeadline
}

// Summary returns the description's plain text with the deadline label
// element removed, so the deadline is not repeated inside the body copy.
func Summary(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}

	doc.Find("strong, b").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), "deadline") {
			sel.Remove()
			return false
		}
		return true
	})

	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return "No description available"
	}
	return text
}

// DiscussionLink returns the href of the first anchor in the blob, or "".
func DiscussionLink(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	href, _ := doc.Find("a").First().Attr("href")
	return href
}
