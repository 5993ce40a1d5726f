package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
)

// attribution is the fixed trailing line of every generated post
const attribution = "*This blog post was automatically generated from meeting transcription data.*"

// Generate renders the blog-post artifact from a meeting title and its
// summary fields. Output is deterministic for a given publishedAt: callers
// wanting the wall-clock date pass time.Now(), callers wanting reproducible
// output inject a fixed date.
//
// Sections appear in a fixed order and each one is emitted only when its
// backing field is present with a usable shape. Action items are numbered by
// their position among the kept entries, restarting at 1 after non-string
// and blank elements are dropped.
func Generate(title string, summary entities.Summary, publishedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "*Published on %s*\n\n", publishedAt.Format("1/2/2006"))

	if overview, ok := summary.Text(entities.SummaryFieldOverview); ok {
		fmt.Fprintf(&b, "## Overview\n\n%s\n\n", overview)
	}

	if items := summary.StringList(entities.SummaryFieldActionItems); len(items) > 0 {
		b.WriteString("## Key Action Items\n\n")
		for i, item := range items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	if keywords := summary.StringList(entities.SummaryFieldKeywords); len(keywords) > 0 {
		b.WriteString("## Key Topics\n\n")
		fmt.Fprintf(&b, "This meeting covered several important topics including: %s.\n\n", strings.Join(keywords, ", "))
	}

	if gist, ok := summary.Text(entities.SummaryFieldGist); ok {
		fmt.Fprintf(&b, "## Summary\n\n%s\n\n", gist)
	}

	b.WriteString("---\n\n")
	b.WriteString(attribution)

	return b.String()
}
