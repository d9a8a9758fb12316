package invoice

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the download name for the rendered invoice:
// Invoice_<number>.pdf, with the buyer name appended when present and
// whitespace runs collapsed to underscores.
func Filename(doc Document) string {
	suffix := ""
	if name := strings.TrimSpace(doc.Buyer.Name); name != "" {
		suffix = "_" + whitespaceRun.ReplaceAllString(name, "_")
	}
	return fmt.Sprintf("Invoice_%s%s.pdf", doc.Number, suffix)
}
