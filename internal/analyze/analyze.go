// Package analyze turns the model's free-text reply into a structured
// analysis record.
//
// The extraction is best-effort natural-language scraping: fixed
// label-prefixed patterns with first-match-wins semantics, no validation of
// what the model claimed. Page citations are recovered by case-folded
// substring containment of the trade name in the extracted page text, which
// both over-matches common words and under-matches paraphrased trade names;
// that limitation is inherent to the heuristic and intentionally left as is.
package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/buildsight/bluebook/internal/pdftext"
)

// TradeEntry holds the free-text resource lines and the recovered page
// citations for one trade.
type TradeEntry struct {
	Resources []string
	Pages     []string
}

// AnalysisResult is the structured record scraped from one model reply.
// Scalar fields default to the empty string when their pattern never
// matches. TradeNames preserves the order trades first appear in the reply;
// Trades is keyed by trade name.
type AnalysisResult struct {
	Contractor string
	Architect  string
	Designer   string
	Client     string
	StartDate  string
	EndDate    string

	TradeNames []string
	Trades     map[string]*TradeEntry
}

var (
	contractorRe = regexp.MustCompile(`(?i)(?:Contractor|Builder):?[ \t]*([A-Za-z][A-Za-z ]*)`)
	architectRe  = regexp.MustCompile(`(?i)Architect:?[ \t]*([A-Za-z][A-Za-z ]*)`)
	designerRe   = regexp.MustCompile(`(?i)Designer:?[ \t]*([A-Za-z][A-Za-z ]*)`)
	clientRe     = regexp.MustCompile(`(?i)(?:Client|Owner):?[ \t]*([A-Za-z][A-Za-z ]*)`)
	startDateRe  = regexp.MustCompile(`(?i)(?:Start Date|Commencement):?[ \t]*(\d{1,2}/\d{1,2}/\d{4})`)
	endDateRe    = regexp.MustCompile(`(?i)(?:End Date|Completion):?[ \t]*(\d{1,2}/\d{1,2}/\d{4})`)

	tradeTokenRe = regexp.MustCompile(`Trade:`)
	tradeNameRe  = regexp.MustCompile(`Trade:[ \t]*([^\n]+)`)
	resourceRe   = regexp.MustCompile(`(?m)^[ \t]*Resources:?[ \t]*([^\n]+)`)
)

// Parse scrapes the raw reply into an AnalysisResult and cross-references
// trade names against the page records. It returns nil when the reply is
// empty or blank. Parsing is stateless and deterministic: the same reply and
// records always produce the same result.
func Parse(reply string, pages []pdftext.PageRecord) *AnalysisResult {
	if strings.TrimSpace(reply) == "" {
		return nil
	}

	res := &AnalysisResult{Trades: map[string]*TradeEntry{}}
	res.Contractor = firstMatch(contractorRe, reply)
	res.Architect = firstMatch(architectRe, reply)
	res.Designer = firstMatch(designerRe, reply)
	res.Client = firstMatch(clientRe, reply)
	res.StartDate = firstMatch(startDateRe, reply)
	res.EndDate = firstMatch(endDateRe, reply)

	matcher := search.New(language.Und, search.IgnoreCase)
	for _, chunk := range tradeChunks(reply) {
		m := tradeNameRe.FindStringSubmatch(chunk)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		entry := &TradeEntry{Resources: []string{}, Pages: []string{}}
		for _, rm := range resourceRe.FindAllStringSubmatch(chunk, -1) {
			entry.Resources = append(entry.Resources, strings.TrimSpace(rm[1]))
		}
		for _, page := range pages {
			if start, _ := matcher.IndexString(page.Text, name); start >= 0 {
				entry.Pages = append(entry.Pages, citation(page))
			}
		}
		// A repeated trade name keeps its first position in the order but
		// the later entry wins, matching insertion-order map semantics.
		if _, seen := res.Trades[name]; !seen {
			res.TradeNames = append(res.TradeNames, name)
		}
		res.Trades[name] = entry
	}
	return res
}

// firstMatch returns the trimmed first capture of re in s, or "".
func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// tradeChunks splits the reply into non-overlapping spans, each starting at
// an occurrence of the literal token "Trade:" and running to the next
// occurrence or end of text, in order of appearance.
func tradeChunks(reply string) []string {
	idx := tradeTokenRe.FindAllStringIndex(reply, -1)
	if len(idx) == 0 {
		return nil
	}
	chunks := make([]string, 0, len(idx))
	for i, loc := range idx {
		end := len(reply)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		chunks = append(chunks, reply[loc[0]:end])
	}
	return chunks
}

func citation(p pdftext.PageRecord) string {
	return fmt.Sprintf("%s: Page %d", p.Document, p.Page)
}
