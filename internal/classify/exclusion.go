package classify

import "strings"

// The library focuses on practical general knowledge. Documents with overtly
// political, partisan, or conspiracy-theory framing are excluded outright.
// Military manuals, government preparedness guides, and religious-origin
// practical guides are not political: they teach skills without pushing an
// ideology, so matching stays byte-literal against explicit phrases with no
// heuristic scoring.
var exclusionKeywords = []string{
	"new world order", "deep state", "globalist agenda", "illuminati",
	"government conspiracy", "one world government", "shadow government",
	"sovereign citizen", "political manifesto", "anarchist cookbook",
	"patriot movement", "militia movement", "insurrection",
	"government tyranny", "gun control", "second amendment",
	"great reset conspiracy", "martial law takeover", "wake up sheeple",
	"false flag", "crisis actor", "truth movement",
	"agenda 21", "agenda 2030 conspiracy", "fema camp",
	"depopulation agenda", "chemtrail", "great replacement",
}

// CheckExclusion reports whether a document's title or filename matches a
// disallowed-content phrase. It returns the first matching phrase in denylist
// order. Callers are responsible for recording the exclusion and omitting the
// item from the catalog entirely.
func CheckExclusion(title, filename string) (string, bool) {
	combined := strings.ToLower(title + " " + filename)
	for _, keyword := range exclusionKeywords {
		if strings.Contains(combined, keyword) {
			return keyword, true
		}
	}
	return "", false
}
