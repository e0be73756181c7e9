package clean

import "strings"

// htmlMarkers are literal fragments that survive a failed markup parse.
// Finding any of them after stripping means the paragraph is a malformed
// HTML remnant rather than product text.
var htmlMarkers = []string{
	"<a href",
	"javascript:",
	"background-color:",
	"background-image:",
	" li:",
	".aloha",
}

// IsHTML reports whether the text still looks like an HTML fragment after
// markup stripping.
func IsHTML(text string) bool {
	for _, marker := range htmlMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// IsCSS reports whether the text is detected as purely CSS. A token counts
// as a CSS element if it starts with ".", "#" or "div", contains "px", or
// contains more than one hyphen. The thresholds are conjunctive: a short
// snippet with a high ratio but few suspicious tokens is not flagged.
func IsCSS(text string) bool {
	var numTokens, numCSSElements int
	for _, token := range strings.Fields(text) {
		numTokens++
		if strings.HasPrefix(token, ".") || strings.HasPrefix(token, "#") ||
			strings.HasPrefix(token, "div") || strings.Contains(token, "px") ||
			strings.Count(token, "-") > 1 {
			numCSSElements++
		}
	}
	if numTokens == 0 {
		return false
	}
	return float64(numCSSElements)/float64(numTokens) > 0.3 && numCSSElements > 20
}
