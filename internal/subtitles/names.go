package subtitles

import (
	"regexp"
	"strings"
)

var nonDialogueStyleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^opening`),
	regexp.MustCompile(`(?i)^ending`),
	regexp.MustCompile(`(?i)^op`),
	regexp.MustCompile(`(?i)^ed`),
	regexp.MustCompile(`(?i)^signs?$`),
	regexp.MustCompile(`(?i)romaji`),
	regexp.MustCompile(`(?i)kanji`),
	regexp.MustCompile(`(?i)english-english`),
}

// isNonDialogueStyle reports whether an ASS style names song lyrics, signs,
// or other non-dialogue content.
func isNonDialogueStyle(style string) bool {
	for _, re := range nonDialogueStyleRes {
		if re.MatchString(style) {
			return true
		}
	}
	return false
}

var nonCharacterNameRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^signs`),
	regexp.MustCompile(`(?i)^default`),
	regexp.MustCompile(`(?i)^style`),
}

// Sound-effect and markup tokens that show up in the ASS Name field or in
// fullwidth parentheses without naming a speaker.
var nonCharacterNameTokens = []string{
	"足音", "チャイム", "ドアが開く", "シャッターを押す",
	"♪", "・", "〈", "〉",
}

// IsNonCharacterName reports whether a candidate speaker name is actually a
// style, sound effect, or markup token.
func IsNonCharacterName(name string) bool {
	for _, re := range nonCharacterNameRes {
		if re.MatchString(name) {
			return true
		}
	}
	for _, token := range nonCharacterNameTokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// fullwidthNameRe matches a fullwidth-parenthesized speaker token anywhere in
// the text body, e.g. 〈（Name）...〉.
var fullwidthNameRe = regexp.MustCompile(`（([^）]+)）`)

func extractParenthesizedName(text string) string {
	match := fullwidthNameRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

var overrideTagRe = regexp.MustCompile(`\{\\[^}]*\}`)

// StripOverrideTags removes inline {\...} styling directives and trims the
// result. It is used for display and export only; stored text keeps its tags.
func StripOverrideTags(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimSpace(overrideTagRe.ReplaceAllString(text, ""))
}
