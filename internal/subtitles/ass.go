package subtitles

import (
	"regexp"
	"strings"
)

// ParseASS parses the [Events] section of an ASS file into subtitle lines.
// Dialogue rows have the field layout
// Layer,Start,End,Style,Name,MarginL,MarginR,MarginV,Effect,Text; commas
// inside the text field are preserved and literal \N breaks become spaces.
//
// allowedStyles, when non-nil, restricts output to rows whose style is in the
// set. Rows styled as openings, endings, signs, or song transliterations are
// always skipped. The character field is pre-filled from the Name field when
// it names a real speaker, otherwise from a fullwidth-parenthesized token in
// the text. Lines are numbered sequentially from zero regardless of any
// ordering field in the source.
func ParseASS(content string, allowedStyles []string) []Line {
	var lines []Line
	inEvents := false
	index := 0

	for _, raw := range strings.Split(content, "\n") {
		if strings.Contains(raw, "[Events]") {
			inEvents = true
			continue
		}
		if !inEvents || !strings.HasPrefix(raw, "Dialogue:") {
			continue
		}

		parts := strings.Split(raw[len("Dialogue:"):], ",")
		if len(parts) < 10 {
			continue
		}

		start := strings.TrimSpace(parts[1])
		end := strings.TrimSpace(parts[2])
		style := strings.TrimSpace(parts[3])
		name := strings.TrimSpace(parts[4])
		text := strings.TrimSpace(strings.ReplaceAll(strings.Join(parts[9:], ","), `\N`, " "))

		if allowedStyles != nil && !containsString(allowedStyles, style) {
			continue
		}
		if isNonDialogueStyle(style) {
			continue
		}

		line := Line{
			Index:            index,
			Timestamp:        start + " --> " + end,
			Text:             text,
			SecondaryIndices: []int{},
		}
		switch {
		case name != "" && !IsNonCharacterName(name):
			line.Character = name
			line.Prefilled = true
		default:
			if extracted := extractParenthesizedName(text); extracted != "" {
				line.Character = extracted
				line.Prefilled = true
			}
		}
		index++
		lines = append(lines, line)
	}
	return lines
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// StylePair names the primary and secondary dialogue styles of a
// dual-language ASS file.
type StylePair struct {
	Primary   string
	Secondary string
}

var langSuffixRe = regexp.MustCompile(`(?i)^(.+)-(ja|en|zh|ko|fr|de|es|pt|it|ru)$`)

// DetectDualLanguageStyles scans the styles section for a base style paired
// with a language-suffixed variant ("Default" + "Default-ja"). It returns
// the first such pair, or false when the file is single-language.
func DetectDualLanguageStyles(content string) (StylePair, bool) {
	var styleNames []string
	inStyles := false
	for _, raw := range strings.Split(content, "\n") {
		if strings.Contains(raw, "[V4+ Styles]") || strings.Contains(raw, "[V4 Styles]") {
			inStyles = true
			continue
		}
		if inStyles && strings.HasPrefix(raw, "[") {
			break
		}
		if inStyles && strings.HasPrefix(raw, "Style:") {
			name := strings.TrimSpace(strings.Split(raw[len("Style:"):], ",")[0])
			styleNames = append(styleNames, name)
		}
	}

	for _, style := range styleNames {
		match := langSuffixRe.FindStringSubmatch(style)
		if match == nil {
			continue
		}
		base := match[1]
		if containsString(styleNames, base) {
			return StylePair{Primary: base, Secondary: style}, true
		}
	}
	return StylePair{}, false
}
