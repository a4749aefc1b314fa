package renderer

import (
	"regexp"
	"strings"
	"text/template"
)

// funcs are available to every template.
var funcs = template.FuncMap{
	"md":   escapeMarkdown,
	"code": codeSpan,
}

// markdownEscaper backslash escapes the characters that are markdown syntax anywhere in a line.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`<`, `\<`, `>`, `\>`, `|`, `\|`, `#`, `\#`, `~`, `\~`, `!`, `\!`, `&`, `\&`,
)

// listMarker matches what would start a list or a setext heading at the beginning of a line.
var listMarker = regexp.MustCompile(`^([-+=]|\d+[.)])`)

// escapeMarkdown returns s as markdown text that renders as s.
func escapeMarkdown(s string) string {
	s = markdownEscaper.Replace(s)
	if loc := listMarker.FindStringIndex(s); loc != nil {
		s = s[:loc[1]-1] + `\` + s[loc[1]-1:]
	}
	return s
}

// codeSpan returns s as a markdown code span, fenced by more backticks than s contains in a row.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}
