package rendering

import "strings"

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	"–", "--",
	"·", `\textperiodcentered{}`,
)

// urlReplacer makes a URL safe as the first argument of \href. Characters
// that would end the argument or start a command are percent-encoded.
var urlReplacer = strings.NewReplacer(
	`\`, `\%5C`,
	`{`, `\%7B`,
	`}`, `\%7D`,
	`%`, `\%`,
	`#`, `\#`,
	" ", `\%20`,
	"\n", `\%0A`,
	"\r", `\%0D`,
)

// EscapeLaTeXURL escapes a URL for use inside \href{...}.
func EscapeLaTeXURL(url string) string {
	return urlReplacer.Replace(url)
}

// EscapeLaTeX escapes LaTeX special characters. The en dash and middle dot
// produced by the date formatters become their LaTeX spellings.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}
