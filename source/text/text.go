package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, and renderings of collections.

import (
	"fmt"
	"iter"
	"strings"
)

const (
	VERSION = "0.1.0"
	BULLET  = "  ▪ "
	PROMPT  = "→ "
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	OK = Green("OK")
)

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

// Describe renders a sequence of elements the way the shell shows a collection, e.g. [1, 2, 3].
func Describe[T any](values iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString("[")
	sep := ""
	for v := range values {
		sb.WriteString(sep)
		fmt.Fprintf(&sb, "%v", v)
		sep = ", "
	}
	sb.WriteString("]")
	return sb.String()
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 1 {
		padding = ","
	}
	titleText := " Indexkit" + padding + " version " + VERSION + " "
	diamond := Cyan("◆")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + diamond + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + diamond + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: indexkit [-v | --version] [-h | --help]\n" +
	"                [run <file>]\n\n" +
	"With no arguments, starts the interactive shell. With 'run <file>', executes each line of\n" +
	"the file as a shell command and exits.\n\n"

// Now we highlight the line. The rules are: anything enclosed in '   ' is code and is
// therefore highlighted, and anything between a leading $ and the next $ is an error heading.
// The ' doesn't trigger the highlighting unless it follows a line beginning or space, because it
// might be an apostrophe.
func HighlightLine(plainLine string, highlighter rune) (string, rune) {
	highlitLine := ""
	prevCh := ' '
	if highlighter != ' ' {
		highlitLine = CYAN
	}
	for _, ch := range plainLine {
		if highlighter == ' ' && (prevCh == ' ' || prevCh == '\n' || prevCh == '$') &&
			(ch == '\'' || ch == '$') {
			highlighter = ch
			if highlighter == '$' {
				highlitLine = highlitLine + RED
				continue
			}
			highlitLine = highlitLine + CYAN
		} else if ch == highlighter {
			prevCh = ch
			highlighter = ' '
			if ch == '$' {
				highlitLine = highlitLine + RESET + ": "
				continue
			}
			highlitLine = highlitLine + string(ch) + RESET
			continue
		}
		prevCh = ch
		highlitLine = highlitLine + string(ch)
	}
	return highlitLine, highlighter
}

// Pretty wraps s between the margins, highlighting as it goes.
func Pretty(s string, lMargin, rMargin int) string {
	LENGTH := rMargin - lMargin
	result := ""
	highlighter := ' '
	for i := 0; i < len(s); {
		result = result + strings.Repeat(" ", lMargin)
		e := i + LENGTH
		j := 0
		if e > len(s) {
			j = len(s) - i
		} else if strings.Contains(s[i:e], "\n") {
			j = strings.Index(s[i:e], "\n")
		} else {
			j = strings.LastIndex(s[i:e], " ")
		}
		if j == -1 {
			j = LENGTH
		}
		if strings.Contains(s[i:i+j], "\n") {
			j = strings.Index(s[i:i+j], "\n")
		}
		var str string
		str, highlighter = HighlightLine(s[i:i+j], highlighter)
		result = result + str + "\n"
		i = i + j + 1
	}
	return result
}

// Plain strips the escape codes this package adds, for when the display is set to plain.
func Plain(s string) string {
	for _, code := range []string{RESET, RED, GREEN, YELLOW, CYAN} {
		s = strings.ReplaceAll(s, code, "")
	}
	return s
}
