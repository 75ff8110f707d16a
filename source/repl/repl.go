package repl

import (
	"strings"

	"github.com/lmorg/readline"

	"github.com/tim-hardcastle/indexkit/source/hub"
)

// Start reads commands from the terminal and hands them to the hub until one of them tells it to
// quit, or the terminal goes away.
func Start(hb *hub.Hub) {
	rline := readline.NewInstance()
	rline.TabCompleter = completer(hb)
	for {
		rline.SetPrompt(hb.Prompt())
		line, err := rline.Readline()
		if err != nil {
			hb.WriteError(err.Error())
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hb.Do(line) {
			break
		}
	}
}

// The completer offers the verbs for the first word of a line and the names of the hub's
// collections after that. Readline prints suggestions verbatim, so we crop the part of each one
// that has already been typed.
func completer(hb *hub.Hub) func([]rune, int, readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	return func(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
		typed := string(line[:pos])
		start := strings.LastIndex(typed, " ") + 1
		word := typed[start:]
		var suggestions []string
		for _, c := range hb.Completions(word, start == 0) {
			suggestions = append(suggestions, c[len(word):])
		}
		return word, suggestions, nil, readline.TabDisplayGrid
	}
}
