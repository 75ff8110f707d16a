// Package hub is the interactive front end: it keeps named collections and runs the commands
// typed at the shell or read from a script against them.
package hub

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/table"
	"github.com/tim-hardcastle/indexkit/source/text"
)

type Hub struct {
	in          io.Reader
	out         io.Writer
	config      settings.Config
	collections map[string]entry
	db          *sql.DB // Opened when the first table is made.
	tables      int
}

func New(in io.Reader, out io.Writer, config settings.Config) *Hub {
	hub := Hub{
		in:          in,
		out:         out,
		config:      config,
		collections: make(map[string]entry)}
	return &hub
}

func (hub *Hub) Prompt() string {
	return hub.config.Prompt
}

// Close releases the hub's database, if it opened one.
func (hub *Hub) Close() error {
	if hub.db == nil {
		return nil
	}
	return hub.db.Close()
}

// Run executes the hub's input one line at a time, as a script, until it ends or says to quit.
func (hub *Hub) Run() error {
	scanner := bufio.NewScanner(hub.in)
	for scanner.Scan() {
		if hub.Do(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

var blankOrComment = regexp.MustCompile(`^\s*(|\/\/.*)$`)

// Do runs one line of input, and says whether it was the instruction to quit.
func (hub *Hub) Do(line string) bool {
	if blankOrComment.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	var quit bool
	var err error
	// A broken contract aborts the command, but not the session.
	violation := report.Catch(func() {
		quit, err = hub.DoCommand(words[0], words[1:])
	})
	if violation != nil {
		hub.WriteError(violation.Error())
		return false
	}
	if err != nil {
		hub.WriteError(err.Error())
	}
	return quit
}

// DoCommand dispatches on the verb.
func (hub *Hub) DoCommand(verb string, args []string) (bool, error) {
	if settings.SHOW_MUTATIONS {
		println(text.BULLET + "hub: " + text.Emph(verb) + " " + strings.Join(args, " "))
	}
	switch verb {
	case "quit":
		hub.quit()
		return true, nil
	case "help":
		hub.help()
		return false, nil
	case "drivers":
		hub.WriteString(table.GetDriverOptions())
		return false, nil
	case "let":
		return false, hub.let(args)
	case "list":
		hub.list()
		return false, nil
	case "concat":
		if len(args) != 3 {
			return false, usage(verb)
		}
		lhs, err := hub.get(args[1])
		if err != nil {
			return false, err
		}
		rhs, err := hub.get(args[2])
		if err != nil {
			return false, err
		}
		result, err := lhs.concat(rhs)
		if err != nil {
			return false, err
		}
		hub.collections[args[0]] = result
		return false, hub.ok(result)
	}
	cmd, ok := commands[verb]
	if !ok {
		return false, fmt.Errorf("the shell doesn't know the command %s; try 'help'", text.Emph(verb))
	}
	if len(args) == 0 {
		return false, usage(verb)
	}
	e, err := hub.get(args[0])
	if err != nil {
		return false, err
	}
	if cmd.mutates && !e.mutable() {
		return false, fmt.Errorf("%s is a %s, which %s", text.Emph(args[0]), e.kind(), errReadOnly)
	}
	switch verb {
	case "removeAll":
		return false, hub.removeAll(e, args[1:])
	case "map":
		return false, hub.mapped(e, args[1:])
	}
	nums, err := ints(args[1:])
	if err != nil {
		return false, err
	}
	if len(nums) < cmd.minArgs || (cmd.maxArgs >= 0 && len(nums) > cmd.maxArgs) {
		return false, usage(verb)
	}
	out, err := cmd.run(e, nums)
	if err != nil {
		return false, err
	}
	if err := e.err(); err != nil {
		return false, err
	}
	if out == "" {
		hub.WriteString(hub.display(text.OK) + "\n")
	} else {
		hub.WriteString(out + "\n")
	}
	return false, nil
}

type command struct {
	mutates          bool
	minArgs, maxArgs int // Not counting the name of the collection. maxArgs < 0 means any number.
	usage            string
	run              func(e entry, nums []int) (string, error)
}

// A command that returns "" has succeeded with nothing to show, and the hub says OK.
var commands = map[string]command{
	"show": {false, 0, 0, "show <name>", func(e entry, nums []int) (string, error) {
		return e.show(), nil
	}},
	"count": {false, 0, 0, "count <name>", func(e entry, nums []int) (string, error) {
		return strconv.Itoa(e.count()), nil
	}},
	"tier": {false, 0, 0, "tier <name>", func(e entry, nums []int) (string, error) {
		return e.tier().String(), nil
	}},
	"at": {false, 1, 1, "at <name> <position>", func(e entry, nums []int) (string, error) {
		return strconv.Itoa(e.at(nums[0])), nil
	}},
	"append": {true, 0, -1, "append <name> <values>", func(e entry, nums []int) (string, error) {
		e.appendAll(nums)
		return "", nil
	}},
	"insert": {true, 2, 2, "insert <name> <value> <position>", func(e entry, nums []int) (string, error) {
		e.insert(nums[0], nums[1])
		return "", nil
	}},
	"remove": {true, 1, 1, "remove <name> <position>", func(e entry, nums []int) (string, error) {
		return strconv.Itoa(e.remove(nums[0])), nil
	}},
	"removeFirst": {true, 0, 1, "removeFirst <name> [<count>]", func(e entry, nums []int) (string, error) {
		if len(nums) == 0 {
			return strconv.Itoa(e.removeFirst()), nil
		}
		e.removeFirstN(nums[0])
		return "", nil
	}},
	"removeLast": {true, 0, 1, "removeLast <name> [<count>]", func(e entry, nums []int) (string, error) {
		if len(nums) == 0 {
			x, err := e.removeLast()
			return strconv.Itoa(x), err
		}
		return "", e.removeLastN(nums[0])
	}},
	"removeAll": {true, 0, 1, "removeAll <name> [keep]", nil},
	"replace": {true, 2, -1, "replace <name> <from> <to> <values>", func(e entry, nums []int) (string, error) {
		e.replace(nums[0], nums[1], nums[2:])
		return "", nil
	}},
	"reverse": {false, 0, 0, "reverse <name>", func(e entry, nums []int) (string, error) {
		xs, err := e.reversed()
		if err != nil {
			return "", err
		}
		return text.Describe(slices.Values(xs)), nil
	}},
	"map": {false, 0, 0, "map <name> <op> <number>", nil},
	"advance": {false, 2, 3, "advance <name> <from> <steps> [<limit>]", func(e entry, nums []int) (string, error) {
		var limit *int
		if len(nums) == 3 {
			limit = &nums[2]
		}
		return strconv.Itoa(e.advance(nums[0], nums[1], limit)), nil
	}},
	"distance": {false, 2, 2, "distance <name> <from> <to>", func(e entry, nums []int) (string, error) {
		return strconv.Itoa(e.distance(nums[0], nums[1])), nil
	}},
}

const (
	letUsage    = "let <name> = <kind> <values>"
	concatUsage = "concat <new name> <name> <name>"
)

func usage(verb string) error {
	switch verb {
	case "let":
		return fmt.Errorf("usage: %s", letUsage)
	case "concat":
		return fmt.Errorf("usage: %s", concatUsage)
	}
	return fmt.Errorf("usage: %s", commands[verb].usage)
}

func (hub *Hub) removeAll(e entry, args []string) error {
	switch {
	case len(args) == 0:
		e.removeAll(false)
	case len(args) == 1 && args[0] == "keep":
		e.removeAll(true)
	default:
		return usage("removeAll")
	}
	return hub.ok(e)
}

var operations = map[string]func(x, n int) int{
	"+": func(x, n int) int { return x + n },
	"-": func(x, n int) int { return x - n },
	"*": func(x, n int) int { return x * n },
	"/": func(x, n int) int { return x / n },
}

// mapped shows the collection through a lazy map, which is thrown away afterwards.
func (hub *Hub) mapped(e entry, args []string) error {
	if len(args) != 2 {
		return usage("map")
	}
	op, ok := operations[args[0]]
	if !ok {
		return fmt.Errorf("%s isn't one of the operations + - * /", text.Emph(args[0]))
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%s isn't an integer", text.Emph(args[1]))
	}
	if args[0] == "/" && n == 0 {
		return fmt.Errorf("can't divide by zero")
	}
	xs := e.mapped(func(x int) int { return op(x, n) })
	if err := e.err(); err != nil {
		return err
	}
	hub.WriteString(text.Describe(slices.Values(xs)) + "\n")
	return nil
}

func (hub *Hub) let(args []string) error {
	if len(args) < 3 || args[1] != "=" {
		return usage("let")
	}
	if !validName.MatchString(args[0]) {
		return fmt.Errorf("%s isn't a valid name for a collection", text.Emph(args[0]))
	}
	nums, err := ints(args[3:])
	if err != nil {
		return err
	}
	e, err := hub.makeEntry(args[2], nums)
	if err != nil {
		return err
	}
	hub.collections[args[0]] = e
	return hub.ok(e)
}

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (hub *Hub) get(name string) (entry, error) {
	e, ok := hub.collections[name]
	if !ok {
		return nil, fmt.Errorf("there's no collection called %s", text.Emph(name))
	}
	return e, nil
}

func (hub *Hub) ok(e entry) error {
	if err := e.err(); err != nil {
		return err
	}
	hub.WriteString(hub.display(text.OK) + "\n")
	return nil
}

func ints(words []string) ([]int, error) {
	result := make([]int, 0, len(words))
	for _, w := range words {
		i, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("%s isn't an integer", text.Emph(w))
		}
		result = append(result, i)
	}
	return result, nil
}

func (hub *Hub) list() {
	if len(hub.collections) == 0 {
		hub.WriteString("There are no collections.\n")
		return
	}
	names := []string{}
	for k := range hub.collections {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		e := hub.collections[name]
		hub.WriteString(text.BULLET + name + " : " + e.kind() + " " + e.show() + "\n")
	}
}

// Completions returns the verbs, if we're at the start of a line, or else the names of the
// collections, which begin with prefix.
func (hub *Hub) Completions(prefix string, verb bool) []string {
	var words []string
	if verb {
		words = []string{"concat", "drivers", "help", "let", "list", "quit"}
		for k := range commands {
			words = append(words, k)
		}
	} else {
		for k := range hub.collections {
			words = append(words, k)
		}
	}
	result := []string{}
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			result = append(result, w)
		}
	}
	sort.Strings(result)
	return result
}

func (hub *Hub) quit() {
	hub.WriteString(hub.display(text.OK) + "\n" + hub.display(text.Logo()) + "Thank you for using Indexkit. Have a nice day!\n\n")
}

func (hub *Hub) help() {
	verbs := []string{}
	for k := range commands {
		verbs = append(verbs, k)
	}
	sort.Strings(verbs)
	hub.WriteString("\nCommands are:\n\n")
	hub.WriteString(text.BULLET + letUsage + "\n")
	hub.WriteString(text.BULLET + concatUsage + "\n")
	for _, v := range verbs {
		hub.WriteString(text.BULLET + commands[v].usage + "\n")
	}
	hub.WriteString(text.BULLET + "list\n" + text.BULLET + "drivers\n" + text.BULLET + "help\n" + text.BULLET + "quit\n")
	hub.WriteString("\nKinds of collection are:\n\n")
	kinds := []string{}
	for k := range kindDescriptions {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		hub.WritePretty(text.BULLET + "'" + k + "' : " + kindDescriptions[k])
	}
	hub.WriteString("\n")
}

func (hub *Hub) display(s string) string {
	if hub.config.Display == "plain" {
		return text.Plain(s)
	}
	return s
}

func (hub *Hub) WritePretty(s string) {
	hub.WriteString(hub.display(text.Pretty(s, 0, hub.config.Width)))
}

func (hub *Hub) WriteError(s string) {
	hub.WriteString(hub.display(text.Red("Error")) + ": " + s + "\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}
