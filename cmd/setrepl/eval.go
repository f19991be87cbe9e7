package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"

	"github.com/npillmayer/lset"
	"github.com/npillmayer/lset/array"
	"github.com/npillmayer/lset/linked"
)

// errUnknownSet is returned for commands naming a set which has not been
// created with 'new'.
var errUnknownSet = errors.New("unknown set")

// errNoCursor is returned by cursor commands if no cursor has been created.
var errNoCursor = errors.New("no cursor; create one with 'cursor <set>'")

// Intp is our interpreter object
type Intp struct {
	sets      map[string]*linked.LinkedSet[string]
	cursor    *linked.Cursor[string]
	cursorOn  string
	lastValue interface{}
	repl      *readline.Instance
}

// NewIntp creates an interpreter without any sets.
func NewIntp() *Intp {
	return &Intp{sets: make(map[string]*linked.LinkedSet[string])}
}

type command struct {
	minArgs int
	usage   string
	run     func(intp *Intp, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":      {1, "new <set> [values...]", (*Intp).newSet},
		"insert":   {1, "insert <set> values...", (*Intp).insert},
		"erase":    {1, "erase <set> values...", (*Intp).erase},
		"retain":   {1, "retain <set> values...", (*Intp).retain},
		"contains": {1, "contains <set> values...", (*Intp).contains},
		"size":     {1, "size <set>", (*Intp).size},
		"clear":    {1, "clear <set>", (*Intp).clear},
		"show":     {1, "show <set>", (*Intp).show},
		"debug":    {1, "debug <set>", (*Intp).debug},
		"copy":     {2, "copy <from> <to>", (*Intp).copySet},
		"cmp":      {2, "cmp <set> <set>", (*Intp).compare},
		"sorted":   {1, "sorted <set> [sets...]", (*Intp).sorted},
		"hash":     {1, "hash <set>", (*Intp).hash},
		"tree":     {0, "tree", (*Intp).tree},
		"cursor":   {1, "cursor <set>", (*Intp).newCursor},
		"next":     {0, "next", (*Intp).next},
		"value":    {0, "value", (*Intp).value},
		"drop":     {0, "drop", (*Intp).drop},
		"sets":     {0, "sets", (*Intp).listSets},
	}
}

// Eval evaluates a command, given on a line by itself. It returns true if
// the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	words, err := scan(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if len(words) == 0 {
		return false, nil
	}
	if words[0].kind != tokID {
		err = errors.Newf("command expected, found %s", words[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	name := words[0].text
	if name == "quit" {
		return true, nil
	}
	cmd, ok := commands[name]
	if !ok {
		err = errors.Newf("unknown command: %s", name)
		pterm.Error.Println(err.Error())
		return false, err
	}
	args := make([]string, len(words)-1)
	for i, w := range words[1:] {
		args[i] = w.text
	}
	if len(args) < cmd.minArgs {
		err = errors.Newf("usage: %s", cmd.usage)
		pterm.Error.Println(err.Error())
		return false, err
	}
	tracer().Debugf("%s %v", name, args)
	intp.lastValue = nil
	if err = cmd.run(intp, args); err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if intp.lastValue != nil {
		pterm.Info.Println(fmt.Sprint(intp.lastValue))
	}
	return false, nil
}

func (intp *Intp) lookup(name string) (*linked.LinkedSet[string], error) {
	s, ok := intp.sets[name]
	if !ok {
		return nil, errors.Wrapf(errUnknownSet, "%q", name)
	}
	return s, nil
}

// --- Set commands ----------------------------------------------------------

// newSet creates a set, replacing any set of the same name. A cursor on the
// replaced set is dropped.
func (intp *Intp) newSet(args []string) error {
	s := linked.Of(args[1:]...)
	if intp.cursor != nil && intp.cursorOn == args[0] {
		tracer().Debugf("dropping cursor on replaced set %s", args[0])
		intp.cursor, intp.cursorOn = nil, ""
	}
	intp.sets[args[0]] = s
	intp.lastValue = s
	return nil
}

// bulk runs one of the bulk operations of a set and reports the count.
func (intp *Intp) bulk(args []string, op func(*linked.LinkedSet[string]) int) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	n := op(s)
	intp.lastValue = fmt.Sprintf("%d → %s", n, s)
	return nil
}

func (intp *Intp) insert(args []string) error {
	return intp.bulk(args, func(s *linked.LinkedSet[string]) int {
		return s.InsertAll(lset.Values(args[1:]...))
	})
}

func (intp *Intp) erase(args []string) error {
	return intp.bulk(args, func(s *linked.LinkedSet[string]) int {
		return s.EraseAll(lset.Values(args[1:]...))
	})
}

func (intp *Intp) retain(args []string) error {
	return intp.bulk(args, func(s *linked.LinkedSet[string]) int {
		return s.RetainAll(lset.Values(args[1:]...))
	})
}

func (intp *Intp) contains(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	intp.lastValue = s.ContainsAll(lset.Values(args[1:]...))
	return nil
}

func (intp *Intp) size(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	intp.lastValue = s.Size()
	return nil
}

func (intp *Intp) clear(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	s.Clear()
	intp.lastValue = s
	return nil
}

func (intp *Intp) show(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	intp.lastValue = s
	return nil
}

func (intp *Intp) debug(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	intp.lastValue = s.DebugString()
	return nil
}

// copySet copies a set into another one. An existing target set is overwritten
// in place, invalidating its cursors.
func (intp *Intp) copySet(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	if t, ok := intp.sets[args[1]]; ok {
		t.Assign(s)
		intp.lastValue = t
		return nil
	}
	intp.sets[args[1]] = s.Copy()
	intp.lastValue = intp.sets[args[1]]
	return nil
}

// compare reports the relation between two sets.
func (intp *Intp) compare(args []string) error {
	a, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	b, err := intp.lookup(args[1])
	if err != nil {
		return err
	}
	rel := relation(a, b)
	intp.lastValue = fmt.Sprintf("%s %s %s", args[0], rel, args[1])
	return nil
}

func relation(a, b *linked.LinkedSet[string]) string {
	switch {
	case a.Equal(b):
		return "="
	case a.ProperSubsetOf(b):
		return "<"
	case a.ProperSupersetOf(b):
		return ">"
	}
	return "<>"
}

// sorted lists the values of one set in sorted order. With more than one set
// it lists the sorted union.
func (intp *Intp) sorted(args []string) error {
	if len(args) == 1 {
		s, err := intp.lookup(args[0])
		if err != nil {
			return err
		}
		intp.lastValue = linked.Sorted(s)
		return nil
	}
	union := treeset.NewWith(utils.StringComparator)
	for _, name := range args {
		s, err := intp.lookup(name)
		if err != nil {
			return err
		}
		for v := range s.All() {
			union.Add(v)
		}
	}
	intp.lastValue = linked.From(array.Seq[string](union)).Values()
	return nil
}

func (intp *Intp) hash(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	h, err := s.Fingerprint()
	if err != nil {
		return err
	}
	intp.lastValue = h
	return nil
}

func (intp *Intp) listSets(args []string) error {
	intp.lastValue = strings.Join(intp.setNames(), " ")
	return nil
}

// setNames returns the names of all sets in alphabetical order.
func (intp *Intp) setNames() []string {
	names := treeset.NewWith(utils.StringComparator)
	for name := range intp.sets {
		names.Add(name)
	}
	return linked.From(array.Seq[string](names)).Values()
}

// --- Cursor commands -------------------------------------------------------

func (intp *Intp) newCursor(args []string) error {
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	intp.cursor = s.Begin()
	intp.cursorOn = args[0]
	intp.lastValue = intp.cursor
	return nil
}

func (intp *Intp) next(args []string) error {
	if intp.cursor == nil {
		return errNoCursor
	}
	if err := intp.cursor.Next(); err != nil {
		return err
	}
	intp.lastValue = intp.cursor
	return nil
}

func (intp *Intp) value(args []string) error {
	if intp.cursor == nil {
		return errNoCursor
	}
	v, err := intp.cursor.Value()
	if err != nil {
		return err
	}
	intp.lastValue = v
	return nil
}

func (intp *Intp) drop(args []string) error {
	if intp.cursor == nil {
		return errNoCursor
	}
	v, err := intp.cursor.Erase()
	if err != nil {
		return err
	}
	intp.lastValue = fmt.Sprintf("dropped %s from %s", v, intp.cursorOn)
	return nil
}

// --- Tree display ----------------------------------------------------------

// tree is a helper command to display all sets as a tree on a terminal.
func (intp *Intp) tree(args []string) error {
	ll := intp.leveledSets()
	if len(ll) == 0 {
		intp.lastValue = "no sets"
		return nil
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.Println("sets")
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func (intp *Intp) leveledSets() pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, name := range intp.setNames() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: name})
		for v := range intp.sets[name].All() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: v})
		}
	}
	return ll
}
