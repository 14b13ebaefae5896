package main

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/avl"
	"github.com/katalvlaran/lvlds/bst"
	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/list"
	"github.com/katalvlaran/lvlds/queue"
	"github.com/katalvlaran/lvlds/searchx"
	"github.com/katalvlaran/lvlds/sortx"
	"github.com/katalvlaran/lvlds/stack"
	"github.com/katalvlaran/lvlds/trie"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactively build and inspect a data structure",
		Long: `demo prompts for a structure, an element type and a list of values,
then prints the populated structure. Trees additionally print all four
traversal orders and an ASCII shape dump.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(newLogger(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// demoSession bundles the prompt I/O so every helper reads and writes
// through the same scanner and writer.
type demoSession struct {
	log zerolog.Logger
	in  *bufio.Scanner
	out io.Writer
}

// structureMenu lists the menu choices. trie is handled separately from
// the generic runner because it only stores strings.
const structureMenu = "array/list/stack/queue/ring/heap/avl/bst/trie"

// runDemo drives structure-selection rounds until quit or end of input:
// structure, element type, values, rendered result. Invalid menu choices
// and malformed values re-prompt.
func runDemo(log zerolog.Logger, in io.Reader, out io.Writer) error {
	s := &demoSession{log: log, in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, titleStyle.Render("lvlds interactive demo"))

	for {
		structure, err := s.promptMenu("Structure (" + structureMenu + ", or quit): ")
		if err != nil {
			return endSession(err)
		}

		switch structure {
		case "quit", "q", "exit":
			return nil
		case "trie":
			err = s.demoTrie()
		case "array", "list", "stack", "queue", "ring", "heap", "avl", "bst":
			err = s.demoTyped(structure)
		default:
			fmt.Fprintln(out, errorStyle.Render("invalid structure choice"))

			continue
		}

		if err != nil {
			return endSession(err)
		}
	}
}

// endSession turns end-of-input into a clean exit.
func endSession(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// demoTyped picks the element type, then hands off to the generic runner
// instantiated for it.
func (s *demoSession) demoTyped(structure string) error {
	for {
		typ, err := s.promptMenu("Element type (int/float/string): ")
		if err != nil {
			return err
		}

		switch typ {
		case "int":
			return runStructure(s, structure, strconv.Atoi)
		case "float":
			return runStructure(s, structure, func(raw string) (float64, error) {
				return strconv.ParseFloat(raw, 64)
			})
		case "string":
			return runStructure(s, structure, parseWord)
		default:
			fmt.Fprintln(s.out, errorStyle.Render("invalid element type"))
		}
	}
}

func parseWord(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("empty input")
	}

	return raw, nil
}

// runStructure reads values with parse and exercises the chosen container.
func runStructure[T cmp.Ordered](s *demoSession, structure string, parse func(string) (T, error)) error {
	var kind string
	if structure == "list" {
		var err error
		if kind, err = s.promptMenu("List kind (sll/dll/cll): "); err != nil {
			return err
		}
		if kind != "sll" && kind != "dll" && kind != "cll" {
			fmt.Fprintln(s.out, errorStyle.Render("invalid list kind"))

			return nil
		}
	}

	vals, err := readValues(s, parse)
	if err != nil {
		return err
	}
	s.log.Debug().Str("structure", structure).Int("count", len(vals)).Msg("building")

	switch structure {
	case "array":
		return demoArray(s, vals, parse)
	case "list":
		demoList(s, kind, vals)
	case "stack":
		demoStack(s, vals)
	case "queue":
		demoQueue(s, vals)
	case "ring":
		return demoRing(s, vals)
	case "heap":
		demoHeap(s, vals)
	case "avl":
		demoAVL(s, vals)
	case "bst":
		demoBST(s, vals)
	}

	return nil
}

// promptMenu prints label and returns the next input line lowercased,
// for case-insensitive menu matching.
func (s *demoSession) promptMenu(label string) (string, error) {
	line, err := s.promptLine(label)

	return strings.ToLower(line), err
}

// promptLine prints label and returns the next whitespace-trimmed input
// line, or io.EOF when input ends.
func (s *demoSession) promptLine(label string) (string, error) {
	fmt.Fprint(s.out, promptStyle.Render(label))
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// readValues prompts for a count and then that many values,
// re-prompting on tokens parse rejects.
func readValues[T any](s *demoSession, parse func(string) (T, error)) ([]T, error) {
	count, err := s.readCount()
	if err != nil {
		return nil, err
	}

	vals := make([]T, 0, count)
	for len(vals) < count {
		raw, err := s.promptLine(fmt.Sprintf("Value %d: ", len(vals)+1))
		if err != nil {
			return nil, err
		}
		v, convErr := parse(raw)
		if convErr != nil {
			fmt.Fprintln(s.out, errorStyle.Render("invalid value, try again"))

			continue
		}
		vals = append(vals, v)
	}

	return vals, nil
}

func (s *demoSession) readCount() (int, error) {
	for {
		raw, err := s.promptLine("Number of elements: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			fmt.Fprintln(s.out, errorStyle.Render("need a non-negative integer"))

			continue
		}

		return n, nil
	}
}

func (s *demoSession) render(label string, v any) {
	fmt.Fprintf(s.out, "%s %v\n", resultStyle.Render(label), v)
}

// demoArray sorts the entered values and binary-searches a target in the
// sorted copy.
func demoArray[T cmp.Ordered](s *demoSession, vals []T, parse func(string) (T, error)) error {
	s.render("Array:", vals)

	sorted := make([]T, len(vals))
	copy(sorted, vals)
	sortx.Quick(sorted)
	s.render("Sorted:", sorted)

	for {
		raw, err := s.promptLine("Value to search for: ")
		if err != nil {
			return err
		}
		target, convErr := parse(raw)
		if convErr != nil {
			fmt.Fprintln(s.out, errorStyle.Render("invalid value, try again"))

			continue
		}

		if idx, ok := searchx.Binary(sorted, target); ok {
			s.render("Found at sorted index:", idx)
		} else {
			s.render("Not found:", target)
		}

		return nil
	}
}

func demoList[T cmp.Ordered](s *demoSession, kind string, vals []T) {
	switch kind {
	case "sll":
		l := list.New[T]()
		for _, v := range vals {
			l.PushBack(v)
		}
		s.render("List:", l.Values())
		l.Reverse()
		s.render("Reversed:", l.Values())
	case "dll":
		l := list.NewDoubly[T]()
		for _, v := range vals {
			l.PushBack(v)
		}
		s.render("List:", l.Values())
		s.render("Backward:", l.ValuesReverse())
	case "cll":
		l := list.NewCircular[T]()
		for _, v := range vals {
			l.PushBack(v)
		}
		s.render("Ring:", l.Values())
		l.Rotate()
		s.render("After one rotation:", l.Values())
	}
}

func demoStack[T any](s *demoSession, vals []T) {
	st := stack.New[T]()
	for _, v := range vals {
		st.Push(v)
	}
	s.render("Stack (bottom to top):", st.Values())

	if top, err := st.Top(); err == nil {
		s.render("Top:", top)
	} else {
		fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
	}
}

func demoQueue[T any](s *demoSession, vals []T) {
	q := queue.New[T]()
	for _, v := range vals {
		q.Enqueue(v)
	}
	s.render("Queue (front to back):", q.Values())

	if front, err := q.Front(); err == nil {
		s.render("Front:", front)
	} else {
		fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
	}
}

func demoRing[T any](s *demoSession, vals []T) error {
	capacity := len(vals)
	if capacity == 0 {
		capacity = 1
	}
	r, err := queue.NewRing[T](capacity)
	if err != nil {
		return err
	}
	for _, v := range vals {
		if err := r.Enqueue(v); err != nil {
			fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
		}
	}
	s.render(fmt.Sprintf("Ring (%d/%d):", r.Len(), r.Cap()), r.Values())

	return nil
}

func demoHeap[T cmp.Ordered](s *demoSession, vals []T) {
	h := heap.NewMin[T]()
	h.Heapify(vals)

	drained := make([]T, 0, h.Len())
	for !h.Empty() {
		v, _ := h.Pop()
		drained = append(drained, v)
	}
	s.render("Min-heap drain (ascending):", drained)
}

func demoAVL[T cmp.Ordered](s *demoSession, vals []T) {
	t := avl.New[T]()
	for _, v := range vals {
		if err := t.Insert(v); err != nil {
			fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
		}
	}

	s.render("Summary:", t.String())
	s.render("Inorder:", t.InOrder())
	s.render("Preorder:", t.PreOrder())
	s.render("Postorder:", t.PostOrder())
	s.render("Levelorder:", t.LevelOrder())
	t.Dump(s.out)
}

func demoBST[T cmp.Ordered](s *demoSession, vals []T) {
	t := bst.New[T]()
	for _, v := range vals {
		t.Insert(v)
	}

	s.render("Summary:", t.String())
	s.render("Inorder:", t.InOrder())
	s.render("Levelorder:", t.LevelOrder())
}

func (s *demoSession) demoTrie() error {
	words, err := readValues(s, parseWord)
	if err != nil {
		return err
	}

	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}

	prefix, err := s.promptLine("Prefix to query: ")
	if err != nil {
		return err
	}
	s.render(fmt.Sprintf("Words with prefix %q:", prefix), tr.WordsWithPrefix(prefix))

	return nil
}
