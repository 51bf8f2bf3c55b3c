// Command starbinspect is an interactive browser for generated
// pattern library files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kristofer84/star-battle-patterns/patterns"
)

func main() {
	rl, err := readline.New("starb> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't open terminal: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	s := &session{out: os.Stdout}
	if len(os.Args) > 1 {
		s.load(os.Args[1])
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		command := strings.ToLower(args[0])
		if command == "quit" || command == "exit" {
			return
		}
		dispatchCommand(s, command, args[1:])
	}
}

// a session holds the loaded library, if any
type session struct {
	out  io.Writer
	path string
	lib  *patterns.Library
}

/*

command dispatching

*/

type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*session, []string)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"families", "", "list the built-in schema families", familiesHandler},
		{"help", "", "show this list", helpHandler},
		{"list", "", "list the loaded library's patterns", listHandler},
		{"load", "path", "load a library file", loadHandler},
		{"show", "n", "show pattern n in detail", showHandler},
		{"stats", "", "summarize the loaded library", statsHandler},
	}
	sort.Slice(dispatchInfo, func(i, j int) bool {
		return dispatchInfo[i].command < dispatchInfo[j].command
	})
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(s *session, command string, args []string) {
	ci, ok := dispatchTable[command]
	if !ok {
		fmt.Fprintf(s.out, "unknown command %q; try help\n", command)
		return
	}
	ci.handler(s, args)
}

/*

handlers

*/

func helpHandler(s *session, args []string) {
	for _, ci := range dispatchInfo {
		fmt.Fprintf(s.out, "  %-10s %-6s %s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(s.out, "  %-10s %-6s %s\n", "quit", "", "leave")
}

func familiesHandler(s *session, args []string) {
	for _, id := range patterns.KnownFamilyIDs() {
		fmt.Fprintf(s.out, "  %s\n", id)
	}
}

func (s *session) load(path string) {
	lib, err := patterns.ReadLibrary(path)
	if err != nil {
		fmt.Fprintf(s.out, "load failed: %v\n", err)
		return
	}
	s.path, s.lib = path, &lib
	fmt.Fprintf(s.out, "loaded %s: family %s, %d patterns\n", path, lib.FamilyID, len(lib.Patterns))
}

func loadHandler(s *session, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: load path\n")
		return
	}
	s.load(args[0])
}

func requireLibrary(s *session) bool {
	if s.lib == nil {
		fmt.Fprintf(s.out, "no library loaded; use load first\n")
		return false
	}
	return true
}

func listHandler(s *session, args []string) {
	if !requireLibrary(s) {
		return
	}
	for i, p := range s.lib.Patterns {
		fmt.Fprintf(s.out, "%4d: %dx%d window, %d deduction(s)\n",
			i, p.WindowWidth, p.WindowHeight, len(p.Deductions))
	}
}

func showHandler(s *session, args []string) {
	if !requireLibrary(s) {
		return
	}
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: show n\n")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= len(s.lib.Patterns) {
		fmt.Fprintf(s.out, "no pattern %q (library has %d)\n", args[0], len(s.lib.Patterns))
		return
	}
	p := s.lib.Patterns[n]
	fmt.Fprintf(s.out, "id: %s\nwindow: %dx%d\n", p.ID, p.WindowWidth, p.WindowHeight)
	keys := make([]string, 0, len(p.Data))
	for k := range p.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.out, "data.%s: %v\n", k, p.Data[k])
	}
	for _, d := range p.Deductions {
		fmt.Fprintf(s.out, "%s: cells %v\n", d.Type, d.RelativeCellIDs)
	}
}

func statsHandler(s *session, args []string) {
	if !requireLibrary(s) {
		return
	}
	stars, empties := 0, 0
	byWindow := make(map[string]int)
	for _, p := range s.lib.Patterns {
		byWindow[fmt.Sprintf("%dx%d", p.WindowWidth, p.WindowHeight)]++
		for _, d := range p.Deductions {
			switch d.Type {
			case patterns.ForceStar:
				stars += len(d.RelativeCellIDs)
			case patterns.ForceEmpty:
				empties += len(d.RelativeCellIDs)
			}
		}
	}
	fmt.Fprintf(s.out, "family: %s\nboard: %d (%d stars/unit)\npatterns: %d\n",
		s.lib.FamilyID, s.lib.BoardSize, s.lib.StarsPerRow, len(s.lib.Patterns))
	fmt.Fprintf(s.out, "forced stars: %d, forced empties: %d\n", stars, empties)
	windows := make([]string, 0, len(byWindow))
	for w := range byWindow {
		windows = append(windows, w)
	}
	sort.Strings(windows)
	for _, w := range windows {
		fmt.Fprintf(s.out, "  %s: %d\n", w, byWindow[w])
	}
}
