package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lambdaman/term"
	"github.com/npillmayer/lambdaman/term/church"
	"github.com/npillmayer/lambdaman/term/reduce"
	"github.com/npillmayer/lambdaman/term/termlang"
	"github.com/pterm/pterm"
	"github.com/samber/lo"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// SGR colors for highlighting reduction steps.
const (
	redexColor  = "31" // red
	resultColor = "32" // green
)

// tracing keys of all the packages involved
var traceKeys = []string{
	"lambdaman.lrepl",
	"lambdaman.scanner",
	"lambdaman.term",
	"lambdaman.termlang",
	"lambdaman.reduce",
}

var strategies = map[string]reduce.Strategy{
	"best":     reduce.Best,
	"leftmost": reduce.Leftmost,
}

// main() starts an interactive CLI ("L.REPL"), where users may enter lambda
// terms. L.REPL will reduce each term to normal form and print out the steps.
//
// Please refer to packages "term", "term/termlang" and "term/reduce".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	maxSteps := flag.Int("max-steps", 1000, "Maximum number of reduction steps per term")
	quiet := flag.Bool("quiet", false, "Do not list redex candidates")
	strategy := flag.String("strategy", "best", "Redex selection [best|leftmost]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("lrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		repl:     repl,
		maxSteps: *maxSteps,
		quiet:    *quiet,
		strategy: reduce.Best,
	}
	if err := intp.selectStrategy(*strategy); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// load an init file and start receiving commands / terms
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	lastTerm term.Term       // last normal form
	maxSteps int             // step limit per term
	quiet    bool            // suppress candidate lists
	strategy reduce.Strategy // redex selection
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, either a command or a term. It returns true
// if the user wants to quit.
//
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return false, intp.reduce(line)
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":tree":
		return false, intp.tree(arg)
	case ":church":
		return false, intp.numeral(arg)
	case ":strategy":
		if err := intp.selectStrategy(arg); err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		pterm.Info.Printf("strategy is %s\n", arg)
		return false, nil
	case ":help":
		pterm.Info.Println("commands are :tree <term>, :church <n>, :strategy <best|leftmost>, :quit")
		return false, nil
	}
	err := fmt.Errorf("unknown command %s", cmd)
	pterm.Error.Println(err.Error())
	return false, err
}

func (intp *Intp) selectStrategy(name string) error {
	s, ok := strategies[name]
	if !ok {
		return fmt.Errorf("no strategy %q, choose one of %v", name, lo.Keys(strategies))
	}
	intp.strategy = s
	return nil
}

func (intp *Intp) parse(input string) (term.Term, error) {
	t, err := termlang.Parse(input)
	if err != nil {
		var perr *termlang.ParseError
		if errors.As(err, &perr) {
			pterm.Error.Println(perr.Diagnostic())
		} else {
			pterm.Error.Println(err.Error())
		}
		return nil, err
	}
	return t, nil
}

// reduce reduces a term to normal form, printing every step.
func (intp *Intp) reduce(input string) error {
	t, err := intp.parse(input)
	if err != nil {
		return err
	}
	norm := reduce.NewNormalizer(
		reduce.MaxSteps(intp.maxSteps),
		reduce.WithStrategy(intp.strategy),
		reduce.OnStep(intp.printStep),
	)
	t, stats, err := norm.Normalize(t)
	if err != nil {
		pterm.Error.Println(err.Error())
		pterm.Info.Println(highlight(t, nil, ""))
		return err
	}
	intp.lastTerm = t
	pterm.Info.Printf("normal form after %d steps\n", stats.Steps)
	pterm.Info.Println(highlight(t, nil, ""))
	if n, ok := church.DecodeNumeral(t); ok {
		pterm.Info.Printf("= %d (as a Church numeral)\n", n)
	}
	return nil
}

func (intp *Intp) printStep(s reduce.Step) {
	if !intp.quiet && len(s.Candidates) > 1 {
		ranked := lo.Map(reduce.Rank(s.Candidates), func(r reduce.Redex, _ int) string {
			return r.String()
		})
		pterm.Printf("     candidates %s\n", strings.Join(ranked, " "))
	}
	pterm.Printf("%4d %s\n", s.N, highlight(s.Before, s.Redex.Path, redexColor))
	pterm.Printf("   → %s\n", highlight(s.After, s.Result, resultColor))
}

// highlight formats a term, marking the node at path p. Errors are appended.
func highlight(t term.Term, p term.Path, color string) string {
	var s string
	var err error
	if p == nil {
		s, err = term.Format(t)
	} else {
		s, err = term.Highlight(t, p, color)
	}
	if err != nil {
		return s + " <" + err.Error() + ">"
	}
	return s
}

func (intp *Intp) numeral(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		err = fmt.Errorf("not a natural number: %q", arg)
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Println(highlight(church.Numeral(n), nil, ""))
	return nil
}

// tree is a helper command to display a term as a tree on a terminal.
func (intp *Intp) tree(arg string) error {
	var t term.Term
	if arg == "" {
		if t = intp.lastTerm; t == nil {
			err := errors.New("no term to display")
			pterm.Error.Println(err.Error())
			return err
		}
	} else {
		var err error
		if t, err = intp.parse(arg); err != nil {
			return err
		}
	}
	ll := leveledTerm(t)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func leveledTerm(t term.Term) pterm.LeveledList {
	var ll pterm.LeveledList
	node, seq := term.Traverse(t).First()
	for ; !seq.Done(); node = seq.Next() {
		ll = append(ll, pterm.LeveledListItem{
			Level: node.Level,
			Text:  label(node),
		})
	}
	return ll
}

func label(node term.TreeNode) string {
	switch x := node.Term.(type) {
	case *term.Application:
		return fmt.Sprintf("@ %d terms", len(x.Terms))
	case *term.Abstraction:
		if name, err := term.BinderName(node.Depth); err == nil {
			return "λ" + name
		}
		return "λ"
	case *term.BoundVar:
		if b := node.Depth - x.Index - 1; b >= 0 {
			if name, err := term.BinderName(b); err == nil {
				return fmt.Sprintf("%s #%d", name, x.Index)
			}
		}
		return fmt.Sprintf("!%d!", x.Index)
	case *term.Atom:
		return "'" + x.Name
	}
	return "?"
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
