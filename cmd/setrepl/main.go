package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// main() starts an interactive CLI ("setrepl"), where users may enter commands
// operating on named sets of strings. setrepl will print out the result of
// every command. Initial commands may be loaded from a file (flag -init),
// further commands may be given as arguments, separated by ';'.
func main() {
	// set up logging
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to setrepl")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	gtrace.SyntaxTracer.SetTraceLevel(traceLevel(*tlevel))
	//
	// set up REPL
	repl, err := readline.New("setrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp()
	intp.repl = repl
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	for _, line := range strings.Split(input, ";") {
		if line = strings.TrimSpace(line); line != "" {
			tracer().Infof("Input argument is \"%s\"", line)
			intp.Eval(line)
		}
	}
	intp.REPL() // go into interactive mode
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
	if n := intp.load(bufio.NewScanner(f)); n > 0 {
		tracer().Errorf("%d errors in init file %s", n, filename)
	}
}

// load evaluates commands line by line and returns the number of failed
// commands.
func (intp *Intp) load(scanner *bufio.Scanner) int {
	lineno, errcnt := 0, 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
			errcnt++
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
		errcnt++
	}
	return errcnt
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
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
