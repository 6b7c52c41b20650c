package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jcorbin/easyforth/internal/logio"
)

const (
	promptMain  = "> "
	promptCont  = "... "
	historyFile = ".easyforth_history"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	run(&log)
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger) {
	ctx := context.Background()

	var (
		timeout  time.Duration
		trace    bool
		dump     bool
		histPath string
		teePath  string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump the stack and dictionary on exit")
	flag.StringVar(&histPath, "history", defaultHistoryPath(), "interactive history file")
	flag.StringVar(&teePath, "tee", "", "also write output to a transcript file")
	flag.Parse()

	var opts = []Option{
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if teePath != "" {
		f, err := os.Create(teePath)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}

	var lines *linerLines
	if term.IsTerminal(int(os.Stdin.Fd())) {
		lines = openLiner(histPath, log)
		opts = append(opts, WithLines(lines))
	} else {
		opts = append(opts, WithInput(os.Stdin), WithEcho(true))
	}

	vm := New(opts...)
	defer func() {
		if err := vm.Close(); err != nil {
			log.Errorf("%v", err)
		}
	}()
	if lines != nil {
		lines.vm = vm
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			if lines != nil {
				lines.Close()
			}
			os.Exit(130)
		}
	}()

	if err := vm.Interpret(ctx); err != nil {
		log.Errorf("%+v", err)
	}
	if dump {
		vm.Dump(os.Stderr)
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// linerLines reads interactive lines, prompting for continuation while a
// definition is open.
type linerLines struct {
	*liner.State
	vm       *Forth
	histPath string
	log      *logio.Logger
}

func openLiner(histPath string, log *logio.Logger) *linerLines {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerLines{State: ln, histPath: histPath, log: log}
}

func (ll *linerLines) ReadLine() (string, error) {
	prompt := promptMain
	if ll.vm != nil && ll.vm.InDefinition() {
		prompt = promptCont
	}
	line, err := ll.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err == nil && strings.TrimSpace(line) != "" {
		ll.AppendHistory(line)
	}
	return line, err
}

// Close saves history, then restores the terminal.
func (ll *linerLines) Close() error {
	if ll.histPath != "" {
		if f, err := os.Create(ll.histPath); err == nil {
			if _, err := ll.WriteHistory(f); err != nil {
				ll.log.Printf("WARN", "unable to save history: %v", err)
			}
			_ = f.Close()
		}
	}
	return ll.State.Close()
}
