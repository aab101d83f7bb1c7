package main

// This is a tree-walking interpreter for the Lox programming language.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ltungv/lox/tlox/internal/lox"
	"github.com/peterh/liner"
)

const defaultConfigFile = ".tlox.yaml"

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tlox [-config file] [script]")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	config, err := loadConfig(*configPath)
	exitOnError(err, 64)

	reporter := lox.NewSimpleReporter(os.Stderr)
	if len(args) != 1 {
		config.REPL = true
		interpreter := lox.NewInterpreter(os.Stdout, reporter, config)
		runPrompt(interpreter, reporter, config)
	} else {
		interpreter := lox.NewInterpreter(os.Stdout, reporter, config)
		runFile(args[0], interpreter, reporter)
	}
}

// loadConfig reads the file given on the command line, or the one in the home
// directory when it exists.
func loadConfig(path string) (lox.Config, error) {
	if path != "" {
		return lox.LoadConfig(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return lox.DefaultConfig(), nil
	}
	config, err := lox.LoadConfig(filepath.Join(home, defaultConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return lox.DefaultConfig(), nil
	}
	return config, err
}

func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}
	interpreter.Interpret(statements)
}

// Run the interpreter in REPL mode
func runPrompt(interpreter *lox.Interpreter, reporter lox.Reporter, config lox.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(config.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(config.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		run(line, interpreter, reporter)
		reporter.Reset()
	}
}

func historyPath(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return file
	}
	return filepath.Join(home, file)
}

// Run the given file as script
func runFile(fpath string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	run(string(bytes), interpreter, reporter)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
