// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"robpike.io/keypad/config"
	"robpike.io/keypad/demo"
	"robpike.io/keypad/exec"
	"robpike.io/keypad/run"
	"robpike.io/keypad/ui"
)

var (
	configFile  = flag.String("config", "", "configuration `file` (.toml, .yaml or .yml); default $XDG_CONFIG_HOME/keypad/config.toml")
	expr        = flag.String("e", "", "evaluate the `expression`, print the result and exit")
	format      = flag.String("format", "", "fmt `verb` for printing results; default is the shortest form")
	prompt      = flag.String("prompt", "", "command prompt in line mode")
	historySize = flag.Int("history", config.DefaultHistory, "number of results kept in the history")
	lineMode    = flag.Bool("line", false, "read lines of button presses even on a terminal")
	jsonOut     = flag.Bool("json", false, "in line mode, print the session as JSON after each line")
	demoMode    = flag.Bool("demo", false, "run the demo")
	logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFile     = flag.String("log", "", "log `file`; default standard error, or nowhere in the terminal keypad")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("keypad: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}
	os.Exit(keypad())
}

func keypad() int {
	level, err := parseLevel(*logLevel)
	if err != nil {
		log.Print(err)
		return 2
	}

	path := *configFile
	if path == "" {
		path = defaultConfigFile()
	}
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			log.Print(err)
			return 1
		}
		if f == nil {
			if *configFile != "" {
				log.Printf("config file %s does not exist", path)
				return 1
			}
			path = "" // No default file; nothing to watch.
		}
		f.Apply(&conf)
	}
	if err := applyFlags(&conf); err != nil {
		log.Print(err)
		return 2
	}

	useTerminal := !*lineMode && *expr == "" && !*demoMode && isTTY(os.Stdin) && isTTY(os.Stdout)
	logger, closeLog, err := newLogger(level, useTerminal)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer closeLog()

	if *expr != "" {
		result, err := exec.Eval(&conf, *expr)
		if err != nil {
			logger.Debug("evaluation failed", "expr", *expr, "err", err)
			fmt.Println("Error")
			return 1
		}
		fmt.Println(result)
		return 0
	}

	session := exec.NewContext(&conf, logger)

	if *demoMode {
		var input io.Reader
		if isTTY(os.Stdin) {
			input = os.Stdin
		}
		if err := demo.Run(input, run.LineWriter(session), os.Stdout); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	if !useTerminal {
		if !run.Run(session, os.Stdin, isTTY(os.Stdin)) {
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	u, err := ui.Open(session, logger)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer u.Close()
	if path != "" {
		if err := config.Watch(ctx, path, u.Reload); err != nil {
			logger.Warn("cannot watch config file", "path", path, "err", err)
		}
	}
	if err := u.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Print(err)
		return 1
	}
	return 0
}

// applyFlags copies the flags set on the command line into c, where
// they override the configuration file.
func applyFlags(c *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			if err = config.CheckFormat(*format); err == nil {
				c.SetFormat(*format)
			}
		case "prompt":
			c.SetPrompt(*prompt)
		case "history":
			c.SetHistory(*historySize)
		}
	})
	c.SetJSON(*jsonOut)
	return err
}

// defaultConfigFile returns the path of the configuration file in the
// user's configuration directory, or "" if there is none.
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keypad", "config.toml")
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
}

// newLogger returns the logger for the session. The terminal keypad
// owns the screen, so unless there is a log file its logs are discarded.
func newLogger(level slog.Level, terminal bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	case terminal:
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: keypad [options]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
