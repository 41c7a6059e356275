package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"
)

// repl runs s on each line typed at the terminal.
func repl(name string, s solution, verbose bool) error {
	cfg := &readline.Config{Prompt: name + "> "}
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, "advent_history")
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if line == "" {
			continue
		}
		answer, err := s.fn(strings.NewReader(line))
		if err != nil {
			log.Println(err)
			continue
		}
		if verbose && s.explain != nil {
			pretty.Println(s.explain(line))
		}
		fmt.Println(answer)
	}
}
