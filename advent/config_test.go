package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	for _, tt := range []struct {
		ini  string
		want config
	}{
		{"", config{inputDir: "input", year: 2024}},
		{
			"[advent]\ninputdir = /tmp/aoc\nsession = abc123\nyear = 2023\n",
			config{inputDir: "/tmp/aoc", session: "abc123", year: 2023},
		},
		{
			"[other]\ninputdir = elsewhere\n[advent]\nsession = s\n",
			config{inputDir: "input", session: "s", year: 2024},
		},
	} {
		got, err := parseConfig(strings.NewReader(tt.ini))
		if err != nil {
			t.Errorf("parseConfig(%q): %s", tt.ini, err)
			continue
		}
		if !reflect.DeepEqual(*got, tt.want) {
			t.Errorf("parseConfig(%q): got %+v; want %+v", tt.ini, *got, tt.want)
		}
	}

	if _, err := parseConfig(strings.NewReader("[advent]\nyear = next\n")); err == nil {
		t.Error("bad year: got nil error")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(name, []byte("[advent]\ninputdir = puzzles\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if conf.inputDir != "puzzles" {
		t.Errorf("got inputDir %q; want puzzles", conf.inputDir)
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.ini")); err == nil {
		t.Error("explicit missing config: got nil error")
	}
}
