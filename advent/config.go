package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

type config struct {
	inputDir string
	session  string // adventofcode.com session cookie; empty disables downloads
	year     int
}

func defaultConfig() *config {
	return &config{
		inputDir: "input",
		year:     2024,
	}
}

// loadConfig reads the [advent] section of an ini file on top of the
// defaults. If filename is empty, the file under the user's config
// directory is used if it exists.
func loadConfig(filename string) (*config, error) {
	explicit := filename != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return defaultConfig(), nil
		}
		filename = filepath.Join(dir, "advent", "config.ini")
	}
	f, err := os.Open(filename)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	defer f.Close()
	conf, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	return conf, nil
}

func parseConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	conf := defaultConfig()
	section := file.Section("advent")
	if v, ok := section["inputdir"]; ok && v != "" {
		conf.inputDir = v
	}
	if v, ok := section["session"]; ok {
		conf.session = strings.TrimSpace(v)
	}
	if v, ok := section["year"]; ok {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("bad year %q", v)
		}
		conf.year = year
	}
	return conf, nil
}
