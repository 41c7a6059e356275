package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/cp"
	"github.com/dustin/go-humanize"
)

func inputFile(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// readInput returns the puzzle input for day. If it isn't on disk and a
// session cookie is configured, it is downloaded and saved first.
func (c *config) readInput(day int) ([]byte, error) {
	name := inputFile(c.inputDir, day)
	b, err := os.ReadFile(name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || c.session == "" {
		return nil, err
	}
	b, err = c.download(adventURL, day)
	if err != nil {
		return nil, fmt.Errorf("downloading input for day %d: %s", day, err)
	}
	if err := os.MkdirAll(c.inputDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, b, 0o644); err != nil {
		return nil, err
	}
	log.Printf("saved %s of input to %s", humanize.Bytes(uint64(len(b))), name)
	return b, nil
}

const adventURL = "https://adventofcode.com"

var httpClient = &http.Client{Timeout: 30 * time.Second}

func (c *config) download(baseURL string, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", baseURL, c.year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// importInput copies src into dir under the name used for day.
func importInput(dir string, day int, src string) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("bad day %d", day)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	dst := inputFile(dir, day)
	if err := cp.CopyFile(dst, src); err != nil {
		return err
	}
	log.Printf("copied %s to %s", src, dst)
	return nil
}
