package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "03.txt"), []byte("mul(2,3)"), 0o644); err != nil {
		t.Fatal(err)
	}
	conf := &config{inputDir: dir, year: 2024}
	b, err := conf.readInput(3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "mul(2,3)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if _, err := conf.readInput(4); err == nil {
		t.Error("missing input without session: got nil error")
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "sekrit" {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/2024/day/3/input" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("mul(4,5)\n"))
	}))
	defer srv.Close()

	conf := &config{session: "sekrit", year: 2024}
	b, err := conf.download(srv.URL, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "mul(4,5)\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	if _, err := conf.download(srv.URL, 4); err == nil {
		t.Error("download of missing day: got nil error")
	}
	conf.session = "wrong"
	if _, err := conf.download(srv.URL, 3); err == nil {
		t.Error("download with bad session: got nil error")
	}
}

func TestImportInput(t *testing.T) {
	src := filepath.Join(t.TempDir(), "downloaded.txt")
	if err := os.WriteFile(src, []byte("3   4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "input")
	if err := importInput(dir, 1, src); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "01.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "3   4\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	for _, day := range []int{0, 26} {
		if err := importInput(dir, day, src); err == nil {
			t.Errorf("importInput(day %d): got nil error", day)
		}
	}
}
