package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	stored := filepath.Join(dir, "result.tex")
	if err := os.WriteFile(stored, []byte("early"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("run/result.tex", stored)
	r.Store("run/result.tex", stored)
	r.Store("missing", filepath.Join(dir, "nothing-here"))
	r.Store("directory", dir)
	r.StoreData("run/tree.txt", []byte("document"))
	r.StoreData("run/tree.txt", []byte("document again"))

	// content at the moment of closing is archived
	if err := os.WriteFile(stored, []byte("final"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["run/result.tex"] != "final" {
		t.Errorf("result.tex = %q, want final", files["run/result.tex"])
	}
	if files["run/tree.txt"] != "document" {
		t.Errorf("tree.txt = %q", files["run/tree.txt"])
	}
	var names []string
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	if len(names) != 4 {
		t.Errorf("archive entries = %q, want MANIFEST, result, two trees", names)
	}
	if _, ok := files["missing"]; ok {
		t.Errorf("missing file was archived")
	}
	if !strings.Contains(files["MANIFEST"], "run/result.tex") || !strings.Contains(files["MANIFEST"], "missing") {
		t.Errorf("MANIFEST is incomplete:\n%s", files["MANIFEST"])
	}
}

func TestReportStoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("name", "/tmp/a")
	defer func() {
		if recover() == nil {
			t.Error("Store() with different path did not panic")
		}
	}()
	r.Store("name", "/tmp/b")
}

func TestReportNil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReportPrepare_Fallback(t *testing.T) {
	conf := ReporterConfig{Destination: filepath.Join(t.TempDir(), "no", "such", "dir", "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.Remove(r.Name())
	if r.Name() == conf.Destination {
		t.Errorf("report was not redirected")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
