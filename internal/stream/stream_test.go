package stream

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateOpen(t *testing.T) {
	content := "chr1\t1\t10\tq:1:10:+:100.0:10:0:0:1.0E-5:20.0\t1.0E-5\t+\n"
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
	}{
		{"plain", "out.bed"},
		{"gzip", "out.bed.gz"},
		{"zstd", "out.bed.zst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)

			s, err := Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := io.WriteString(s, content); err != nil {
				t.Fatal(err)
			}
			if err := s.Flush(); err != nil {
				t.Fatal(err)
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			compressed := string(raw) != content
			if wantCompressed := tt.name != "plain"; compressed != wantCompressed {
				t.Errorf("%s: compressed = %v, want %v", tt.file, compressed, wantCompressed)
			}

			r, err := Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != content {
				t.Errorf("Open() read %q, want %q", got, content)
			}
		})
	}
}

func TestOpen_sniffsWithoutSuffix(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "hsps.gz")

	s, err := Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(s, "# BLASTN 2.7.1+\n")
	s.Flush()
	s.Close()

	renamed := filepath.Join(dir, "hsps.txt")
	if err := os.Rename(gz, renamed); err != nil {
		t.Fatal(err)
	}

	r, err := Open(renamed)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, _ := io.ReadAll(r)
	if string(got) != "# BLASTN 2.7.1+\n" {
		t.Errorf("Open() read %q", got)
	}
}

func TestOpen_bzip2LookalikeText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hsps.txt")
	content := "BZhX\tchr1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, _ := io.ReadAll(r)
	if string(got) != content {
		t.Errorf("Open() read %q, want %q", got, content)
	}
}

func TestOpen_missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("Open() expected an error for a missing file")
	}
}

func TestCreate_bzip2(t *testing.T) {
	if _, err := Create(filepath.Join(t.TempDir(), "out.bed.bz2")); err == nil {
		t.Error("Create() expected an error for bzip2 output")
	}
}

func TestNewScanner_longLines(t *testing.T) {
	long := strings.Repeat("a", 200*1024)
	s := NewScanner(strings.NewReader(long + "\n\nlast"))

	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 || lines[0] != long || lines[1] != "" || lines[2] != "last" {
		t.Errorf("NewScanner() read %d lines", len(lines))
	}
}

func TestIsStd(t *testing.T) {
	for path, want := range map[string]bool{"": true, "-": true, "in.tsv": false, "./-": false} {
		if got := IsStd(path); got != want {
			t.Errorf("IsStd(%q) = %v, want %v", path, got, want)
		}
	}
}
