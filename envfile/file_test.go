package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/envfold/go-envfold/parse"
)

func TestLoadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	in := "# db\nDB_HOST=localhost\n\nDB_PORT=5432\n"
	if err := os.WriteFile(path, []byte(in), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(path, doc); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("round trip changed file:\nin:  %q\nout: %q", in, string(out))
	}
}

func TestWriteAddsFinalNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	doc := parse.ParseString("A=1")
	if err := Write(path, doc); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "A=1\n" {
		t.Errorf("got %q", string(out))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestBackupCleanup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	bak, err := Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	if bak != path+".bak" {
		t.Fatalf("got %q", bak)
	}
	d, err := os.ReadFile(bak)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "A=1\n" {
		t.Errorf("backup content %q", string(d))
	}

	// changed: backup stays
	if err := CleanupBackup(bak, true); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(bak); err != nil {
		t.Errorf("backup of a changed file must remain: %v", err)
	}
	// unchanged: redundant backup removed
	if err := CleanupBackup(bak, false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(bak); !os.IsNotExist(err) {
		t.Errorf("redundant backup must be removed, stat err: %v", err)
	}
}

func TestBackupMissingOriginal(t *testing.T) {
	bak, err := Backup(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if bak != "" {
		t.Errorf("got %q, want empty backup path", bak)
	}
	if err := CleanupBackup("", false); err != nil {
		t.Errorf("empty backup path must be a no-op: %v", err)
	}
}
