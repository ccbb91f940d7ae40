package envfile

import (
	"fmt"
	"os"

	"github.com/envfold/go-envfold/debug"
)

// Backup copies the file at path to path+".bak" and returns the backup
// path. A missing original is not an error: no backup is made and the
// returned path is empty.
func Backup(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("could not read %q: %w", path, err)
	}
	bak := path + ".bak"
	if err := os.WriteFile(bak, d, 0644); err != nil {
		return "", fmt.Errorf("could not write backup %q: %w", bak, err)
	}
	if debug.File() {
		debug.Logf("backed up %q to %q\n", path, bak)
	}
	return bak, nil
}

// CleanupBackup removes a backup that turned out to be redundant because
// the merge changed nothing. A backup that is empty-named or still needed
// (changed true) is left alone.
func CleanupBackup(bak string, changed bool) error {
	if bak == "" || changed {
		return nil
	}
	if debug.File() {
		debug.Logf("removing redundant backup %q\n", bak)
	}
	if err := os.Remove(bak); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove backup %q: %w", bak, err)
	}
	return nil
}
