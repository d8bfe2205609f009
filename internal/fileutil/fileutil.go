// Package fileutil copies transcripts into run output folders with
// integrity checks.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PreserveSource copies the input transcript into destDir under the name
// "source<ext>" so the run folder stays self-contained. Returns the name
// written, or "" when the source already lives inside destDir. The copy is
// hash-verified and removed on mismatch.
func PreserveSource(src, destDir string) (string, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	name := "source" + strings.ToLower(filepath.Ext(src))
	dst := filepath.Join(destDir, name)
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("resolve destination path: %w", err)
	}
	if absSrc == absDst {
		return "", nil
	}
	if err := CopyFileVerified(absSrc, absDst); err != nil {
		return "", err
	}
	return name, nil
}

// CopyFileVerified streams src to dst with SHA256 + size integrity
// verification. Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}
