// Package archive wraps a finished clip into a single-entry deflate ZIP.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveError reports a failure while writing the ZIP.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("could not zip %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// ArchivePath returns <dir>/<name>.zip.
func ArchivePath(dir, name string) string {
	return filepath.Join(dir, name+".zip")
}

// Zip writes src into dst as a single deflated entry named after src's base name.
// dst is written to a temp file first and renamed into place; src is never modified.
func Zip(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return &ArchiveError{Path: src, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return &ArchiveError{Path: src, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".crush-*.zip.tmp")
	if err != nil {
		return &ArchiveError{Path: dst, Err: err}
	}
	tmpPath := tmp.Name()
	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &ArchiveError{Path: dst, Err: err}
	}

	w := zip.NewWriter(tmp)
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fail(err)
	}
	header.Name = filepath.Base(src)
	header.Method = zip.Deflate

	entry, err := w.CreateHeader(header)
	if err != nil {
		return fail(err)
	}
	if _, err := io.Copy(entry, &ctxReader{ctx: ctx, r: in}); err != nil {
		return fail(err)
	}
	if err := w.Close(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &ArchiveError{Path: dst, Err: err}
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return &ArchiveError{Path: dst, Err: fmt.Errorf("move archive into place: %w", err)}
	}
	return nil
}

// ReadEntry returns the name and content of the single entry in zipPath.
func ReadEntry(zipPath string) (string, []byte, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", nil, err
	}
	defer r.Close()

	if len(r.File) != 1 {
		return "", nil, fmt.Errorf("expected 1 entry in %s, found %d", zipPath, len(r.File))
	}
	f := r.File[0]
	rc, err := f.Open()
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, err
	}
	return f.Name, data, nil
}

// ctxReader stops a copy once the context is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
