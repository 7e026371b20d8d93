// Package filex opens local files for upload.
package filex

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotImage = errors.New("not an image")

// Image is a local image opened for a multipart upload. The caller closes it.
type Image struct {
	*os.File
	Name        string
	ContentType string
}

// OpenImage opens path, expanding a leading "~/". The content type comes
// from the extension, or from the first bytes when the extension is unknown.
// Anything that is not image/* is rejected.
func OpenImage(path string) (*Image, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		ct, err = sniff(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if !strings.HasPrefix(ct, "image/") {
		_ = f.Close()
		return nil, fmt.Errorf("%s (%s): %w", path, ct, ErrNotImage)
	}

	return &Image{File: f, Name: filepath.Base(path), ContentType: ct}, nil
}

func sniff(f *os.File) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
