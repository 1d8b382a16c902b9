package blob

import (
	"context"
	stderrors "errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

// Filesystem serves sprites from a local directory. Keys map to relative
// file paths under the root.
type Filesystem struct {
	root string
}

// NewFilesystem returns a filesystem source rooted at path.
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		return nil, errors.InvalidArgument("sprite root directory is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat sprite root %q", root)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("sprite root %q is not a directory", root)
	}
	return &Filesystem{root: root}, nil
}

func (f *Filesystem) Driver() Driver { return DriverFilesystem }

// sanitizeKey rejects keys that would escape the root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.InvalidArgument("empty sprite key")
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", errors.InvalidArgumentf("invalid sprite key %q", key)
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(clean, "..") {
		return "", errors.InvalidArgumentf("invalid sprite key %q", key)
	}
	return clean, nil
}

func (f *Filesystem) Open(_ context.Context, key string) (*Object, error) {
	clean, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(f.root, filepath.FromSlash(clean))
	file, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFoundf("sprite %q not found", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sprite %q", key)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrapf(err, "failed to stat sprite %q", key)
	}

	return &Object{
		Body:        file,
		Size:        info.Size(),
		ContentType: contentTypeFor(clean),
	}, nil
}

func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
