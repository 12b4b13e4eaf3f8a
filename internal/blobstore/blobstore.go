// Package blobstore abstracts portfolio image storage behind the three
// operations the rest of the service needs: put, resolve to URL, delete.
package blobstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid blob name")

type Store interface {
	Put(name string, r io.Reader) (string, error)
	URL(handle string) string
	Delete(handle string) error
}

// DiskStore keeps blobs as flat files under a media directory and serves
// them back under baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// clean rejects names that would escape the media directory.
func (s *DiskStore) clean(name string) (string, error) {
	name = filepath.Base(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return "", ErrInvalidName
	}
	return name, nil
}

func (s *DiskStore) Put(name string, r io.Reader) (string, error) {
	name, err := s.clean(name)
	if err != nil {
		return "", err
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	return name, nil
}

func (s *DiskStore) URL(handle string) string {
	return s.baseURL + "/" + handle
}

func (s *DiskStore) Delete(handle string) error {
	handle, err := s.clean(handle)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, handle)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// Dir exposes the backing directory for the static file route.
func (s *DiskStore) Dir() string {
	return s.dir
}
