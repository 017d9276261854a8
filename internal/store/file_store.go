// Package store persists the application document to a single local JSON
// file with one backup copy.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"taskbound/internal/model"
)

const (
	primaryName = "state.json"
	backupName  = "state.backup.json"
)

// FileStore reads and writes the persisted document. Saves are atomic:
// write-temp, rename-over-primary, copy-to-backup.
type FileStore struct {
	mu         sync.Mutex
	dir        string
	path       string
	backupPath string
	version    string
	now        func() time.Time
}

func New(dataDir, appVersion string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{
		dir:        dataDir,
		path:       filepath.Join(dataDir, primaryName),
		backupPath: filepath.Join(dataDir, backupName),
		version:    appVersion,
		now:        time.Now,
	}, nil
}

// Load returns the last successfully written document, falling back to the
// backup copy when the primary is missing or unreadable. Both failing is not
// an error: the caller proceeds with a fresh state.
func (s *FileStore) Load() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, err := readDocument(s.path); err == nil {
		return doc
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).WithField("path", s.path).Warn("primary state unreadable, trying backup")
	}

	if doc, err := readDocument(s.backupPath); err == nil {
		log.WithField("path", s.backupPath).Info("recovered state from backup")
		return doc
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).WithField("path", s.backupPath).Warn("backup state unreadable, starting fresh")
	}

	return nil
}

// Save durably replaces the persisted document and returns the metadata it
// was stamped with.
func (s *FileStore) Save(st model.AppState) (model.Meta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := model.Meta{LastSavedAt: s.now(), AppVersion: s.version}
	st.Meta = meta
	if st.Tasks == nil {
		st.Tasks = []model.Task{}
	}

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return model.Meta{}, err
	}

	tmp, err := os.CreateTemp(s.dir, primaryName+".tmp-*")
	if err != nil {
		return model.Meta{}, err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return model.Meta{}, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return model.Meta{}, err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return model.Meta{}, err
	}

	// Backup failure is non-fatal; the primary already landed.
	if err := os.WriteFile(s.backupPath, b, 0o644); err != nil {
		log.WithError(err).Warn("writing backup copy failed")
	}

	return meta, nil
}

func readDocument(path string) (*model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
