package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"taskbound/internal/engine"
	"taskbound/internal/model"
)

// Saver debounces persist-worthy snapshots: a save fires after a quiet
// period, and a newer snapshot arriving first simply restarts the timer.
// Only the latest snapshot is ever written, so superseding a scheduled save
// needs no cancellation token. Save failures are logged and swallowed; the
// in-memory state stays authoritative and the next persist-worthy mutation
// retries naturally.
type Saver struct {
	files *FileStore
	store *engine.Store
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.AppState
}

func NewSaver(files *FileStore, store *engine.Store, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Saver{files: files, store: store, delay: delay}
}

// Notify is the store subscriber. Transitions that are not persist-worthy
// are ignored.
func (s *Saver) Notify(state model.AppState, persistWorthy bool) {
	if !persistWorthy {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &state
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.flush)
	} else {
		s.timer.Reset(s.delay)
	}
}

// Flush writes any scheduled snapshot immediately. Used on shutdown.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.flush()
}

func (s *Saver) flush() {
	s.mu.Lock()
	state := s.pending
	s.pending = nil
	s.mu.Unlock()
	if state == nil {
		return
	}

	meta, err := s.files.Save(*state)
	if err != nil {
		log.WithError(err).Error("state save failed")
		return
	}
	// Feed the save acknowledgment back so the next launch measures elapsed
	// time from this write.
	s.store.Dispatch(engine.SyncMeta(meta))
}
