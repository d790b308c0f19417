package settingsfile

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"h37bot/internal/domain/entities"
	"h37bot/internal/ports/output"
)

var _ output.SettingsRepository = (*Store)(nil)

const debounceDelay = 250 * time.Millisecond

// Store keeps the settings in a single TOML file.
type Store struct {
	path string
	mu   sync.Mutex
	// known is the checksum of the content last written or read by the store.
	// Watch ignores events that leave the file at that content.
	known [sha256.Size]byte
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the settings file. On first run the defaults are written and returned.
// Keys missing from the file keep their default values.
func (s *Store) Load(ctx context.Context) (entities.Settings, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	if err == nil {
		s.known = sha256.Sum256(data)
	}
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			defaults := entities.DefaultSettings()
			if err := s.Save(ctx, defaults); err != nil {
				return defaults, err
			}
			log.Info().Str("path", s.path).Msg("✅ Default settings file created")
			return defaults, nil
		}
		return entities.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	defaults := toDocument(entities.DefaultSettings())
	doc := defaults
	doc.LootResetTimes = nil
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return entities.Settings{}, fmt.Errorf("decode settings file %s: %w", s.path, err)
	}
	if doc.LootResetTimes == nil {
		doc.LootResetTimes = defaults.LootResetTimes
	}
	return doc.toDomain(), nil
}

// Save rewrites the whole file atomically (temp file + rename, 0600).
func (s *Store) Save(ctx context.Context, settings entities.Settings) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	data, err := toml.Marshal(toDocument(settings))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	s.known = sha256.Sum256(data)
	return nil
}

// editedExternally reports whether the file content differs from what the
// store last wrote or read.
func (s *Store) editedExternally() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return sha256.Sum256(data) != s.known
}

// Watch calls onChange after the settings file is edited by someone other
// than the store, debounced. It blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	file := filepath.Base(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Str("file", file).Msg("Settings watcher started")

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	debounce := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			if ctx.Err() != nil {
				return
			}
			if !s.editedExternally() {
				log.Debug().Str("path", s.path).Msg("Settings file unchanged, skipping reload")
				return
			}
			onChange()
		})
	}
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", s.path).Msg("⚠️ Settings watcher error")
		}
	}
}
