package store

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/calloway/showroom/internal/catalog"
	"github.com/calloway/showroom/internal/logging"
)

// SlotName is the base name of the shared slot file.
const SlotName = "furniture-products.json"

// Store is a file-backed product list with an in-memory copy per surface.
// The zero value is not usable; call New.
type Store struct {
	path string
	log  *logrus.Entry

	mu       sync.RWMutex
	products []catalog.Product
	// Checksums of the serialized list: lastWrite identifies this surface's
	// own saves so the watcher can ignore them, lastSeen collapses duplicate
	// filesystem events for the same content.
	lastWrite [sha256.Size]byte
	lastSeen  [sha256.Size]byte

	subsMu sync.Mutex
	subs   []chan struct{}
}

// New creates a store backed by the slot file inside dataDir. Nothing is
// read from disk until Load.
func New(dataDir string) *Store {
	return &Store{
		path: filepath.Join(dataDir, SlotName),
		log:  logging.NewLogger("store"),
	}
}

// Path returns the absolute location of the slot file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the slot file and replaces the in-memory copy. A missing file
// yields an empty list. An unparsable file is logged and also yields an
// empty list; the corrupt value stays on disk untouched until the next
// save overwrites it.
func (s *Store) Load() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Clone(s.loadLocked())
}

func (s *Store) loadLocked() []catalog.Product {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).Error("read slot file")
		}
		s.products = nil
		return nil
	}

	s.lastSeen = sha256.Sum256(data)

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.log.WithError(err).Error("parse slot file, starting empty")
		s.products = nil
		return nil
	}

	s.products = products
	return products
}

// Products returns a copy of the in-memory list without touching disk.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Clone(s.products)
}

// Count returns the number of products currently held in memory.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Save serializes the full list and replaces the slot file. The write goes
// through a temp file and rename so another surface's watcher never reads a
// torn write. Save does not notify this surface's own subscribers; the
// caller already has the new list in hand.
func (s *Store) Save(products []catalog.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, SlotName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close slot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}

	sum := sha256.Sum256(data)
	s.lastWrite = sum
	s.lastSeen = sum
	s.products = catalog.Clone(products)
	return nil
}

// Subscribe registers for change notifications and returns the channel the
// watcher delivers on. Delivery is fire-and-forget: a pending notification
// that has not been consumed yet absorbs later ones.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *Store) broadcast() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
