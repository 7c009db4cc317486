package session

import (
	"context"                        // Persister signature
	"encoding/json"                  // Snapshot encoding
	"errors"                         // Error inspection
	"io/fs"                          // Missing file detection
	"os"                             // File access
	"social_network/internal/domain" // Domain models
	"sync"                           // Serialize file writes
)

// FilePersister keeps the snapshot in a single JSON file
type FilePersister struct {
	mu   sync.Mutex
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Load(_ context.Context) (domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var u domain.User
	b, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return u, ErrNoSnapshot
	} else if err != nil {
		return u, err
	}
	return u, json.Unmarshal(b, &u)
}

func (p *FilePersister) Save(_ context.Context, user domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return os.WriteFile(p.path, b, 0o600)
}

func (p *FilePersister) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryPersister keeps the snapshot in memory; it does not survive a restart
type MemoryPersister struct {
	mu   sync.Mutex
	data []byte
}

func (p *MemoryPersister) Load(_ context.Context) (domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var u domain.User
	if p.data == nil {
		return u, ErrNoSnapshot
	}
	return u, json.Unmarshal(p.data, &u)
}

func (p *MemoryPersister) Save(_ context.Context, user domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.data = b
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersister) Clear(_ context.Context) error {
	p.mu.Lock()
	p.data = nil
	p.mu.Unlock()
	return nil
}
