package store

import (
	"social_network/internal/domain" // Domain models
	"sync"                           // Mutex for concurrent handlers

	"github.com/google/uuid" // Stable asset ids
)

// AssetGallery holds the uploaded profile pictures
type AssetGallery struct {
	mu     sync.RWMutex
	assets []domain.Asset
}

func NewAssetGallery() *AssetGallery {
	return &AssetGallery{}
}

// Add stores the encoded image and returns the new asset
func (g *AssetGallery) Add(data string) domain.Asset {
	a := domain.Asset{ID: uuid.NewString(), Data: data}
	g.mu.Lock()
	g.assets = append(g.assets, a)
	g.mu.Unlock()
	return a
}

// Remove deletes the asset by id. Users still pointing at it keep a dangling reference.
func (g *AssetGallery) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, a := range g.assets {
		if a.ID == id {
			g.assets = append(g.assets[:i:i], g.assets[i+1:]...)
			return true
		}
	}
	return false
}

func (g *AssetGallery) Get(id string) (domain.Asset, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, a := range g.assets {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Asset{}, false
}

func (g *AssetGallery) List() []domain.Asset {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.Asset, len(g.assets))
	copy(out, g.assets)
	return out
}
