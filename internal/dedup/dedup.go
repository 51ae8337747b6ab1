// Package dedup tracks first-seen content hashes and decides whether a newly
// retrieved artifact duplicates a previously accepted one.
package dedup

import (
	"sync"

	"github.com/nomadlib/curator/internal/types"
)

// Original identifies the first artifact accepted under a content hash.
type Original struct {
	Filename string
	Title    string
}

// Registry maps content hashes to the first artifact seen with each hash.
// The map is append-only within a processing run: once a hash is recorded,
// every later artifact with the same hash resolves to the same original,
// regardless of arrival order. Check is a single atomic check-and-insert so
// concurrent retrieval workers cannot both accept identical content.
type Registry struct {
	mu   sync.Mutex
	seen map[string]Original
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]Original)}
}

// Seed records previously accepted artifacts so a retry pass resolves
// duplicates against the full corpus, not just the current run.
func (r *Registry) Seed(items []types.RetrievedArtifact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		if _, ok := r.seen[item.SHA256]; !ok {
			r.seen[item.SHA256] = Original{Filename: item.Filename, Title: item.Title}
		}
	}
}

// Check resolves an artifact against the registry. If the hash is already
// present it returns the stored original and true; the caller must discard
// the new bytes and record the duplicate mapping. Otherwise the artifact is
// inserted and becomes the original for its hash.
func (r *Registry) Check(artifact types.RetrievedArtifact) (Original, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if original, ok := r.seen[artifact.SHA256]; ok {
		return original, true
	}
	r.seen[artifact.SHA256] = Original{Filename: artifact.Filename, Title: artifact.Title}
	return Original{}, false
}

// Len reports how many distinct content hashes have been accepted.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
