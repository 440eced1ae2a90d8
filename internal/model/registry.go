package model

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound marks lookups of assets or versions that don't exist.
var ErrNotFound = errors.New("not found")

// Registry is the in-memory reference collaborator for the persistence
// boundary. Engine computations are stateless; the registry exists so
// version assignment has a single serialization point, exactly the
// guarantee a database-backed collaborator must provide.
type Registry struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]*assetEntry
}

// assetEntry pairs an asset with its write lock. AddVersion serializes
// per asset so VersionIndex is gapless under concurrent writers.
type assetEntry struct {
	mu    sync.Mutex
	asset *Asset
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: map[uuid.UUID]*assetEntry{}}
}

// CreateAsset creates an asset plus its first version (index 1) from a
// payload. Failure creates nothing.
func (r *Registry) CreateAsset(payload AssetPayload, createdBy string) (*Asset, error) {
	if payload.Name == "" {
		return nil, fmt.Errorf("asset payload has no name")
	}

	version, err := newVersion(payload, 1)
	if err != nil {
		return nil, err
	}

	topology := payload.Topology
	if topology != "circular" {
		topology = "linear"
	}

	asset := &Asset{
		ID:        uuid.New(),
		Name:      payload.Name,
		Topology:  topology,
		Tags:      append([]string(nil), payload.Tags...),
		Metadata:  copyMetadata(payload.Metadata),
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
		Versions:  []*AssetVersion{version},
	}

	r.mu.Lock()
	r.assets[asset.ID] = &assetEntry{asset: asset}
	r.mu.Unlock()

	return asset, nil
}

// AddVersion appends a new immutable version to an asset, incrementing
// VersionIndex by exactly one. Prior versions are never touched.
func (r *Registry) AddVersion(assetID uuid.UUID, payload AssetPayload) (*AssetVersion, error) {
	entry, err := r.entry(assetID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	version, err := newVersion(payload, len(entry.asset.Versions)+1)
	if err != nil {
		return nil, err
	}

	entry.asset.Versions = append(entry.asset.Versions, version)
	return version, nil
}

// Asset returns a registered asset by id.
func (r *Registry) Asset(assetID uuid.UUID) (*Asset, error) {
	entry, err := r.entry(assetID)
	if err != nil {
		return nil, err
	}
	return entry.asset, nil
}

// Diff computes the edit script between two versions of one asset.
// Cross-asset diffs are unrepresentable: versions are addressed through
// their owning asset only.
func (r *Registry) Diff(assetID uuid.UUID, indexA, indexB int) (DiffResult, error) {
	entry, err := r.entry(assetID)
	if err != nil {
		return DiffResult{}, err
	}

	va, err := entry.asset.Version(indexA)
	if err != nil {
		return DiffResult{}, err
	}
	vb, err := entry.asset.Version(indexB)
	if err != nil {
		return DiffResult{}, err
	}

	return DiffSequences(va.Sequence, vb.Sequence), nil
}

func (r *Registry) entry(assetID uuid.UUID) (*assetEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.assets[assetID]
	if !ok {
		return nil, fmt.Errorf("%w: asset %s", ErrNotFound, assetID)
	}
	return entry, nil
}

func copyMetadata(m map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
