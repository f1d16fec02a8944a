// Package catalog holds the read-only product catalog.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dtroode/vanashree/internal/model"
)

// Store is an immutable in-memory product catalog. It is safe for
// concurrent use once constructed.
type Store struct {
	products []model.Product
	byID     map[int]int
}

// New builds a store from products in source order. Duplicate ids are rejected.
func New(products []model.Product) (*Store, error) {
	s := &Store{
		products: make([]model.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	copy(s.products, products)

	for i, p := range s.products {
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		s.byID[p.ID] = i
	}

	return s, nil
}

// Load decodes a JSON array of products.
func Load(r io.Reader) (*Store, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(products)
}

// LoadFile reads the catalog from a JSON file on disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// LoadObject reads the catalog from object storage. When the object is
// missing and seed is not empty, seed is uploaded first and used.
func LoadObject(ctx context.Context, src model.ObjectSource, key string, seed []byte) (*Store, error) {
	exists, err := src.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog object: %w", err)
	}

	if !exists {
		if len(seed) == 0 {
			return nil, fmt.Errorf("catalog object %q: %w", key, model.ErrNotFound)
		}
		if err := src.Upload(ctx, key, bytes.NewReader(seed), int64(len(seed))); err != nil {
			return nil, fmt.Errorf("failed to seed catalog object: %w", err)
		}
		return Load(bytes.NewReader(seed))
	}

	rc, err := src.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	defer rc.Close()

	return Load(rc)
}

// List returns every product in source order. The slice is a copy.
func (s *Store) List() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id int) (model.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return s.products[i], nil
}

// Featured returns the first n products, or all of them when fewer exist.
func (s *Store) Featured(n int) []model.Product {
	n = max(0, min(n, len(s.products)))
	out := make([]model.Product, n)
	copy(out, s.products[:n])
	return out
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}
