package repository

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDProvider generates unique identifiers for new records. Injectable so
// tests can assert deterministic ids.
type IDProvider interface {
	NewID() string
}

// UUIDProvider generates random UUIDv4 identifiers.
type UUIDProvider struct{}

// NewUUIDProvider creates a new UUIDProvider.
func NewUUIDProvider() *UUIDProvider {
	return &UUIDProvider{}
}

// NewID returns a fresh UUID string.
func (p *UUIDProvider) NewID() string {
	return uuid.New().String()
}

// SequenceProvider generates "<prefix>1", "<prefix>2", ... identifiers.
// Used in tests and wherever deterministic ids are needed.
type SequenceProvider struct {
	prefix  string
	counter atomic.Int64
}

// NewSequenceProvider creates a SequenceProvider with the given prefix.
func NewSequenceProvider(prefix string) *SequenceProvider {
	return &SequenceProvider{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (p *SequenceProvider) NewID() string {
	return fmt.Sprintf("%s%d", p.prefix, p.counter.Add(1))
}
