// Package registry implements the candidate-key uniqueness pre-check shared
// by entities whose create/update paths must not violate field-level
// uniqueness. The check exists to produce friendly, field-specific errors in
// the common case; the storage layer's unique constraints remain the
// authoritative guard against concurrent writers.
package registry

import (
	"context"

	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// LookupFunc resolves a candidate-key value to the id of the live record
// holding it. It returns a NOT_FOUND domain error when the value is free.
type LookupFunc func(ctx context.Context, value string) (string, error)

// CandidateKey describes one uniqueness-constrained field of an entity.
type CandidateKey[T any] struct {
	Field  string
	Value  func(*T) string
	Lookup LookupFunc
}

// Engine checks an ordered list of candidate keys for an entity type.
type Engine[T any] struct {
	keys []CandidateKey[T]
}

// New builds an engine. Key order is the declared conflict-reporting order:
// the first conflicting key short-circuits the check.
func New[T any](keys ...CandidateKey[T]) *Engine[T] {
	return &Engine[T]{keys: keys}
}

// Check walks the candidate keys in declared order and returns a DUPLICATE
// error naming the first field whose value is held by another live record.
// Empty values are skipped (optional keys). excludeID is the id of the record
// being updated; a holder equal to excludeID is not a conflict. Pass "" on
// the create path. Lookup failures other than NOT_FOUND propagate untouched.
func (e *Engine[T]) Check(ctx context.Context, entity *T, excludeID string) error {
	for _, key := range e.keys {
		value := key.Value(entity)
		if value == "" {
			continue
		}
		holderID, err := key.Lookup(ctx, value)
		if err != nil {
			if util.IsNotFound(err) {
				continue
			}
			return err
		}
		if holderID != excludeID {
			return util.NewDuplicate(key.Field, value)
		}
	}
	return nil
}
