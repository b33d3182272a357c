// Package dict provides a small name→value dictionary backed by a pooled
// circular list. It exists mainly as a consumer of the cdlist package; use a
// plain map when you do not need the list semantics underneath.
package dict

import (
	"errors"
	"fmt"

	"github.com/SnowyOwl000/3700.f22.public/cdlist"
)

var (
	// ErrDuplicateKey is returned by Add when the name is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned by Get, Set and Remove when the name is
	// absent.
	ErrKeyNotFound = errors.New("key not found")
)

type entry[V comparable] struct {
	key   string
	value V
}

// Dict maps names to values, keeping entries in insertion order.
//
// Not safe for concurrent use.
type Dict[V comparable] struct {
	list *cdlist.List[entry[V]]
}

// New creates an empty dictionary. The options configure the backing pool's
// arena; see cdlist.Options.
func New[V comparable](optFns ...func(o *cdlist.Options)) *Dict[V] {
	pool := cdlist.NewPool[entry[V]]()

	return &Dict[V]{
		list: pool.NewList(optFns...),
	}
}

// Close releases the dictionary's backing storage.
func (d *Dict[V]) Close() error {
	return d.list.Close()
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int {
	return d.list.Len()
}

// Add inserts a new name→value entry. Returns ErrDuplicateKey when the name
// is already present.
func (d *Dict[V]) Add(name string, value V) error {
	if d.find(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, name)
	}

	return d.list.Insert(d.list.Len(), entry[V]{key: name, value: value})
}

// Get returns the value stored under name. Returns ErrKeyNotFound when the
// name is absent.
func (d *Dict[V]) Get(name string) (V, error) {
	idx := d.find(name)
	if idx < 0 {
		var zero V
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	e, err := d.list.At(idx)
	if err != nil {
		var zero V
		return zero, err
	}

	return e.value, nil
}

// Set replaces the value stored under name. Returns ErrKeyNotFound when the
// name is absent.
func (d *Dict[V]) Set(name string, value V) error {
	idx := d.find(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	e, err := d.list.At(idx)
	if err != nil {
		return err
	}
	e.value = value

	return nil
}

// Remove deletes the entry stored under name. Returns ErrKeyNotFound when
// the name is absent.
func (d *Dict[V]) Remove(name string) error {
	idx := d.find(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	return d.list.Remove(idx)
}

// Keys returns the names in insertion order.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, d.list.Len())
	d.list.Map(func(e *entry[V]) {
		keys = append(keys, e.key)
	})

	return keys
}

// find returns the logical position of name, or -1 when absent.
func (d *Dict[V]) find(name string) int {
	idx, i := -1, 0
	d.list.Map(func(e *entry[V]) {
		if idx < 0 && e.key == name {
			idx = i
		}
		i++
	})

	return idx
}
