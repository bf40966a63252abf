package buffer

import (
	"fmt"
	"reflect"
	"sync"
)

// Transform is an operation acting on a ring element and returning another one.
type Transform func(element interface{}) interface{}

// Identity returns the element as is.
func Identity(element interface{}) interface{} {
	return element
}

// Ring is a ring buffer keeping the last x elements.
// All elements must share the type of the first one pushed.
type Ring struct {
	mutex  *sync.RWMutex
	index  int
	count  int
	values []interface{}
	t      reflect.Type
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		mutex:  new(sync.RWMutex),
		values: make([]interface{}, size),
	}
}

// Size returns the number of elements within the ring.
func (r *Ring) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.size()
}

func (r *Ring) size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Push adds an element to the ring, overwriting the oldest one when full.
func (r *Ring) Push(v interface{}) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	tv := reflect.TypeOf(v)
	if r.t == nil {
		r.t = tv
	}

	if r.t != tv {
		return fmt.Errorf("unexpected type added to ring %v vs %v", tv, r.t)
	}

	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
	return nil
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the ring elements from the oldest to the latest.
func (r *Ring) Get(transform Transform) []interface{} {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	l := r.size()
	v := make([]interface{}, l)
	for i := 0; i < l; i++ {
		idx := i
		if r.count > l {
			idx = (r.index + i) % l
		}
		v[i] = transform(r.values[idx])
	}
	return v
}
