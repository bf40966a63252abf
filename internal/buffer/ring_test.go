package buffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_Push(t *testing.T) {
	size := 10

	ring := NewRing(size)

	for i := 0; i < 1000; i++ {
		err := ring.Push(i)
		assert.NoError(t, err)
		if i > size-1 {
			assert.Equal(t, size, ring.Size())
		} else {
			assert.Equal(t, i+1, ring.Size())
		}
	}

	err := ring.Push("string")
	assert.Error(t, err)
	assert.Equal(t, size, ring.Size())
}

func TestRing_Get(t *testing.T) {

	size := 3
	type bb struct {
		index int
	}

	ring := NewRing(size)
	assert.Empty(t, ring.Get(Identity))

	for i := 0; i < 100; i++ {
		assert.NoError(t, ring.Push(bb{index: i}))

		values := ring.Get(func(element interface{}) interface{} {
			if b, ok := element.(bb); ok {
				return b.index
			}
			return nil
		})

		if i > size-1 {
			assert.Equal(t, size, len(values))
			assert.Equal(t, i, values[2])
			assert.Equal(t, i-1, values[1])
			assert.Equal(t, i-2, values[0])
		} else {
			assert.Equal(t, i+1, len(values))
			assert.Equal(t, i, values[i])
		}
	}
}

func TestRing_Concurrent(t *testing.T) {
	ring := NewRing(5)

	wg := new(sync.WaitGroup)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, ring.Push(i*j))
				ring.Get(Identity)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, ring.Size())
}

func TestNewRing_MinSize(t *testing.T) {
	ring := NewRing(0)
	assert.NoError(t, ring.Push(1))
	assert.NoError(t, ring.Push(2))
	assert.Equal(t, []interface{}{2}, ring.Get(Identity))
}
