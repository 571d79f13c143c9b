package dbg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Ø", Name(nil))
		var p *int
		assert.Equal(t, "Ø", Name(p))
	})

	t.Run("stable per object", func(t *testing.T) {
		a, b := new(int), new(int)
		nameA := Name(a)
		assert.NotEmpty(t, nameA)
		assert.Equal(t, nameA, Name(a))
		// Different objects may in theory collide, but they are always memoized
		// separately.
		nameB := Name(b)
		assert.Equal(t, nameB, Name(b))
	})

	t.Run("capitalized", func(t *testing.T) {
		name := Name(new(struct{}))
		assert.Regexp(t, `^[A-Z]`, name)
	})

	t.Run("concurrent", func(t *testing.T) {
		obj := new(int)
		var wg sync.WaitGroup
		names := make([]string, 16)
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				names[i] = Name(obj)
			}(i)
		}
		wg.Wait()
		for _, name := range names {
			assert.Equal(t, names[0], name)
		}
	})
}
