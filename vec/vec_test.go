package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(2, 4), a.Scale(2))
}

func TestLenAndDistance(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Len())
	assert.Equal(t, 5.0, New(1, 1).Distance(New(4, 5)))
}

func TestNormalized(t *testing.T) {
	n := New(0, 10).Normalized()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.Equal(t, New(0, 1), n)

	// The zero vector has no direction and stays zero.
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
}

func TestRandomUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 1.0, RandomUnit(rng).Len(), 1e-12)
	}
}
