package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			orig := ShapeOf(k)
			s := orig
			for range 4 {
				s = Rotate(s)
			}
			assert.True(t, orig.Equal(s))
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	got := Rotate(ShapeOf(KindT))
	want := Shape{
		{true, false},
		{true, true},
		{true, false},
	}
	assert.True(t, want.Equal(got), "got %v", got)

	i := Rotate(ShapeOf(KindI))
	assert.Equal(t, 4, i.Height())
	assert.Equal(t, 1, i.Width())
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := ShapeOf(KindL)
	before := s.clone()
	_ = Rotate(s)
	assert.True(t, before.Equal(s))
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindO)
	s[0][0] = false
	assert.True(t, ShapeOf(KindO)[0][0])
}

func TestSpawnCentered(t *testing.T) {
	for _, k := range Kinds {
		p := Spawn(k)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, (Cols-p.Shape.Width())/2, p.X, k.String())
		assert.True(t, CanPlace(NewBoard(), p, 0, 0))
	}
}

func TestRandomKindCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[Kind]bool{}
	for range 500 {
		seen[RandomKind(rng)] = true
	}
	assert.Len(t, seen, len(Kinds))
}
