package heapsort_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/socialnet/heapsort"
)

func TestSort_Ints(t *testing.T) {
	cases := map[string][]int{
		"empty":      {},
		"single":     {1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			want := slices.Clone(in)
			slices.Sort(want)
			heapsort.Sort(in, cmp.Compare[int])
			assert.Equal(t, want, in)
		})
	}
}

func TestSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		in := make([]int, rng.Intn(300))
		for i := range in {
			in[i] = rng.Intn(100) - 50
		}
		want := slices.Clone(in)
		slices.Sort(want)
		heapsort.Sort(in, cmp.Compare[int])
		assert.Equal(t, want, in)
	}
}

func TestSort_Descending(t *testing.T) {
	type user struct {
		id      string
		friends int
	}
	users := []user{{"Y", 1}, {"X", 2}, {"Z", 1}, {"W", 0}}
	heapsort.Sort(users, heapsort.Descending(func(u user) int { return u.friends }))

	assert.Equal(t, "X", users[0].id)
	// Y and Z tie; only their counts are guaranteed
	assert.Equal(t, 1, users[1].friends)
	assert.Equal(t, 1, users[2].friends)
	assert.ElementsMatch(t, []string{"Y", "Z"}, []string{users[1].id, users[2].id})
	assert.Equal(t, "W", users[3].id)
}
