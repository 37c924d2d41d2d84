package ranking

import (
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/stretchr/testify/assert"
)

func ranked(id core.ID, slug string, score int) core.RankedProfile {
	return core.RankedProfile{Profile: &core.Profile{Id: id, Slug: slug}, Score: score}
}

func slugs(results []core.RankedProfile) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Profile.Slug
	}
	return out
}

func TestSort(t *testing.T) {
	results := []core.RankedProfile{
		ranked(5, "e", 50),
		ranked(2, "b", 100),
		ranked(9, "i", 50),
		ranked(1, "a", 50),
		ranked(3, "z", 75),
		ranked(3, "c", 75),
	}

	Sort(results)

	assert.Equal(t, []string{"b", "c", "z", "a", "e", "i"}, slugs(results))
}

func TestSort_Deterministic(t *testing.T) {
	a := []core.RankedProfile{ranked(1, "a", 10), ranked(2, "b", 10), ranked(3, "c", 20)}
	b := []core.RankedProfile{ranked(3, "c", 20), ranked(2, "b", 10), ranked(1, "a", 10)}

	Sort(a)
	Sort(b)

	assert.Equal(t, slugs(a), slugs(b))
}

func TestTop(t *testing.T) {
	results := []core.RankedProfile{ranked(1, "a", 3), ranked(2, "b", 2), ranked(3, "c", 1)}

	assert.Len(t, Top(results, 2), 2)
	assert.Len(t, Top(results, 0), 3)
	assert.Len(t, Top(results, 10), 3)
	assert.Empty(t, Top(nil, 1))
}
