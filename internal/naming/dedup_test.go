package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeduperAssign(t *testing.T) {
	d := NewDeduper()

	assert.Equal(t, "COUNT", d.Assign("COUNT"))
	assert.Equal(t, "COUNT_2", d.Assign("COUNT"))
	assert.Equal(t, "COUNT_3", d.Assign("COUNT"))
	assert.Equal(t, "VALUE", d.Assign("VALUE"))
}

func TestDeduperClaimedSuffixSlot(t *testing.T) {
	d := NewDeduper()

	// COUNT_2 claimed up front: the duplicate COUNT must skip to _3.
	assert.Equal(t, "COUNT_2", d.Assign("COUNT_2"))
	assert.Equal(t, "COUNT", d.Assign("COUNT"))
	assert.Equal(t, "COUNT_3", d.Assign("COUNT"))
}

func TestDeduperScopesAreIndependent(t *testing.T) {
	fields := NewDeduper()
	methods := NewDeduper()

	assert.Equal(t, "X", fields.Assign("X"))
	assert.Equal(t, "X", methods.Assign("X"))
}

func TestDeduperProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		candidates := rapid.SliceOf(rapid.StringMatching(`[A-Z_]{1,4}`)).Draw(t, "candidates")

		d := NewDeduper()
		seen := make(map[string]struct{})
		firstSeen := make(map[string]struct{})

		var finals []string

		for _, c := range candidates {
			final := d.Assign(c)
			finals = append(finals, final)

			// First occurrence of any candidate is left unchanged.
			if _, dup := firstSeen[c]; !dup {
				firstSeen[c] = struct{}{}

				if _, claimed := seen[c]; !claimed {
					assert.Equal(t, c, final)
				}
			}

			_, taken := seen[final]
			assert.False(t, taken, "final name %q assigned twice", final)
			seen[final] = struct{}{}
		}

		assert.Len(t, finals, len(candidates))
	})
}
