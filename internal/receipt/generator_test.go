package receipt

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	gen := NewGenerator()
	pattern := regexp.MustCompile(`^BILL\d{6}$`)

	for i := 0; i < 1000; i++ {
		ref := gen.Generate()
		require.True(t, pattern.MatchString(ref), ref)

		suffix, err := strconv.Atoi(ref[len(prefix):])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, suffixLow)
		assert.LessOrEqual(t, suffix, suffixHi)
	}
}
