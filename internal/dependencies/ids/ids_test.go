package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerIDIsUniqueUUID(t *testing.T) {
	gen := New()

	a := gen.NewPlayerID()
	b := gen.NewPlayerID()

	assert.NotEqual(t, a, b)
	for _, id := range []string{string(a), string(b)} {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	}
}
