package trackingid_test

import (
	"regexp"
	"testing"

	"github.com/dpackchain/package_tracking_app/internal/utils/trackingid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingIDPattern = regexp.MustCompile(`^DPC-[1-9]\d{3}-[1-9]\d{3}-[1-9]\d$`)

func TestGenerate_Format(t *testing.T) {
	gen := trackingid.New(trackingid.DefaultPrefix)

	for i := 0; i < 100; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, trackingIDPattern, id)
	}
}

func TestGenerate_CustomPrefix(t *testing.T) {
	gen := trackingid.New("ACME")

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, `^ACME-\d{4}-\d{4}-\d{2}$`, id)
}

func TestNew_EmptyPrefixFallsBack(t *testing.T) {
	gen := trackingid.New("")

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, `^DPC-`, id)
}

func TestGenerate_NotConstant(t *testing.T) {
	gen := trackingid.New(trackingid.DefaultPrefix)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	// 50 draws from a ~7.3e9 space colliding down to a single value would
	// mean the randomness source is broken.
	assert.Greater(t, len(seen), 1)
}
