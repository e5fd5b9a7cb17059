package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultTables(t *testing.T) {
	err := ValidateTables(NewDefaultTables())
	assert.Nil(t, err)
}

// badNSMTables wraps DefaultTables and lies about the global NSM set,
// claiming a plain ASCII letter ('a') is a non-spacing mark — it has no
// canonical combining class, so ValidateTables must reject it.
type badNSMTables struct {
	StaticTables
}

func (badNSMTables) NSM() (CodepointSet, int) {
	return newMapSet('a'), defaultGlobalNSMMax
}

func TestValidateTablesCatchesNonMarkInNSMSet(t *testing.T) {
	err := ValidateTables(badNSMTables{NewDefaultTables()})
	require.NotNil(t, err)
	assert.Equal(t, ErrKindBadStaticData, err.Kind)
	assert.True(t, err.HasCodepoint)
	assert.Equal(t, Codepoint('a'), err.Codepoint)
}

// negativeNSMMaxTables wraps DefaultTables and reports an invalid
// (negative) global NSM-run maximum.
type negativeNSMMaxTables struct {
	StaticTables
}

func (negativeNSMMaxTables) NSM() (CodepointSet, int) {
	return defaultNSMSet, -1
}

func TestValidateTablesCatchesNegativeNSMMax(t *testing.T) {
	err := ValidateTables(negativeNSMMaxTables{NewDefaultTables()})
	require.NotNil(t, err)
	assert.Equal(t, ErrKindBadStaticData, err.Kind)
}
