package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDiagnoseValidLabelAllChecksPass(t *testing.T) {
	e := newTestEngine()
	diags, err := e.Diagnose([]byte("hello"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.True(t, d.OK())
	assert.Nil(t, d.FirstError())
	require.NotNil(t, d.Label)
	assert.Equal(t, LabelASCII, d.Label.Kind)
	for _, c := range d.Checks {
		assert.True(t, c.Passed, "check %q unexpectedly failed: %v", c.Name, c.Err)
	}
}

func TestEngineDiagnoseReportsFailingCheckWithoutAborting(t *testing.T) {
	e := newTestEngine()
	diags, err := e.Diagnose([]byte("hel_lo"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.False(t, d.OK())
	require.NotNil(t, d.FirstError())
	assert.Equal(t, ErrKindUnderscoreInMiddle, d.FirstError().Kind)
	// The trail still has an entry for every check, including ones after
	// the one that failed.
	names := make(map[string]bool, len(d.Checks))
	for _, c := range d.Checks {
		names[c.Name] = true
	}
	assert.True(t, names["underscore-rule"])
	assert.True(t, names["label-extension-rule"])
}

func TestEngineDiagnoseEmptyLabelRecordsNotEmptyFailure(t *testing.T) {
	e := newTestEngine()
	diags, err := e.Diagnose([]byte("a..b"))
	require.NoError(t, err)
	require.Len(t, diags, 3)
	assert.True(t, diags[0].OK())
	assert.False(t, diags[1].OK())
	assert.Equal(t, ErrKindEmptyLabel, diags[1].FirstError().Kind)
	assert.True(t, diags[2].OK())
}

func TestEngineDiagnoseSkipsScriptChecksOnASCIIFastPath(t *testing.T) {
	e := newTestEngine()
	diags, err := e.Diagnose([]byte("ab-cd12"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.True(t, d.OK())
	skipped := make(map[string]bool)
	for _, c := range d.Checks {
		if c.Skipped {
			skipped[c.Name] = true
		}
	}
	assert.True(t, skipped["script-group"])
	assert.True(t, skipped["nsm-rule"])
}

func TestEngineDiagnoseInvalidUTF8StillErrors(t *testing.T) {
	e := newTestEngine()
	_, err := e.Diagnose([]byte{0xFF, 0xFE})
	require.Error(t, err)
	assert.Equal(t, ErrKindInvalidUtf8, err.(*Error).Kind)
}
