package ensip15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(NewDefaultTables())
}

func TestEngineNormalizeUppercase(t *testing.T) {
	e := newTestEngine()
	got, err := e.Normalize([]byte("bRAnTlY.eTh"))
	require.NoError(t, err)
	assert.Equal(t, "brantly.eth", got)
}

func TestEngineNormalizeIdempotent(t *testing.T) {
	e := newTestEngine()
	for _, in := range []string{"bRAnTlY.eTh", "cafe" + string(rune(0x0301)), "_hello"} {
		once, err := e.Normalize([]byte(in))
		require.NoError(t, err)
		twice, err := e.Normalize([]byte(once))
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestEngineProcessReturnsLabels(t *testing.T) {
	e := newTestEngine()
	p, err := e.Process([]byte("hello.eth"))
	require.NoError(t, err)
	require.Len(t, p.Labels, 2)
	assert.Equal(t, LabelASCII, p.Labels[0].Kind)
	assert.Equal(t, LabelASCII, p.Labels[1].Kind)
}

func TestEngineNormalizeEmptyLabel(t *testing.T) {
	e := newTestEngine()
	for _, in := range []string{"", ".", ".eth", "eth.", "a..b"} {
		_, err := e.Normalize([]byte(in))
		require.Error(t, err)
		ensErr := err.(*Error)
		assert.Equal(t, ErrKindEmptyLabel, ensErr.Kind, "input %q", in)
	}
}

func TestEngineTokenizeExposesTokens(t *testing.T) {
	e := newTestEngine()
	toks, err := e.Tokenize([]byte("a.b"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, TokenStop, toks[1].Kind)
}

func TestEngineConcurrentCallsShareTables(t *testing.T) {
	e := newTestEngine()
	const n = 50
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := e.Normalize([]byte("bRAnTlY.eTh"))
			done <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}
}
