package terminal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineJSON(t *testing.T) {
	b, err := json.Marshal(Link("GitHub", "https://github.com/x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"link","text":"GitHub","href":"https://github.com/x"}`, string(b))

	b, err = json.Marshal(Muted("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"muted","text":"hi"}`, string(b))

	var l Line
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"error","text":"boom"}`), &l))
	assert.Equal(t, Error("boom"), l)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"sparkly"}`), &l))
}

func TestASCIITrimsSurroundingNewlines(t *testing.T) {
	got := ASCII("\n ab\ncd \n")
	require.Len(t, got, 2)
	assert.Equal(t, Line{Kind: KindASCII, Text: " ab"}, got[0])
	assert.Equal(t, Line{Kind: KindASCII, Text: "cd "}, got[1])
}
