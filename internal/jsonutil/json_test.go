package jsonutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, map[string]any{"warnings": []string{"a <-> b"}}))
	assert.Equal(t, "{\n  \"warnings\": [\n    \"a <-> b\"\n  ]\n}\n", buf.String())
}
