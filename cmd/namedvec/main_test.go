package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mibar/namedvec/pkg/namedvec"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunWritesOutput(t *testing.T) {
	in := writeScript(t, `
items: [{name: foo, value: 0}, {name: bar, value: 1}, {name: baz, value: 2}]
ops:
  - {op: truncate, len: 2}
`)
	out := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, run(zap.NewNop(), in, out, false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"name":"foo","value":0},{"name":"bar","value":1}]}`, string(got))
}

func TestRunFaultStillWritesState(t *testing.T) {
	in := writeScript(t, `
items: [{name: foo}, {name: bar}]
ops:
  - {op: pop}
  - {op: remove, ref: bar}
`)
	out := filepath.Join(t.TempDir(), "out.json")

	err := run(zap.NewNop(), in, out, true)
	assert.ErrorIs(t, err, namedvec.ErrInvalidReference)

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.JSONEq(t, `{"items":[{"name":"foo","value":null}],"removed":[{"name":"bar","value":null}]}`, string(got))
}

func TestRunMissingFile(t *testing.T) {
	err := run(zap.NewNop(), filepath.Join(t.TempDir(), "missing.yaml"), "", false)
	assert.Error(t, err)
}
