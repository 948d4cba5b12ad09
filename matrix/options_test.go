// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawyercade/DataMining2013F/matrix"
)

func TestOptionConstructors_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { matrix.WithLogger(nil) })
	assert.Panics(t, func() { matrix.WithCapacity(-1) })
	assert.Panics(t, func() { matrix.WithDescribeConcurrency(0) })
	assert.NotPanics(t, func() { matrix.WithCapacity(0) })
}

func TestWithLogger_SchemaFreeze(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := matrix.New(matrix.WithLogger(logger), nil)
	require.NoError(t, m.AddColumn(cont("a")))
	require.NoError(t, m.AddRow([]float64{1}))
	require.NoError(t, m.AddRow([]float64{2}))

	out := buf.String()
	assert.Contains(t, out, "matrix schema frozen")
	assert.Contains(t, out, "columns=1")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("schema frozen")))

	// derived matrices keep the logger
	buf.Reset()
	c := m.Clone()
	_, err := c.ImputeMissing()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "imputed missing values")
}

func TestWithCapacity(t *testing.T) {
	t.Parallel()

	m := matrix.New(matrix.WithCapacity(16))
	require.NoError(t, m.AddColumn(cont("a")))
	for i := 0; i < 20; i++ {
		require.NoError(t, m.AddRow([]float64{float64(i)}))
	}
	assert.Equal(t, 20, m.NumRows())
}
