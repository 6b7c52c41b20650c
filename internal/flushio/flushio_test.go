package flushio

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	bytes.Buffer
	flushes int
}

func (cw *countingWriter) Flush() error {
	cw.flushes++
	return nil
}

// plainWriter hides any buffer methods of its underlying writer
type plainWriter struct{ w *strings.Builder }

func (pw plainWriter) Write(p []byte) (int, error) { return pw.w.Write(p) }

func TestNew(t *testing.T) {
	assert.Equal(t, Discard, New(ioutil.Discard), "expected Discard for ioutil.Discard")

	var cw countingWriter
	assert.Equal(t, &cw, New(&cw), "expected WriteFlushers as is")

	var buf bytes.Buffer
	wf := New(&buf)
	_, err := wf.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", buf.String(), "expected buffers to be written through")

	var sb strings.Builder
	wf = New(plainWriter{&sb})
	_, err = wf.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "", sb.String(), "expected other writers to be buffered")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello", sb.String(), "expected flush to write")
}

func TestTee(t *testing.T) {
	assert.Equal(t, Discard, Tee(), "expected Discard for nothing")
	assert.Equal(t, Discard, Tee(nil, nil), "expected Discard for nils")

	var a, b, c countingWriter
	assert.Equal(t, &a, Tee(nil, &a), "expected lone writer as is")

	wf := Tee(Tee(&a, &b), nil, &c)
	_, err := wf.Write([]byte("ok\n"))
	require.NoError(t, err)
	require.NoError(t, wf.Flush())

	for _, cw := range []*countingWriter{&a, &b, &c} {
		assert.Equal(t, "ok\n", cw.String(), "expected every writer to be written")
		assert.Equal(t, 1, cw.flushes, "expected every writer to be flushed once")
	}
}
