package obsutil

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBufferLineChunks(t *testing.T) {
	var out bytes.Buffer
	wb := &WriteBuffer{FlushPolicy: FlushPolicyFunc(FlushLineChunks), To: &out}

	wb.WriteString("one\ntwo\npart")
	require.NoError(t, wb.MaybeFlush())
	assert.Equal(t, "one\ntwo\n", out.String())
	assert.Equal(t, "part", wb.String())

	wb.WriteString("ial\n")
	require.NoError(t, wb.MaybeFlush())
	assert.Equal(t, "one\ntwo\npartial\n", out.String())
	assert.Zero(t, wb.Len())
}

func TestWriteBufferNoPolicy(t *testing.T) {
	var out bytes.Buffer
	wb := &WriteBuffer{To: &out}
	wb.WriteString("part")
	require.NoError(t, wb.MaybeFlush())
	assert.Equal(t, "part", out.String())
	assert.Zero(t, wb.Len())
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriteBufferStickyError(t *testing.T) {
	boom := errors.New("boom")
	wb := &WriteBuffer{To: failWriter{boom}}
	wb.WriteString("x\n")
	require.ErrorIs(t, wb.Flush(), boom)
	// The failed content stays buffered and the error repeats.
	assert.Equal(t, 2, wb.Len())
	require.ErrorIs(t, wb.MaybeFlush(), boom)
}

type countThenFail struct {
	to    io.Writer
	calls int
}

func (c *countThenFail) Write(p []byte) (int, error) {
	c.calls++
	if c.calls > 1 {
		return 0, errors.New("full")
	}
	return c.to.Write(p)
}

func TestErrWriter(t *testing.T) {
	var out bytes.Buffer
	under := &countThenFail{to: &out}
	ew := &ErrWriter{Writer: under}

	_, err := io.WriteString(ew, "a")
	require.NoError(t, err)
	_, err = io.WriteString(ew, "b")
	require.Error(t, err)
	_, err = io.WriteString(ew, "c")
	require.Error(t, err)

	assert.Equal(t, "a", out.String())
	assert.Equal(t, 2, under.calls)
	assert.Error(t, ew.Err)
}

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := PrefixWriter("log: ", &out)

	_, err := io.WriteString(pw, "one\ntwo")
	require.NoError(t, err)
	_, err = io.WriteString(pw, " more\n")
	require.NoError(t, err)
	_, err = io.WriteString(pw, "tail")
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	assert.Equal(t, "log: one\nlog: two more\nlog: tail\n", out.String())
}

func TestPrefixWriterCloseEmpty(t *testing.T) {
	var out bytes.Buffer
	pw := PrefixWriter("log: ", &out)
	require.NoError(t, pw.Close())
	assert.Zero(t, out.Len())
}
