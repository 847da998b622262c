// Package obsutil provides small IO helpers for the formatter CLI:
// policy driven write buffering, sticky error writers, and line prefix
// decoration for log output.
package obsutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a bytes.Buffer with a destination writer and a
// FlushPolicy that decides how much buffered content is ready to go out.
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
	err error
}

// MaybeFlush sends whatever prefix of the buffered bytes the policy
// deems ready. Without a policy it flushes everything.
func (wb *WriteBuffer) MaybeFlush() error {
	if wb.err != nil {
		return wb.err
	}
	if wb.FlushPolicy == nil {
		return wb.Flush()
	}
	b := wb.Bytes()
	n := wb.ShouldFlush(b)
	if n <= 0 {
		return nil
	}
	_, wb.err = wb.To.Write(b[:n])
	if wb.err == nil {
		wb.Next(n)
	}
	return wb.err
}

// Flush sends all buffered bytes to the destination writer.
func (wb *WriteBuffer) Flush() error {
	if wb.err != nil {
		return wb.err
	}
	if wb.Len() == 0 {
		return nil
	}
	_, wb.err = wb.To.Write(wb.Bytes())
	if wb.err == nil {
		wb.Reset()
	}
	return wb.err
}

// FlushPolicy decides how much of a buffered byte prefix should be
// flushed downstream.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a function form of FlushPolicy.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush implements FlushPolicy.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// FlushLineChunks is a FlushPolicy that releases content through the
// last complete line, holding any partial final line in the buffer.
func FlushLineChunks(b []byte) int {
	return bytes.LastIndexByte(b, '\n') + 1
}

// ErrWriter wraps a writer with a sticky error: after any write fails,
// every later write returns the same error without touching the
// underlying writer.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write implements io.Writer.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err != nil {
		return 0, ew.Err
	}
	n, ew.Err = ew.Writer.Write(p)
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix to every line
// written through it. Partial lines are held until their newline
// arrives; Close completes any held tail with a newline.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	return &prefixer{prefix: prefix, to: w}
}

type prefixer struct {
	prefix  string
	to      io.Writer
	pending []byte
}

// Write implements io.Writer.
func (p *prefixer) Write(b []byte) (n int, err error) {
	n = len(b)
	p.pending = append(p.pending, b...)
	for {
		i := bytes.IndexByte(p.pending, '\n')
		if i < 0 {
			return n, nil
		}
		if err := p.writeLine(p.pending[:i+1]); err != nil {
			return n, err
		}
		p.pending = p.pending[i+1:]
	}
}

// Close flushes a held partial line, completing it with a newline.
func (p *prefixer) Close() error {
	if len(p.pending) == 0 {
		return nil
	}
	line := append(p.pending, '\n')
	p.pending = nil
	return p.writeLine(line)
}

func (p *prefixer) writeLine(line []byte) error {
	if _, err := io.WriteString(p.to, p.prefix); err != nil {
		return err
	}
	_, err := p.to.Write(line)
	return err
}
