package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	calls int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, w.err
}

// TestPrinter_Writes verifies Printf and Println write to the underlying writer.
func TestPrinter_Writes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Printf("a=%d ", 1)
	p.Println("b", 2)

	require.NoError(t, p.Err())
	assert.Equal(t, "a=1 b 2\n", buf.String())
}

// TestPrinter_StickyError verifies the first error is kept and later writes are skipped.
func TestPrinter_StickyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	w := &failingWriter{err: boom}
	p := New(w)

	p.Println("one")
	p.Printf("two")
	p.Println("three")

	require.ErrorIs(t, p.Err(), boom)
	assert.Equal(t, 1, w.calls)
}
