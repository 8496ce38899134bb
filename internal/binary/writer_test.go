package binary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/apetag/internal/types"
)

// limitedWriter accepts at most limit bytes and silently drops the rest.
type limitedWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		p = p[:w.limit]
	}
	w.limit -= len(p)
	return w.buf.Write(p)
}

func TestSafeWriter_Offset(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf, 100, "test")

	if sw.Offset() != 0 {
		t.Errorf("expected initial offset 0, got %d", sw.Offset())
	}

	steps := []struct {
		write func() error
		want  int64
	}{
		{func() error { return sw.WriteBytes([]byte{0x01}) }, 1},
		{func() error { return sw.WriteBytes(AppendLE[uint16](nil, 0x0203)) }, 3},
		{func() error { return sw.WriteBytes(AppendLE[uint32](nil, 0x04050607)) }, 7},
		{func() error { return sw.WriteBytes([]byte("APETAGEX")) }, 15},
	}

	for i, step := range steps {
		if err := step.write(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if sw.Offset() != step.want {
			t.Errorf("step %d: expected offset %d, got %d", i, step.want, sw.Offset())
		}
	}
}

func TestSafeWriter_ShortWrite(t *testing.T) {
	w := &limitedWriter{limit: 3}
	sw := NewSafeWriter(w, 64, "item")

	err := sw.WriteBytes([]byte("Artist"))
	var sio *types.ShortIOError
	if !errors.As(err, &sio) {
		t.Fatalf("expected *ShortIOError, got %T: %v", err, err)
	}
	if sio.Op != "write" || sio.Got != 3 || sio.Want != 6 || sio.Offset != 64 {
		t.Errorf("unexpected error fields: %+v", sio)
	}
	if sw.Offset() != 3 {
		t.Errorf("expected offset 3 after short write, got %d", sw.Offset())
	}
}
