package listener

import (
	"bytes"
	"testing"

	"github.com/pixil98/go-testutil"
)

type fakeConn struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func (c *fakeConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *fakeConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestCRLFReadWriter_Read(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"crlf to lf":    {input: "look\r\n", exp: "look\n"},
		"bare cr to lf": {input: "look\r", exp: "look\n"},
		"lf untouched":  {input: "look\n", exp: "look\n"},
		"mixed":         {input: "go north\r\nrest\r", exp: "go north\nrest\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &fakeConn{in: bytes.NewBufferString(tt.input), out: &bytes.Buffer{}}
			rw := newCRLFReadWriter(conn)

			buf := make([]byte, 64)
			n, err := rw.Read(buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "normalized", string(buf[:n]), tt.exp)
		})
	}
}

func TestCRLFReadWriter_Write(t *testing.T) {
	conn := &fakeConn{in: &bytes.Buffer{}, out: &bytes.Buffer{}}
	rw := newCRLFReadWriter(conn)

	msg := "It is pitch black here.\nYou can't see a thing.\n"
	n, err := rw.Write([]byte(msg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reports the caller's length, not the expanded one.
	testutil.AssertEqual(t, "reported length", n, len(msg))
	testutil.AssertEqual(t, "expanded output", conn.out.String(),
		"It is pitch black here.\r\nYou can't see a thing.\r\n")
}
