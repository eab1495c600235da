package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutBufferResets(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("trajectory")
	PutBuffer(buf)

	for range 4 {
		b := GetBuffer()
		require.Zero(t, b.Len())
		PutBuffer(b)
	}
}
