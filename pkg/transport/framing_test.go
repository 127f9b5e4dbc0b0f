package transport

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFrameThenReadFrame(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte(`{"me":"x"}`)
	require.NoError(t, WriteFrame(&buf, payload))
	require.Equal(t, "10:"+string(payload), buf.String())

	got, err := ReadFrame(bufio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadFrameRejectsBadLength(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("abc:{}"))
	_, err := ReadFrame(r)
	require.Error(t, err)
}

func TestReadFrameRejectsShortPayload(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("100:{}"))
	_, err := ReadFrame(r)
	require.Error(t, err)
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("999999999999:{}"))
	_, err := ReadFrame(r)
	require.Error(t, err)
}
