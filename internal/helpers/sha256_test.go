package helpers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("forced read error")
}

func TestSHA256(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty string",
			in:   "",
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "basic string",
			in:   "hello world",
			want: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SHA256(tt.in))
			require.Equal(t, tt.want, SHA256Bytes([]byte(tt.in)))
		})
	}
}

func TestSHA256Reader(t *testing.T) {
	t.Parallel()

	t.Run("matches the string digest", func(t *testing.T) {
		got, err := SHA256Reader(strings.NewReader("hello world"))
		require.NoError(t, err)
		require.Equal(t, SHA256("hello world"), got)
	})

	t.Run("read errors propagate", func(t *testing.T) {
		_, err := SHA256Reader(&failingReader{})
		require.Error(t, err)
	})

	t.Run("large content", func(t *testing.T) {
		data := bytes.Repeat([]byte("a"), 1024*1024)

		hash, err := SHA256Reader(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, SHA256Bytes(data), hash)
	})

	t.Run("empty reader matches empty string", func(t *testing.T) {
		var empty io.Reader = strings.NewReader("")
		got, err := SHA256Reader(empty)
		require.NoError(t, err)
		require.Equal(t, SHA256(""), got)
	})
}
