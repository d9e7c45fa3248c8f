package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("no newline"), "p", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyInputIsError(t *testing.T) {
	var out bytes.Buffer

	_, err := GetSimpleText(reader(""), "p", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(reader("42\n"), "n", &out)
	require.NoError(t, err)
	require.Equal(t, 42, got)

	_, err = GetInt(reader("forty\n"), "n", &out)
	require.Error(t, err)
}

func TestGetDate(t *testing.T) {
	var out bytes.Buffer

	got, err := GetDate(reader("2025-06-01\n"), "when", &out)
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", got)

	_, err = GetDate(reader("June 1st\n"), "when", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	old := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("sekret"), nil }
	defer func() { readPassword = old }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("sekret"), pw)
	require.Contains(t, out.String(), "Enter password:")
}
