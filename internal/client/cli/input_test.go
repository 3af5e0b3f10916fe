package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trims newline", input: "alice\n", want: "alice"},
		{name: "trims spaces and CRLF", input: "  bob \r\n", want: "bob"},
		{name: "partial line at EOF", input: "carol", want: "carol"},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tc.input), "Enter username", &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Enter username\n> ", out.String())
		})
	}
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() { isTerminal, readPassword = origTTY, origRead })
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("no tty"))

	_, err := GetPassword(rdr(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	pw, err := GetPassword(rdr(" spaced pw \nnext\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []byte(" spaced pw "), pw, "only the line ending is stripped")
}

func TestConfirm(t *testing.T) {
	assert.True(t, confirm(rdr("y\n"), "Sure?", &bytes.Buffer{}))
	assert.True(t, confirm(rdr("YES\n"), "Sure?", &bytes.Buffer{}))
	assert.False(t, confirm(rdr("n\n"), "Sure?", &bytes.Buffer{}))
	assert.False(t, confirm(rdr("\n"), "Sure?", &bytes.Buffer{}))
	assert.False(t, confirm(rdr(""), "Sure?", &bytes.Buffer{}))
}
