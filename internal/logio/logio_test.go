package logio

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func TestLogger(t *testing.T) {
	var (
		buf bytes.Buffer
		log Logger
	)
	log.SetOutput(&buf)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("plain %% text")
	log.Leveledf("TRACE")("no args %v")
	assert.Equal(t, 0, log.ExitCode(), "expected no errors yet")

	log.Errorf("failed: %v", errors.New("bang"))
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")

	assert.Equal(t, ""+
		"INFO: hello world\n"+
		"TRACE: plain %% text\n"+
		"TRACE: no args %v\n"+
		"ERROR: failed: bang\n",
		buf.String())
}

func TestLogger_writeFailure(t *testing.T) {
	var log Logger
	log.SetOutput(failWriter{})
	log.Errorf("oops")
	assert.Equal(t, 2, log.ExitCode(), "expected write failure exit code")
}

func TestWriter(t *testing.T) {
	var lines []string
	lw := Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(&lw, "one\ntw")
	fmt.Fprintf(&lw, "o\nthree")
	assert.Equal(t, []string{"one", "two"}, lines, "expected only complete lines")

	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three"}, lines, "expected partial line on close")
}
