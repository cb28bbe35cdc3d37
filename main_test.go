package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan bool)
	go func() {
		_, _ = io.Copy(&buf, r)
		done <- true
	}()

	f()
	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String()
}

// runMain invokes RealMain with the given arguments, capturing stdout and
// the exit code. exit is replaced with a panicking stub so dispatch stops
// where os.Exit would.
func runMain(t *testing.T, args ...string) (int, string) {
	t.Helper()

	oldArgs := os.Args
	os.Args = append([]string{"inkwell"}, args...)
	defer func() { os.Args = oldArgs }()

	exitCode := 0
	oldExit := exit
	exit = func(code int) {
		exitCode = code
		panic("exit")
	}
	defer func() { exit = oldExit }()

	out := captureOutput(func() {
		defer func() {
			if r := recover(); r != nil && r != "exit" {
				panic(r)
			}
		}()
		RealMain()
	})
	return exitCode, out
}

func TestMainNoArgs(t *testing.T) {
	code, out := runMain(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Usage: inkwell")
}

func TestMainHelp(t *testing.T) {
	code, out := runMain(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: inkwell")
	assert.Contains(t, out, "serve")
}

func TestMainVersion(t *testing.T) {
	code, out := runMain(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "inkwell version "+cliVersion)
}

func TestMainUnknownCommand(t *testing.T) {
	code, out := runMain(t, "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Unknown command: frobnicate")
}
