package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMinimalShortcut(t *testing.T, dir string) string {
	t.Helper()
	b := make([]byte, 76+4)
	binary.LittleEndian.PutUint32(b[0:], 76)
	copy(b[4:], []byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})
	path := filepath.Join(dir, "sample.lnk")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write sample shortcut: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), runErr
}

func TestRunInfo_MinimalShortcut(t *testing.T) {
	path := writeMinimalShortcut(t, t.TempDir())

	out, err := captureStdout(t, func() error { return runInfo(path) })
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	if !strings.Contains(out, "refers to file: false") {
		t.Errorf("expected output to report no file target, got:\n%s", out)
	}
}

func TestRunDump_MinimalShortcut(t *testing.T) {
	path := writeMinimalShortcut(t, t.TempDir())

	out, err := captureStdout(t, func() error { return runDump(path) })
	if err != nil {
		t.Fatalf("runDump: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected output to echo the path, got:\n%s", out)
	}
}

func TestRunInfo_MissingFile(t *testing.T) {
	_, err := captureStdout(t, func() error { return runInfo(filepath.Join(t.TempDir(), "missing.lnk")) })
	if err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}
