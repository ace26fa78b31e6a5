package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func TestSetLogBackendLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogBackend(&buf, "WARNING")
	log := logging.MustGetLogger("eft")

	log.Info("hidden message")
	log.Warning("visible message")

	if strings.Contains(buf.String(), "hidden message") || !strings.Contains(buf.String(), "visible message") {
		t.Error(
			"For", "level WARNING",
			"expected", "only the warning",
			"got", buf.String(),
		)
	}
}

func TestSetLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetLogBackend(&buf, "LOUD")
	log := logging.MustGetLogger("eft")

	log.Debug("debug message")
	log.Info("info message")

	if strings.Contains(buf.String(), "debug message") || !strings.Contains(buf.String(), "info message") {
		t.Error(
			"For", "level LOUD",
			"expected", "INFO",
			"got", buf.String(),
		)
	}
}

func TestSetLoggerFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "logs", "first.log")
	if err := SetLogger(first, DEFAULT_LOG_LEVEL); err != nil {
		t.Fatal(
			"For", first,
			"expected", nil,
			"got", err,
		)
	}
	previous := logFile
	logging.MustGetLogger("eft").Info("to the first file")

	second := filepath.Join(dir, "second.log")
	if err := SetLogger(second, DEFAULT_LOG_LEVEL); err != nil {
		t.Fatal(err)
	}
	defer SetLogger("", DEFAULT_LOG_LEVEL)

	if _, err := previous.Write([]byte("x")); err == nil {
		t.Error(
			"For", "previous log file",
			"expected", "closed",
			"got", "still open",
		)
	}
	content, _ := os.ReadFile(first)
	if !strings.Contains(string(content), "to the first file") {
		t.Error(
			"For", first,
			"expected", "to the first file",
			"got", string(content),
		)
	}

	SetLogger("", DEFAULT_LOG_LEVEL)
	if logFile != nil {
		t.Error(
			"For", "stdout only",
			"expected", nil,
			"got", logFile.Name(),
		)
	}
}

func TestSetLoggerDirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}
	defer SetLogger("", DEFAULT_LOG_LEVEL)

	path := filepath.Join(blocker, "sub", "eft.log")
	if err := SetLogger(path, DEFAULT_LOG_LEVEL); err == nil {
		t.Error(
			"For", path,
			"expected", "error",
			"got", nil,
		)
	}
	if logFile != nil {
		t.Error(
			"For", "failed log file",
			"expected", nil,
			"got", logFile.Name(),
		)
	}
}
