package util

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/op/go-logging"
)

const LOG_FORMAT = `%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`

var (
	logFileMu sync.Mutex
	logFile   *os.File
)

//Set where and how to write logs.
//Logs always go to stdout; if path is not empty they are also appended to that file.
//The file of a previous call is closed once the new backend is in place.
func SetLogger(path string, level string) error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	var output io.Writer = os.Stdout
	var file *os.File
	var fileErr error
	if path != "" {
		file, fileErr = openLogFile(path)
		if fileErr == nil {
			output = io.MultiWriter(file, os.Stdout)
		}
	}
	SetLogBackend(output, level)

	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	return fileErr
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}

//Install a formatted go-logging backend writing to w, filtered at level
func SetLogBackend(w io.Writer, level string) {
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(LOG_FORMAT)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, "")
	logging.SetBackend(leveled)
}
