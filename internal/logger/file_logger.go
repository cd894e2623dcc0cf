package logger

import (
	"log"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *log.Logger
)

// Init must be called once at startup, before L. Every line of the
// run log is prefixed with the run ID so logs from appended runs can
// be told apart.
func Init(path, runID string) {
	once.Do(func() {
		f, err := os.OpenFile(
			path,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			panic("failed to open run log: " + err.Error())
		}

		logger = log.New(
			f,
			"["+shortID(runID)+"] ",
			log.Ldate|log.Ltime|log.Lmicroseconds,
		)
	})
}

func L() *log.Logger {
	if logger == nil {
		panic("run logger not initialized")
	}
	return logger
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
