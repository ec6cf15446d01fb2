package hltext

import (
	"log"
	"os"
)

// Logger is the package logger, used by the markdown front-end when it
// flattens constructs it cannot map to highlight spans.
var Logger = log.New(os.Stderr, "[hltext] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
