package config

import (
	"fmt"
	"io"
	"os"
)

// OpenLog opens path for appending, falling back to discard with a warning.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	if path == "" {
		return io.Discard
	}

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

// CloseLog closes file if it is one.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}
