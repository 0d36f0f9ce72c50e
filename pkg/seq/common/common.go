// 29 Apr 2020

// Package common has the few constants and helpers shared by the
// commands and their tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// MaxQual is the highest Phred value we write. It is what fits in
// printable ascii with an offset of 33.
const MaxQual uint8 = 93

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempExt(s, "")
}

// WrtTempExt is WrtTemp, but the file name ends in ext. Some readers
// decide what to do from the file extension.
func WrtTempExt(s, ext string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+ext)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
