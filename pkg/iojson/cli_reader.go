package iojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrTerminal is returned when input would be read from an interactive terminal.
var ErrTerminal = errors.New("no input provided (stdin is a terminal); use -f flag or pipe JSON input")

// FileReader decodes a JSON document of type T from the file named by its
// flag, or from stdin when the flag is empty or "-".
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin overrides os.Stdin. Readers other than *os.File are never
	// treated as terminals.
	Stdin io.Reader
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (\"-\" reads stdin)",
		Destination: &fr.fileFlagValue,
	}
}

// Path returns the flag value.
func (fr *FileReader[T]) Path() string {
	return fr.fileFlagValue
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T

	if fr.fileFlagValue != "" && fr.fileFlagValue != "-" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return Decode[T](f)
	}

	stdin := fr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return input, ErrTerminal
	}

	return Decode[T](stdin)
}
