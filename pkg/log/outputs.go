package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ConsoleOutput writes entries to stdout, or stderr with WithStderr.
type ConsoleOutput struct {
	mu     sync.Mutex
	writer io.Writer
}

type ConsoleOutputOption func(*ConsoleOutput)

// WithStderr sends entries to stderr so they never mix with command output.
func WithStderr() ConsoleOutputOption {
	return func(o *ConsoleOutput) {
		o.writer = os.Stderr
	}
}

// WithWriter sends entries to w.
func WithWriter(w io.Writer) ConsoleOutputOption {
	return func(o *ConsoleOutput) {
		o.writer = w
	}
}

func NewConsoleOutput(options ...ConsoleOutputOption) *ConsoleOutput {
	o := &ConsoleOutput{writer: os.Stdout}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.writer.Write(formatted)
	return err
}

func (o *ConsoleOutput) Close() error { return nil }

// FileOutput appends entries to a file, creating it and its directory on
// first write.
type FileOutput struct {
	mu       sync.Mutex
	filename string
	file     *os.File
}

func NewFileOutput(filename string) *FileOutput {
	return &FileOutput{filename: filename}
}

func (o *FileOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.file == nil {
		if err := os.MkdirAll(filepath.Dir(o.filename), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(o.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		o.file = f
	}
	_, err := o.file.Write(formatted)
	return err
}

func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}

// NullOutput discards every entry.
type NullOutput struct{}

func NewNullOutput() *NullOutput { return &NullOutput{} }

func (*NullOutput) Write(*Entry, []byte) error { return nil }
func (*NullOutput) Close() error               { return nil }
