package intake

import (
	"errors"
	"fmt"
	"os"
)

var ErrDumpTooBig = errors.New("rejects file has exceeded its max size")

// Dumper appends rejected entries somewhere staff can review them after a run.
type Dumper interface {
	Dump(rejected []Rejection) error
	GetPath() string
	GetMaxSize() int64
}

type FileDumper struct {
	file    string
	maxSize int64 // in megabytes
}

func NewFileDumper(path string, maxSize int64) Dumper {
	return &FileDumper{file: path, maxSize: maxSize}
}

func (d *FileDumper) GetMaxSize() int64 {
	return d.maxSize
}

func (d *FileDumper) GetPath() string {
	return d.file
}

func (d *FileDumper) Dump(rejected []Rejection) error {
	if len(rejected) == 0 {
		return nil
	}
	file, err := os.OpenFile(d.file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() > d.maxSize*1024*1024 {
		return ErrDumpTooBig
	}
	for _, r := range rejected {
		if _, err = fmt.Fprintln(file, r.String()); err != nil {
			return err
		}
	}
	return file.Close()
}
