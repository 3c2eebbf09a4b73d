package util

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// StdStream is the file name standing for stdin or stdout
const StdStream = "-"

// ReadInput reads the whole named file, or stdin if the name is empty or "-".
func ReadInput(name string) ([]byte, error) {
	if name == "" || name == StdStream {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrapf(err, "Could not read stdin")
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", name)
	}
	log.Debugf("Read %v bytes from %v", len(data), name)
	return data, nil
}

// OpenOutput opens the named file for writing (truncating it), or returns stdout if the name is
// empty or "-". Closing the returned writer never closes stdout.
func OpenOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == StdStream {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v", name)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
