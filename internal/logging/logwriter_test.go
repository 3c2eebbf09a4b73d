package logging

import (
	"bytes"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func Test_ChiLogWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	}()

	lw := &ChiLogWriter{}
	lw.Print("\"POST /base64/encode HTTP/1.1\" 200 4B\n")

	require.Contains(t, buf.String(), "POST /base64/encode")
	require.Contains(t, buf.String(), "type=access")
}
