package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
)

// JSONLogFormatter formats the access log of the codec service as logrus fields
type JSONLogFormatter struct {
	ServerAddress *net.TCPAddr
}

// JSONLogEntry prepares the Logrus context
type JSONLogEntry struct {
	request       *http.Request
	serverAddress *net.TCPAddr
}

// NewLogEntry creates a new entry for the Logrus log
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &JSONLogEntry{
		request:       r,
		serverAddress: j.ServerAddress,
	}
}

func getHeader(headers http.Header, name string) string {
	if name == "" {
		return ""
	}
	return headers.Get(name)
}

func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request

	port := 0
	if j.serverAddress != nil {
		port = j.serverAddress.Port
	}

	return logrus.Fields{
		"hostname":              r.Host,
		"remote_addr":           r.RemoteAddr,
		"x-forwarded-for":       getHeader(r.Header, "X-Forwarded-For"),
		"request":               fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_id":            middleware.GetReqID(r.Context()),
		"request_method":        r.Method,
		"request_uri":           r.RequestURI,
		"query_string":          r.URL.RawQuery,
		"server_port":           port,
		"received_content_type": getHeader(r.Header, "Content-Type"),
		"request_length":        r.ContentLength,
		"protocol":              "HTTP",
		"app":                   "basecodec",
		"type":                  "access",
		"user_agent":            r.UserAgent(),
	}
}

// Write outputs the log entry into the log
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	fields := j.fields()
	fields["request_time"] = elapsed.Seconds()
	fields["request_completion"] = "OK"
	fields["status"] = status
	fields["sent_bytes"] = bytes
	fields["sent_content_type"] = getHeader(header, "Content-Type")
	fields["extra"] = extra

	logrus.WithFields(fields).Debug()
}

// Panic outputs the log entry into the log
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	fields := j.fields()
	fields["error"] = v
	fields["stack"] = string(stack)

	logrus.WithFields(fields).Errorf("%+v", v)
}
