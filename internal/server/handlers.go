package server

import (
	"encoding/json"
	"github.com/bokysan/basecodec/enc"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
)

// CodecInfo is the JSON representation of a codec in `GET /codecs`
type CodecInfo struct {
	Name             string `json:"name"`
	Code             string `json:"code"`
	BlocksizeRaw     int    `json:"blocksizeRaw"`
	BlocksizeEncoded int    `json:"blocksizeEncoded"`
}

// ValidateResponse is the JSON body returned by `POST /{codec}/validate`
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (cs *CodecServer) listCodecs(w http.ResponseWriter, r *http.Request) {
	res := make([]CodecInfo, 0)
	for _, c := range enc.Codecs() {
		res = append(res, CodecInfo{
			Name:             c.Name(),
			Code:             string(c.Code()),
			BlocksizeRaw:     c.BlocksizeRaw(),
			BlocksizeEncoded: c.BlocksizeEncoded(),
		})
	}
	writeJSON(w, res)
}

func (cs *CodecServer) encode(w http.ResponseWriter, r *http.Request) {
	codec, body, opts, ok := cs.prepare(w, r)
	if !ok {
		return
	}

	encoded, err := codec.Encode(body, opts...)
	if err != nil {
		log.WithError(err).Errorf("Encoding failed: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(encoded)); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

func (cs *CodecServer) decode(w http.ResponseWriter, r *http.Request) {
	codec, body, opts, ok := cs.prepare(w, r)
	if !ok {
		return
	}

	decoded, err := codec.Decode(string(body), opts...)
	if errors.Is(err, enc.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.WithError(err).Errorf("Decoding failed: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(decoded); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

func (cs *CodecServer) validate(w http.ResponseWriter, r *http.Request) {
	codec, body, opts, ok := cs.prepare(w, r)
	if !ok {
		return
	}

	writeJSON(w, ValidateResponse{
		Valid: codec.Validate(string(body), opts...),
	})
}

// prepare resolves the codec, reads the body and parses the query options. If anything is
// wrong, the error response has already been written and ok is false.
func (cs *CodecServer) prepare(w http.ResponseWriter, r *http.Request) (codec enc.Codec, body []byte, opts []enc.Option, ok bool) {
	codec, err := enc.Lookup(chi.URLParam(r, "codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, nil, nil, false
	}

	opts, err = parseOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, nil, false
	}

	maxBodySize := cs.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	body, err = ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		status := http.StatusBadRequest
		if isBodyTooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		return nil, nil, nil, false
	}

	return codec, body, opts, true
}

// isBodyTooLarge reports whether err was raised by http.MaxBytesReader hitting its limit
func isBodyTooLarge(err error) bool {
	return err != nil && strings.Contains(err.Error(), "request body too large")
}

// parseOptions reads the `padding`, `strict` and `pad` query parameters. Missing parameters keep
// the codec defaults.
func parseOptions(r *http.Request) ([]enc.Option, error) {
	query := r.URL.Query()
	opts := make([]enc.Option, 0)

	if v := query.Get("padding"); v != "" {
		padding, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Errorf("Invalid value for 'padding': %v", v)
		}
		opts = append(opts, enc.WithPadding(padding))
	}

	if v := query.Get("strict"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Errorf("Invalid value for 'strict': %v", v)
		}
		opts = append(opts, enc.WithStrict(strict))
	}

	if v, present := query["pad"]; present {
		if len(v) != 1 || len(v[0]) != 1 {
			return nil, errors.Errorf("'pad' must be exactly one character")
		}
		opts = append(opts, enc.WithPadChar(v[0][0]))
	}

	return opts, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}
