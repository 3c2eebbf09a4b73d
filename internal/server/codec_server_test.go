package server

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.Handler, url, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func Test_Encode(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	w := post(t, router, "/base64/encode", "foobar")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Zm9vYmFy", w.Body.String())

	w = post(t, router, "/base32/encode", "f")
	require.Equal(t, "MY======", w.Body.String())

	w = post(t, router, "/base32/encode?padding=false", "f")
	require.Equal(t, "MY", w.Body.String())

	w = post(t, router, "/base64url/encode?padding=true&pad=.", "f")
	require.Equal(t, "Zg..", w.Body.String())
}

func Test_Decode(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	w := post(t, router, "/base16/decode", "666F6F626172")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	require.Equal(t, "foobar", w.Body.String())

	w = post(t, router, "/base16/decode", "F")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, router, "/base64/decode", "Zm9v\nYmFy")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, router, "/base64/decode?strict=false", "Zm9v\nYmFy")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "foobar", w.Body.String())
}

func Test_Validate(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	var res ValidateResponse
	w := post(t, router, "/H/validate", "666F6F626172")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, res.Valid)

	w = post(t, router, "/base16/validate", "Zm9vYmFy")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.False(t, res.Valid)
}

func Test_BadRequests(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	require.Equal(t, http.StatusNotFound, post(t, router, "/base58/encode", "f").Code)
	require.Equal(t, http.StatusBadRequest, post(t, router, "/base64/encode?padding=maybe", "f").Code)
	require.Equal(t, http.StatusBadRequest, post(t, router, "/base64/decode?strict=maybe", "Zg").Code)
	require.Equal(t, http.StatusBadRequest, post(t, router, "/base64/encode?pad=ab", "f").Code)
	require.Equal(t, http.StatusBadRequest, post(t, router, "/base64/encode?pad=", "f").Code)
}

func Test_BodyTooLarge(t *testing.T) {
	cs := NewCodecServer("127.0.0.1:0")
	cs.MaxBodySize = 4

	w := post(t, cs.Router(nil), "/base64/encode", "foobar")
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func Test_BrokenBody(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	r := httptest.NewRequest(http.MethodPost, "/base64/encode", failingReader{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_ListCodecs(t *testing.T) {
	router := NewCodecServer("127.0.0.1:0").Router(nil)

	r := httptest.NewRequest(http.MethodGet, "/codecs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var codecs []CodecInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &codecs))
	require.GreaterOrEqual(t, len(codecs), 5)
	require.Equal(t, CodecInfo{Name: "Base16", Code: "H", BlocksizeRaw: 1, BlocksizeEncoded: 2}, codecs[0])
}

func Test_StartupShutdown(t *testing.T) {
	cs := NewCodecServer("127.0.0.1:0")
	require.NoError(t, cs.Startup())
	defer func() {
		require.NoError(t, cs.Shutdown())
	}()

	res, err := http.Post(cs.String()+"/base64/encode", "application/octet-stream", strings.NewReader("foo"))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, "Zm9v", string(body))
}
