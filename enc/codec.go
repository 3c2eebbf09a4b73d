package enc

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Codec is the common interface of everything that turns bytes into text and back.
type Codec interface {
	// Name is the user-friendly name of this codec
	Name() string
	// Code represents the short (one-letter) code for the codec
	Code() byte

	// Encode will take an array of bytes and encode it using this codec
	Encode([]byte, ...Option) (string, error)

	// Decode is the reverse process of encoding
	Decode(string, ...Option) ([]byte, error)

	// Validate checks if the string only holds characters this codec could have produced
	Validate(string, ...Option) bool

	// BlocksizeRaw returns the block size (number of bytes) this codec takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of characters) output for every input block
	BlocksizeEncoded() int

	// TestPatterns returns canonical encoded strings which must survive a decode / encode round trip
	TestPatterns() []string
}

var (
	registryLock sync.RWMutex
	registry     = []Codec{Base16, Base32, Base32Hex, Base64, Base64Url}
	aliases      = map[string]string{
		"hex":        "base16",
		"b16":        "base16",
		"b32":        "base32",
		"b32hex":     "base32hex",
		"base32-hex": "base32hex",
		"b64":        "base64",
		"b64url":     "base64url",
		"base64-url": "base64url",
		"base64u":    "base64url",
	}
)

// Codecs returns all registered codecs, the RFC4648 family first.
func Codecs() []Codec {
	registryLock.RLock()
	defer registryLock.RUnlock()

	res := make([]Codec, len(registry))
	copy(res, registry)
	return res
}

// Register adds a codec to the registry. A codec with the same name or code replaces the old one.
func Register(c Codec) {
	registryLock.Lock()
	defer registryLock.Unlock()

	for i, existing := range registry {
		if strings.EqualFold(existing.Name(), c.Name()) || existing.Code() == c.Code() {
			registry[i] = c
			return
		}
	}
	registry = append(registry, c)
}

// Lookup finds a codec by its name (case-insensitive), a well known alias or its one-letter code.
func Lookup(name string) (Codec, error) {
	name = strings.TrimSpace(name)
	key := strings.ToLower(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	registryLock.RLock()
	defer registryLock.RUnlock()

	for _, c := range registry {
		if strings.ToLower(c.Name()) == key {
			return c, nil
		}
	}
	if len(name) == 1 {
		for _, c := range registry {
			if c.Code() == name[0] {
				return c, nil
			}
		}
	}

	return nil, errors.Wrapf(ErrUnknownCodec, "%q", name)
}
