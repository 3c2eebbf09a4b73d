package selftest

import (
	"bytes"
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var rfc4648Inputs = []string{"", "f", "fo", "foo", "foob", "fooba", "foobar"}

// rfc4648Vectors are the test vectors of RFC4648, section 10. Base64Url is not part of the RFC
// vectors; it uses the same values as Base64, but without padding.
var rfc4648Vectors = map[string][]string{
	"Base16":    {"", "66", "666F", "666F6F", "666F6F62", "666F6F6261", "666F6F626172"},
	"Base32":    {"", "MY======", "MZXQ====", "MZXW6===", "MZXW6YQ=", "MZXW6YTB", "MZXW6YTBOI======"},
	"Base32Hex": {"", "CO======", "CPNG====", "CPNMU===", "CPNMUOG=", "CPNMUOJ1", "CPNMUOJ1E8======"},
	"Base64":    {"", "Zg==", "Zm8=", "Zm9v", "Zm9vYg==", "Zm9vYmE=", "Zm9vYmFy"},
	"Base64Url": {"", "Zg", "Zm8", "Zm9v", "Zm9vYg", "Zm9vYmE", "Zm9vYmFy"},
}

// payloads must survive an encode / decode round trip with every codec
var payloads = [][]byte{
	{},
	[]byte("f"),
	[]byte("foobar"),
	[]byte("Aaahhh-Drink-mal-ein-J\344germeister"),
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
}

// Command checks every registered codec against its own test patterns and the RFC4648 vectors
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if err := c.Run(enc.Codecs()); err != nil {
		return err
	}
	log.Infof("All codecs passed")
	return nil
}

// Run tests the given codecs and returns all failures at once.
func (c *Command) Run(codecs []enc.Codec) error {
	var errs error

	for _, codec := range codecs {
		failed := false
		for _, pattern := range codec.TestPatterns() {
			if err := roundTripText(codec, pattern); err != nil {
				errs = multierror.Append(errs, err)
				failed = true
			}
		}

		for _, payload := range payloads {
			if err := roundTripBytes(codec, payload); err != nil {
				errs = multierror.Append(errs, err)
				failed = true
			}
		}

		if expected, ok := rfc4648Vectors[codec.Name()]; ok {
			for i, input := range rfc4648Inputs {
				if err := checkVector(codec, input, expected[i]); err != nil {
					errs = multierror.Append(errs, err)
					failed = true
				}
			}
		}

		if failed {
			log.Warnf("[%v] FAILED", codec.Name())
		} else {
			log.Infof("[%v] OK", codec.Name())
		}
	}

	return errs
}

// roundTripText decodes a canonical pattern and expects the same text when encoding it again.
func roundTripText(codec enc.Codec, pattern string) error {
	data, err := codec.Decode(pattern)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode test pattern %q", codec.Name(), pattern)
	}
	encoded, err := codec.Encode(data)
	if err != nil {
		return errors.Wrapf(err, "%v: could not encode test pattern %q", codec.Name(), pattern)
	}
	if encoded != pattern {
		return errors.Errorf("%v: test pattern %q came back as %q", codec.Name(), pattern, encoded)
	}
	if !codec.Validate(pattern) {
		return errors.Errorf("%v: test pattern %q did not validate", codec.Name(), pattern)
	}
	return nil
}

// roundTripBytes encodes the payload and expects the same bytes when decoding the result.
func roundTripBytes(codec enc.Codec, payload []byte) error {
	encoded, err := codec.Encode(payload)
	if err != nil {
		return errors.Wrapf(err, "%v: could not encode %q", codec.Name(), payload)
	}
	decoded, err := codec.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode %q", codec.Name(), encoded)
	}
	if !bytes.Equal(decoded, payload) {
		return errors.Errorf("%v: %q came back as %q", codec.Name(), payload, decoded)
	}
	return nil
}

func checkVector(codec enc.Codec, input, expected string) error {
	encoded, err := codec.Encode([]byte(input))
	if err != nil {
		return errors.Wrapf(err, "%v: could not encode %q", codec.Name(), input)
	}
	if encoded != expected {
		return errors.Errorf("%v: %q encoded as %q, expected %q", codec.Name(), input, encoded, expected)
	}

	decoded, err := codec.Decode(expected)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode %q", codec.Name(), expected)
	}
	if string(decoded) != input {
		return errors.Errorf("%v: %q decoded as %q, expected %q", codec.Name(), expected, decoded, input)
	}
	return nil
}
