package enc

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by a strict decode when the input holds a character that is
	// neither an alphabet symbol nor the pad character, or when Base16 data has an odd length.
	// It is also returned when an alphabet cannot be built from the given symbols.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResultOutOfRange means the engine asked an alphabet for a value it does not hold. It can
	// only happen with a misconfigured alphabet and is never returned by the canonical encodings.
	ErrResultOutOfRange = errors.New("result out of range")

	// ErrUnknownCodec is returned by Lookup when no registered codec matches.
	ErrUnknownCodec = errors.New("unknown codec")
)
