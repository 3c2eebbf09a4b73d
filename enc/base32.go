package enc

const (
	cb32    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb32Hex = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

var (
	// Base32 encodes 5 bytes to 8 characters using the RFC4648 alphabet.
	Base32 = NewEncoding("Base32", 'T', mustAlphabet(cb32), Options{
		Padding: true,
		PadChar: '=',
		Strict:  true,
	}).withTestPatterns(
		cb32,
		"MZXW6YTBOI======",
	)

	// Base32Hex is Base32 with the "extended hex" alphabet, which keeps the sort order of the data.
	Base32Hex = NewEncoding("Base32Hex", 'E', mustAlphabet(cb32Hex), Options{
		Padding: true,
		PadChar: '=',
		Strict:  true,
	}).withTestPatterns(
		cb32Hex,
		"CPNMUOJ1E8======",
	)
)
