package enc

const (
	cb64    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb64Url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	// Base64 encodes 3 bytes to 4 characters.
	Base64 = NewEncoding("Base64", 'S', mustAlphabet(cb64), Options{
		Padding: true,
		PadChar: '=',
		Strict:  true,
	}).withTestPatterns(
		cb64,
		"Zm9vYmFy",
		"Zm9vYg==",
	)

	// Base64Url uses the URL and file name safe alphabet. Padding is off by default, because '='
	// would have to be percent-encoded in URLs.
	Base64Url = NewEncoding("Base64Url", 'U', mustAlphabet(cb64Url), Options{
		Padding: false,
		PadChar: '=',
		Strict:  true,
	}).withTestPatterns(
		cb64Url,
		"Zm9vYmE",
	)
)
