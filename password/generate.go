package password

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// DefaultGeneratedLength is the length of generated replacement passwords.
const DefaultGeneratedLength = 16

const generateCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random password of the given length drawn from a
// letters-and-digits alphabet using crypto/rand. A non-positive length
// selects DefaultGeneratedLength.
//
// The result is intended for one-time out-of-band delivery; callers must
// store only its hash.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultGeneratedLength
	}
	if length > maxPasswordBytes {
		return "", errors.New("generated password length exceeds 72 bytes")
	}

	max := big.NewInt(int64(len(generateCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = generateCharset[n.Int64()]
	}
	return string(buf), nil
}
