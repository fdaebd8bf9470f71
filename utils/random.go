package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateTicketNumber returns a random six digit ticket number in [100000, 999999].
func GenerateTicketNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// PadTicketNumber formats n as a zero padded six digit ticket number.
func PadTicketNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < 6 {
		s = "0" + s
	}
	return s
}
