package services

import (
	"crypto/rand"
	"fmt"

	"marketplace/internal/core/domain/model/order"
)

// codeAlphabet holds the characters verification codes are drawn from.
// Ambiguity with lowercase is avoided by using uppercase letters only.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGenerator produces one-time verification codes handed to the buyer and
// seller when a worker is assigned. Codes are generated from a cryptographic
// random source so they cannot be predicted from earlier codes.
type CodeGenerator struct{}

// NewCodeGenerator creates a new CodeGenerator instance.
func NewCodeGenerator() CodeGenerator {
	return CodeGenerator{}
}

// maxUnbiasedByte is the largest multiple of len(codeAlphabet) that fits in a
// byte. Random bytes at or above it are discarded so every alphabet character
// is equally likely.
const maxUnbiasedByte = 256 / len(codeAlphabet) * len(codeAlphabet)

// Generate returns a fresh verification code of order.CodeLength characters
// drawn uniformly from an uppercase alphanumeric alphabet.
func (g CodeGenerator) Generate() (string, error) {
	code := make([]byte, 0, order.CodeLength)
	buf := make([]byte, order.CodeLength)

	for len(code) < order.CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate verification code: %w", err)
		}

		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == order.CodeLength {
				break
			}
		}
	}

	return string(code), nil
}
