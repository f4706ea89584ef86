package util

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// legacyPrefix marks digests imported from the previous deployment, which
// hashed with passlib-style pbkdf2-sha256. New digests are always bcrypt.
const legacyPrefix = "$pbkdf2-sha256$"

// HashPassword takes a plain-text password and returns a hashed password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares the given password with the stored digest.
// Both current bcrypt digests and legacy pbkdf2-sha256 digests verify.
func CheckPasswordHash(password, digest string) bool {
	if strings.HasPrefix(digest, legacyPrefix) {
		return verifyLegacyPBKDF2(password, digest)
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// verifyLegacyPBKDF2 checks a passlib digest of the form
// $pbkdf2-sha256$rounds$salt$checksum, where salt and checksum use
// passlib's adapted base64 alphabet ('.' instead of '+', no padding).
func verifyLegacyPBKDF2(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 5 {
		return false
	}
	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false
	}
	salt, err := adaptedB64Decode(parts[3])
	if err != nil {
		return false
	}
	want, err := adaptedB64Decode(parts[4])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, rounds, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func adaptedB64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}

// ValidatePassword checks if a password meets the required security criteria.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 72 {
		return errors.New("password must be between 8 and 72 characters")
	}
	if strings.Contains(password, " ") {
		return errors.New("password must not contain spaces")
	}
	return nil
}
