package security

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder encodes raw passwords for storage and checks submitted ones
type PasswordEncoder interface {
	// Encode returns the stored form of rawPassword
	Encode(rawPassword string) (string, error)
	// Matches reports whether rawPassword corresponds to encodedPassword
	Matches(rawPassword, encodedPassword string) bool
}

// NoEncodingPasswordEncoder stores passwords as given. Only meant for local development.
type NoEncodingPasswordEncoder struct{}

func (NoEncodingPasswordEncoder) Encode(rawPassword string) (string, error) {
	return rawPassword, nil
}

func (NoEncodingPasswordEncoder) Matches(rawPassword, encodedPassword string) bool {
	return rawPassword == encodedPassword
}

// BcryptPasswordEncoder hashes passwords with bcrypt
type BcryptPasswordEncoder struct {
	Cost int
}

func (e BcryptPasswordEncoder) Encode(rawPassword string) (string, error) {
	cost := e.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (e BcryptPasswordEncoder) Matches(rawPassword, encodedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedPassword), []byte(rawPassword)) == nil
}

// NewPasswordEncoder returns the encoder registered under name ("bcrypt" or "noop")
func NewPasswordEncoder(name string) (PasswordEncoder, error) {
	switch strings.ToLower(name) {
	case "bcrypt", "":
		return BcryptPasswordEncoder{}, nil
	case "noop", "none", "plain":
		return NoEncodingPasswordEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported password encoder: %s (supported: bcrypt, noop)", name)
	}
}
