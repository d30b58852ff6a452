package auth

import "github.com/alexedwards/argon2id"

var params = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword returns an Argon2id hash suitable for CASEWORKER_PASSWORD_HASH.
// The parameters travel inside the encoded hash.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, params)
}
