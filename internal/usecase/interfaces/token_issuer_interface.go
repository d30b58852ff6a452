package interfaces

import "time"

// ITokenIssuer signs the bearer tokens handed out on login.
type ITokenIssuer interface {
	IssueCitizenToken(cpf string) (token string, expiresAt time.Time, err error)
	IssueCaseworkerToken(email string) (token string, expiresAt time.Time, err error)
}
