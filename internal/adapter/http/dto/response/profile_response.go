package response

import (
	"time"

	"beneficios_inss/internal/domain/entities"
)

type ProfileResponse struct {
	CPF       string    `json:"cpf"`
	FullName  string    `json:"full_name"`
	BirthDate string    `json:"birth_date,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		CPF:       p.CPF,
		FullName:  p.FullName,
		BirthDate: p.BirthDate,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// SessionResponse carries the bearer token. Profile is set for citizens, Email for caseworkers.
type SessionResponse struct {
	Token     string           `json:"token"`
	TokenType string           `json:"token_type"`
	ExpiresAt time.Time        `json:"expires_at"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	Email     string           `json:"email,omitempty"`
}

func FromCitizenSession(token string, expiresAt time.Time, p entities.UserProfile) SessionResponse {
	profile := FromProfile(p)
	return SessionResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt, Profile: &profile}
}

func FromCaseworkerSession(token string, expiresAt time.Time, email string) SessionResponse {
	return SessionResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt, Email: email}
}
