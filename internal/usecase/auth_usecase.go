package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCaseworkerDisabled = errors.New("caseworker login not configured")
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Profile   entities.UserProfile
	Email     string
}

// CaseworkerAccount is the single configured back-office account.
type CaseworkerAccount struct {
	Email        string
	PasswordHash string
}

// IAuthUseCase opens citizen and caseworker sessions.
type IAuthUseCase interface {
	CitizenLogin(ctx context.Context, fullName, rawCPF string) (Session, error)
	CaseworkerLogin(ctx context.Context, email, password string) (Session, error)
}

type AuthUseCase struct {
	profiles   IUserProfileUseCase
	tokens     interfaces.ITokenIssuer
	caseworker CaseworkerAccount
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(profiles IUserProfileUseCase, tokens interfaces.ITokenIssuer, caseworker CaseworkerAccount) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, tokens: tokens, caseworker: caseworker}
}

func (u *AuthUseCase) CitizenLogin(ctx context.Context, fullName, rawCPF string) (Session, error) {
	profile, err := u.profiles.Login(ctx, fullName, rawCPF)
	if err != nil {
		return Session{}, err
	}
	token, exp, err := u.tokens.IssueCitizenToken(profile.CPF)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp, Profile: profile}, nil
}

func (u *AuthUseCase) CaseworkerLogin(_ context.Context, email, password string) (Session, error) {
	if u.caseworker.Email == "" || u.caseworker.PasswordHash == "" {
		return Session{}, ErrCaseworkerDisabled
	}
	email = strings.TrimSpace(email)
	if !strings.EqualFold(email, u.caseworker.Email) || password == "" {
		log.Info().Msg("[auth][usecase] caseworker login rejected")
		return Session{}, ErrInvalidCredentials
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.caseworker.PasswordHash)
	if err != nil {
		log.Error().Err(err).Msg("[auth][usecase] caseworker hash unreadable")
		return Session{}, err
	}
	if !match {
		log.Info().Msg("[auth][usecase] caseworker login rejected")
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := u.tokens.IssueCaseworkerToken(u.caseworker.Email)
	if err != nil {
		return Session{}, err
	}
	log.Info().Msg("[auth][usecase] caseworker session opened")
	return Session{Token: token, ExpiresAt: exp, Email: u.caseworker.Email}, nil
}
