package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"beneficios_inss/internal/domain/entities"
	mock_interfaces "beneficios_inss/internal/usecase/interfaces/mocks"

	"github.com/alexedwards/argon2id"
	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_CitizenLogin(t *testing.T) {
	t.Run("profile error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profiles := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(NewUserProfileUseCase(profiles), tokens, CaseworkerAccount{})

		profiles.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{CPF: ownerCPF, FullName: "Outra Pessoa"}, nil)

		if _, err := uc.CitizenLogin(context.Background(), "Maria da Silva", ownerCPF); !errors.Is(err, ErrNameMismatch) {
			t.Fatalf("expected ErrNameMismatch, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profiles := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(NewUserProfileUseCase(profiles), tokens, CaseworkerAccount{})

		exp := fixedNow.Add(time.Hour)
		profiles.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{CPF: ownerCPF, FullName: "Maria da Silva"}, nil)
		tokens.EXPECT().IssueCitizenToken(ownerCPF).Return("signed", exp, nil)

		s, err := uc.CitizenLogin(context.Background(), "maria da silva", ownerCPF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "signed" || !s.ExpiresAt.Equal(exp) || s.Profile.CPF != ownerCPF {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}

func TestAuthUseCase_CaseworkerLogin(t *testing.T) {
	hash, err := argon2id.CreateHash("senha-forte", &argon2id.Params{Memory: 16 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	account := CaseworkerAccount{Email: "servidor@inss.gov.br", PasswordHash: hash}

	t.Run("not configured", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, CaseworkerAccount{})
		if _, err := uc.CaseworkerLogin(context.Background(), "servidor@inss.gov.br", "senha-forte"); !errors.Is(err, ErrCaseworkerDisabled) {
			t.Fatalf("expected ErrCaseworkerDisabled, got %v", err)
		}
	})

	t.Run("wrong email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, account)
		if _, err := uc.CaseworkerLogin(context.Background(), "outro@inss.gov.br", "senha-forte"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, account)
		if _, err := uc.CaseworkerLogin(context.Background(), "servidor@inss.gov.br", "errada"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(nil, tokens, account)
		tokens.EXPECT().IssueCaseworkerToken("servidor@inss.gov.br").Return("signed", fixedNow, nil)

		s, err := uc.CaseworkerLogin(context.Background(), " SERVIDOR@inss.gov.br ", "senha-forte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "signed" || s.Email != "servidor@inss.gov.br" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}
