package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"beneficios_inss/internal/domain/cpf"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
	mock_interfaces "beneficios_inss/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newProfileUseCase(t *testing.T) (*UserProfileUseCase, *mock_interfaces.MockIUserProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
	uc := NewUserProfileUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func TestUserProfileUseCase_Login(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		if _, err := uc.Login(context.Background(), "  ", ownerCPF); !errors.Is(err, ErrInvalidFullName) {
			t.Fatalf("expected ErrInvalidFullName, got %v", err)
		}
	})

	t.Run("bad cpf", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		if _, err := uc.Login(context.Background(), "Maria", "123"); !errors.Is(err, cpf.ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("existing profile matches ignoring case", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{CPF: ownerCPF, FullName: "Maria da Silva"}, nil)

		p, err := uc.Login(context.Background(), "MARIA  DA silva", "12345678900")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.FullName != "Maria da Silva" {
			t.Fatalf("expected stored name, got %q", p.FullName)
		}
	})

	t.Run("existing profile other name", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{CPF: ownerCPF, FullName: "Maria da Silva"}, nil)

		if _, err := uc.Login(context.Background(), "João Souza", ownerCPF); !errors.Is(err, ErrNameMismatch) {
			t.Fatalf("expected ErrNameMismatch, got %v", err)
		}
	})

	t.Run("first access registers", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.UserProfile{})).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.CPF != ownerCPF || p.FullName != "Maria da Silva" || !p.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected profile: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Login(context.Background(), " Maria da Silva ", ownerCPF); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{}, errors.New("db"))

		if _, err := uc.Login(context.Background(), "Maria", ownerCPF); !errors.Is(err, lifecycle.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestUserProfileUseCase_UpdateProfile(t *testing.T) {
	stored := entities.UserProfile{CPF: ownerCPF, FullName: "Maria da Silva", Phone: "11 99999-0000"}

	t.Run("invalid birth date", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		_, err := uc.UpdateProfile(context.Background(), ownerCPF, entities.ProfileUpdate{BirthDate: strPtr("10/02/1960")})
		if !errors.Is(err, ErrInvalidBirthDate) {
			t.Fatalf("expected ErrInvalidBirthDate, got %v", err)
		}
	})

	t.Run("future birth date", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		_, err := uc.UpdateProfile(context.Background(), ownerCPF, entities.ProfileUpdate{BirthDate: strPtr("2030-01-01")})
		if !errors.Is(err, ErrInvalidBirthDate) {
			t.Fatalf("expected ErrInvalidBirthDate, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		_, err := uc.UpdateProfile(context.Background(), ownerCPF, entities.ProfileUpdate{Email: strPtr("maria@")})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(entities.UserProfile{}, nil)

		_, err := uc.UpdateProfile(context.Background(), ownerCPF, entities.ProfileUpdate{Phone: strPtr("11 98888-0000")})
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("success keeps untouched fields", func(t *testing.T) {
		uc, repo := newProfileUseCase(t)
		repo.EXPECT().GetByCPF(gomock.Any(), ownerCPF).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.UserProfile{})).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.Email != "maria@example.com" || p.BirthDate != "1960-02-10" || p.Phone != stored.Phone {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if p.FullName != stored.FullName || !p.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected profile: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.UpdateProfile(context.Background(), ownerCPF, entities.ProfileUpdate{
			BirthDate: strPtr("1960-02-10"),
			Email:     strPtr(" maria@example.com "),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
