package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beneficios_inss/internal/domain/cpf"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidFullName  = errors.New("full name is required")
	ErrNameMismatch     = errors.New("full name does not match the registered cpf")
	ErrInvalidBirthDate = errors.New("birth date must use YYYY-MM-DD and not be in the future")
	ErrInvalidEmail     = errors.New("invalid email")
)

const birthDateLayout = "2006-01-02"

// IUserProfileUseCase manages the citizen record keyed by CPF.
type IUserProfileUseCase interface {
	// Login finds the citizen by CPF or registers it on first access.
	Login(ctx context.Context, fullName, rawCPF string) (entities.UserProfile, error)
	GetProfile(ctx context.Context, citizenCPF string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, citizenCPF string, update entities.ProfileUpdate) (entities.UserProfile, error)
}

type UserProfileUseCase struct {
	repo     interfaces.IUserProfileRepository
	validate *validator.Validate
	now      func() time.Time
}

var _ IUserProfileUseCase = (*UserProfileUseCase)(nil)

func NewUserProfileUseCase(repo interfaces.IUserProfileRepository) *UserProfileUseCase {
	return &UserProfileUseCase{
		repo:     repo,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *UserProfileUseCase) Login(ctx context.Context, fullName, rawCPF string) (entities.UserProfile, error) {
	fullName = strings.Join(strings.Fields(fullName), " ")
	if fullName == "" {
		return entities.UserProfile{}, ErrInvalidFullName
	}
	normalized, err := cpf.Normalize(rawCPF)
	if err != nil {
		return entities.UserProfile{}, err
	}

	existing, err := u.repo.GetByCPF(ctx, normalized)
	if err != nil {
		log.Error().Err(err).Str("cpf", cpf.Mask(normalized)).Msg("[profile][usecase] lookup failed")
		return entities.UserProfile{}, lifecycle.StoreUnavailableError(err)
	}
	if existing.CPF != "" {
		if !strings.EqualFold(existing.FullName, fullName) {
			log.Info().Str("cpf", cpf.Mask(normalized)).Msg("[profile][usecase] login name mismatch")
			return entities.UserProfile{}, ErrNameMismatch
		}
		return existing, nil
	}

	now := u.now()
	created, err := u.repo.Create(ctx, entities.UserProfile{
		CPF:       normalized,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Error().Err(err).Str("cpf", cpf.Mask(normalized)).Msg("[profile][usecase] register failed")
		return entities.UserProfile{}, lifecycle.StoreUnavailableError(err)
	}
	log.Info().Str("cpf", cpf.Mask(normalized)).Msg("[profile][usecase] citizen registered")
	return created, nil
}

func (u *UserProfileUseCase) GetProfile(ctx context.Context, citizenCPF string) (entities.UserProfile, error) {
	p, err := u.repo.GetByCPF(ctx, citizenCPF)
	if err != nil {
		return entities.UserProfile{}, lifecycle.StoreUnavailableError(err)
	}
	if p.CPF == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *UserProfileUseCase) UpdateProfile(ctx context.Context, citizenCPF string, update entities.ProfileUpdate) (entities.UserProfile, error) {
	update = trimUpdate(update)
	if update.BirthDate != nil && *update.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, *update.BirthDate)
		if err != nil || d.After(u.now()) {
			return entities.UserProfile{}, ErrInvalidBirthDate
		}
	}
	if update.Email != nil && *update.Email != "" {
		if err := u.validate.Var(*update.Email, "email"); err != nil {
			return entities.UserProfile{}, ErrInvalidEmail
		}
	}

	current, err := u.GetProfile(ctx, citizenCPF)
	if err != nil {
		return entities.UserProfile{}, err
	}

	next := update.Apply(current)
	next.UpdatedAt = u.now()
	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.UserProfile{}, lifecycle.StoreUnavailableError(err)
	}
	if saved.CPF == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return saved, nil
}

func trimUpdate(update entities.ProfileUpdate) entities.ProfileUpdate {
	for _, f := range []**string{&update.BirthDate, &update.Phone, &update.Email, &update.Address} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	return update
}
