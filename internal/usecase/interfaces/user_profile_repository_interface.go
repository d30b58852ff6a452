package interfaces

import (
	"context"

	"beneficios_inss/internal/domain/entities"
)

// IUserProfileRepository abstracts citizen profile persistence, keyed by CPF.
// GetByCPF returns a zero UserProfile (empty CPF) when the citizen is unknown.
type IUserProfileRepository interface {
	Create(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	GetByCPF(ctx context.Context, cpf string) (entities.UserProfile, error)
	Update(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
}
