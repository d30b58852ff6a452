package repository

import (
	"context"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// UserProfileFirestoreRepository keeps citizen profiles in the "users"
// collection, document id = formatted CPF.
type UserProfileFirestoreRepository struct {
	client *firestore.Client
}

var _ interfaces.IUserProfileRepository = (*UserProfileFirestoreRepository)(nil)

func NewUserProfileFirestoreRepository(client *firestore.Client) *UserProfileFirestoreRepository {
	return &UserProfileFirestoreRepository{client: client}
}

func (r *UserProfileFirestoreRepository) Create(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	if _, err := r.client.Collection(usersCollection).Doc(p.CPF).Create(ctx, toUserItem(p)); err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func (r *UserProfileFirestoreRepository) GetByCPF(ctx context.Context, cpf string) (entities.UserProfile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(cpf).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	var it userItem
	if err := snap.DataTo(&it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserProfileFirestoreRepository) Update(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	doc := r.client.Collection(usersCollection).Doc(p.CPF)
	_, err := doc.Update(ctx, []firestore.Update{
		{Path: "birth_date", Value: p.BirthDate},
		{Path: "phone", Value: p.Phone},
		{Path: "email", Value: p.Email},
		{Path: "address", Value: p.Address},
		{Path: "updated_at", Value: formatTime(p.UpdatedAt)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	return p, nil
}
