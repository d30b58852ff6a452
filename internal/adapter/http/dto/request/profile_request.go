package request

import "beneficios_inss/internal/domain/entities"

// UpdateProfileRequest is a partial update; omitted fields are kept.
// CPF and full name are not editable and are ignored if sent.
type UpdateProfileRequest struct {
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
}

func (r UpdateProfileRequest) ToUpdate() entities.ProfileUpdate {
	return entities.ProfileUpdate{
		BirthDate: r.BirthDate,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
	}
}

// Empty reports whether no editable field was sent.
func (r UpdateProfileRequest) Empty() bool {
	return r.BirthDate == nil && r.Phone == nil && r.Email == nil && r.Address == nil
}
