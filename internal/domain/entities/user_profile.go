package entities

import "time"

// UserProfile is the citizen record keyed by CPF.
//
// FullName corroborates identity on login and is not editable; the remaining
// contact fields are optional and citizen-editable.
type UserProfile struct {
	CPF       string    `json:"cpf"`
	FullName  string    `json:"full_name"`
	BirthDate string    `json:"birth_date,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the editable profile fields. Nil means "keep".
type ProfileUpdate struct {
	BirthDate *string
	Phone     *string
	Email     *string
	Address   *string
}

// Apply returns a copy of p with the non-nil fields written over it.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.BirthDate != nil {
		p.BirthDate = *u.BirthDate
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	return p
}
