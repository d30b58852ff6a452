package request

// CitizenLoginRequest opens a citizen session. CPF may be formatted or bare digits.
type CitizenLoginRequest struct {
	FullName string `json:"fullName" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
}

type CaseworkerLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
