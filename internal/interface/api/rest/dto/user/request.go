package user

type (
	CreateRequest struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone,omitempty"`
	}
	UpdateRequest struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone,omitempty"`
		Active    bool   `json:"active"`
	}
)
