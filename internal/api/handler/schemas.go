package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// objectRequest carries the fields accepted on object create and
// update. Update applies the full set: omitted numeric fields reset the
// column to zero. Budget and spent are pointers so absence coerces to 0
// instead of failing the bind.
type objectRequest struct {
	Name     string   `json:"name"      validate:"required"`
	Address  string   `json:"address"`
	Budget   *float64 `json:"budget"    validate:"omitempty,gte=0"`
	Spent    *float64 `json:"spent"     validate:"omitempty,gte=0"`
	ClientID *int64   `json:"client_id" validate:"omitempty,gt=0"`
	Photo    string   `json:"photo"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin client"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
}

type updateUserRequest struct {
	Phone  string `json:"phone"  validate:"omitempty,max=20"`
	Role   string `json:"role"   validate:"required,oneof=admin client"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
