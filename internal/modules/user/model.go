package user

// CreateUserRequest is the payload for registering a seller.
type CreateUserRequest struct {
	Name string `json:"name"`
}
