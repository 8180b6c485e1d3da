package dto

// LoginReq represents the request body for the /login endpoint.
// It includes validation for required fields and email format.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
