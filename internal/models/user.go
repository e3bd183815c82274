package models

// User is a row of acc_users, the credential table shared with the desktop
// accounting package.
type User struct {
	ID   string `json:"id"`
	Pass string `json:"-"`
}

type LoginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
}
