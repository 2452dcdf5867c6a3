package response_models

type AccountResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type AccountLoginResponse struct {
	Token string `json:"token"`
	AccountResponse
}
