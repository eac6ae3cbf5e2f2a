package api

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	StaffID     string `json:"staff_id"`
	DisplayName string `json:"display_name"`
}
