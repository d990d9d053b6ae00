package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateAvatarRequest is the request body for changing an avatar
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// SaveResultRequest is the request body for recording a game result.
// Score is a pointer so a missing field can be told apart from an
// explicit zero.
type SaveResultRequest struct {
	GameType string  `json:"gameType"`
	Score    *int    `json:"score"`
	Trophy   *string `json:"trophy,omitempty"`
}
