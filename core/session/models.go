package session

// User is the cached public profile of the signed-in account, exactly
// as the backend (or the login fallback) returned it.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Session is the only state that survives across pages: the bearer
// token plus the cached user. Written only by the login success path.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
