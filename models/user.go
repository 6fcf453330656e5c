package models

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phone_no"`
	Role    Role   `json:"role"`
}

// Session is the authenticated identity held by the client. A session
// without a token is never constructed; token and user live and die
// together.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"access_token"`
}
