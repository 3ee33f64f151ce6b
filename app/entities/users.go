package entities

const (
	RoleReceptionist = "Receptionist"
	RoleHousekeeping = "Housekeeping"
)

// User is one record of the users document.
// Password is compared as stored: plaintext, or a bcrypt hash.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Login struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
