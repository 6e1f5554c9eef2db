package models

// User is the account record exchanged with the accounts endpoints. The same
// shape serves registration (Password set, server-managed fields empty) and
// the profile view (server-managed fields set, Password empty).
type User struct {
	ID        string `json:"id,omitempty"`
	UserName  string `json:"userName" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=6"`
	Address   string `json:"address" validate:"required"`
	MobileNo  string `json:"mobileNo" validate:"required,numeric,min=7,max=15"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Credentials is the login request body. The backend expects the email under
// the userEmail key.
type Credentials struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// ContactMessage is the request body for the public contact endpoint.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
