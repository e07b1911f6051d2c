package domain

// UserRole distinguishes administrative users from regular ones.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a user of the application.
// Users are created by the seed migration or by an admin; they are never
// hard-deleted in-app.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
