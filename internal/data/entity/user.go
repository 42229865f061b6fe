package entity

type UserRole string

const (
	RoleClient       UserRole = "CLIENT"
	RoleProfessional UserRole = "PROFESSIONAL"
	RoleAdmin        UserRole = "ADMIN"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

type User struct {
	Base
	Name               string             `db:"name"`
	Email              string             `db:"email"`
	PasswordHash       string             `db:"password"`
	Phone              *string            `db:"phone"`
	Avatar             *string            `db:"avatar"`
	Role               UserRole           `db:"role"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	IsActive           bool               `db:"is_active"`
}
