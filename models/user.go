package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	ProfileImage  string `json:"profileImage,omitempty"`
	WalletBalance int64  `json:"walletBalance"`
	IsActive      bool   `json:"isActive"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate carries the fields to merge into a user. Nil fields are left alone.
type ProfileUpdate struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Role          *Role   `json:"role,omitempty"`
	ProfileImage  *string `json:"profileImage,omitempty"`
	WalletBalance *int64  `json:"walletBalance,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p ProfileUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.WalletBalance != nil {
		u.WalletBalance = *p.WalletBalance
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	return u
}
