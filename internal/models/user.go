package models

import "time"

type User struct {
	BaseModel
	OpenID       string   `gorm:"uniqueIndex;not null" json:"openId"`
	Name         string   `json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	LoginMethod  string   `json:"loginMethod"`
	Role         UserRole `gorm:"type:varchar(20);default:'user';not null" json:"role"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"userType"`

	// Client fields
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Designer fields
	Username string `json:"username"`

	PhoneNumber  string    `json:"phoneNumber"`
	LastSignedIn time.Time `json:"lastSignedIn"`

	// Relations
	Software []DesignerSoftware `gorm:"foreignKey:DesignerID" json:"-"`
}

// IsDesigner reports whether the account was created as a designer.
// The user type is immutable after registration.
func (u *User) IsDesigner() bool { return u.UserType == UserTypeDesigner }

func (u *User) IsClient() bool { return u.UserType == UserTypeClient }

func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }

type PasswordResetToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false;not null" json:"used"`
}
