package models

import "time"

type User struct {
	ID                string     `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Email             string     `json:"email" db:"email"`
	PasswordHash      string     `json:"-" db:"password_hash"`
	EmailVerified     bool       `json:"emailVerified" db:"email_verified"`
	VerificationToken *string    `json:"-" db:"verification_token"`
	TokenExpiryDate   *time.Time `json:"-" db:"token_expiry_date"`
	PhoneNumber       *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Gender            string     `json:"gender" db:"gender"`
	AccountStatus     string     `json:"accountStatus" db:"account_status"`
	RowCreatedOn      time.Time  `json:"-" db:"row_created_on"`
	RowUpdatedOn      time.Time  `json:"-" db:"row_updated_on"`
}

// account status values
const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
)

// gender values
const (
	GenderWoman        = "woman"
	GenderMan          = "man"
	GenderOther        = "other"
	GenderNotSpecified = "not_specified"
)
