package models

// User represents a registered user of the store. The password is stored
// only as a salted bcrypt hash; the plaintext never survives signup.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	PasswordHash string `json:"-" gorm:"column:password;type:varchar(255)"`
}
