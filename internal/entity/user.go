package entity

type User struct {
	Base
	Email string `gorm:"unique;not null"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"not null"`
}
