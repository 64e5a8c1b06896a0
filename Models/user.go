package Models

import (
	"errors"
	"strings"

	"MediTrack/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is the closed set of authorization roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username       string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName      string    `gorm:"size:255" json:"first_name"`
	LastName       string    `gorm:"size:255" json:"last_name"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	Role           Role      `gorm:"size:16;not null" json:"role"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	Patients       []Patient `gorm:"many2many:patient_assignments;" json:"-"`
}

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword returns a non-nil error when the plaintext does not match
// the stored digest, including when the digest itself is malformed.
func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// SaveUser hashes the password and inserts the account. Uniqueness of
// username and email is enforced by the database indexes, not a pre-check,
// so concurrent registrations cannot both succeed.
func (user *User) SaveUser(password string) (*User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return &User{}, err
	}
	user.HashedPassword = hashed
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := DB.Create(user).Error; err != nil {
		if dup := translateConstraint(err); dup != nil {
			return &User{}, dup
		}
		return &User{}, err
	}
	// reload so database defaults (is_active) are reflected
	if err := DB.First(user, user.ID).Error; err != nil {
		return &User{}, err
	}
	return user, nil
}

func GetUserByID(uid uint) (User, error) {
	var user User
	if err := DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrNotFound
		}
		return user, err
	}
	return user, nil
}

func GetUserByUsername(username string) (User, error) {
	var user User
	if err := DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrNotFound
		}
		return user, err
	}
	return user, nil
}

// LoginCheck authenticates the credentials and issues a token. An unknown
// username and a wrong password both come back as ErrUnauthorized so the
// response cannot be used to enumerate accounts.
func LoginCheck(username string, password string) (User, string, error) {
	user, err := GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrUnauthorized
		}
		return User{}, "", err
	}

	if err := VerifyPassword(password, user.HashedPassword); err != nil {
		return User{}, "", ErrUnauthorized
	}

	token, err := Token.Generate(user.Username, user.ID, string(user.Role))
	if err != nil {
		return User{}, "", err
	}

	return user, token, nil
}
