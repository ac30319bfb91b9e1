package model

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	// Active normal account status
	Active = iota
	// Baned blocked account
	Baned
)

// defaultMaxStorage quota assigned to fresh accounts, 10 GB.
const defaultMaxStorage = uint64(10) << 30

// User account model. Storage tracks the total size of all files whose
// blob still exists; every engine that creates or releases a blob goes
// through the storage methods below.
type User struct {
	gorm.Model
	Email      string `gorm:"type:varchar(100);unique_index"`
	Nick       string `gorm:"size:50"`
	Password   string `json:"-"`
	Status     int
	Storage    uint64
	MaxStorage uint64
}

// GetUserByID finds a user by primary key.
func GetUserByID(ID interface{}) (User, error) {
	var user User
	result := DB.First(&user, ID)
	return user, result.Error
}

// GetActiveUserByEmail finds a non-blocked user by email.
func GetActiveUserByEmail(email string) (User, error) {
	var user User
	result := DB.Where("status = ? and email = ?", Active, email).First(&user)
	return user, result.Error
}

// NewUser returns a new empty user with default quota.
func NewUser() User {
	return User{
		MaxStorage: defaultMaxStorage,
	}
}

// IncreaseStorage checks remaining capacity and adds to used storage.
func (user *User) IncreaseStorage(size uint64) bool {
	if size == 0 {
		return true
	}
	if size <= user.GetRemainingCapacity() {
		user.Storage += size
		DB.Model(user).Update("storage", gorm.Expr("storage + ?", size))
		return true
	}
	return false
}

// IncreaseStorageWithoutCheck adds to used storage, ignoring quota.
func (user *User) IncreaseStorageWithoutCheck(size uint64) {
	if size == 0 {
		return
	}
	user.Storage += size
	DB.Model(user).Update("storage", gorm.Expr("storage + ?", size))
}

// DeductionStorage subtracts from used storage, clamping at zero.
func (user *User) DeductionStorage(size uint64) bool {
	if size == 0 {
		return true
	}
	if size <= user.Storage {
		user.Storage -= size
		DB.Model(user).Update("storage", gorm.Expr("storage - ?", size))
		return true
	}

	user.Storage = 0
	DB.Model(user).Update("storage", 0)
	return false
}

// GetRemainingCapacity returns the free quota in bytes.
func (user *User) GetRemainingCapacity() uint64 {
	if user.MaxStorage <= user.Storage {
		return 0
	}
	return user.MaxStorage - user.Storage
}

// CheckPassword verifies a plain-text password against the stored digest.
func (user *User) CheckPassword(password string) (bool, error) {
	passwordStore := strings.Split(user.Password, ":")
	if len(passwordStore) != 2 {
		return false, errors.New("unknown password format")
	}

	hash := sha1.New()
	if _, err := hash.Write([]byte(password + passwordStore[0])); err != nil {
		return false, err
	}
	bs := hex.EncodeToString(hash.Sum(nil))

	return bs == passwordStore[1], nil
}

// SetPassword stores the salted digest of the given plain-text password.
func (user *User) SetPassword(password string) error {
	salt := util.RandStringRunes(16)

	hash := sha1.New()
	if _, err := hash.Write([]byte(password + salt)); err != nil {
		return err
	}
	bs := hex.EncodeToString(hash.Sum(nil))

	user.Password = salt + ":" + bs
	return nil
}
