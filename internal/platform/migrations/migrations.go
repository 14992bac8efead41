package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&adminRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID            string    `gorm:"primaryKey;column:id;size:64"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email;index"`
	Phone         string    `gorm:"column:phone"`
	Address       string    `gorm:"column:address"`
	Product       string    `gorm:"column:product;index"`
	Quantity      int       `gorm:"column:quantity"`
	PaymentMethod string    `gorm:"column:payment_method;type:varchar(32)"`
	Status        string    `gorm:"column:status;type:varchar(16);index"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Admin schema mirrors the admins Postgres adapter.
type adminRecord struct {
	ID           string     `gorm:"primaryKey;column:id;size:64"`
	Username     string     `gorm:"column:username;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"column:role;type:varchar(32)"`
	CreatedBy    string     `gorm:"column:created_by;size:64"`
	CreatedAt    time.Time  `gorm:"column:created_at;index"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (adminRecord) TableName() string { return "admins" }
