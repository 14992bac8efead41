package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists admins in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&adminRecord{})
	}
	return repo
}

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

func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	clone := *admin
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ports.ErrUsernameTaken
		}
		return nil, err
	}
	return r.GetByUsername(ctx, record.Username)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	var record adminRecord
	if err := r.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []adminRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	admins := make([]*domain.Admin, 0, len(records))
	for i := range records {
		admins = append(admins, records[i].toDomain())
	}
	return admins, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(id)).Delete(&adminRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&adminRecord{}).
		Where("id = ?", strings.TrimSpace(id)).
		Update("last_login", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres admin repository not configured")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

func toRecord(admin *domain.Admin) adminRecord {
	return adminRecord{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		Role:         string(admin.Role),
		CreatedBy:    admin.CreatedBy,
		CreatedAt:    admin.CreatedAt,
		LastLogin:    admin.LastLogin,
	}
}

func (r adminRecord) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		LastLogin:    r.LastLogin,
	}
}
