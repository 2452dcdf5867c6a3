package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

// AccountRepository is the credential store: user and admin records.
type AccountRepository interface {
	CreateUser(ctx context.Context, user *db_models.User) error
	FindUserById(ctx context.Context, id uint) (*db_models.User, error)
	FindUserByIdForUpdate(ctx context.Context, id uint) (*db_models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*db_models.User, error)

	CreateAdmin(ctx context.Context, admin *db_models.Admin) error
	FindAdminById(ctx context.Context, id uint) (*db_models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (*db_models.Admin, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) CreateUser(ctx context.Context, user *db_models.User) error {
	return translateErr(a.db.WithContext(ctx).Create(user).Error)
}

func (a *accountRepository) FindUserById(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	found, err := firstOrNil(a.db.WithContext(ctx).First(&user, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &user, nil
}

func (a *accountRepository) FindUserByIdForUpdate(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	found, err := firstOrNil(a.db.WithContext(ctx).Clauses(forUpdate()).First(&user, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &user, nil
}

func (a *accountRepository) FindUserByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	found, err := firstOrNil(a.db.WithContext(ctx).First(&user, "username = ?", username).Error)
	if !found {
		return nil, err
	}
	return &user, nil
}

func (a *accountRepository) CreateAdmin(ctx context.Context, admin *db_models.Admin) error {
	return translateErr(a.db.WithContext(ctx).Create(admin).Error)
}

func (a *accountRepository) FindAdminById(ctx context.Context, id uint) (*db_models.Admin, error) {
	var admin db_models.Admin
	found, err := firstOrNil(a.db.WithContext(ctx).First(&admin, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &admin, nil
}

func (a *accountRepository) FindAdminByUsername(ctx context.Context, username string) (*db_models.Admin, error) {
	var admin db_models.Admin
	found, err := firstOrNil(a.db.WithContext(ctx).First(&admin, "username = ?", username).Error)
	if !found {
		return nil, err
	}
	return &admin, nil
}
