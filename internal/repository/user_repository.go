package repository

import (
	"database/sql"
	"fmt"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	. "finflow/internal/db/models/postgres/public/table"
	db "finflow/internal/db/query"
	"finflow/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// UserRepository is the identity collaborator. The accounting core mostly
// needs Exists; create/get back the user management surface.
type UserRepository interface {
	Create(tx *sql.Tx, user *domain.User) error
	Get(tx *sql.Tx, userID uuid.UUID) (*domain.User, error)
	Exists(tx *sql.Tx, userID uuid.UUID) (bool, error)
}

type userRepositoryHandler struct {
}

func NewUserRepository() UserRepository {
	return userRepositoryHandler{}
}

func userToDb(u *domain.User) model.AppUser {
	return model.AppUser{
		UserID:    u.UserID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func userFromDb(u model.AppUser) *domain.User {
	return &domain.User{
		UserID:    u.UserID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r userRepositoryHandler) Create(tx *sql.Tx, user *domain.User) error {
	query := AppUser.INSERT(AppUser.AllColumns).MODEL(userToDb(user))

	_, err := query.Exec(tx)
	if err != nil {
		if db.IsDuplicateEntryErr(err) {
			return finflow_errors.ErrConflict{Resource: "user", Message: user.Email + " already registered"}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r userRepositoryHandler) Get(tx *sql.Tx, userID uuid.UUID) (*domain.User, error) {
	query := AppUser.SELECT(AppUser.AllColumns).WHERE(
		AppUser.UserID.EQ(postgres.UUID(userID)),
	)

	var results []model.AppUser
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if len(results) == 0 {
		return nil, finflow_errors.ErrNotFound{Resource: "user", ID: userID.String()}
	}

	return userFromDb(results[0]), nil
}

func (r userRepositoryHandler) Exists(tx *sql.Tx, userID uuid.UUID) (bool, error) {
	query := AppUser.SELECT(AppUser.UserID).WHERE(
		AppUser.UserID.EQ(postgres.UUID(userID)),
	)

	var results []model.AppUser
	err := query.Query(tx, &results)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return len(results) > 0, nil
}
