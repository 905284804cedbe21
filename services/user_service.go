package services

import (
	"context"
	"fmt"
	"smorgas_server/database"
	"smorgas_server/lib"
	"smorgas_server/structs"
	"smorgas_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// UserService covers the admin-only account management surface.
type UserService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewUserService(logger *gecho.Logger, db *database.DB) *UserService {
	return &UserService{
		logger: logger,
		db:     db,
	}
}

// ListUsers returns all accounts without password hashes, oldest first.
func (us *UserService) ListUsers(ctx context.Context) ([]tables.User, error) {
	users, err := database.Query[tables.User](us.db).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// ResetPassword replaces a user's password with a freshly hashed one.
func (us *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, req *structs.ResetPasswordRequest) error {
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", lib.ErrValidation)
	}

	hash, err := lib.HashPassword(req.NewPassword, lib.DefaultArgonParams)
	if err != nil {
		us.logger.Error("Failed to hash password", gecho.Field("error", err))
		return err
	}

	affected, err := database.Query[tables.User](us.db).
		Where("id", userID).
		Update(ctx, map[string]any{"password_hash": hash})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", lib.ErrNotFound, userID)
	}

	us.logger.Info("Password reset", gecho.Field("user_id", userID))
	return nil
}

// DeleteUser removes an account. Administrators cannot remove themselves, so
// the system always keeps at least the acting admin.
func (us *UserService) DeleteUser(ctx context.Context, actor *tables.User, userID uuid.UUID) error {
	if actor != nil && actor.Id == userID {
		return fmt.Errorf("%w: you cannot delete your own account", lib.ErrForbidden)
	}

	affected, err := database.Query[tables.User](us.db).
		Where("id", userID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", lib.ErrNotFound, userID)
	}

	us.logger.Info("User deleted",
		gecho.Field("user_id", userID),
		gecho.Field("deleted_by", actor.Username))
	return nil
}
