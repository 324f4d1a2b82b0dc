package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"golang.org/x/crypto/bcrypt"
)

type UserStatus string
type RawPassword string
type HashedPassword string

const (
	UserStatusActive   = UserStatus("active")
	UserStatusInactive = UserStatus("inactive")
)

// TokenTTL is how long an operator session token stays valid.
const TokenTTL int64 = 86400

// User is an operator account for the manager API.
type User struct {
	ID       string         `json:"id"`
	Status   UserStatus     `json:"status"`
	Version  int64          `json:"version"`
	Password HashedPassword `json:"password"`
	Name     string         `json:"name"`
	Emails   []string       `json:"emails"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

type UserToken struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	CreatedAt int64  `json:"created_at"`
	ExpiredAt int64  `json:"expired_at"`
}

type UserManager interface {
	CreateUser(ctx context.Context, ts int64, req CreateUserRequest) (User, error)
	ChangePassword(ctx context.Context, ts int64, req ChangePasswordRequest) (User, error)
	Authenticate(ctx context.Context, ts int64, req AuthenticateUserRequest) (UserToken, error)
	TokenAuthorization(ctx context.Context, ts int64, token string) (UserToken, error)
	ListUsers(ctx context.Context, req ListUserRequest) (ListUserResult, error)
}

type CreateUserRequest struct {
	RequestUser string      `json:"request_user"`
	UserID      string      `json:"user_id"`
	Password    RawPassword `json:"password"`
	Name        string      `json:"name"`
	Emails      []string    `json:"emails"`
}

type ChangePasswordRequest struct {
	UserID      string      `json:"user_id"`
	OldPassword RawPassword `json:"old_password"`
	Password    RawPassword `json:"password"`
}

type AuthenticateUserRequest struct {
	UserID   string      `json:"user_id"`
	Password RawPassword `json:"password"`
}

type ListUserRequest struct {
	Offset int `json:"offset"` // Offset for pagination.
	Limit  int `json:"limit"`  // Limit for pagination.

	IDs []string `json:"ids"` // Filter by user ID.
}

type ListUserResult struct {
	Total int    `json:"total"`
	Users []User `json:"users"`
}

type UserStorage interface {
	CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error)
	StoreUser(ctx context.Context, tx storage.Tx, user User) error
	ListUsers(ctx context.Context, tx storage.Tx, req ListUserRequest) (ListUserResult, error)
	StoreUserToken(ctx context.Context, tx storage.Tx, token UserToken) error
	GetUserToken(ctx context.Context, tx storage.Tx, token string) (UserToken, error)
}

func VerifyUserPassword(raw RawPassword, hashed HashedPassword) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return model.ErrUserAuthenticationFail
	}
	return err
}

type _UserManager struct {
	storage UserStorage
}

func NewUserManager(s UserStorage) UserManager {
	return &_UserManager{storage: s}
}

func (m *_UserManager) CreateUser(ctx context.Context, ts int64, req CreateUserRequest) (User, error) {
	if err := ValidateCreateUserRequest(req); err != nil {
		return User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(string(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:        req.UserID,
		Password:  HashedPassword(hashedPassword),
		Status:    UserStatusActive,
		Version:   1,
		Name:      req.Name,
		Emails:    req.Emails,
		CreatedAt: ts,
		CreatedBy: req.RequestUser,
		UpdatedAt: ts,
		UpdatedBy: req.RequestUser,
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return User{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	oldUsers, err := m.storage.ListUsers(ctx, tx, ListUserRequest{Limit: 1, IDs: []string{user.ID}})
	if err != nil {
		return User{}, err
	}
	if len(oldUsers.Users) > 0 {
		return User{}, model.ErrUserAlreadyExists
	}

	if err := m.storage.StoreUser(ctx, tx, user); err != nil {
		return User{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return User{}, err
	}

	user.Password = ""
	return user, nil
}

func (m *_UserManager) ChangePassword(ctx context.Context, ts int64, req ChangePasswordRequest) (User, error) {
	if err := ValidateChangePasswordRequest(req); err != nil {
		return User{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return User{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	user, err := m.getUser(ctx, tx, req.UserID)
	if err != nil {
		return User{}, err
	}
	if err := VerifyUserPassword(req.OldPassword, user.Password); err != nil {
		return User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(string(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.UpdatedAt = ts
	user.UpdatedBy = req.UserID
	user.Password = HashedPassword(hashedPassword)
	user.Version += 1
	if err := m.storage.StoreUser(ctx, tx, user); err != nil {
		return User{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return User{}, err
	}

	user.Password = ""
	return user, nil
}

func (m *_UserManager) Authenticate(ctx context.Context, ts int64, req AuthenticateUserRequest) (UserToken, error) {
	if err := ValidateAuthenticateUserRequest(req); err != nil {
		return UserToken{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return UserToken{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	user, err := m.getUser(ctx, tx, req.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return UserToken{}, model.ErrUserAuthenticationFail
	}
	if err != nil {
		return UserToken{}, err
	}
	if user.Status != UserStatusActive {
		return UserToken{}, model.ErrUserInactive
	}
	if err := VerifyUserPassword(req.Password, user.Password); err != nil {
		return UserToken{}, err
	}

	token := UserToken{
		Token:     fmt.Sprintf("%s_%s", uuid.NewString(), uuid.NewString()),
		UserID:    user.ID,
		CreatedAt: ts,
		ExpiredAt: ts + TokenTTL,
	}
	if err := m.storage.StoreUserToken(ctx, tx, token); err != nil {
		return UserToken{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return UserToken{}, err
	}

	return token, nil
}

func (m *_UserManager) TokenAuthorization(ctx context.Context, ts int64, token string) (UserToken, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return UserToken{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userToken, err := m.storage.GetUserToken(ctx, tx, token)
	if errors.Is(err, sql.ErrNoRows) {
		return UserToken{}, model.ErrUserTokenInvalid
	}
	if err != nil {
		return UserToken{}, err
	}

	if userToken.ExpiredAt < ts {
		return UserToken{}, model.ErrUserTokenExpired
	}

	return userToken, nil
}

func (m *_UserManager) ListUsers(ctx context.Context, req ListUserRequest) (ListUserResult, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return ListUserResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := m.storage.ListUsers(ctx, tx, req)
	if err != nil {
		return ListUserResult{}, err
	}
	for i := range result.Users {
		result.Users[i].Password = ""
	}
	return result, nil
}

func (m *_UserManager) getUser(ctx context.Context, tx storage.Tx, id string) (User, error) {
	res, err := m.storage.ListUsers(ctx, tx, ListUserRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return User{}, err
	}
	if len(res.Users) == 0 {
		return User{}, model.ErrUserNotFound
	}
	return res.Users[0], nil
}
