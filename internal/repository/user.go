package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create registers a new user. The uniqueness guards and the write run as
// one transaction so two concurrent sign-ups cannot both pass the check.
// A plain unique index cannot serve here: withdrawn accounts keep their
// login_id, so the table legitimately holds repeated values.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`IF (SELECT count() AS count FROM user WHERE login_id = $login_id AND withdraw = false GROUP ALL)[0].count > 0 { THROW "login_id_taken" }`,
		map[string]interface{}{"login_id": user.LoginID},
	)
	batch.Add(
		`IF (SELECT count() AS count FROM user WHERE nickname = $nickname AND withdraw = false GROUP ALL)[0].count > 0 { THROW "nickname_taken" }`,
		map[string]interface{}{"nickname": user.Nickname},
	)
	batch.Add(
		`CREATE user CONTENT {
			login_id: $login_id,
			nickname: $nickname,
			hash: $hash,
			age: $age,
			gender: $gender,
			withdraw: false,
			created_on: time::now(),
			updated_on: time::now()
		}`,
		map[string]interface{}{
			"login_id": user.LoginID,
			"nickname": user.Nickname,
			"hash":     user.Hash,
			"age":      user.Age,
			"gender":   user.Gender,
		},
	)

	query, vars := batch.Build()
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if key, ok := thrownDuplicateKey(err); ok {
			return &database.DuplicateError{Key: key}
		}
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: login id or nickname already exists", database.ErrDuplicate)
		}
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	user.ID = convertSurrealID(row["id"])
	user.CreatedOn = getTime(row, "created_on")
	user.UpdatedOn = getTime(row, "updated_on")
	return nil
}

// GetByID retrieves a user by record ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByLoginID retrieves the most recent user registered with a login id.
// Withdrawn accounts keep their record, so the caller must check the
// withdraw flag.
func (r *UserRepository) GetByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	query := `
		SELECT * FROM user
		WHERE login_id = $login_id
		ORDER BY created_on DESC
		LIMIT 1
	`
	vars := map[string]interface{}{"login_id": loginID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByNickname retrieves an active user by nickname
func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	query := `
		SELECT * FROM user
		WHERE nickname = $nickname AND withdraw = false
		LIMIT 1
	`
	vars := map[string]interface{}{"nickname": nickname}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// UpdateInfo updates a user's profile fields. The nickname guard runs in
// the same transaction as the update, mirroring Create.
func (r *UserRepository) UpdateInfo(ctx context.Context, user *model.User) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`IF (SELECT count() AS count FROM user WHERE nickname = $nickname AND withdraw = false AND id != type::record($id) GROUP ALL)[0].count > 0 { THROW "nickname_taken" }`,
		map[string]interface{}{
			"nickname": user.Nickname,
			"id":       user.ID,
		},
	)
	batch.Add(
		`UPDATE type::record($id) SET
			nickname = $nickname,
			age = $age,
			gender = $gender,
			updated_on = time::now()`,
		map[string]interface{}{
			"id":       user.ID,
			"nickname": user.Nickname,
			"age":      user.Age,
			"gender":   user.Gender,
		},
	)

	if err := batch.Execute(ctx, r.db); err != nil {
		if key, ok := thrownDuplicateKey(err); ok {
			return &database.DuplicateError{Key: key}
		}
		return err
	}
	return nil
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hash string) error {
	query := `UPDATE type::record($id) SET hash = $hash, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":   userID,
		"hash": hash,
	}

	return r.db.Execute(ctx, query, vars)
}

// Withdraw soft-deletes a user and removes their favorites in a single
// transaction. The account record stays for audit and login rejection.
func (r *UserRepository) Withdraw(ctx context.Context, userID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE type::record($id) SET withdraw = true, updated_on = time::now()`,
		map[string]interface{}{"id": userID},
	)
	batch.Add(
		`DELETE favorite WHERE user = type::record($id)`,
		map[string]interface{}{"id": userID},
	)
	return batch.Execute(ctx, r.db)
}

func parseUser(result interface{}) (*model.User, error) {
	row, err := asRow(result)
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:        convertSurrealID(row["id"]),
		LoginID:   getString(row, "login_id"),
		Nickname:  getString(row, "nickname"),
		Hash:      getString(row, "hash"),
		Age:       getInt(row, "age"),
		Gender:    getString(row, "gender"),
		Withdraw:  getBool(row, "withdraw"),
		CreatedOn: getTime(row, "created_on"),
		UpdatedOn: getTime(row, "updated_on"),
	}, nil
}
