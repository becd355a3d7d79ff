package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It owns every read and write of the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Token digests
// and password hashes are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.Profile,
		&user.Verified,
		&user.VerifyTokenHash,
		&user.ResetTokenHash,
		&user.ResetExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// CreateInvitationPlaceholder inserts an unverified account that carries the
// invitation sentinel instead of a password hash.
func (r *userRepository) CreateInvitationPlaceholder(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPlaceholderQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row for an existing email
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateInvitationPlaceholder").Msg("error inserting placeholder")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ClaimInvitationPlaceholder sets the password, profile and verification
// digest of an unclaimed placeholder with the same email.
func (r *userRepository) ClaimInvitationPlaceholder(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClaimPlaceholderQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	claimed, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.ClaimInvitationPlaceholder").Msg("error claiming placeholder")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return claimed, nil
}

// FindUserByEmail looks the user up by email, case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID looks the user up by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *userRepository) SetVerifyToken(ctx context.Context, userID int64, tokenHash string) error {
	query, args, err := buildSetVerifyTokenQuery(userID, tokenHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetVerifyToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

// ConsumeVerifyToken is the only place a user becomes verified through the
// mailed link. The database decides the winner of concurrent attempts.
func (r *userRepository) ConsumeVerifyToken(ctx context.Context, tokenHash string) error {
	query, args, err := buildConsumeVerifyTokenQuery(tokenHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ConsumeVerifyToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTokenNotMatched
	}
	return nil
}

func (r *userRepository) SetResetToken(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error {
	query, args, err := buildSetResetTokenQuery(userID, tokenHash, ttl)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetResetToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

func (r *userRepository) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) error {
	query, args, err := buildConsumeResetTokenQuery(tokenHash, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ConsumeResetToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTokenNotMatched
	}
	return nil
}

func (r *userRepository) MergeProfile(ctx context.Context, userID int64, patch models.Profile) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMergeProfileQuery(userID, patch)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.MergeProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *userRepository) LinkExternalAccount(ctx context.Context, userID int64, picture string) (models.User, error) {
	query, args, err := buildLinkExternalAccountQuery(userID, picture)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	linked, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.LinkExternalAccount").Msg("error linking external account")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return linked, nil
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	query, args, err := buildClearExpiredResetTokensQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		affected, execErr = r.exec(ctx, "*userRepository.ClearExpiredResetTokens", query, args)
		return execErr
	})
	return affected, err
}

func (r *userRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
