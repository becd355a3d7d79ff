package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/jackc/pgerrcode"
)

type classRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClassRepository constructs a [ClassRepository] over the classes and
// class_enrollments tables.
func NewClassRepository(db *DB, logger *logger.Logger) ClassRepository {
	logger.Debug().Msg("creating class repository")
	return &classRepository{
		db:     db,
		logger: logger,
	}
}

func scanClass(row rowScanner, extra ...any) (models.Class, error) {
	var class models.Class
	dest := append([]any{
		&class.ClassID,
		&class.Code,
		&class.Name,
		&class.Section,
		&class.Subject,
		&class.Room,
		&class.OwnerID,
		&class.CreatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return class, err
}

func (r *classRepository) CreateClass(ctx context.Context, class models.Class) (models.Class, error) {
	log := logger.FromContext(ctx)

	insertClass, classArgs, err := buildInsertClassQuery(class)
	if err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*classRepository.CreateClass").Msg("error beginning transaction")
		return models.Class{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created, err := scanClass(tx.QueryRowContext(ctx, insertClass, classArgs...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Class{}, ErrClassCodeTaken
		}
		log.Err(err).Str("func", "*classRepository.CreateClass").Msg("error inserting class")
		return models.Class{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	insertEnrollment, enrollmentArgs, err := buildInsertEnrollmentQuery(models.Enrollment{
		UserID:  created.OwnerID,
		ClassID: created.ClassID,
		Role:    models.RoleTeacher,
	})
	if err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertEnrollment, enrollmentArgs...); err != nil {
		log.Err(err).Str("func", "*classRepository.CreateClass").Msg("error enrolling owner")
		return models.Class{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*classRepository.CreateClass").Msg("error committing transaction")
		return models.Class{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

func (r *classRepository) FindClassByID(ctx context.Context, classID int64) (models.Class, error) {
	query, args, err := buildSelectClassByIDQuery(classID)
	if err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.findOne(ctx, "*classRepository.FindClassByID", query, args)
}

func (r *classRepository) FindClassByCode(ctx context.Context, code string) (models.Class, error) {
	query, args, err := buildSelectClassByCodeQuery(code)
	if err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.findOne(ctx, "*classRepository.FindClassByCode", query, args)
}

func (r *classRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Class, error) {
	var found models.Class
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanClass(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Class{}, ErrClassNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error selecting class")
		return models.Class{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, nil
}

func (r *classRepository) ListClassesForUser(ctx context.Context, userID int64) ([]models.ClassMembership, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClassesForUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*classRepository.ListClassesForUser").Msg("error selecting classes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memberships := make([]models.ClassMembership, 0)
	for rows.Next() {
		var role string
		class, err := scanClass(rows, &role)
		if err != nil {
			log.Err(err).Str("func", "*classRepository.ListClassesForUser").Msg("error scanning class")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		memberships = append(memberships, models.ClassMembership{Class: class, Role: models.Role(role)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return memberships, nil
}

func (r *classRepository) Enroll(ctx context.Context, enrollment models.Enrollment) error {
	query, args, err := buildInsertEnrollmentQuery(enrollment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrClassNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*classRepository.Enroll").Msg("error inserting enrollment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *classRepository) GetRole(ctx context.Context, userID, classID int64) (models.Role, error) {
	query, args, err := buildSelectRoleQuery(userID, classID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEnrollmentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*classRepository.GetRole").Msg("error selecting role")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return models.Role(role), nil
}
