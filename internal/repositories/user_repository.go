package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/pkg/metrics"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

const userColumns = "id, name, email, password_hash, email_verified, verification_token, token_expiry_date, phone_number, gender, account_status, row_created_on, row_updated_on"

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	metrics.MySQLOperationDuration.WithLabelValues("select", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		metrics.MySQLErrorsTotal.WithLabelValues("select", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	metrics.MySQLOperationDuration.WithLabelValues("select", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		metrics.MySQLErrorsTotal.WithLabelValues("select", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE verification_token = ?", token)
	metrics.MySQLOperationDuration.WithLabelValues("select", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		metrics.MySQLErrorsTotal.WithLabelValues("select", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, email_verified, verification_token, token_expiry_date, phone_number, gender, account_status, row_created_on, row_updated_on)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.EmailVerified,
		user.VerificationToken, user.TokenExpiryDate, user.PhoneNumber, user.Gender, user.AccountStatus,
	)
	metrics.MySQLOperationDuration.WithLabelValues("insert", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.NewEmailAlreadyRegisteredError()
		}
		metrics.MySQLErrorsTotal.WithLabelValues("insert", "users").Inc()
		return err
	}
	return nil
}

func (r *userRepository) MarkEmailVerified(ctx context.Context, id string) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET email_verified = TRUE, verification_token = NULL, token_expiry_date = NULL, row_updated_on = NOW() WHERE id = ?",
		id,
	)
	metrics.MySQLOperationDuration.WithLabelValues("update", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("update", "users").Inc()
		return err
	}
	return nil
}

func (r *userRepository) UpdateVerificationToken(ctx context.Context, email, token string, expiry time.Time) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET verification_token = ?, token_expiry_date = ?, row_updated_on = NOW() WHERE email = ?",
		token, expiry, email,
	)
	metrics.MySQLOperationDuration.WithLabelValues("update", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("update", "users").Inc()
		return err
	}
	return nil
}
