package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) error
	ListTopByXP(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, name, email, COALESCE(college, ''), COALESCE(stream, ''), streak, xp,
	enrolled_courses, mastery_map, COALESCE(password_hash, ''), theme, created_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, email, college, stream, password_hash)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.College, user.Stream, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), "FindByEmail")
}

func (r *pgUserRepository) scanUser(row *sql.Row, op string) (*model.User, error) {
	user := &model.User{}
	var enrolled, mastery []byte
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.College, &user.Stream,
		&user.Streak, &user.XP, &enrolled, &mastery, &user.PasswordHash,
		&user.Theme, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.%s: %w", op, err)
	}
	if err := json.Unmarshal(enrolled, &user.EnrolledCourses); err != nil {
		return nil, fmt.Errorf("pgUserRepository.%s: decode enrolled_courses: %w", op, err)
	}
	if err := json.Unmarshal(mastery, &user.MasteryMap); err != nil {
		return nil, fmt.Errorf("pgUserRepository.%s: decode mastery_map: %w", op, err)
	}
	if user.EnrolledCourses == nil {
		user.EnrolledCourses = []string{}
	}
	if user.MasteryMap == nil {
		user.MasteryMap = map[string]float64{}
	}
	return user, nil
}

// UpdateProfile applies only the fields present in the update; absent fields
// keep their stored value.
func (r *pgUserRepository) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) error {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("name", upd.Name)
	add("college", upd.College)
	add("stream", upd.Stream)
	add("theme", upd.Theme)
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("pgUserRepository.UpdateProfile: %w", err)
	}
	return nil
}

func (r *pgUserRepository) ListTopByXP(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	query := `SELECT id, name, xp, streak FROM users ORDER BY xp DESC, id LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListTopByXP: %w", err)
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.XP, &e.Streak); err != nil {
			return nil, fmt.Errorf("pgUserRepository.ListTopByXP: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListTopByXP: %w", err)
	}
	return entries, nil
}
