package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rentezi-backend/internal/models"
)

type LoginLogRepository struct {
	DB *pgxpool.Pool
}

func NewLoginLogRepository(db *pgxpool.Pool) *LoginLogRepository {
	return &LoginLogRepository{DB: db}
}

func (r *LoginLogRepository) Create(ctx context.Context, userID int, ipAddress, userAgent string) (*models.LoginLog, error) {
	l := &models.LoginLog{
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO login_logs(user_id, ip_address, user_agent)
         VALUES($1, $2, $3)
         RETURNING id, login_at`,
		userID, ipAddress, userAgent,
	).Scan(&l.ID, &l.LoginAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListRecent returns the most recent login logs, newest first
func (r *LoginLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.LoginLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT l.id, l.user_id, COALESCE(u.email, ''), l.ip_address, l.user_agent, l.login_at
         FROM login_logs l
         LEFT JOIN users u ON u.id = l.user_id
         ORDER BY l.login_at DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.LoginLog
	for rows.Next() {
		var l models.LoginLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserEmail, &l.IPAddress, &l.UserAgent, &l.LoginAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
