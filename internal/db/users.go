package db

import (
	"context"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

func (db *Database) CreateUser(ctx context.Context, email, name, picture, passwordHash string, isAdmin bool) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		`INSERT INTO users (id, email, name, picture, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, email, name, picture, is_admin, created_at`,
		newID(), email, name, picture, passwordHash, isAdmin,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		return nil, storeErr("create user", err)
	}
	return &user, nil
}

func (db *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, name, picture, password_hash, is_admin, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		return nil, storeErr("get user by email", err)
	}
	return &user, nil
}

func (db *Database) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, name, picture, is_admin, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	return &user, nil
}
