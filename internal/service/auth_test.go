package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jaribu/attendance-api/internal/domain"
)

func TestAuthService_CreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{
		Username: "admin",
		Email:    "admin@jaribu.org",
		Password: "correct horse battery",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	assert.NotEqual(t, "correct horse battery", created.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("correct horse battery")))
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	user := domain.User{Username: "admin", Email: "admin@jaribu.org", Password: "password123", Role: domain.RoleAdmin}

	_, err := svc.CreateUser(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), user)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.CreateUser(context.Background(), domain.User{
		Username: "staff1",
		Email:    "staff1@jaribu.org",
		Password: "password123",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "staff1", "password123")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "staff1", "not-it")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "password123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), domain.User{
		Username: "gone",
		Email:    "gone@jaribu.org",
		Password: string(hash),
		Role:     domain.RoleStaff,
		IsActive: false,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "gone", "password123")
	assert.ErrorIs(t, err, ErrUserInactive)
}
