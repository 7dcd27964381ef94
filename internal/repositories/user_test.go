package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)

	t.Run("Success", func(t *testing.T) {
		userID, err := repo.Save(context.Background(), "alice", "hashed_password", "alice@example.com")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, userID)

		var username string
		err = db.Get(&username, "SELECT username FROM users WHERE user_id = $1", userID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := repo.Save(context.Background(), "alice", "hashed_password", "alice2@example.com")
		assert.Error(t, err)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := repo.Save(context.Background(), "alice2", "hashed_password", "alice@example.com")
		assert.Error(t, err)
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := insertTestUser(t, db, "bob")

	repo := NewUserReadRepository(db)

	t.Run("ByUsername", func(t *testing.T) {
		username := "bob"
		user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "bob@example.com"
		user, err := repo.GetByUsernameOrEmail(context.Background(), nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("ByUsernameAndEmail", func(t *testing.T) {
		username := "bob"
		email := "bob@example.com"
		user, err := repo.GetByUsernameOrEmail(context.Background(), &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nobody"
		user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := insertTestUser(t, db, "carol")

	repo := NewUserReadRepository(db)

	t.Run("Found", func(t *testing.T) {
		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "carol", user.Username)
		assert.Equal(t, "carol@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := repo.GetByID(context.Background(), uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
