package integration

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resepku/backend/internal/database"
	"github.com/resepku/backend/internal/model"
	"github.com/resepku/backend/internal/service"
	"github.com/resepku/backend/internal/types"
)

// setupPostgres starts a disposable postgres container and returns a migrated
// database handle.
func setupPostgres(t *testing.T) *gorm.DB {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postpass",
				"POSTGRES_DB":       "resepku_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start container")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postpass dbname=resepku_test sslmode=disable",
		host, mappedPort.Port())

	var db *gorm.DB
	// The port can be up before postgres finishes its startup cycle
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to connect to database")

	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestRecipeLifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	recipes := service.NewRecipeService(db)

	_, alice, err := auth.Register("alice", "alice@example.com", "testpassword123")
	require.NoError(t, err)
	_, bob, err := auth.Register("bob", "bob@example.com", "testpassword123")
	require.NoError(t, err)

	created, err := recipes.CreateRecipe(ctx, alice.ID, &types.CreateRecipeInput{
		Title:       "Nasi Goreng",
		Description: "Fried rice with sweet soy sauce",
		Category:    model.CategoryFood,
		Ingredients: []string{"rice", "egg", "kecap manis"},
		Steps:       []string{"fry the rice", "add the egg"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, created.OwnerID)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "alice", created.Owner.Name)

	// The jsonb columns round-trip through postgres intact
	fetched, err := recipes.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"rice", "egg", "kecap manis"}, []string(fetched.Ingredients))

	// Ownership is enforced against the real store
	title := "hijacked"
	_, err = recipes.UpdateRecipe(ctx, created.ID, bob.ID, &types.UpdateRecipeInput{Title: &title}, "")
	assert.ErrorIs(t, err, service.ErrForbidden)

	title = "Nasi Goreng Spesial"
	calories := 500.0
	updated, err := recipes.UpdateRecipe(ctx, created.ID, alice.ID, &types.UpdateRecipeInput{
		Title:    &title,
		Calories: &calories,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "Nasi Goreng Spesial", updated.Title)
	assert.Equal(t, "Fried rice with sweet soy sauce", updated.Description)
	assert.Equal(t, 500.0, updated.Nutrition.Calories)

	listed, err := recipes.ListRecipes(ctx, service.RecipeFilter{Keyword: "nasi", Category: model.CategoryFood})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	require.NoError(t, recipes.DeleteRecipe(ctx, created.ID, alice.ID))
	_, err = recipes.GetRecipe(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestLoginAgainstPostgres(t *testing.T) {
	db := setupPostgres(t)

	auth := service.NewAuthService(db, "test-secret")
	_, _, err := auth.Register("alice", "alice@example.com", "testpassword123")
	require.NoError(t, err)

	token, user, err := auth.Login("alice@example.com", "testpassword123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = auth.Login("alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Register("alice2", "alice@example.com", "testpassword123")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}
