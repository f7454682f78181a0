package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resepku/backend/internal/model"
	"github.com/resepku/backend/internal/service"
	"github.com/resepku/backend/internal/types"
)

const testStorageRoot = "https://resepku-recipe-images.s3.amazonaws.com/"

// TestDB holds the test database and services
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *TestDB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}))

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// CreateTestUserAndToken creates a user and returns its id and a valid token
func CreateTestUserAndToken(t *testing.T, testDB *TestDB, name string) (uuid.UUID, string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := model.User{
		Name:         name,
		Email:        fmt.Sprintf("%s+%s@example.com", name, uuid.New().String()),
		PasswordHash: string(hashed),
	}
	require.NoError(t, testDB.DB.Create(&user).Error)

	token, err := testDB.AuthService.GenerateToken(&types.TokenClaims{UserID: user.ID, Name: user.Name})
	require.NoError(t, err)

	return user.ID, token
}

// mockUploader stores nothing and yields a fixed relative path
type mockUploader struct {
	path string
}

func (m *mockUploader) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return m.path, nil
}

func setupRecipeTestRouter(t *testing.T) (*gin.Engine, *TestDB) {
	gin.SetMode(gin.TestMode)
	testDB := SetupTestDB(t)

	router := gin.New()
	router.Use(gin.Recovery())

	recipeService := service.NewRecipeService(testDB.DB)
	uploader := &mockUploader{path: "recipe-images/mock-upload.png"}

	v1 := router.Group("/api/v1")
	NewAuthHandler(testDB.AuthService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, uploader, testDB.AuthService, nil, testStorageRoot).RegisterRoutes(v1)

	return router, testDB
}

// performJSON issues a request with an optional JSON body and bearer token
func performJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performMultipart issues a multipart request with form fields and an
// optional "image" file part
func performMultipart(t *testing.T, router *gin.Engine, method, path, token string, fields map[string][]string, withFile bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	if withFile {
		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-png"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
