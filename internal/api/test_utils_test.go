package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/testhelpers"
)

// testEnv bundles the router and everything a handler test needs to seed
// fixtures and mint tokens.
type testEnv struct {
	db   *gorm.DB
	auth *service.AuthService
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLite(t)
	authService := service.NewAuthService(db, nil, nil, "test-secret")
	articleService := service.NewArticleService(db)
	commentService := service.NewCommentService(db)
	ingredientService := service.NewIngredientService(db)
	recipeService := service.NewRecipeService(db)
	engagementService := service.NewEngagementService(db)
	fridgeService := service.NewFridgeService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewArticleHandler(articleService, commentService, recipeService, engagementService, authService).RegisterRoutes(v1)
	NewCategoryHandler(db, articleService).RegisterRoutes(v1)
	NewCommentHandler(commentService, authService).RegisterRoutes(v1)
	NewRecipeIngredientHandler(recipeService, authService).RegisterRoutes(v1)
	NewIngredientHandler(ingredientService, authService).RegisterRoutes(v1)
	NewEngagementHandler(engagementService, articleService, authService, nil).RegisterRoutes(v1)
	NewFridgeHandler(fridgeService, authService).RegisterRoutes(v1)

	return router, &testEnv{db: db, auth: authService}
}

// createUserAndToken seeds a user and returns a signed token for them.
func (env *testEnv) createUserAndToken(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
	}
	if err := env.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	token, err := env.auth.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return &user, token
}

func (env *testEnv) createArticle(t *testing.T, user *models.User, title string) *models.Article {
	t.Helper()
	article := models.Article{
		Title:   title,
		Content: "content for " + title,
		Recipe:  "recipe for " + title,
		UserID:  user.ID,
	}
	if err := env.db.Create(&article).Error; err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return &article
}

// doJSON performs a JSON request against the router and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
