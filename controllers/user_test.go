package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/controllers"
	"storefront/repositories"
	"storefront/routes"
	"storefront/utils"
)

func TestMain(m *testing.M) {
	utils.JwtKey = []byte("test_jwt_secret")
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newRouter wires the full route table over the given repositories.
func newRouter(t *testing.T, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, assetsDir string) *mux.Router {
	t.Helper()

	productController := controllers.NewProductController(productRepo, assetsDir, "http://localhost:9000/assets")
	userController := controllers.NewUserController(userRepo, nil)
	categoryController := controllers.NewCategoryController(categoryRepo, productController)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, categoryController)
	return router
}

// setupRouter is newRouter over fresh in-memory repositories.
func setupRouter(t *testing.T) (*mux.Router, *repositories.MockUserRepository, *repositories.MockProductRepository) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()
	router := newRouter(t, userRepo, productRepo, repositories.NewMockCategoryRepository(), t.TempDir())
	return router, userRepo, productRepo
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerBody(email, mobile string) map[string]string {
	return map[string]string{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           email,
		"mobileNo":        mobile,
		"password":        "secret123",
		"confirmPassword": "secret123",
	}
}

func TestRegisterStatusCodes(t *testing.T) {
	router, _, _ := setupRouter(t)

	// first registration succeeds
	rec := doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody("ada@example.com", "0700000001"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// duplicate email → 402
	rec = doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody("ada@example.com", "0700000002"), nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	// duplicate mobile → 401
	rec = doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody("other@example.com", "0700000001"), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// password mismatch → 403
	body := registerBody("third@example.com", "0700000003")
	body["confirmPassword"] = "different"
	rec = doJSON(t, router, http.MethodPost, "/user/registerUser", body, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// missing fields → 400 from validation
	rec = doJSON(t, router, http.MethodPost, "/user/registerUser", map[string]string{"email": "x@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConcurrentRegistrationSameEmail(t *testing.T) {
	router, _, _ := setupRouter(t)

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := registerBody("race@example.com", fmt.Sprintf("07000001%02d", i))
			rec := doJSON(t, router, http.MethodPost, "/user/registerUser", body, nil)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, code := range codes {
		if code == http.StatusOK {
			successes++
		} else {
			assert.Equal(t, http.StatusPaymentRequired, code)
		}
	}
	assert.Equal(t, 1, successes, "exactly one registration may win the race")
}

func TestLogin(t *testing.T) {
	router, _, _ := setupRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody("ada@example.com", "0700000001"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// unknown email → 401
	rec = doJSON(t, router, http.MethodPost, "/user/loginUser",
		map[string]string{"email": "ghost@example.com", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong password → 403 and, critically, no token in the body
	rec = doJSON(t, router, http.MethodPost, "/user/loginUser",
		map[string]string{"email": "ada@example.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "token")

	// correct credentials → 200 with a verifiable token
	rec = doJSON(t, router, http.MethodPost, "/user/loginUser",
		map[string]string{"email": "ada@example.com", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := utils.ParseToken(body["token"])
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestProfile(t *testing.T) {
	router, userRepo, _ := setupRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody("ada@example.com", "0700000001"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user, err := userRepo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)

	// no header → 401
	rec = doJSON(t, router, http.MethodGet, "/user/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token → 401
	rec = doJSON(t, router, http.MethodGet, "/user/profile", nil,
		http.Header{"Authorization": []string{"Bearer not-a-token"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token for a deleted user → 404
	ghost, err := utils.GenerateJWT("65f000000000000000000000")
	require.NoError(t, err)
	rec = doJSON(t, router, http.MethodGet, "/user/profile", nil,
		http.Header{"Authorization": []string{"Bearer " + ghost}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// happy path returns the reduced projection without the password
	token, err := utils.GenerateJWT(user.ID.Hex())
	require.NoError(t, err)
	rec = doJSON(t, router, http.MethodGet, "/user/profile", nil,
		http.Header{"Authorization": []string{"Bearer " + token}})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User map[string]string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ada@example.com", resp.User["email"])
	assert.Equal(t, "Ada", resp.User["firstName"])
	assert.NotContains(t, resp.User, "password")
}

func TestUpdateProfile(t *testing.T) {
	router, userRepo, _ := setupRouter(t)
	for _, u := range []struct{ email, mobile string }{
		{"ada@example.com", "0700000001"},
		{"grace@example.com", "0700000002"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/user/registerUser", registerBody(u.email, u.mobile), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	ada, err := userRepo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	token, err := utils.GenerateJWT(ada.ID.Hex())
	require.NoError(t, err)
	auth := http.Header{"Authorization": []string{"Bearer " + token}}

	// taking another user's email → 400
	rec := doJSON(t, router, http.MethodPut, "/user/updateProfile",
		map[string]string{"email": "grace@example.com"}, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// partial update applies only the non-empty fields
	rec = doJSON(t, router, http.MethodPut, "/user/updateProfile",
		map[string]string{"firstName": "Augusta"}, auth)
	assert.Equal(t, http.StatusOK, rec.Code)

	updated, err := userRepo.GetByID(context.Background(), ada.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "ada@example.com", updated.Email)

	// no token → 401
	rec = doJSON(t, router, http.MethodPut, "/user/updateProfile",
		map[string]string{"firstName": "X"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
