package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

// UserController handles registration, login, and profile requests.
type UserController struct {
	Repo         repositories.UserRepository
	EmailService *utils.EmailService
	validate     *validator.Validate
}

// NewUserController creates a new UserController. EmailService may be
// nil; registration then skips the welcome email.
func NewUserController(repo repositories.UserRepository, emailService *utils.EmailService) *UserController {
	return &UserController{
		Repo:         repo,
		EmailService: emailService,
		validate:     validator.New(),
	}
}

type registerRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	MobileNo        string `json:"mobileNo" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Register handles user registration.
//
// The mobile client distinguishes failures by status code: 402 for a
// taken email, 401 for a taken mobile number, 403 for a password
// mismatch. The codes are non-standard but part of the shipped client
// contract, so they stay. The duplicate checks run in that order and
// the unique indexes catch whatever slips through concurrently.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := uc.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := uc.Repo.GetByEmail(ctx, req.Email); err == nil {
		writeMessage(w, http.StatusPaymentRequired, "Email Already in use by another User")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Error checking email uniqueness: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if _, err := uc.Repo.GetByMobile(ctx, req.MobileNo); err == nil {
		writeMessage(w, http.StatusUnauthorized, "Mobile Already in use by another User")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Error checking mobile uniqueness: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if req.Password != req.ConfirmPassword {
		writeMessage(w, http.StatusForbidden, "Password does not match")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		MobileNo:  req.MobileNo,
		Password:  string(hashed),
	}
	switch err := uc.Repo.Create(ctx, &user); {
	case errors.Is(err, repositories.ErrDuplicateEmail):
		writeMessage(w, http.StatusPaymentRequired, "Email Already in use by another User")
		return
	case errors.Is(err, repositories.ErrDuplicateMobile):
		writeMessage(w, http.StatusUnauthorized, "Mobile Already in use by another User")
		return
	case err != nil:
		log.Printf("Error creating user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if uc.EmailService != nil {
		if err := uc.EmailService.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}

	writeMessage(w, http.StatusOK, "Registration created successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user authentication. A wrong password short-circuits
// with 403 and no token; the success path issues a signed session
// token carrying the user id.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := uc.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		writeMessage(w, http.StatusUnauthorized, "Enter a valid email")
		return
	}
	if err != nil {
		log.Printf("Error fetching user for login: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeMessage(w, http.StatusForbidden, "Enter a valid password")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetProfile retrieves the authenticated user's profile, reduced to
// the fields the client renders.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No authorization token provided")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching profile: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Profile fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User profile fetched successfully",
		"user":    user.Profile(),
	})
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	MobileNo  string `json:"mobileNo"`
}

// UpdateProfile applies the non-empty fields of the request to the
// authenticated user, re-checking email and mobile uniqueness against
// other users.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No authorization token provided")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := uc.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Repo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching user for update: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.MobileNo != "" {
		user.MobileNo = req.MobileNo
	}

	if inUse, err := uc.Repo.EmailInUse(ctx, user.Email, claims.UserID); err != nil {
		log.Printf("Error checking email uniqueness: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Profile update failed")
		return
	} else if inUse {
		writeMessage(w, http.StatusBadRequest, "Email already in use by another user")
		return
	}

	if inUse, err := uc.Repo.MobileInUse(ctx, user.MobileNo, claims.UserID); err != nil {
		log.Printf("Error checking mobile uniqueness: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Profile update failed")
		return
	} else if inUse {
		writeMessage(w, http.StatusBadRequest, "Mobile number already in use by another user")
		return
	}

	switch err := uc.Repo.Update(ctx, user); {
	case errors.Is(err, repositories.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "Email already in use by another user")
		return
	case errors.Is(err, repositories.ErrDuplicateMobile):
		writeMessage(w, http.StatusBadRequest, "Mobile number already in use by another user")
		return
	case errors.Is(err, repositories.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		log.Printf("Error updating profile: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	writeMessage(w, http.StatusOK, "Profile updated successfully")
}
