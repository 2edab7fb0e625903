package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/awtad/website/internal/email"
	"github.com/awtad/website/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	adminRepo     repository.AdminRepo
	notifier      *email.Notifier
	jwtSecret     string
	tokenDuration time.Duration
}

func NewAuthHandler(ar repository.AdminRepo, notifier *email.Notifier, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{adminRepo: ar, notifier: notifier, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	admin, err := h.adminRepo.GetAdminByEmail(r.Context(), req.Email)
	if err != nil || admin == nil {
		writeError(w, http.StatusUnauthorized, "credentials not found")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "credentials not found")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error signing token")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: tokenStr})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword runs behind the JWT middleware; the admin comes from the
// token claims, not the payload.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.CurrentPassword == "" || len(req.NewPassword) < 8 {
		writeError(w, http.StatusBadRequest, "new password must be at least 8 characters")
		return
	}

	ctx := r.Context()
	adminEmail, _ := ctx.Value(CtxAdminEmail).(string)
	admin, err := h.adminRepo.GetAdminByEmail(ctx, adminEmail)
	if err != nil || admin == nil {
		writeError(w, http.StatusUnauthorized, "credentials not found")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)) != nil {
		writeError(w, http.StatusUnauthorized, "credentials not found")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error hashing password")
		return
	}
	if err := h.adminRepo.UpdateAdminPassword(ctx, admin.ID, string(hash)); err != nil {
		writeError(w, http.StatusInternalServerError, "error updating password")
		return
	}

	h.notifier.Send(ctx, email.Options{
		To:       []string{admin.Email},
		Subject:  "Your password was changed",
		Template: "password-reset",
		Data:     map[string]any{"Email": admin.Email},
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
