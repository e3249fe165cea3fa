package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	userRepo "autoconecta/database/repository/user"
	"autoconecta/models"
	"autoconecta/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// FirebaseGateway is the production Gateway. Sign-in goes through the
// provider's REST endpoint (the admin SDK has no password sign-in);
// everything else uses the admin SDK.
type FirebaseGateway struct {
	Auth      *auth.Client
	Accounts  userRepo.AccountRepository
	Sessions  *redis.Client
	WebAPIKey string
	HTTP      *http.Client
}

func (g *FirebaseGateway) httpClient() *http.Client {
	if g.HTTP != nil {
		return g.HTTP
	}
	return http.DefaultClient
}

// Register creates the provider account, sets the display name to
// "nombres apellidos" and writes the profile into the "usuarios"
// collection keyed by the new uid.
func (g *FirebaseGateway) Register(ctx context.Context, form *models.RegistrationForm) (*models.Account, error) {
	params := (&auth.UserToCreate{}).
		Email(form.CorreoElectronico).
		Password(form.Contrasena).
		DisplayName(strings.TrimSpace(form.Nombres + " " + form.Apellidos))

	userRecord, err := g.Auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, ErrDuplicateAccount
		}
		utils.GetLogger().Error("Register: provider account creation failed", zap.Error(err))
		return nil, &ProviderError{Message: err.Error()}
	}

	account := &models.Account{
		UID:               userRecord.UID,
		Nombres:           form.Nombres,
		Apellidos:         form.Apellidos,
		CarnetDeIdentidad: form.CarnetDeIdentidad,
		NumeroDeTelefono:  form.NumeroDeTelefono,
		CorreoElectronico: form.CorreoElectronico,
		Role:              models.RoleUsuario,
		CreadoEn:          time.Now(),
	}

	if err := g.Accounts.Create(account); err != nil {
		utils.GetLogger().Error("Register: failed to persist profile", zap.String("uid", account.UID), zap.Error(err))
		return nil, fmt.Errorf("failed to persist profile for %s: %w", account.UID, err)
	}

	return account, nil
}

// signInRequest / signInResponse mirror the provider's REST contract.
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
}

type signInErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges email+password for a provider token and caches the
// resulting session keyed by the token hash.
func (g *FirebaseGateway) SignIn(ctx context.Context, email, password string) (*utils.AuthSession, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, g.WebAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient().Do(req)
	if err != nil {
		utils.GetLogger().Error("SignIn: provider unreachable", zap.Error(err))
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp signInErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			switch {
			case strings.HasPrefix(errResp.Error.Message, "EMAIL_NOT_FOUND"),
				strings.HasPrefix(errResp.Error.Message, "INVALID_PASSWORD"),
				strings.HasPrefix(errResp.Error.Message, "INVALID_LOGIN_CREDENTIALS"):
				return nil, ErrInvalidCredentials
			}
			if errResp.Error.Message != "" {
				return nil, &ProviderError{Message: errResp.Error.Message}
			}
		}
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var ok signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	ttl := time.Hour
	if secs, err := strconv.Atoi(ok.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}

	now := time.Now()
	session := utils.AuthSession{
		UID:          ok.LocalID,
		Email:        ok.Email,
		DisplayName:  ok.DisplayName,
		IDToken:      ok.IDToken,
		RefreshToken: ok.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}

	if err := utils.SaveAuthSession(g.Sessions, utils.HashToken(ok.IDToken), session, ttl); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}

	return &session, nil
}

// Profile reads the stored profile from the "usuarios" collection.
func (g *FirebaseGateway) Profile(uid string) (*models.Account, error) {
	return g.Accounts.GetByUID(uid)
}

// CurrentSession resolves a bearer token against the session cache.
// A missing or expired entry yields nil; the provider is never called.
func (g *FirebaseGateway) CurrentSession(token string) *utils.AuthSession {
	if token == "" {
		return nil
	}
	session, err := utils.GetAuthSession(g.Sessions, utils.HashToken(token))
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.GetLogger().Warn("CurrentSession: cache read failed", zap.Error(err))
		return nil
	}
	return session
}

// SignOut drops the cached session for the token.
func (g *FirebaseGateway) SignOut(token string) error {
	return utils.DeleteAuthSession(g.Sessions, utils.HashToken(token))
}
