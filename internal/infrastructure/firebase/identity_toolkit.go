package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gigmarket/internal/domain/entity"
)

// IdentityToolkit signs users in with email and password over the Firebase
// Auth REST API; the admin SDK cannot check passwords.
type IdentityToolkit struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewIdentityToolkit(baseURL, apiKey string, httpClient *http.Client) *IdentityToolkit {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IdentityToolkit{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// IdentityError carries the collaborator's own error code, e.g. INVALID_PASSWORD.
type IdentityError struct {
	Status  int
	Message string
}

func (e *IdentityError) Error() string {
	return e.Message
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (t *IdentityToolkit) SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", t.baseURL, t.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, &IdentityError{Status: resp.StatusCode, Message: apiErr.Error.Message}
		}
		return nil, &IdentityError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var out signInResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	expiresIn, _ := strconv.ParseInt(out.ExpiresIn, 10, 64)
	return &entity.AuthSession{
		UID:          out.LocalID,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
