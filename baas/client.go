package baas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/usmanrimi/abb-gallery-ease-sub001/config"
)

// Client talks to the hosted auth provider (Supabase GoTrue REST API).
// The anon key backs the storefront flows; the service-role key is only
// attached to admin calls and never leaves the server.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	http       *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.BaasURL,
		anonKey:    cfg.BaasAnonKey,
		serviceKey: cfg.ServiceRoleKey,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthUser is the provider's view of an identity.
type AuthUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// FullName pulls the display name out of the metadata blob, if present.
func (u *AuthUser) FullName() string {
	if u.UserMetadata == nil {
		return ""
	}
	name, _ := u.UserMetadata["full_name"].(string)
	return name
}

// TokenResponse is the password-grant response.
type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

// SignUp creates a new account with the anon key. Provider errors (such as
// a duplicate email) come back verbatim as *Error.
func (c *Client) SignUp(email, password, fullName string) (*AuthUser, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]any{"full_name": fullName},
	}
	var user AuthUser
	if err := c.post("/auth/v1/signup", c.anonKey, "", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignInWithPassword runs the password grant and returns the provider session.
func (c *Client) SignInWithPassword(email, password string) (*TokenResponse, error) {
	payload := map[string]any{"email": email, "password": password}
	var token TokenResponse
	if err := c.post("/auth/v1/token?grant_type=password", c.anonKey, "", payload, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// SignOut revokes the provider session behind the given access token.
func (c *Client) SignOut(accessToken string) error {
	return c.post("/auth/v1/logout", c.anonKey, accessToken, map[string]any{}, nil)
}

// AdminCreateUser creates a confirmed identity through the admin API using
// the service-role key. Callers must hold the elevated credential.
func (c *Client) AdminCreateUser(email, password, fullName string) (*AuthUser, error) {
	payload := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]any{"full_name": fullName},
	}
	var user AuthUser
	if err := c.post("/auth/v1/admin/users", c.serviceKey, c.serviceKey, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) post(path, apiKey, bearer string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
