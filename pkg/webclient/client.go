package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError carries the status and message of a non-2xx server response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client calls the storefront API on behalf of the mirror. Every privileged
// call attaches the stored bearer token; every successful profile-shaped
// response overwrites the cached user snapshot. Requests are never retried
// or deduplicated; overlapping saves resolve last-response-wins.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Mirror  *SessionMirror
}

func NewClient(baseURL string, storage Storage) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    http.DefaultClient,
		Mirror:  NewSessionMirror(storage),
	}
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate mirrors the server's partial-update contract: nil pointer
// fields are omitted from the payload and leave the stored value untouched.
type ProfileUpdate struct {
	Name               string         `json:"name"`
	Phone              *string        `json:"phone,omitempty"`
	AvatarURL          *string        `json:"avatarUrl,omitempty"`
	ProfilePreferences map[string]any `json:"profilePreferences,omitempty"`
}

// AddressInput is a full-replacement payload: all fields except Type are
// required by the server on both create and update.
type AddressInput struct {
	Type    string `json:"type,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (User, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", registerPayload{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return User{}, err
	}
	c.Mirror.setSession(out.Token, out.User)
	return out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginPayload{Email: email, Password: password}, &out)
	if err != nil {
		return User{}, err
	}
	c.Mirror.setSession(out.Token, out.User)
	return out.User, nil
}

// Logout drops the local session only; the server keeps no session to end.
func (c *Client) Logout() {
	c.Mirror.Clear()
}

func (c *Client) GetProfile(ctx context.Context) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/profile/profile", nil, &u); err != nil {
		return User{}, err
	}
	c.Mirror.setUser(u)
	return u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodPut, "/api/profile/profile", in, &u); err != nil {
		return User{}, err
	}
	c.Mirror.setUser(u)
	return u, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	payload := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/api/profile/profile/password", payload, nil)
}

func (c *Client) ListAddresses(ctx context.Context) ([]Address, error) {
	var addrs []Address
	if err := c.do(ctx, http.MethodGet, "/api/profile/addresses", nil, &addrs); err != nil {
		return nil, err
	}
	if u, ok := c.Mirror.User(); ok {
		u.Addresses = addrs
		c.Mirror.setUser(u)
	}
	return addrs, nil
}

func (c *Client) AddAddress(ctx context.Context, in AddressInput) (Address, error) {
	var addr Address
	if err := c.do(ctx, http.MethodPost, "/api/profile/addresses", in, &addr); err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id string, in AddressInput) (Address, error) {
	var addr Address
	if err := c.do(ctx, http.MethodPut, "/api/profile/addresses/"+id, in, &addr); err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/profile/addresses/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Mirror.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
