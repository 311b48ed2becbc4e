package webclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubAPI is a minimal fake of the account endpoints: a fixed login and an
// in-memory profile.
func stubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	user := User{ID: "u1", Name: "Ada", Email: "ada@example.com", Phone: "+15550100"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok-abc", "user": user})
	})
	mux.HandleFunc("GET /api/profile/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "No token, authorization denied"})
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("PUT /api/profile/profile", func(w http.ResponseWriter, r *http.Request) {
		var in ProfileUpdate
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Name is required"})
			return
		}
		user.Name = in.Name
		if in.Phone != nil {
			user.Phone = *in.Phone
		}
		_ = json.NewEncoder(w).Encode(user)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestLoginStoresSession(t *testing.T) {
	ts := stubAPI(t)
	client := NewClient(ts.URL, NewMemoryStorage())

	u, err := client.Login(context.Background(), "ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "Ada" {
		t.Fatalf("login user = %v", u)
	}
	if client.Mirror.Token() != "tok-abc" {
		t.Fatalf("token = %q, want tok-abc", client.Mirror.Token())
	}
	cached, ok := client.Mirror.User()
	if !ok || cached.Email != "ada@example.com" {
		t.Fatalf("cached user = %v ok=%v", cached, ok)
	}
	if !client.Mirror.LoggedIn() {
		t.Fatal("LoggedIn = false after login")
	}
}

func TestLoginFailureLeavesMirrorEmpty(t *testing.T) {
	ts := stubAPI(t)
	client := NewClient(ts.URL, NewMemoryStorage())

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Invalid credentials" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
	if client.Mirror.LoggedIn() {
		t.Fatal("mirror holds a session after failed login")
	}
}

func TestBearerAttachedToPrivilegedCalls(t *testing.T) {
	ts := stubAPI(t)
	client := NewClient(ts.URL, NewMemoryStorage())

	// No token yet, so the server rejects the call.
	if _, err := client.GetProfile(context.Background()); err == nil {
		t.Fatal("profile fetch without token should fail")
	}

	if _, err := client.Login(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := client.GetProfile(context.Background()); err != nil {
		t.Fatalf("profile fetch with token: %v", err)
	}
}

func TestFailedUpdateKeepsSnapshot(t *testing.T) {
	ts := stubAPI(t)
	client := NewClient(ts.URL, NewMemoryStorage())
	if _, err := client.Login(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := client.UpdateProfile(context.Background(), ProfileUpdate{Name: ""})
	if err == nil {
		t.Fatal("blank-name update should fail")
	}
	cached, _ := client.Mirror.User()
	if cached.Name != "Ada" {
		t.Fatalf("snapshot changed after failed update: %q", cached.Name)
	}

	phone := "+15550199"
	if _, err := client.UpdateProfile(context.Background(), ProfileUpdate{Name: "Ada L.", Phone: &phone}); err != nil {
		t.Fatalf("update: %v", err)
	}
	cached, _ = client.Mirror.User()
	if cached.Name != "Ada L." || cached.Phone != phone {
		t.Fatalf("snapshot after update = %+v", cached)
	}
}

func TestLogoutClearsLocalStateOnly(t *testing.T) {
	ts := stubAPI(t)
	store := NewMemoryStorage()
	client := NewClient(ts.URL, store)
	if _, err := client.Login(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	cart := NewCart(store)
	cart.Add("Green Tea", 4.50)

	client.Logout()
	if client.Mirror.LoggedIn() {
		t.Fatal("still logged in after Logout")
	}
	if _, ok := client.Mirror.User(); ok {
		t.Fatal("user snapshot survives Logout")
	}
	// The cart is not part of the session and survives logout.
	if NewCart(store).TotalItems() != 1 {
		t.Fatal("cart cleared by Logout")
	}
}
