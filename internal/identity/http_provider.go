package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPProvider talks to a GoTrue-compatible identity endpoint
// (POST {endpoint}/auth/v1/signup with the service key).
type HTTPProvider struct {
	endpoint   string
	serviceKey string
	client     *http.Client
}

func NewHTTPProvider(endpoint, serviceKey string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		endpoint:   strings.TrimRight(endpoint, "/"),
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: timeout},
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID   string `json:"id"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	Msg string `json:"msg"`
}

func (p *HTTPProvider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(signupRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	url := p.endpoint + "/auth/v1/signup"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.serviceKey)
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if res.StatusCode == http.StatusUnprocessableEntity || res.StatusCode == http.StatusConflict {
		return "", ErrEmailTaken
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("identity provider returned %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed signupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode identity response: %w", err)
	}

	// Some deployments wrap the user object, some return it flat.
	id := parsed.ID
	if id == "" {
		id = parsed.User.ID
	}
	if id == "" {
		return "", fmt.Errorf("identity provider returned no user id")
	}
	return id, nil
}
