// Package classifier holds the HTTP clients for the two services a
// prediction depends on: the model that labels a feature vector and the
// profile lookup that turns a username into public profile metrics.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/instaguard/instaguard/internal/server/models"
)

// ErrProfileNotFound means the lookup service does not know the username.
var ErrProfileNotFound = errors.New("profile not found")

// Model labels feature vectors: 1 is fake, 0 is real.
//
// Contract:
//   - Classify returns the label and, when the model provides one, the
//     probability of the fake class.
type Model interface {
	Classify(ctx context.Context, fv models.FeatureVector) (*models.Classification, error)
}

// ProfileLookup fetches public profile metrics.
//
// Contract:
//   - Lookup returns ErrProfileNotFound for unknown usernames.
type ProfileLookup interface {
	Lookup(ctx context.Context, username string) (*models.InstagramProfile, error)
}

// HTTPModel posts feature vectors to {baseURL}/predict.
type HTTPModel struct {
	baseURL string
	client  *http.Client
}

func NewHTTPModel(baseURL string, client *http.Client) *HTTPModel {
	return &HTTPModel{baseURL: strings.TrimRight(baseURL, "/"), client: orDefault(client)}
}

func (m *HTTPModel) Classify(ctx context.Context, fv models.FeatureVector) (*models.Classification, error) {
	body, err := json.Marshal(fv)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out models.Classification
	if err := doJSON(m.client, req, &out, nil); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if out.Label != 0 && out.Label != 1 {
		return nil, fmt.Errorf("classify: unexpected label %d", out.Label)
	}
	return &out, nil
}

// HTTPProfileLookup reads {baseURL}/profiles/{username}.
type HTTPProfileLookup struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProfileLookup(baseURL string, client *http.Client) *HTTPProfileLookup {
	return &HTTPProfileLookup{baseURL: strings.TrimRight(baseURL, "/"), client: orDefault(client)}
}

func (p *HTTPProfileLookup) Lookup(ctx context.Context, username string) (*models.InstagramProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/profiles/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	var out models.InstagramProfile
	if err := doJSON(p.client, req, &out, ErrProfileNotFound); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", username, err)
	}
	if out.Username == "" {
		out.Username = username
	}
	return &out, nil
}

// doJSON decodes a 200 answer into out. A 404 becomes notFound when it is
// set.
func doJSON(client *http.Client, req *http.Request, out any, notFound error) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case resp.StatusCode != http.StatusOK:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func orDefault(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: 30 * time.Second}
}
