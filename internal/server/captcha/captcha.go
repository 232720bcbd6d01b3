// Package captcha verifies reCAPTCHA response tokens with Google's
// siteverify endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SiteVerifyURL is Google's verification endpoint.
const SiteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ErrFailed means the token was missing or rejected.
var ErrFailed = errors.New("captcha verification failed")

// Verifier checks a captcha token submitted with a form.
//
// Contract:
//   - Verify returns nil when the token is accepted, ErrFailed when it is
//     missing or rejected, and another error when the check could not run.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Recaptcha talks to the siteverify endpoint. With an empty secret every
// token is accepted, which is how development servers run.
type Recaptcha struct {
	secret   string
	endpoint string
	client   *http.Client
}

// NewRecaptcha returns a verifier for secret. A nil client gets a default
// one with a ten second timeout.
func NewRecaptcha(secret string, client *http.Client) *Recaptcha {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Recaptcha{secret: secret, endpoint: SiteVerifyURL, client: client}
}

// Enabled reports whether tokens are actually checked.
func (r *Recaptcha) Enabled() bool { return r.secret != "" }

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	if !r.Enabled() {
		return nil
	}
	if strings.TrimSpace(token) == "" {
		return ErrFailed
	}

	form := url.Values{"secret": {r.secret}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify: %s", resp.Status)
	}

	var out siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("siteverify: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("%w: %s", ErrFailed, strings.Join(out.ErrorCodes, ","))
	}
	return nil
}
