package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/services"
	"github.com/instaguard/instaguard/internal/common"
)

// Login prompts for credentials and, on success, switches to the dashboard
// matching the returned role.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	captcha, err := a.captcha()
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, models.LoginRequest{
		Email:    strings.ToLower(email),
		Password: string(password),
		Captcha:  captcha,
	})
	if err != nil {
		return err
	}

	a.enter(res)
	return nil
}

// GoogleLogin takes an ID token obtained from Google Sign-In for the
// configured OAuth client.
func (a *App) GoogleLogin(ctx context.Context, _ []string) error {
	label := "Paste the Google ID token"
	if a.config.GoogleClientID != "" {
		label += " issued for client " + a.config.GoogleClientID
	}
	idToken, err := a.prompt(label)
	if err != nil {
		return err
	}

	res, err := a.auth.LoginWithGoogle(ctx, models.GoogleSignInRequest{IDToken: idToken, Captcha: a.config.CaptchaToken})
	if err != nil {
		return err
	}

	a.enter(res)
	return nil
}

func (a *App) enter(res *services.LoginResult) {
	v := viewFor(res.Route)
	a.setView(v)

	if res.Message != "" {
		a.println(res.Message)
	}
	a.printf("Switched to the %s dashboard (type 'help' for commands)\n", v)
}

func (a *App) Register(ctx context.Context, _ []string) error {
	var req models.SignupRequest
	var err error

	if req.FullName, err = a.prompt("Full name"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	if req.Mobile, err = a.prompt("Mobile"); err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	req.Password, req.ConfirmPassword = string(password), string(confirm)

	if req.Captcha, err = a.captcha(); err != nil {
		return err
	}

	msg, err := a.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setView(viewAnonymous)
	a.println("Logged out.")
	return nil
}

// Check classifies a hand-entered metric set. It works without a session.
func (a *App) Check(ctx context.Context, _ []string) error {
	var f models.FeatureVector

	ints := []struct {
		label string
		dst   *int
	}{
		{"Has profile picture (1/0)", &f.ProfilePic},
		{"Full name word count", &f.FullnameWords},
		{"Full name equals username (1/0)", &f.NameMatchesUsername},
		{"Bio length", &f.BioLength},
		{"Has external URL (1/0)", &f.HasExternalURL},
		{"Private account (1/0)", &f.IsPrivate},
		{"Posts", &f.PostsCount},
		{"Followers", &f.FollowersCount},
		{"Following", &f.FollowingCount},
	}
	floats := []struct {
		label string
		dst   *float64
	}{
		{"Digits/length ratio of the username", &f.UsernameLengthRatio},
		{"Digits/length ratio of the full name", &f.FullnameLengthRatio},
	}

	for _, q := range floats {
		s, err := a.prompt(q.label)
		if err != nil {
			return err
		}
		if *q.dst, err = strconv.ParseFloat(s, 64); err != nil {
			return invalidNumber()
		}
	}
	for _, q := range ints {
		s, err := a.prompt(q.label)
		if err != nil {
			return err
		}
		if *q.dst, err = strconv.Atoi(s); err != nil {
			return invalidNumber()
		}
	}

	captcha, err := a.captcha()
	if err != nil {
		return err
	}

	res, err := a.predictions.ByFeatures(ctx, models.FeatureCheckRequest{FeatureVector: f, Captcha: captcha})
	if err != nil {
		return err
	}

	a.printf("Prediction: %s\nProbability: %.2f%%\n", res.Label(), res.Probability*100)
	return nil
}

func (a *App) Contact(ctx context.Context, _ []string) error {
	var req models.ContactRequest
	var err error

	if req.Name, err = a.prompt("Your name"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Your email"); err != nil {
		return err
	}
	if req.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	msg, err := a.feedback.Contact(ctx, req)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}
