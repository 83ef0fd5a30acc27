// Package googleauth loads OAuth credentials and a previously issued
// token from the data directory and builds an authenticated HTTP client.
// Obtaining the token in the first place (the browser consent flow) is a
// separate setup step, not this program's job.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	CredentialsFile = "google_credentials.json"
	TokenFile       = "google_token.json"
)

type credentialsFile struct {
	Installed struct {
		ClientID     string   `json:"client_id"`
		ClientSecret string   `json:"client_secret"`
		RedirectURIs []string `json:"redirect_uris"`
	} `json:"installed"`
}

// tokenFile tolerates both the Go oauth2 shape ("expiry", RFC 3339) and
// the googleapis Node shape ("expiry_date", unix milliseconds), since
// the token may have been produced by either tooling.
type tokenFile struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	RefreshToken string     `json:"refresh_token"`
	Expiry       *time.Time `json:"expiry,omitempty"`
	ExpiryDateMS int64      `json:"expiry_date,omitempty"`
}

// Client returns an *http.Client that attaches and auto-refreshes the
// stored OAuth token.
func Client(ctx context.Context, dataDir string) (*http.Client, error) {
	conf, err := loadConfig(filepath.Join(dataDir, CredentialsFile))
	if err != nil {
		return nil, err
	}
	token, err := loadToken(filepath.Join(dataDir, TokenFile))
	if err != nil {
		return nil, err
	}
	return conf.Client(ctx, token), nil
}

func loadConfig(path string) (*oauth2.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oauth credentials not found: %w", err)
	}
	var creds credentialsFile
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("invalid oauth credentials file: %w", err)
	}
	if creds.Installed.ClientID == "" || creds.Installed.ClientSecret == "" {
		return nil, fmt.Errorf("oauth credentials file is missing client id/secret")
	}

	redirect := "http://localhost:3000"
	if len(creds.Installed.RedirectURIs) > 0 {
		redirect = creds.Installed.RedirectURIs[0]
	}
	return &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		RedirectURL:  redirect,
		Endpoint:     google.Endpoint,
	}, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oauth token not found, run the oauth setup first: %w", err)
	}
	var tf tokenFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("invalid oauth token file: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  tf.AccessToken,
		TokenType:    tf.TokenType,
		RefreshToken: tf.RefreshToken,
	}
	switch {
	case tf.Expiry != nil:
		token.Expiry = *tf.Expiry
	case tf.ExpiryDateMS > 0:
		token.Expiry = time.UnixMilli(tf.ExpiryDateMS)
	}
	return token, nil
}
