// Package config loads authform credentials files. The YAML layout mirrors
// the common deployment shape:
//
//	credentials:
//	  usernames:
//	    jdoe:
//	      name: Jane Doe
//	      password: $2b$12$...   # bcrypt hash
//	      email: jane@example.com
//	cookie:
//	  name: reauth_token
//	  key: some_signing_key
//	  expiry_days: 30
//	preauthorized:
//	  emails:
//	    - melsby@example.com
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/avolkov/authform"
)

type (
	// File is the parsed credentials file.
	File struct {
		Credentials   Credentials
		Cookie        Cookie
		Preauthorized Preauthorized
	}

	Credentials struct {
		Usernames map[string]User
	}

	// User is one stored account. Password holds the bcrypt hash, never
	// plaintext.
	User struct {
		Name     string
		Password string
		Email    string
	}

	Cookie struct {
		Name       string
		Key        string
		ExpiryDays int `mapstructure:"expiry_days"`
	}

	Preauthorized struct {
		Emails []string
	}
)

// Load reads and validates the credentials file at path.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cookie.expiry_days", 30)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("credentials file %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if len(f.Credentials.Usernames) == 0 {
		return errors.New("no users under credentials.usernames")
	}
	for username, u := range f.Credentials.Usernames {
		if u.Password == "" {
			return fmt.Errorf("user %q has no password hash", username)
		}
	}
	if f.Cookie.Name == "" {
		return errors.New("cookie.name required")
	}
	if f.Cookie.Key == "" {
		return errors.New("cookie.key required")
	}
	return nil
}

// Builder returns an authform Builder preloaded with the file's
// credentials, cookie settings, and preauthorized emails. Callers chain
// further With options before Build.
func (f *File) Builder() *authform.Builder {
	creds := make(map[string]authform.UserRecord, len(f.Credentials.Usernames))
	for username, u := range f.Credentials.Usernames {
		creds[username] = authform.UserRecord{
			Name:         u.Name,
			PasswordHash: u.Password,
			Email:        u.Email,
		}
	}

	b := authform.New().
		WithCredentials(creds).
		WithCookie(f.Cookie.Name, []byte(f.Cookie.Key), f.Cookie.ExpiryDays)
	if f.Preauthorized.Emails != nil {
		b = b.WithPreauthorized(f.Preauthorized.Emails)
	}
	return b
}
