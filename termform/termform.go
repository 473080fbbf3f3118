// Package termform adapts authform to terminal hosts. A Prompter reads
// widget forms interactively, hiding password input when stdin is a
// terminal, and FileJar persists the reauthentication cookie in a file so
// silent re-login works across process restarts.
package termform

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/avolkov/authform"
)

// readPassword and isTerminal are test seams for the x/term calls.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// Prompter reads widget forms from an input stream, echoing prompts to an
// output stream. Password fields are read without echo when the input is a
// real terminal; otherwise they fall back to plain line reads so piped
// input and tests still work.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// stdinFd is the descriptor probed for terminal-ness. Defaults to
	// stdin's.
	stdinFd int
}

// NewPrompter returns a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		stdinFd: int(os.Stdin.Fd()),
	}
}

func (p *Prompter) line(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) secret(prompt string) (string, error) {
	if !isTerminal(p.stdinFd) {
		return p.line(prompt)
	}
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(p.stdinFd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// LoginForm prompts for the login widget's fields.
func (p *Prompter) LoginForm() (authform.LoginForm, error) {
	username, err := p.line("Username")
	if err != nil {
		return authform.LoginForm{}, err
	}
	password, err := p.secret("Password")
	if err != nil {
		return authform.LoginForm{}, err
	}
	return authform.LoginForm{
		Username:  username,
		Password:  password,
		Submitted: true,
	}, nil
}

// RegisterForm prompts for the registration widget's fields.
func (p *Prompter) RegisterForm() (authform.RegisterForm, error) {
	var f authform.RegisterForm
	var err error

	if f.Name, err = p.line("Name"); err != nil {
		return authform.RegisterForm{}, err
	}
	if f.Username, err = p.line("Username"); err != nil {
		return authform.RegisterForm{}, err
	}
	if f.Email, err = p.line("Email"); err != nil {
		return authform.RegisterForm{}, err
	}
	if f.Password, err = p.secret("Password"); err != nil {
		return authform.RegisterForm{}, err
	}
	if f.PasswordRepeat, err = p.secret("Repeat password"); err != nil {
		return authform.RegisterForm{}, err
	}
	return f, nil
}

// ResetPasswordForm prompts for the password-reset widget's fields.
func (p *Prompter) ResetPasswordForm(username string) (authform.ResetPasswordForm, error) {
	var f authform.ResetPasswordForm
	var err error

	f.Username = username
	if f.CurrentPassword, err = p.secret("Current password"); err != nil {
		return authform.ResetPasswordForm{}, err
	}
	if f.NewPassword, err = p.secret("New password"); err != nil {
		return authform.ResetPasswordForm{}, err
	}
	if f.NewPasswordRepeat, err = p.secret("Repeat new password"); err != nil {
		return authform.ResetPasswordForm{}, err
	}
	return f, nil
}

// ForgotPasswordForm prompts for the forgotten-password widget's field.
func (p *Prompter) ForgotPasswordForm() (authform.ForgotPasswordForm, error) {
	username, err := p.line("Username")
	if err != nil {
		return authform.ForgotPasswordForm{}, err
	}
	return authform.ForgotPasswordForm{Username: username}, nil
}

// FileJar implements authform.CookieJar over a JSON file, standing in for
// the browser cookie store a terminal host does not have. Expired entries
// are dropped on read.
type FileJar struct {
	path string
}

type fileCookie struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// NewFileJar returns a FileJar persisting to path. The file is created on
// the first Set.
func NewFileJar(path string) *FileJar {
	return &FileJar{path: path}
}

func (j *FileJar) load() map[string]fileCookie {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return map[string]fileCookie{}
	}
	var cookies map[string]fileCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return map[string]fileCookie{}
	}
	return cookies
}

func (j *FileJar) save(cookies map[string]fileCookie) {
	data, err := json.Marshal(cookies)
	if err != nil {
		return
	}
	// Owner-only: the file holds a live reauthentication token.
	_ = os.WriteFile(j.path, data, 0o600)
}

// Get returns the named cookie's value if present and unexpired.
func (j *FileJar) Get(name string) (string, bool) {
	c, ok := j.load()[name]
	if !ok {
		return "", false
	}
	if !c.Expires.IsZero() && time.Now().After(c.Expires) {
		j.Delete(name)
		return "", false
	}
	return c.Value, true
}

// Set writes the named cookie.
func (j *FileJar) Set(name, value string, expires time.Time) {
	cookies := j.load()
	cookies[name] = fileCookie{Value: value, Expires: expires}
	j.save(cookies)
}

// Delete removes the named cookie.
func (j *FileJar) Delete(name string) {
	cookies := j.load()
	if _, ok := cookies[name]; !ok {
		return
	}
	delete(cookies, name)
	j.save(cookies)
}
