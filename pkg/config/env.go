package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// login modes.
const (
	ModeAdmin = "admin"
	ModeUser  = "user"
)

// Env holds the values supplied by the environment.
type Env struct {
	ConsoleURL       string `envconfig:"CONSOLE_URL"`
	AdminUsername    string `envconfig:"KUBEADMIN_USERNAME" default:"kubeadmin"`
	AdminPassword    string `envconfig:"KUBEADMIN_PASSWORD"`
	Username         string `envconfig:"TEST_USERNAME"`
	Password         string `envconfig:"TEST_PASSWORD"`
	IdentityProvider string `envconfig:"IDENTITY_PROVIDER"`
	Namespace        string `envconfig:"WEB_TERMINAL_NAMESPACE"`
	Mode             string `envconfig:"TEST_MODE" default:"admin"`
	Headless         bool   `envconfig:"PLAYWRIGHT_HEADLESS" default:"true"`
	DevWorkspaceURL  string `envconfig:"DEVWORKSPACE_URL"`
}

// ConfigurationError reports required environment variables that are absent or invalid.
type ConfigurationError struct {
	Missing []string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch {
	case len(e.Missing) > 0 && e.Reason != "":
		return fmt.Sprintf("configuration error: %s, missing %s", e.Reason, strings.Join(e.Missing, ", "))
	case len(e.Missing) > 0:
		return "configuration error: missing " + strings.Join(e.Missing, ", ")
	default:
		return "configuration error: " + e.Reason
	}
}

// Is makes errors.Is(err, ErrConfiguration) work.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, &ConfigurationError{Reason: err.Error()}
	}
	env.Mode = strings.ToLower(strings.TrimSpace(env.Mode))
	return env, nil
}

// ValidateTerminal checks what a terminal test needs: console, namespace and credentials for the mode.
func (e Env) ValidateTerminal() error {
	var missing []string
	if e.ConsoleURL == "" {
		missing = append(missing, "CONSOLE_URL")
	}
	if e.Namespace == "" {
		missing = append(missing, "WEB_TERMINAL_NAMESPACE")
	}

	switch e.Mode {
	case ModeAdmin:
		if e.AdminPassword == "" {
			missing = append(missing, "KUBEADMIN_PASSWORD")
		}
	case ModeUser:
		if e.Username == "" {
			missing = append(missing, "TEST_USERNAME")
		}
		if e.Password == "" {
			missing = append(missing, "TEST_PASSWORD")
		}
	default:
		return &ConfigurationError{Missing: missing, Reason: fmt.Sprintf("invalid TEST_MODE %q, must be %s or %s", e.Mode, ModeAdmin, ModeUser)}
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// ValidateEditor checks what a web editor test needs.
func (e Env) ValidateEditor() error {
	if e.DevWorkspaceURL == "" {
		return &ConfigurationError{Missing: []string{"DEVWORKSPACE_URL"}}
	}
	return nil
}

// LoginUser returns the user name to log in with for the current mode.
func (e Env) LoginUser() string {
	if e.Mode == ModeUser {
		return e.Username
	}
	return e.AdminUsername
}

// LoginPassword returns the password for the current mode.
func (e Env) LoginPassword() string {
	if e.Mode == ModeUser {
		return e.Password
	}
	return e.AdminPassword
}

// ExpectedIdentity returns what `oc whoami` prints for the login user.
// the built-in kubeadmin account is reported as kube:admin.
func (e Env) ExpectedIdentity() string {
	user := e.LoginUser()
	if user == "kubeadmin" {
		return "kube:admin"
	}
	return user
}
