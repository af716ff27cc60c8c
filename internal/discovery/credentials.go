package discovery

import "os"

// EnvCredentials reads the API key from an environment variable.
type EnvCredentials struct {
	Var string
}

// NewEnvCredentials creates a credential source for the named variable.
func NewEnvCredentials(name string) *EnvCredentials {
	return &EnvCredentials{Var: name}
}

// Lookup returns the key and whether it is set. An empty value counts as unset.
func (e *EnvCredentials) Lookup() (string, bool) {
	v, ok := os.LookupEnv(e.Var)
	if !ok || v == "" {
		return "", false
	}

	return v, true
}
