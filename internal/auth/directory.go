package auth

import (
	"crypto/subtle"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// User is a credential-directory entry.
type User struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	TenantID string   `yaml:"tenant_id"`
	Roles    []string `yaml:"roles"`
}

// Directory is a static username lookup backing the login endpoint. It is
// read-only after construction, so concurrent lookups need no locking.
type Directory struct {
	users map[string]User
}

// NewDirectory creates a directory from the given users.
func NewDirectory(users []User) *Directory {
	m := make(map[string]User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &Directory{users: m}
}

// DefaultDirectory returns the built-in demo directory: an admin and a
// viewer in each of two tenants.
func DefaultDirectory() *Directory {
	return NewDirectory([]User{
		{Username: "adminA", Password: "adminApass", TenantID: "tenant-A", Roles: []string{"admin"}},
		{Username: "viewerA", Password: "viewerApass", TenantID: "tenant-A", Roles: []string{"viewer"}},
		{Username: "adminB", Password: "adminBpass", TenantID: "tenant-B", Roles: []string{"admin"}},
		{Username: "viewerB", Password: "viewerBpass", TenantID: "tenant-B", Roles: []string{"viewer"}},
	})
}

// LoadDirectory reads a directory from a YAML file of the form:
//
//	users:
//	  - username: adminA
//	    password: adminApass
//	    tenant_id: tenant-A
//	    roles: [admin]
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var file struct {
		Users []User `yaml:"users"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}

	return NewDirectory(file.Users), nil
}

// Find returns the user with the given username.
func (d *Directory) Find(username string) (User, bool) {
	u, ok := d.users[username]
	return u, ok
}

// Authenticate checks a username/password pair. The comparison is
// constant-time to keep timing from leaking password prefixes.
func (d *Directory) Authenticate(username, password string) (User, bool) {
	u, ok := d.users[username]
	if !ok {
		return User{}, false
	}
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return User{}, false
	}
	return u, true
}
