// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	user := &User{}
	assert.NoError(t, user.SetPassword("secret123"))

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong"))
	assert.Error(t, user.CheckPassword(""))
}

func TestSetPasswordRotatesHash(t *testing.T) {
	user := &User{}
	assert.NoError(t, user.SetPassword("first-pass"))
	old := user.PasswordHash

	assert.NoError(t, user.SetPassword("second-pass"))
	assert.NotEqual(t, old, user.PasswordHash)
	assert.Error(t, user.CheckPassword("first-pass"))
	assert.NoError(t, user.CheckPassword("second-pass"))
}
