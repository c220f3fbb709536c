package claims

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVerified(t *testing.T) {
	subject := uuid.Must(uuid.NewV7())
	roles := []string{"admin"}

	verified := New(subject, roles)
	roles[0] = "accountant"

	assert.Equal(t, subject, verified.Subject())
	assert.Equal(t, []string{"admin"}, verified.Roles())

	copied := verified.Roles()
	copied[0] = "accountant"
	assert.Equal(t, []string{"admin"}, verified.Roles())
	assert.Empty(t, Verified{}.Roles())
}
