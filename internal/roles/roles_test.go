package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy{}

	assert.True(t, p.IsPrivileged("shyam@ascendcohealth.com"))
	assert.True(t, p.IsPrivileged("SHYAM@ascendcohealth.com"))
	assert.True(t, p.IsPrivileged("admin@ascendcohealth.com"))
	assert.True(t, p.IsPrivileged("shyam.other@ascendcohealth.com"))

	assert.False(t, p.IsPrivileged(""))
	assert.False(t, p.IsPrivileged("jane@ascendcohealth.com"))
	assert.False(t, p.IsPrivileged("shyam@elsewhere.com"))
}

func TestAllowList(t *testing.T) {
	p := NewAllowList("Ops@Ascendcohealth.com")

	assert.True(t, p.IsPrivileged("ops@ascendcohealth.com"))
	assert.True(t, p.IsPrivileged("OPS@ASCENDCOHEALTH.COM"))
	assert.False(t, p.IsPrivileged("shyam@ascendcohealth.com"))
	assert.False(t, p.IsPrivileged(""))
}
