package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMailPort(t *testing.T) {
	t.Setenv("MAIL_PORT", "2525")
	assert.Equal(t, 2525, Load().MailPort)
}

func TestLoadMailPortDefault(t *testing.T) {
	t.Setenv("MAIL_PORT", "")
	assert.Equal(t, defaultMailPort, Load().MailPort)
}

func TestLoadMailPortNonNumeric(t *testing.T) {
	t.Setenv("MAIL_PORT", "not-a-port")
	assert.Equal(t, defaultMailPort, Load().MailPort)
}
