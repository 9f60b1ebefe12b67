package email

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendLeaveDecision_LogsWithoutCredentials(t *testing.T) {
	var buf bytes.Buffer
	svc := NewEmailService(SMTPConfig{Host: "smtp.invalid", Port: 587}, zerolog.New(&buf))

	sent, err := svc.SendLeaveDecision("john.doe@university.edu", "Dr. John Doe", LeaveDecision{
		RequestID: 3,
		Status:    "Approved",
		DecidedBy: "Dr. Alice Johnson",
	})
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Contains(t, buf.String(), "leave decision email not sent")
	assert.Contains(t, buf.String(), `"leaveRequestId":3`)
}

func TestSendLeaveDecision_UnreachableServer(t *testing.T) {
	svc := NewEmailService(SMTPConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "user",
		Password: "pass",
	}, zerolog.Nop())

	sent, err := svc.SendLeaveDecision("a@b.c", "A", LeaveDecision{Status: "Rejected"})
	assert.Error(t, err)
	assert.False(t, sent)
}
