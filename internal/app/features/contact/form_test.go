package contact

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission() models.ContactSubmission {
	return models.ContactSubmission{Name: "Lina", Email: "lina@example.com", Subject: "Hello", Message: "Hi there"}
}

func TestForm_SuccessClears(t *testing.T) {
	f := NewForm("Inquiry")
	assert.Equal(t, StateIdle, f.State)
	assert.Equal(t, "Inquiry", f.Values.Subject)

	require.NoError(t, f.Begin(submission()))
	assert.Equal(t, StateLoading, f.State)

	f.Succeed("thanks")
	assert.True(t, f.IsSuccess())
	assert.Equal(t, models.ContactSubmission{}, f.Values)
	assert.Equal(t, "thanks", f.Message)

	f.Reset()
	assert.Equal(t, StateIdle, f.State)
	assert.Empty(t, f.Message)
}

func TestForm_ErrorKeepsValues(t *testing.T) {
	f := NewForm("")
	require.NoError(t, f.Begin(submission()))

	f.Fail("failed", map[string]string{"name": "contact_required"})
	assert.True(t, f.IsError())
	assert.Equal(t, submission(), f.Values)
	assert.Equal(t, "failed", f.Message)

	// An errored form may be submitted again.
	require.NoError(t, f.Begin(submission()))
	assert.Nil(t, f.Errors)
}

func TestForm_InvalidTransitions(t *testing.T) {
	f := NewForm("")
	require.NoError(t, f.Begin(submission()))
	assert.Error(t, f.Begin(submission()), "cannot submit while loading")

	f.Succeed("ok")
	assert.Error(t, f.Begin(submission()), "cannot submit from success")

	idle := NewForm("")
	idle.Succeed("ignored")
	idle.Fail("ignored", nil)
	assert.Equal(t, StateIdle, idle.State)
}

func TestClean(t *testing.T) {
	got := Clean(models.ContactSubmission{
		Name:    "  Lina   Saad ",
		Email:   " Lina@Example.COM ",
		Subject: "  Hi ",
		Message: "line1\r\nline2  ",
	})
	assert.Equal(t, "lina@example.com", got.Email)
	assert.Equal(t, "Hi", got.Subject)
	assert.Equal(t, "line1\nline2", got.Message)
}

func TestCheck(t *testing.T) {
	assert.Nil(t, Check(submission()))

	bad := submission()
	bad.Name = ""
	bad.Email = "nope"
	bad.Subject = strings.Repeat("x", 301)
	got := Check(bad)
	assert.Equal(t, "contact_required", got["name"])
	assert.Equal(t, "contact_invalid_email", got["email"])
	assert.Equal(t, "contact_too_long", got["subject"])
}

func TestCheck_LongMessage(t *testing.T) {
	long := submission()
	long.Message = strings.Repeat("Please quote 40 valves. ", 250)
	assert.Greater(t, len(long.Message), 5000)
	assert.Nil(t, Check(long))
}

func TestPrefillSubject(t *testing.T) {
	tf := func(key string, args ...any) string { return key + ":" + fmt.Sprint(args...) }

	params := map[string]string{"course": "SCADA", "project": "Gear"}
	got := PrefillSubject(func(k string) string { return params[k] }, tf)
	assert.Equal(t, "contact_subject_course:SCADA", got)

	assert.Empty(t, PrefillSubject(func(string) string { return "" }, tf))
	assert.Empty(t, PrefillSubject(func(string) string { return "   " }, tf))
}
