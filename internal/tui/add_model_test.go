package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/models"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWizardEmailValidation(t *testing.T) {
	m := NewAddClientModel(nil, nil)
	m.currentStep = StepEmail

	m.inputs[StepEmail].SetValue("not an email")
	m, _ = m.handleEnter()
	assert.Equal(t, "Invalid email address", m.validationErr)
	assert.Equal(t, StepEmail, m.currentStep)

	m.inputs[StepEmail].SetValue("  Sarah.Weber@Example.com ")
	m, _ = m.handleEnter()
	assert.Empty(t, m.validationErr)
	assert.Equal(t, "sarah.weber@example.com", m.email)
	assert.Equal(t, StepPhone, m.currentStep)
}

func TestWizardPhoneValidation(t *testing.T) {
	m := NewAddClientModel(nil, nil)
	m.currentStep = StepPhone

	m.inputs[StepPhone].SetValue("not a number")
	m, _ = m.handleEnter()
	assert.Equal(t, "Invalid phone number", m.validationErr)
	assert.Equal(t, StepPhone, m.currentStep)

	m.inputs[StepPhone].SetValue("+41 79 123 45 67")
	m, _ = m.handleEnter()
	assert.Empty(t, m.validationErr)
	assert.Equal(t, "+41791234567", m.phone)
	assert.Equal(t, StepAge, m.currentStep)
}

func TestWizardSavePersistsClient(t *testing.T) {
	store := newTestStore(t)

	m := NewAddClientModel(store, map[string]string{
		"name":  "Sarah Weber",
		"email": "Sarah.Weber@Example.com",
	})
	m.topics = []string{"Leadership"}

	m, _ = m.saveClient()
	require.NoError(t, m.err)
	assert.True(t, m.completed)
	assert.Equal(t, "Sarah Weber", m.createdClientName)

	client, err := store.GetClient(m.createdClientID)
	require.NoError(t, err)
	assert.Equal(t, "sarah.weber@example.com", client.Email)
	require.Len(t, client.Topics, 1)
	assert.Equal(t, "Leadership", client.Topics[0].Name)
}

func TestWizardPreviewMarksInvalidEmail(t *testing.T) {
	m := NewAddClientModel(nil, map[string]string{
		"name":  "Sarah Weber",
		"email": "not an email",
		"phone": "+41 79 123 45 67",
	})
	m.width = 120
	m.height = 40

	preview := m.renderPreview()
	assert.Contains(t, preview, "(invalid)")
	assert.Contains(t, preview, "+41791234567")
}

func TestClientDetailsShowsConsent(t *testing.T) {
	consent := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	clients := []models.Client{{
		ID:           "c1",
		Name:         "Sarah Weber",
		Email:        "sarah.weber@example.com",
		Status:       "active",
		ConsentGiven: true,
		ConsentDate:  consent,
	}}

	m := NewListModel(clients)
	details := m.renderClientDetails(80)
	assert.Contains(t, details, "✓ given")
	assert.Contains(t, details, "05/03/2024")
}
