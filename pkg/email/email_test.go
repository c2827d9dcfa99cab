package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"viang-solution-backend/internal/domain"
)

func testService() *EmailService {
	return &EmailService{
		host:      "smtp.example.com",
		port:      "465",
		username:  "relay@viangsolution.com",
		password:  "secret",
		ssl:       true,
		fromEmail: "noreply@viangsolution.com",
		toEmail:   "vionel@viangsolution.com",
		ccEmail:   "relay@viangsolution.com",
	}
}

func testRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "809 555 0101",
		Service: "Painting",
		Message: "Please send me a quote for painting two rooms.",
	}
}

func TestBuildNotificationHeaders(t *testing.T) {
	msg, err := testService().buildNotification(testRequest())
	assert.NoError(t, err)

	assert.Equal(t, "noreply@viangsolution.com", msg.From)
	assert.Equal(t, []string{"vionel@viangsolution.com"}, msg.To)
	assert.Equal(t, []string{"relay@viangsolution.com"}, msg.Cc)
	assert.Equal(t, []string{"jane@example.com"}, msg.ReplyTo, "replies must go to the submitter")
	assert.Equal(t, "New website contact: Painting", msg.Subject)
}

func TestBuildNotificationBody(t *testing.T) {
	msg, err := testService().buildNotification(testRequest())
	assert.NoError(t, err)

	body := string(msg.HTML)
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "809 555 0101")
	assert.Contains(t, body, "Painting")
	assert.Contains(t, body, "Please send me a quote")
}

func TestBuildNotificationOmitsEmptyPhone(t *testing.T) {
	req := testRequest()
	req.Phone = ""
	msg, err := testService().buildNotification(req)
	assert.NoError(t, err)
	assert.NotContains(t, string(msg.HTML), "Phone:")
}

func TestBuildNotificationWithoutCC(t *testing.T) {
	s := testService()
	s.ccEmail = ""
	msg, err := s.buildNotification(testRequest())
	assert.NoError(t, err)
	assert.Empty(t, msg.Cc)
}

func TestUserContentIsEscaped(t *testing.T) {
	req := testRequest()
	req.Name = `<script>alert("x")</script>`
	req.Message = `Hello <img src=x onerror=alert(1)> world, this is long enough.`

	msg, err := testService().buildNotification(req)
	assert.NoError(t, err)

	body := string(msg.HTML)
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<img src=x")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestBuildConfirmation(t *testing.T) {
	msg, err := testService().buildConfirmation(testRequest())
	assert.NoError(t, err)

	assert.Equal(t, []string{"jane@example.com"}, msg.To, "confirmation goes to the submitter")
	assert.Equal(t, "noreply@viangsolution.com", msg.From)
	assert.Equal(t, "Thank you for contacting Viang Solution", msg.Subject)
	assert.Contains(t, string(msg.HTML), "Jane Doe")
}

func TestIsConfigured(t *testing.T) {
	s := testService()
	assert.True(t, s.IsConfigured())

	s.password = ""
	assert.False(t, s.IsConfigured())
}
