// pkg/notify/telegram_test.go
package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendConsultationAlert(t *testing.T) {
	var got sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewTelegramService("test-token", "12345", server.URL)
	err := svc.SendConsultationAlert(7, "화성시 공장", "홍길동", "010-1234-5678", "")

	assert.NoError(t, err)
	assert.Equal(t, "12345", got.ChatID)
	assert.Contains(t, got.Text, "화성시 공장")
	assert.Contains(t, got.Text, "홍길동")
	assert.Contains(t, got.Text, "없음") // blank message placeholder
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	svc := NewTelegramService("test-token", "12345", server.URL)
	err := svc.SendMessage("hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestInitNotifierWithoutToken(t *testing.T) {
	GlobalNotifier = nil
	InitNotifier("", "")
	assert.Nil(t, GlobalNotifier)
}
