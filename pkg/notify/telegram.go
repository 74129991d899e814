// pkg/notify/telegram.go
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// TelegramService posts alert messages to the brokerage's Telegram chat.
// Delivery is best-effort: callers log failures and carry on, a lost
// notification must never block the save it was attached to.
type TelegramService struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

var GlobalNotifier *TelegramService

// InitNotifier wires the process-wide notifier. With no token configured
// the notifier stays nil and every send becomes a silent no-op.
func InitNotifier(botToken, chatID string) {
	if botToken == "" || chatID == "" {
		return
	}
	GlobalNotifier = NewTelegramService(botToken, chatID, defaultAPIBase)
}

func NewTelegramService(botToken, chatID, apiBase string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  apiBase,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage delivers one text message to the configured chat.
func (s *TelegramService) SendMessage(text string) error {
	jsonData, err := json.Marshal(sendMessageRequest{ChatID: s.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("error marshaling message: %v", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending message: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: %s", string(respBody))
	}

	return nil
}

// SendConsultationAlert notifies the admin chat about a new inquiry.
func (s *TelegramService) SendConsultationAlert(listingID uint, listingTitle, name, phone, message string) error {
	if message == "" {
		message = "없음"
	}
	text := fmt.Sprintf(
		"🔔 [PX마을] 새로운 상담 문의\n\n🏢 매물: %s\n👤 고객명: %s\n📞 연락처: %s\n💬 문의내용: %s\n\n🔗 매물번호: %d",
		listingTitle, name, phone, message, listingID,
	)
	return s.SendMessage(text)
}

// SendPendingDigest is the daily reminder of unanswered consultations.
func (s *TelegramService) SendPendingDigest(pending int64) error {
	text := fmt.Sprintf("📋 [PX마을] 답변 대기중인 상담 문의가 %d건 있습니다.", pending)
	return s.SendMessage(text)
}

// SendListingStatsReport is the weekly view-count summary.
func (s *TelegramService) SendListingStatsReport(totalViews, uniqueViews int64, topTitle string, topViews int64) error {
	text := fmt.Sprintf(
		"📈 [PX마을] 주간 매물 통계\n\n전체 조회수: %d\n순 방문자: %d\n최다 조회 매물: %s (%d회)",
		totalViews, uniqueViews, topTitle, topViews,
	)
	return s.SendMessage(text)
}
