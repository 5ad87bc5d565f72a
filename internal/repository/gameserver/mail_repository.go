package gameserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type MailConfig struct {
	MailBaseURL           string
	MailBasicAuthUsername string
	MailBasicAuthPassword string
}

// MailRepository talks to the game server's GM mail API. Item rewards
// are delivered as in-game mail to the selected character; the claim
// transaction rolls back when this call fails.
type MailRepository struct {
	mailConfig MailConfig
	client     *http.Client
}

var _ gamepass.ItemDeliverer = (*MailRepository)(nil)

func NewMailRepository(cfg MailConfig) *MailRepository {
	return &MailRepository{
		mailConfig: cfg,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

type payloadSendItemMail struct {
	ReferenceID string `json:"reference_id"`
	CharacterID uint   `json:"character_id"`
	ItemID      int64  `json:"item_id"`
	Quantity    int    `json:"quantity"`
	Title       string `json:"title"`
}

func (r *MailRepository) DeliverItem(ctx context.Context, characterID uint, itemID int64, quantity int, refID string) error {
	url := r.mailConfig.MailBaseURL + "/gm/mail/item"

	payload := payloadSendItemMail{
		ReferenceID: refID,
		CharacterID: characterID,
		ItemID:      itemID,
		Quantity:    quantity,
		Title:       "Game Pass Reward",
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.mailConfig.MailBasicAuthUsername + ":" + r.mailConfig.MailBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Error("Game server mail API rejected delivery", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("game server mail api returned status %v", res.StatusCode)
}
