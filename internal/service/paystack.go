package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scamwise-backend/internal/models"
)

// PaystackClient wraps the two provider calls the backend makes: initializing
// a transaction and verifying one by reference.
type PaystackClient struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewPaystackClient(secretKey, baseURL string) *PaystackClient {
	return &PaystackClient{
		SecretKey: secretKey,
		BaseURL:   baseURL,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

type PaystackTransaction struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"` // kobo
	Metadata  struct {
		Plan   string `json:"plan"`
		UserID string `json:"user_id"`
	} `json:"metadata"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializeTransaction starts a checkout session and returns the hosted
// authorization URL.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, email, plan, userID, reference, callbackURL string, amountKobo int64) (string, error) {
	payload := map[string]interface{}{
		"email":        email,
		"amount":       amountKobo,
		"reference":    reference,
		"callback_url": callbackURL,
		"metadata": map[string]string{
			"plan":    plan,
			"user_id": userID,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &data); err != nil {
		return "", err
	}
	return data.AuthorizationURL, nil
}

// VerifyTransaction fetches the provider's record of a transaction.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*PaystackTransaction, error) {
	var tx PaystackTransaction
	path := "/transaction/verify/" + reference
	if err := c.do(ctx, http.MethodGet, path, nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *PaystackClient) do(ctx context.Context, method, path string, body *bytes.Reader, out interface{}) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %v", models.ErrUpstream, err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		return fmt.Errorf("%w: %s", models.ErrUpstream, envelope.Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: decoding data: %v", models.ErrUpstream, err)
		}
	}
	return nil
}

// ValidWebhookSignature checks the x-paystack-signature header: an HMAC-SHA512
// of the raw body keyed with the secret key.
func (c *PaystackClient) ValidWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
