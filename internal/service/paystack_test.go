package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scamwise-backend/internal/models"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidWebhookSignature(t *testing.T) {
	client := NewPaystackClient("sk_test_secret", "")
	body := []byte(`{"event":"charge.success"}`)

	if !client.ValidWebhookSignature(body, sign("sk_test_secret", body)) {
		t.Error("correctly signed payload rejected")
	}
	if client.ValidWebhookSignature(body, sign("wrong_key", body)) {
		t.Error("payload signed with the wrong key accepted")
	}
	if client.ValidWebhookSignature(body, "") {
		t.Error("empty signature accepted")
	}
	tampered := []byte(`{"event":"charge.success","amount":999}`)
	if client.ValidWebhookSignature(tampered, sign("sk_test_secret", body)) {
		t.Error("tampered body accepted")
	}
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/sw-ref-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk_test_secret" {
			t.Errorf("missing bearer auth, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"reference":"sw-ref-1","status":"success","amount":250000,"metadata":{"plan":"monthly","user_id":"u1"},"customer":{"email":"a@b.c"}}}`))
	}))
	defer server.Close()

	client := NewPaystackClient("sk_test_secret", server.URL)
	tx, err := client.VerifyTransaction(context.Background(), "sw-ref-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if tx.Status != "success" {
		t.Errorf("expected success status, got %q", tx.Status)
	}
	if tx.Metadata.Plan != "monthly" {
		t.Errorf("expected monthly plan metadata, got %q", tx.Metadata.Plan)
	}
	if tx.Amount != 250000 {
		t.Errorf("expected amount 250000, got %v", tx.Amount)
	}
}

func TestVerifyTransactionUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewPaystackClient("sk_test_secret", server.URL)
	_, err := client.VerifyTransaction(context.Background(), "missing")
	if !errors.Is(err, models.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}
