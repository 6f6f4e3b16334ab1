package plaid

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"expenseease/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const keyFetchAttempts = 3

var (
	ErrWebhookBadSignature  = errors.New("webhook signature verification failed")
	ErrWebhookStale         = errors.New("webhook is older than the acceptance window")
	ErrWebhookBodyMismatch  = errors.New("webhook body hash does not match signed digest")
	ErrWebhookUnknownKey    = errors.New("webhook verification key not available")
	ErrWebhookWrongAlg      = errors.New("webhook token uses an unexpected algorithm")
	ErrWebhookMissingClaims = errors.New("webhook token is missing required claims")
)

type verificationKey struct {
	Alg       string `json:"alg"`
	Crv       string `json:"crv"`
	Kid       string `json:"kid"`
	Kty       string `json:"kty"`
	Use       string `json:"use"`
	X         string `json:"x"`
	Y         string `json:"y"`
	CreatedAt int64  `json:"created_at"`
	ExpiredAt *int64 `json:"expired_at"`
}

type verificationKeyRequest struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
	KeyID    string `json:"key_id"`
}

type verificationKeyResponse struct {
	Key verificationKey `json:"key"`
}

// WebhookVerifier checks the signed JWT Plaid attaches to webhook deliveries.
// Verification keys are cached per kid; a cached key that has expired is
// refetched before use. Key fetches are bounded, never retried forever.
type WebhookVerifier struct {
	client *Client
	maxAge time.Duration

	mu   sync.Mutex
	keys map[string]verificationKey
}

// NewWebhookVerifier creates a webhook verifier backed by the feed client
func NewWebhookVerifier(client *Client, cfg *config.PlaidConfig) *WebhookVerifier {
	return &WebhookVerifier{
		client: client,
		maxAge: cfg.WebhookMaxAge,
		keys:   make(map[string]verificationKey),
	}
}

// Verify validates the signed token against the raw request body. It returns
// nil only when the signature checks out, the token is fresh, and the body
// hash matches the signed digest.
func (v *WebhookVerifier) Verify(ctx context.Context, signedJWT string, body []byte) error {
	token, err := jwt.Parse(signedJWT, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodES256.Alg() {
			return nil, ErrWebhookWrongAlg
		}

		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrWebhookUnknownKey
		}

		key, err := v.keyForKid(ctx, kid)
		if err != nil {
			return nil, err
		}
		return jwkToECDSAPublicKey(key)
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	if err != nil {
		if errors.Is(err, ErrWebhookWrongAlg) || errors.Is(err, ErrWebhookUnknownKey) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrWebhookBadSignature, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrWebhookMissingClaims
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return ErrWebhookMissingClaims
	}
	if time.Since(issuedAt.Time) > v.maxAge {
		return ErrWebhookStale
	}

	signedDigest, _ := claims["request_body_sha256"].(string)
	if signedDigest == "" {
		return ErrWebhookMissingClaims
	}

	actual := sha256.Sum256(body)
	actualHex := hex.EncodeToString(actual[:])
	if subtle.ConstantTimeCompare([]byte(actualHex), []byte(signedDigest)) != 1 {
		return ErrWebhookBodyMismatch
	}

	return nil
}

func (v *WebhookVerifier) keyForKid(ctx context.Context, kid string) (verificationKey, error) {
	v.mu.Lock()
	cached, found := v.keys[kid]
	v.mu.Unlock()

	if found && cached.ExpiredAt == nil {
		return cached, nil
	}

	var lastErr error
	for attempt := 0; attempt < keyFetchAttempts; attempt++ {
		key, err := v.fetchKey(ctx, kid)
		if err == nil {
			v.mu.Lock()
			v.keys[kid] = key
			v.mu.Unlock()
			return key, nil
		}
		lastErr = err
	}

	return verificationKey{}, fmt.Errorf("%w: %v", ErrWebhookUnknownKey, lastErr)
}

func (v *WebhookVerifier) fetchKey(ctx context.Context, kid string) (verificationKey, error) {
	body := verificationKeyRequest{
		ClientID: v.client.clientID,
		Secret:   v.client.secret,
		KeyID:    kid,
	}

	var resp verificationKeyResponse
	if err := v.client.post(ctx, "/webhook_verification_key/get", body, &resp); err != nil {
		return verificationKey{}, err
	}

	return resp.Key, nil
}

func jwkToECDSAPublicKey(key verificationKey) (*ecdsa.PublicKey, error) {
	if key.Kty != "EC" || key.Crv != "P-256" {
		return nil, fmt.Errorf("unsupported verification key type %s/%s", key.Kty, key.Crv)
	}

	xBytes, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, fmt.Errorf("invalid key x coordinate: %w", err)
	}
	yBytes, err := base64.RawURLEncoding.DecodeString(key.Y)
	if err != nil {
		return nil, fmt.Errorf("invalid key y coordinate: %w", err)
	}

	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}, nil
}
