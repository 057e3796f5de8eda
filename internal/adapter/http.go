package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
)

// HashHeader carries the hex HMAC-SHA256 of the request body when a hash key
// is configured.
const HashHeader = "HashSHA256"

const retryDelay = 200 * time.Millisecond

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey    string
	retryCount uint64
	retryDelay time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and initialises the shared HMAC
// hasher pool when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	retries := adapterCfg.RetryCount
	if retries < 0 {
		retries = 0
	}

	return &httpServerAdapter{
		client:     client,
		hashKey:    appCfg.HashKey,
		retryCount: uint64(retries),
		retryDelay: retryDelay,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Connect implements [ServerAdapter]. POST /connect.
func (h *httpServerAdapter) Connect(ctx context.Context, req models.ConnectRequest) error {
	_, err := h.post(ctx, "/connect", req, nil)
	return err
}

// CreateGroup implements [ServerAdapter]. POST /create_group.
func (h *httpServerAdapter) CreateGroup(ctx context.Context, req models.CreateGroupRequest) error {
	_, err := h.post(ctx, "/create_group", req, nil)
	return err
}

// GetUserKeyPackages implements [ServerAdapter]. POST /get_user_keys; the
// response maps member IDs to base64 key packages. Transient failures are
// retried.
func (h *httpServerAdapter) GetUserKeyPackages(ctx context.Context, req models.GetUserKeysRequest) (map[models.MemberID][]byte, error) {
	var keys map[models.MemberID][]byte

	err := h.withRetry(ctx, "/get_user_keys", func(ctx context.Context) error {
		keys = nil
		_, err := h.post(ctx, "/get_user_keys", req, &keys)
		return err
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// InviteUser implements [ServerAdapter]. POST /invite_user.
func (h *httpServerAdapter) InviteUser(ctx context.Context, req models.InviteUserRequest) error {
	_, err := h.post(ctx, "/invite_user", req, nil)
	return err
}

// GetNewMessages implements [ServerAdapter]. POST /get_new_messages.
// Transient failures are retried; polling is idempotent.
func (h *httpServerAdapter) GetNewMessages(ctx context.Context, req models.GetNewMessagesRequest) ([]models.Message, error) {
	var messages []models.Message

	err := h.withRetry(ctx, "/get_new_messages", func(ctx context.Context) error {
		messages = nil
		_, err := h.post(ctx, "/get_new_messages", req, &messages)
		return err
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// SendMessage implements [ServerAdapter]. POST /send_message. Sends are never
// retried here: a lost response would otherwise occupy two indices.
func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) error {
	_, err := h.post(ctx, "/send_message", req, nil)
	return err
}

// post marshals body, signs it when a hash key is configured, and decodes a
// successful response into result (if non-nil).
func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) (*resty.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, hex.EncodeToString(utils.Hash(payload)))
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return resp, fmt.Errorf("%s: %w", path, err)
	}

	if result != nil && len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return resp, fmt.Errorf("decode %s response: %w", path, err)
		}
	}

	return resp, nil
}

func (h *httpServerAdapter) withRetry(ctx context.Context, path string, f retry.RetryFunc) error {
	backoff := retry.WithMaxRetries(h.retryCount, retry.NewConstant(h.retryDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := f(ctx)
		if err != nil && isTransient(err) {
			h.logger.Warn().
				Err(err).
				Str("func", "httpServerAdapter.withRetry").
				Str("path", path).
				Int("attempt", attempt).
				Msg("transient failure")
			return retry.RetryableError(err)
		}
		return err
	})
}
