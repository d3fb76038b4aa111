package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// HTTPClientConfig configures [NewHTTPRemoteStore].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli}
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, mapTransportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpRemoteStore) GetDocument(ctx context.Context, collection, id string) (models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/api/data/" + collection + "/" + id)
	if err != nil {
		return models.Document{}, mapTransportError("get document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document response: %w", err)
	}
	return doc, nil
}

func (h *httpRemoteStore) SetDocument(ctx context.Context, collection string, doc models.Document, merge bool) error {
	req := models.SetDocumentRequest{Document: doc, Merge: merge}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/data/" + collection + "/" + doc.ID)
	if err != nil {
		return mapTransportError("set document request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) DeleteDocument(ctx context.Context, collection, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/data/" + collection + "/" + id)
	if err != nil {
		return mapTransportError("delete document request", err)
	}
	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (h *httpRemoteStore) ListCollection(ctx context.Context, collection string) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/api/data/" + collection)
	if err != nil {
		return nil, mapTransportError("list collection request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			// An absent collection means "empty", not an error.
			return nil, nil
		}
		return nil, err
	}

	var lr models.ListDocumentsResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return lr.Documents, nil
}

func (h *httpRemoteStore) BatchWrite(ctx context.Context, req models.BatchWriteRequest) error {
	req.Length = len(req.Entries)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/data/batch")
	if err != nil {
		return mapTransportError("batch write request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) GetUserMeta(ctx context.Context) (models.UserMeta, error) {
	resp, err := h.authedRequest(ctx).Get("/api/meta")
	if err != nil {
		return models.UserMeta{}, mapTransportError("get user meta request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserMeta{}, err
	}

	var meta models.UserMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return models.UserMeta{}, fmt.Errorf("decode user meta response: %w", err)
	}
	return meta, nil
}

func (h *httpRemoteStore) SetUserMeta(ctx context.Context, meta models.UserMeta) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(meta).
		Put("/api/meta")
	if err != nil {
		return mapTransportError("set user meta request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
