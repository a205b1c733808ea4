package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

const (
	requestTimeout = 30 * time.Second
	healthTimeout  = 5 * time.Second

	// Повторы при отправке записей: ограниченное число попыток
	// с fibonacci backoff
	upsertRetryBase = 500 * time.Millisecond
	upsertRetryMax  = 3
)

// Client представляет HTTP клиент для взаимодействия с удаленным
// system-of-record
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient создает новый API клиент.
// apiKey передается как bearer token во всех запросах,
// включая health: сервер лишний заголовок игнорирует.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Health проверяет доступность сервера. Использует укороченный таймаут:
// health check предваряет каждую сессию синхронизации и должен быстро
// отличать "сервер недоступен" от "сервер медленный".
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchUpdatedSince возвращает записи типа kind, измененные после since
func (c *Client) FetchUpdatedSince(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error) {
	path := fmt.Sprintf("/api/v1/%s", kind)
	if since != nil {
		q := url.Values{}
		q.Set("updatedSince", since.UTC().Format(time.RFC3339Nano))
		path += "?" + q.Encode()
	}

	var resp api.FetchResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s failed: %w", kind, err)
	}
	return resp.Records, nil
}

// Upsert отправляет одну запись на сервер. Сетевые сбои и ответы 5xx
// повторяются с backoff; ошибки уровня данных (4xx) не повторяются.
func (c *Client) Upsert(ctx context.Context, kind models.EntityKind, rec api.Record) (*api.UpsertResponse, error) {
	path := fmt.Sprintf("/api/v1/%s", kind)

	backoff := retry.WithMaxRetries(upsertRetryMax, retry.NewFibonacci(upsertRetryBase))

	var resp api.UpsertResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.doRequest(ctx, http.MethodPost, path, rec, &resp)
		if err == nil {
			return nil
		}
		var se *statusError
		if errors.As(err, &se) && se.code >= 400 && se.code < 500 {
			// Ошибка данных: повтор не поможет
			return err
		}
		if IsConnectionError(err) {
			// Неверный ключ не станет верным после повтора
			var ce *ConnectionError
			errors.As(err, &ce)
			if !ce.transient() {
				return err
			}
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, fmt.Errorf("upsert %s/%s failed: %w", kind, rec.ID, err)
	}
	return &resp, nil
}

// statusError сохраняет HTTP статус для решения о повторе
type statusError struct {
	message string
	code    int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.code, e.message)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортная ошибка: сервер недоступен
		return &ConnectionError{Op: method + " " + path, Err: err, unreachable: true}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Отказ в авторизации — тоже ошибка соединения: ключ неверен,
	// сессия не имеет смысла
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &ConnectionError{
			Op:  method + " " + path,
			Err: fmt.Errorf("authorization rejected (%d)", resp.StatusCode),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &statusError{code: resp.StatusCode, message: errResp.Message}
		}
		return &statusError{code: resp.StatusCode, message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
