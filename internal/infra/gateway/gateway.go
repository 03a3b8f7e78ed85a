package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
)

//go:generate mockgen -package mock_gateway -destination mock/gateway_mock.go github.com/RoyceAzure/lab/storefront/internal/infra/gateway IUserGateway,IProductGateway,IOrderGateway

const maxErrorBodySize = 1 << 20

// client 三個remote service共用的HTTP基底
// 非2xx回應讀出body包成*apperr.APIError，留給上層Normalize
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string, timeout time.Duration) client {
	return client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do in為nil就不送body，out為nil就不解析回應
func (c client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("序列化請求失敗: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("建立請求失敗: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &apperr.APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("解析回應失敗: %w", err)
		}
	}
	return nil
}
