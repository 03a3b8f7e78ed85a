package apperr

import "fmt"

// APIError 遠端呼叫失敗時由gateway回傳
// Body保留原始回應，交給Normalize解析
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote call failed with status %d", e.StatusCode)
}
