package apperr

import (
	"encoding/json"
	"errors"
)

/*
後端錯誤回應有三種格式，依優先順序解析：
 1. {"errors": {"field": "message"}} 直接使用
 2. {"fieldErrors": [{"field": "...", "message": "..."}]} 折疊成map，同欄位後者覆蓋前者
 3. {"message": "..."} 放到GlobalKey

都不符合(或body無法解析)就放fallback訊息到GlobalKey
保證回傳非空的FieldErrorMap，呼叫端永遠不會看到原始transport錯誤
*/
func Normalize(err error, fallback string) FieldErrorMap {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return NormalizeBody(apiErr.Body, fallback)
	}
	return Global(fallback)
}

func NormalizeBody(body []byte, fallback string) FieldErrorMap {
	if len(body) == 0 {
		return Global(fallback)
	}

	var probe struct {
		Errors      json.RawMessage `json:"errors"`
		FieldErrors json.RawMessage `json:"fieldErrors"`
		Message     json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return Global(fallback)
	}

	if len(probe.Errors) > 0 {
		var fieldMap map[string]string
		if err := json.Unmarshal(probe.Errors, &fieldMap); err == nil && len(fieldMap) > 0 {
			return FieldErrorMap(fieldMap)
		}
	}

	if len(probe.FieldErrors) > 0 {
		var records []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(probe.FieldErrors, &records); err == nil {
			folded := FieldErrorMap{}
			for _, r := range records {
				if r.Field != "" && r.Message != "" {
					folded[r.Field] = r.Message
				}
			}
			if folded.HasErrors() {
				return folded
			}
		}
	}

	if len(probe.Message) > 0 {
		var message string
		if err := json.Unmarshal(probe.Message, &message); err == nil && message != "" {
			return Global(message)
		}
	}

	return Global(fallback)
}
