package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBody_ErrorsObject(t *testing.T) {
	body := []byte(`{"errors": {"price": "must be positive"}}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{"price": "must be positive"}, result)
}

func TestNormalizeBody_FieldErrorsArray(t *testing.T) {
	body := []byte(`{"fieldErrors": [{"field": "name", "message": "required"}]}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{"name": "required"}, result)
}

func TestNormalizeBody_FieldErrorsArray_LastOccurrenceWins(t *testing.T) {
	body := []byte(`{"fieldErrors": [
		{"field": "name", "message": "too short"},
		{"field": "stock", "message": "negative"},
		{"field": "name", "message": "required"}
	]}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{"name": "required", "stock": "negative"}, result)
}

func TestNormalizeBody_MessageString(t *testing.T) {
	body := []byte(`{"message": "boom"}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "boom"}, result)
}

func TestNormalizeBody_PriorityOrder(t *testing.T) {
	// errors物件優先於fieldErrors與message
	body := []byte(`{
		"errors": {"price": "must be positive"},
		"fieldErrors": [{"field": "name", "message": "required"}],
		"message": "boom"
	}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{"price": "must be positive"}, result)
}

func TestNormalizeBody_UnparseableBody(t *testing.T) {
	result := NormalizeBody([]byte(`<html>502 Bad Gateway</html>`), "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "creation failed"}, result)
}

func TestNormalizeBody_EmptyBody(t *testing.T) {
	result := NormalizeBody(nil, "status update failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "status update failed"}, result)
}

func TestNormalizeBody_UnrecognizedShape(t *testing.T) {
	result := NormalizeBody([]byte(`{"detail": "unexpected"}`), "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "creation failed"}, result)
}

func TestNormalizeBody_ErrorsWrongType_FallsThrough(t *testing.T) {
	// errors不是物件時要往下嘗試其他格式
	body := []byte(`{"errors": ["oops"], "message": "boom"}`)

	result := NormalizeBody(body, "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "boom"}, result)
}

func TestNormalize_APIError(t *testing.T) {
	err := &APIError{StatusCode: 400, Body: []byte(`{"message": "boom"}`)}

	result := Normalize(err, "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "boom"}, result)
}

func TestNormalize_TransportError(t *testing.T) {
	result := Normalize(errors.New("dial tcp: connection refused"), "creation failed")

	require.Equal(t, FieldErrorMap{GlobalKey: "creation failed"}, result)
}

func TestNormalize_AlwaysNonEmpty(t *testing.T) {
	bodies := [][]byte{nil, {}, []byte(`{}`), []byte(`null`), []byte(`""`), []byte(`{"errors": {}}`), []byte(`{"fieldErrors": []}`)}
	for _, body := range bodies {
		result := NormalizeBody(body, "fallback")
		require.True(t, result.HasErrors(), "body %q must yield a non-empty map", body)
		require.Equal(t, "fallback", result.Global())
	}
}
