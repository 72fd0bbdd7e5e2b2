package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return recorder.Code, body
}

func TestHandleAPIErrorStampsTimestamp(t *testing.T) {
	status, body := handleError(t, apperrors.ErrJobNotFound)

	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
	if body.Success {
		t.Error("success should be false on error responses")
	}
	if body.Timestamp.IsZero() {
		t.Error("error envelope carries a zero timestamp")
	}
	if body.Error == nil || body.Error.Message == "" {
		t.Error("error detail missing from envelope")
	}
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrAuthRequired, 401},
		{apperrors.ErrPermissionDenied, 403},
		{apperrors.ErrEducationNotFound, 404},
		{apperrors.ErrSkillNotFound, 404},
		{apperrors.ErrAlreadyMember, 409},
		{apperrors.ErrValidationFailed, 400},
	}
	for _, tc := range cases {
		status, body := handleError(t, tc.err)
		if status != tc.want {
			t.Errorf("HandleAPIError(%v) status = %d, want %d", tc.err, status, tc.want)
		}
		if body.Timestamp.IsZero() {
			t.Errorf("HandleAPIError(%v) envelope has zero timestamp", tc.err)
		}
	}
}
