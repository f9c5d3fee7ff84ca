package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"salon/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "SlotConflictError",
			failure: failure.SlotConflictError,
			code:    http.StatusConflict,
			message: "the selected time is no longer available, please choose another time",
		},
		{
			name:    "SubmissionInFlightError",
			failure: failure.SubmissionInFlightError,
			code:    http.StatusConflict,
			message: "a booking submission is already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}
		if f.Message != "custom bad request" {
			t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
		}
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusUnauthorized {
			t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
		}
		if f.Message != "token expired" {
			t.Errorf("expected message to be 'token expired', got %s", f.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("User not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "User not found" {
			t.Errorf("expected message to be 'User not found', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestCatalogUnavailable(t *testing.T) {
	result := failure.CatalogUnavailable(errors.New("connection refused"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusServiceUnavailable {
		t.Errorf("expected code to be %d, got %d", http.StatusServiceUnavailable, f.Code)
	}

	if !failure.Is(result, failure.KindCatalogUnavailable) {
		t.Errorf("expected kind %s, got %s", failure.KindCatalogUnavailable, f.Kind)
	}
}

func TestSlotCheckUnavailable(t *testing.T) {
	result := failure.SlotCheckUnavailable(nil)

	if failure.GetCode(result) != http.StatusServiceUnavailable {
		t.Errorf("expected code to be %d, got %d", http.StatusServiceUnavailable, failure.GetCode(result))
	}

	if !failure.Is(result, failure.KindSlotCheckUnavailable) {
		t.Error("expected slot check unavailable kind")
	}
}

func TestValidation(t *testing.T) {
	result := failure.Validation("email", "email must be a valid email address")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Field != "email" {
		t.Errorf("expected field to be 'email', got %s", f.Field)
	}
}

func TestNotificationFailure(t *testing.T) {
	if failure.NotificationFailure(nil) != nil {
		t.Error("expected nil for nil error")
	}

	if !failure.Is(failure.NotificationFailure(errors.New("smtp down")), failure.KindNotification) {
		t.Error("expected notification kind")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		kind     failure.Kind
		expected bool
	}{
		{
			name:     "slot conflict",
			input:    failure.SlotConflictError,
			kind:     failure.KindSlotConflict,
			expected: true,
		},
		{
			name:     "wrapped slot conflict",
			input:    fmt.Errorf("submit: %w", failure.SlotConflictError),
			kind:     failure.KindSlotConflict,
			expected: true,
		},
		{
			name:     "different kind",
			input:    failure.SubmissionInFlightError,
			kind:     failure.KindSlotConflict,
			expected: false,
		},
		{
			name:     "plain error",
			input:    errors.New("boom"),
			kind:     failure.KindSlotConflict,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.Is(tt.input, tt.kind) != tt.expected {
				t.Errorf("expected %v for %v", tt.expected, tt.input)
			}
		})
	}
}
