package validator_test

import (
	"salon/shared/validator"
	"strings"
	"testing"
)

type clientTestStruct struct {
	Name  string `validate:"required"              json:"name"`
	Email string `validate:"required,email"        json:"email"`
	Phone string `validate:"required,phone"        json:"phone"`
	Kind  string `validate:"oneof=service package" json:"kind"`
	Slots int    `validate:"gte=0,lte=40"          json:"slots"`
}

type slotTestStruct struct {
	Date string `validate:"required,day"   json:"date"`
	Time string `validate:"required,clock" json:"time"`
}

func validClient() clientTestStruct {
	return clientTestStruct{
		Name:  "Ana Ruiz",
		Email: "ana@example.com",
		Phone: "+34 600 123 456",
		Kind:  "service",
		Slots: 2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *clientTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(_ *clientTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(c *clientTestStruct) { c.Name = "" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(c *clientTestStruct) { c.Email = "invalid-email" },
			expectError: true,
		},
		{
			name:        "invalid phone",
			mutate:      func(c *clientTestStruct) { c.Phone = "12ab" },
			expectError: true,
		},
		{
			name:        "slots out of range",
			mutate:      func(c *clientTestStruct) { c.Slots = 41 },
			expectError: true,
		},
		{
			name:        "invalid kind",
			mutate:      func(c *clientTestStruct) { c.Kind = "voucher" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validClient()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email", expectError: false},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid phone with prefix", field: "+34600123456", tag: "phone", expectError: false},
		{name: "valid phone with spaces", field: "600 12 34 56", tag: "phone", expectError: false},
		{name: "phone too short", field: "12345", tag: "phone", expectError: true},
		{name: "phone with letters", field: "600-abc-456", tag: "phone", expectError: true},
		{name: "valid day", field: "2025-06-02", tag: "day", expectError: false},
		{name: "invalid day", field: "02/06/2025", tag: "day", expectError: true},
		{name: "valid clock", field: "09:30", tag: "clock", expectError: false},
		{name: "clock without padding", field: "9:30", tag: "clock", expectError: true},
		{name: "clock out of range", field: "25:00", tag: "clock", expectError: true},
		{name: "valid oneof", field: "package", tag: "oneof=service package", expectError: false},
		{name: "invalid oneof", field: "voucher", tag: "oneof=service package", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"date":"2025-06-02","time":"10:00"}`,
			expectError: false,
		},
		{
			name:        "invalid time",
			jsonBody:    `{"date":"2025-06-02","time":"10h"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"date":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data slotTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &clientTestStruct{Kind: "service"}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if err.Error() != "name is required" {
		t.Errorf("expected message using the json field name, got: %s", err.Error())
	}
}

func TestFieldErrors(t *testing.T) {
	valid := validClient()
	if fields := validator.FieldErrors(&valid); fields != nil {
		t.Fatalf("expected no field errors, got: %v", fields)
	}

	invalid := validClient()
	invalid.Email = "nope"
	invalid.Phone = "x"

	fields := validator.FieldErrors(&invalid)
	if len(fields) != 2 {
		t.Fatalf("expected two field errors, got: %v", fields)
	}

	if fields["email"] != "email must be a valid email address" {
		t.Errorf("unexpected email message: %q", fields["email"])
	}

	if fields["phone"] != "phone must be a valid phone number" {
		t.Errorf("unexpected phone message: %q", fields["phone"])
	}
}
