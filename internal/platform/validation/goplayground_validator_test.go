package validation_test

import (
	"testing"

	"github.com/adisatrio/mindskit/internal/platform/validation"
)

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type question struct {
		Question string `json:"question" validate:"required,max=4000"`
	}

	tests := []struct {
		name     string
		given    any
		field    string
		errMsg   string
		hasError bool
	}{
		{
			name:     "required field is present",
			given:    question{Question: "what data can I query?"},
			field:    "question",
			hasError: false,
		},
		{
			name:     "required field is missing",
			given:    question{},
			field:    "question",
			errMsg:   "question is required",
			hasError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if errs != nil && !tc.hasError {
				t.Errorf("v.ValidateStruct(%v) = %+v, want: %+v", tc.given, errs, nil)
			}

			gotMsg, wantMsg := errs[tc.field], tc.errMsg
			if gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}
