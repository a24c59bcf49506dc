package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type target struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name        string
		body        string
		want        target
		wantErr     error
		errContains string
	}{
		{name: "valid json", body: `{"name": "test", "age": 30}`, want: target{Name: "test", Age: 30}},
		{name: "unknown fields ignored", body: `{"name": "test", "extra": true}`, want: target{Name: "test"}},
		{name: "invalid json", body: `{"name": "test",}`, errContains: "invalid character"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.body))

			var got target
			err := DecodeJSON(req, &got)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target struct{}
	err := DecodeJSON(req, &target)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type selfValidating struct {
	Name string `validate:"required"`
}

func (v *selfValidating) Validate() error {
	if v.Name == "invalid" {
		return errors.New("name is invalid")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type tagged struct {
		LessonID string `validate:"required"`
	}

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{name: "self validating ok", req: &selfValidating{Name: "test"}},
		{name: "self validating fails", req: &selfValidating{Name: "invalid"}, wantErr: true},
		{name: "self validating skips tags", req: &selfValidating{}},
		{name: "tags ok", req: &tagged{LessonID: "l1"}},
		{name: "tags fail", req: &tagged{}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if _, ok := tc.req.(*tagged); ok {
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			}
		})
	}
}
