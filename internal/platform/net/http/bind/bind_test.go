package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "taller/internal/platform/errors"
)

type payload struct {
	Text  string `json:"text" validate:"required,max=10"`
	Count int    `json:"count" validate:"min=0"`
}

func req(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		body      string
		wantCode  perr.ErrorCode
		wantField string
		wantMsg   string
	}{
		{name: "ok", body: `{"text":"freno","count":1}`},
		{name: "empty", body: ``, wantCode: perr.ErrorCodeJSON},
		{name: "malformed", body: `{"text":`, wantCode: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"text":"a","extra":1}`, wantCode: perr.ErrorCodeJSON},
		{name: "trailing", body: `{"text":"a"} {"text":"b"}`, wantCode: perr.ErrorCodeJSON},
		{name: "missing required", body: `{"count":1}`, wantCode: perr.ErrorCodeValidation, wantField: "text"},
		{name: "too long", body: `{"text":"abcdefghijkl"}`, wantCode: perr.ErrorCodeValidation, wantField: "text", wantMsg: "text must be at most 10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON[payload](req(tc.body))
			if tc.wantCode == perr.ErrorCodeUnknown {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Text != "freno" || got.Count != 1 {
					t.Fatalf("decoded %+v", got)
				}
				return
			}
			if !perr.IsCode(err, tc.wantCode) {
				t.Fatalf("code=%v want %v (err=%v)", perr.CodeOf(err), tc.wantCode, err)
			}
			w := perr.WireFrom(err)
			if tc.wantField != "" && w.Field != tc.wantField {
				t.Fatalf("field=%q want %q", w.Field, tc.wantField)
			}
			if tc.wantMsg != "" && w.Message != tc.wantMsg {
				t.Fatalf("msg=%q want %q", w.Message, tc.wantMsg)
			}
		})
	}
}

type tagged struct {
	Kind string `json:"kind" validate:"shout"`
}

// registers on the shared validator, so it stays serial
func TestRegister_CustomTag(t *testing.T) {
	if err := Register("shout", "{0} must be upper case", func(fl FieldLevel) bool {
		return strings.ToUpper(fl.Field().String()) == fl.Field().String()
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Validate(tagged{Kind: "PART"}); err != nil {
		t.Fatalf("valid value rejected: %v", err)
	}
	err := Validate(tagged{Kind: "part"})
	if w := perr.WireFrom(err); w.Message != "kind must be upper case" || w.Field != "kind" {
		t.Fatalf("wire=%+v", w)
	}
}
