package dates

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	feb1 := New(2023, time.February, 1)

	cases := []struct {
		name string
		in   *string
		want *Date
	}{
		{"nil", nil, nil},
		{"dmy", strPtr("01/02/2023"), &feb1},
		{"iso", strPtr("2023-02-01"), &feb1},
		{"rfc3339 timestamp", strPtr("2023-02-01T18:30:00.000Z"), &feb1},
		{"garbage", strPtr("not-a-date"), nil},
		{"iso with slash picks dmy", strPtr("2023/02/01"), nil},
		{"month out of range", strPtr("01/13/2023"), nil},
		{"empty", strPtr(""), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %s", got)
				}
				return
			}
			if got == nil || !got.Equal(*tc.want) {
				t.Fatalf("expected %s, got %v", tc.want, got)
			}
		})
	}
}

func TestParseStrict_DistinguishesAbsentFromInvalid(t *testing.T) {
	d, err := ParseStrict(nil)
	if err != nil || d != nil {
		t.Fatalf("absent: expected (nil, nil), got (%v, %v)", d, err)
	}

	d, err = ParseStrict(strPtr("31/02/2023"))
	if !errors.Is(err, ErrInvalidDate) || d != nil {
		t.Fatalf("invalid: expected ErrInvalidDate, got (%v, %v)", d, err)
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2020, time.March, 9)
	b, err := json.Marshal(struct {
		D *Date `json:"d"`
		N *Date `json:"n"`
	}{D: &d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"d":"2020-03-09","n":null}` {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestNullable_Scan(t *testing.T) {
	var n Nullable
	if err := n.Scan(nil); err != nil || n.Valid {
		t.Fatalf("nil scan: valid=%v err=%v", n.Valid, err)
	}

	for _, src := range []any{
		time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC),
		"2021-07-04",
		[]byte("2021-07-04 00:00:00+00:00"),
	} {
		var n Nullable
		if err := n.Scan(src); err != nil {
			t.Fatalf("scan %T: %v", src, err)
		}
		if !n.Valid || n.Ptr().String() != "2021-07-04" {
			t.Fatalf("scan %T: got %v", src, n.Ptr())
		}
	}
}

func TestPolicy(t *testing.T) {
	bad := strPtr("32/01/2020")

	d, err := Policy{}.Parse(bad)
	if err != nil || d != nil {
		t.Fatalf("lenient: expected (nil, nil), got (%v, %v)", d, err)
	}

	_, err = Policy{Strict: true}.Parse(bad)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("strict: expected ErrInvalidDate, got %v", err)
	}

	d, err = Policy{Strict: true}.Parse(strPtr("2020-01-31"))
	if err != nil || d.String() != "2020-01-31" {
		t.Fatalf("strict valid: got (%v, %v)", d, err)
	}
}
