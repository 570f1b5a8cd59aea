package tablequery

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantRows  int
		wantTotal int
	}{
		{"bare array", `[{"id":1},{"id":2},{"id":3}]`, 3, 3},
		{"data envelope with total", `{"data":[{"id":1}],"total":42}`, 1, 42},
		{"data envelope no total", `{"data":[{"id":1},{"id":2}]}`, 2, 2},
		{"items envelope", `{"items":[{"id":1}]}`, 1, 1},
		{"results envelope", `{"results":[{"id":1}]}`, 1, 1},
		{"rows is not an envelope key", `{"rows":[{"id":1}]}`, 0, 0},
		{"data preferred over results", `{"results":[{"id":9}],"data":[{"id":1},{"id":2}]}`, 2, 2},
		{"unknown object fails soft", `{"foo":"bar"}`, 0, 0},
		{"scalar fails soft", `17`, 0, 0},
		{"empty array", `[]`, 0, 0},
		{"empty body", ``, 0, 0},
		{"total without rows", `{"total":7}`, 0, 7},
		{"non-object rows skipped", `{"data":[{"id":1},5,"x"]}`, 1, 1},
		{"bare array counts non-objects", `[1,2,3]`, 0, 3},
		{"bare array mixed", `[{"id":1},2,3]`, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Normalize([]byte(tt.raw))
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Rows) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(res.Rows), tt.wantRows)
			}
			if res.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", res.Total, tt.wantTotal)
			}
			if res.Rows == nil {
				t.Error("rows must never be nil")
			}
		})
	}
}

func TestNormalizeMalformed(t *testing.T) {
	if _, err := Normalize([]byte(`{"data":`)); err == nil {
		t.Error("expected error on malformed JSON")
	}
}

func TestNormalizeRowContents(t *testing.T) {
	res, err := Normalize([]byte(`{"data":[{"id":5,"number":"4915","user":{"name":"ops"}}],"total":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d", len(res.Rows))
	}
	r := res.Rows[0]
	if r["number"] != "4915" {
		t.Errorf("number = %v", r["number"])
	}
	if nested, ok := r["user"].(map[string]any); !ok || nested["name"] != "ops" {
		t.Errorf("user = %v", r["user"])
	}
}
