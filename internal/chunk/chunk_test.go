package chunk

import (
	"encoding/json"
	"testing"
)

func TestBBox_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    BBox
		wantErr bool
	}{
		{"four numbers", `[1, 2.5, 3, 4]`, BBox{1, 2.5, 3, 4}, false},
		{"three numbers", `[1, 2, 3]`, BBox{}, true},
		{"five numbers", `[1, 2, 3, 4, 5]`, BBox{}, true},
		{"empty array", `[]`, BBox{}, true},
		{"not an array", `"1,2,3,4"`, BBox{}, true},
		{"non-numeric element", `[1, 2, "x", 4]`, BBox{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b BBox
			err := json.Unmarshal([]byte(tc.in), &b)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got bbox %v", b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b != tc.want {
				t.Errorf("got %v, want %v", b, tc.want)
			}
		})
	}
}

func TestBBox_UnmarshalInsideChunk(t *testing.T) {
	var c TextChunk
	err := json.Unmarshal([]byte(`{"text":"x","bbox":[1,2,3],"page":1}`), &c)
	if err == nil {
		t.Fatal("short bbox accepted inside a chunk")
	}
}
