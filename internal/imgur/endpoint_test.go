package imgur

import "testing"

func TestEndpointJoin(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		segment string
		want    string
	}{
		{"plain segment", "https://api.imgur.com/3", "image", "https://api.imgur.com/3/image"},
		{"root with trailing slash", "https://api.imgur.com/3/", "image", "https://api.imgur.com/3/image"},
		{"segment with leading slash", "https://api.imgur.com/3", "/image", "https://api.imgur.com/3/image"},
		{"segment with trailing slash", "https://api.imgur.com/3", "image/", "https://api.imgur.com/3/image"},
		{"segment wrapped in slashes", "https://api.imgur.com/3", "/image/", "https://api.imgur.com/3/image"},
		{"empty segment is a no-op", "https://api.imgur.com/3", "", "https://api.imgur.com/3"},
		{"slash-only segment is a no-op", "https://api.imgur.com/3", "///", "https://api.imgur.com/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Endpoint(tt.root).Join(tt.segment).String(); got != tt.want {
				t.Errorf("Endpoint(%q).Join(%q) = %q, want %q", tt.root, tt.segment, got, tt.want)
			}
		})
	}
}

func TestEndpointJoin_Equivalence(t *testing.T) {
	root := Endpoint("https://api.imgur.com/3")

	chained := root.Join("a").Join("b")
	single := root.Join("a/b")
	if chained != single {
		t.Errorf("Join(a).Join(b) = %q, Join(a/b) = %q", chained, single)
	}

	messy := root.Join("/a/").Join("b/")
	if messy != chained {
		t.Errorf("separator normalization broken: %q != %q", messy, chained)
	}
}

func TestEndpointJoin_DoesNotMutate(t *testing.T) {
	root := Endpoint("https://api.imgur.com/3")
	_ = root.Join("image")
	if root.String() != "https://api.imgur.com/3" {
		t.Errorf("root mutated: %q", root)
	}
}
