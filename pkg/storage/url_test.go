package storage

import "testing"

func TestProductImageURLPassthrough(t *testing.T) {
	base := "https://shop-images.s3.eu-west-1.amazonaws.com"

	for _, ref := range []string{
		"https://cdn.example.com/x.jpg",
		"http://cdn.example.com/x.jpg",
	} {
		if got := ProductImageURL(base, ref); got != ref {
			t.Errorf("ProductImageURL(%q) = %q, want unchanged", ref, got)
		}
	}
}

func TestProductImageURLSynthesis(t *testing.T) {
	base := "https://shop-images.s3.eu-west-1.amazonaws.com"
	want := "https://shop-images.s3.eu-west-1.amazonaws.com/products/42.jpg"

	if got := ProductImageURL(base, "42.jpg"); got != want {
		t.Errorf("ProductImageURL(42.jpg) = %q, want %q", got, want)
	}

	// A trailing slash on the base must not double up.
	if got := ProductImageURL(base+"/", "42.jpg"); got != want {
		t.Errorf("ProductImageURL with trailing slash = %q, want %q", got, want)
	}
}

func TestProductImageURLEmptyRef(t *testing.T) {
	if got := ProductImageURL("https://bucket.s3.us-east-1.amazonaws.com", ""); got != "" {
		t.Errorf("empty reference should stay empty, got %q", got)
	}
}
