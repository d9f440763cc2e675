package filestorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRemoteRef(t *testing.T) {
	assert.True(t, IsRemoteRef("http://drive.google.com/file/abc"))
	assert.True(t, IsRemoteRef("https://drive.google.com/file/abc"))
	assert.False(t, IsRemoteRef("student-photos/123.jpg"))
	assert.False(t, IsRemoteRef(""))
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		ref     string
		want    string
	}{
		{
			name:    "empty ref",
			baseURL: "http://localhost:8080/uploads",
			ref:     "",
			want:    "",
		},
		{
			name:    "remote ref passes through",
			baseURL: "http://localhost:8080/uploads",
			ref:     "https://drive.google.com/file/abc",
			want:    "https://drive.google.com/file/abc",
		},
		{
			name:    "local ref joined with base",
			baseURL: "http://localhost:8080/uploads",
			ref:     "student-photos/123.jpg",
			want:    "http://localhost:8080/uploads/student-photos/123.jpg",
		},
		{
			name:    "extra slashes collapsed",
			baseURL: "http://localhost:8080/uploads/",
			ref:     "/student-photos/123.jpg",
			want:    "http://localhost:8080/uploads/student-photos/123.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.baseURL, tt.ref))
		})
	}
}

// Local references carry the "uploads/" prefix themselves, so resolving one
// against the server base URL must land on the static route exactly once.
func TestResolveURLLocalRefMatchesStaticRoute(t *testing.T) {
	ref := "uploads/student-photos/abc.jpg"

	resolved := ResolveURL("http://localhost:8080", ref)

	assert.Equal(t, "http://localhost:8080/uploads/student-photos/abc.jpg", resolved)
	assert.NotContains(t, resolved, "uploads/uploads")
}
