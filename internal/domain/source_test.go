package domain

import "testing"

func TestSourceOf(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain domain", url: "https://techcrunch.com/a/b", want: "techcrunch.com"},
		{name: "subdomain stripped", url: "https://www.nytimes.com/2024/article", want: "nytimes.com"},
		{name: "multi-part suffix kept imperfect", url: "https://news.bbc.co.uk/x", want: "co.uk"},
		{name: "single label", url: "https://localhost/x", want: "localhost"},
		{name: "host with port", url: "http://example.com:8080/page", want: "example.com"},
		{name: "deep subdomains", url: "https://a.b.c.example.org/", want: "example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SourceOf(tt.url)
			if got != tt.want {
				t.Errorf("SourceOf(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
