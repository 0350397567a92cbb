package model

import "testing"

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		name string
		link string
		want string
	}{
		{
			name: "youtube watch link",
			link: "https://www.youtube.com/watch?v=k_K9TMJ-Y6w",
			want: "https://www.youtube.com/embed/k_K9TMJ-Y6w?rel=0&modestbranding=1",
		},
		{
			name: "youtube short link",
			link: "https://youtu.be/k_K9TMJ-Y6w",
			want: "https://www.youtube.com/embed/k_K9TMJ-Y6w?rel=0&modestbranding=1",
		},
		{
			name: "google drive viewer link",
			link: "https://drive.google.com/file/d/abc123/view",
			want: "https://drive.google.com/file/d/abc123/preview",
		},
		{
			name: "plain article link passes through",
			link: "https://developer.mozilla.org/en-US/docs/Web/HTML",
			want: "https://developer.mozilla.org/en-US/docs/Web/HTML",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Material{Link: tc.link}
			if got := m.EmbedURL(); got != tc.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tc.link, got, tc.want)
			}
		})
	}
}
