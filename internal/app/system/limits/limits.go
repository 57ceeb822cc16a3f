package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize caps ordinary form posts (status changes, replies, login).
	MaxFormSize = 64 << 10 // 64 KB

	// MaxBlogFormSize caps blog editor submissions, which carry HTML content.
	MaxBlogFormSize = 1 << 20 // 1 MB

	// MaxUploadSize caps multipart blog posts with a featured image. It
	// leaves room for the form fields on top of uploads.MaxImageBytes.
	MaxUploadSize = 6 << 20 // 6 MB

	// MaxProxyBodySize caps JSON bodies relayed through /api.
	MaxProxyBodySize = 2 << 20 // 2 MB
)
