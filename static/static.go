// Package static embeds the stylesheet and the motion runtime.
package static

import "embed"

//go:embed site.css motion.js
var FS embed.FS
