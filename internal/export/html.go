// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// pageStyle is shared by both HTML variants so a document looks the same
// whichever way it was produced.
const pageStyle = `    body { font-family: 'Segoe UI', Arial, sans-serif; max-width: 800px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #222; }
    h1 { color: #1a1a2e; border-bottom: 2px solid #1a1a2e; padding-bottom: 8px; }
    h2 { color: #16213e; margin-top: 32px; }
    blockquote { border-left: 4px solid #ccc; margin-left: 0; padding-left: 16px; color: #555; }
    code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; }`

// scriptEscaper makes Markdown safe to embed in a JavaScript template
// literal: backslashes first, then backticks and interpolation markers.
var scriptEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"$", `\$`,
)

// RenderHTML produces a self-contained page that renders the Markdown in
// the browser with marked.js pulled from a CDN. The document text never
// passes through a server-side converter, so what the reader sees tracks
// whatever marked.js supports.
func RenderHTML(title, markdown string) []byte {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
  <style>
%s
  </style>
</head>
<body>
  <div id="content"></div>
  <script>
    const source = `+"`%s`"+`;
    document.getElementById("content").innerHTML = marked.parse(source);
  </script>
</body>
</html>
`, html.EscapeString(title), pageStyle, scriptEscaper.Replace(markdown))
	return []byte(page)
}

// RenderHTMLInline converts the Markdown server-side and produces a page
// with no external dependencies, for readers without network access.
func RenderHTMLInline(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <style>
%s
  </style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), pageStyle, body.String())
	return []byte(page), nil
}
