package cricketapi

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// buildCurlPreview renders a copy-pasteable curl command for a JSON request.
func buildCurlPreview(method, fullURL, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart(method)
	appendPart(shellQuote(fullURL))
	appendPart("-H")
	appendPart(shellQuote("Accept: application/json"))
	if body != "" {
		appendPart("-H")
		appendPart(shellQuote("Content-Type: application/json"))
		appendPart("-d")
		appendPart(shellQuote(body))
	}

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}
