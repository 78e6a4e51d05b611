package shopify

import (
	"net/url"
	"strings"
)

// NextPageURL returns the target of the rel="next" entry in a Link header
// such as `<https://…?page_info=a>; rel="previous", <https://…?page_info=b>; rel="next"`.
// It reports false when there is no next page or its URL is not a usable
// absolute URL, so pagination stops instead of looping on a bad cursor.
func NextPageURL(header string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	for _, link := range strings.Split(header, ",") {
		segments := strings.Split(link, ";")
		if !hasNextRel(segments[1:]) {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			return "", false
		}
		raw := strings.TrimSpace(target[1 : len(target)-1])
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "", false
		}
		return raw, true
	}
	return "", false
}

func hasNextRel(params []string) bool {
	for _, p := range params {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), "rel") {
			continue
		}
		for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(v), `"`)) {
			if strings.EqualFold(rel, "next") {
				return true
			}
		}
	}
	return false
}
