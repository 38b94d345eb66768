package refstore

import (
	"net/url"
	"strings"
)

// splitFragment splits s at the first '#'.
func splitFragment(s string) (uri, fragment string, hasFragment bool) {
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// normalizePercent applies RFC 3986 section 6.2.2 percent-encoding
// normalization: escaped unreserved characters are decoded and the hex digits
// of the remaining escapes are uppercased.
func normalizePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+2 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			b.WriteByte(s[i])
			continue
		}
		c := hi<<4 | lo
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteString(strings.ToUpper(s[i : i+3]))
		}
		i += 2
	}
	return b.String()
}

// canonical serializes u with a lowercased host and dot segments removed.
// url.Parse already lowercases the scheme.
func canonical(u *url.URL) string {
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Opaque == "" {
		setEscapedPath(u, removeDotSegments(u.EscapedPath()))
	}
	return u.String()
}

func setEscapedPath(u *url.URL, escaped string) {
	p, err := url.PathUnescape(escaped)
	if err != nil {
		return
	}
	u.Path = p
	u.RawPath = escaped
}

// removeDotSegments implements RFC 3986 section 5.2.4. Relative paths stay
// relative, and a "../" that climbs past the first segment is dropped.
func removeDotSegments(in string) string {
	if !strings.Contains(in, ".") {
		return in
	}
	rooted := strings.HasPrefix(in, "/")
	var out strings.Builder
	out.Grow(len(in))
	trimLast := func() {
		s := out.String()
		i := strings.LastIndexByte(s, '/')
		out.Reset()
		if i > 0 {
			out.WriteString(s[:i])
		}
	}
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			trimLast()
		case in == "/..":
			in = "/"
			trimLast()
		case in == "." || in == "..":
			in = ""
		default:
			seg := in
			if i := strings.IndexByte(in[1:], '/'); i >= 0 {
				seg = in[:i+1]
			}
			out.WriteString(seg)
			in = in[len(seg):]
		}
	}
	if !rooted {
		return strings.TrimPrefix(out.String(), "/")
	}
	return out.String()
}

// normalizeBase normalizes a document base URI. It reports whether the URI
// carried a fragment, which base URIs may not.
func normalizeBase(raw string) (string, bool, error) {
	uri, _, hasFragment := splitFragment(normalizePercent(raw))
	if hasFragment {
		return "", true, nil
	}
	if uri == "" {
		return "", false, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", false, err
	}
	return canonical(u), false, nil
}

// resolve resolves ref against base (a normalized URI without fragment) and
// returns the target document URI and the raw fragment.
func resolve(base, ref string) (docURI, fragment string, err error) {
	uri, fragment, _ := splitFragment(normalizePercent(ref))
	if uri == "" {
		return base, fragment, nil
	}
	r, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}
	if base == "" || r.Scheme != "" || r.Host != "" {
		return canonical(r), fragment, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", "", err
	}
	if b.Scheme != "" || b.Host != "" || strings.HasPrefix(b.Path, "/") {
		return canonical(b.ResolveReference(r)), fragment, nil
	}
	return canonical(mergeRelative(b, r)), fragment, nil
}

// mergeRelative resolves r against a base that is itself a relative path,
// which url.ResolveReference would root at "/".
func mergeRelative(b, r *url.URL) *url.URL {
	merged := &url.URL{RawQuery: r.RawQuery}
	switch ref := r.EscapedPath(); {
	case ref == "":
		setEscapedPath(merged, b.EscapedPath())
		if r.RawQuery == "" {
			merged.RawQuery = b.RawQuery
		}
	case strings.HasPrefix(ref, "/"):
		setEscapedPath(merged, ref)
	default:
		dir := b.EscapedPath()
		dir = dir[:strings.LastIndexByte(dir, '/')+1]
		setEscapedPath(merged, dir+ref)
	}
	return merged
}
