package network

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const httpOnlyPrefix = "#HttpOnly_"

// LoadCookies reads a Netscape cookie file. A missing file yields no cookies and no error.
func LoadCookies(fsys afero.Fs, path string) ([]*http.Cookie, error) {
	if path == "" {
		return nil, nil
	}

	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open cookie file: %w", err)
	}
	defer f.Close()

	var cookies []*http.Cookie
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if cookie, ok := parseCookieLine(scanner.Text()); ok {
			cookies = append(cookies, cookie)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cookie file: %w", err)
	}

	return cookies, nil
}

// parseCookieLine parses "domain flag path secure expiry name value".
func parseCookieLine(line string) (*http.Cookie, bool) {
	line = strings.TrimRight(line, "\r\n")

	httpOnly := strings.HasPrefix(line, httpOnlyPrefix)
	if httpOnly {
		line = strings.TrimPrefix(line, httpOnlyPrefix)
	}

	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 7 {
		return nil, false
	}

	cookie := &http.Cookie{
		Domain:   strings.TrimPrefix(fields[0], "."),
		Path:     fields[2],
		Secure:   strings.EqualFold(fields[3], "TRUE"),
		Name:     fields[5],
		Value:    strings.Join(fields[6:], "\t"),
		HttpOnly: httpOnly,
	}

	if expiry, err := strconv.ParseInt(fields[4], 10, 64); err == nil && expiry > 0 {
		cookie.Expires = time.Unix(expiry, 0)
	}

	return cookie, cookie.Name != "" && cookie.Domain != ""
}

func setCookies(jar *cookiejar.Jar, cookies []*http.Cookie) {
	byDomain := lo.GroupBy(cookies, func(c *http.Cookie) string {
		return c.Domain
	})

	for domain, group := range byDomain {
		scheme := lo.Ternary(lo.SomeBy(group, func(c *http.Cookie) bool { return c.Secure }), "https", "http")
		jar.SetCookies(&url.URL{Scheme: scheme, Host: domain, Path: "/"}, group)
	}
}
