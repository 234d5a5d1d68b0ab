package service

import (
	"net"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mileusna/useragent"
)

// Unknown is recorded when a header cannot be parsed.
const Unknown = "unknown"

const maxTerminalLen = 256

var terminalPattern = regexp.MustCompile(`\((.+?)\)`)

// ParseHostIP extracts the IP of an "ip:port" (or bare ip) host header.
func ParseHostIP(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if ip == nil {
		return Unknown
	}
	return ip.String()
}

// ParseTerminal returns the first parenthesised token of a User-Agent, e.g.
// "Windows NT 10.0; Win64; x64". Without one it falls back to the detected OS.
func ParseTerminal(userAgent string) string {
	if m := terminalPattern.FindStringSubmatch(userAgent); m != nil {
		return truncate(m[1], maxTerminalLen)
	}
	if os := useragent.Parse(userAgent).OS; os != "" {
		return os
	}
	return Unknown
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
