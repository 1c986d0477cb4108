package discovery

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hue-mcp/internal/domain/model"
)

const ssdpMulticast = "239.255.255.250:1900"

const mSearch = "M-SEARCH * HTTP/1.1\r\n" +
	"HOST: 239.255.255.250:1900\r\n" +
	"MAN: \"ssdp:discover\"\r\n" +
	"MX: 2\r\n" +
	"ST: urn:schemas-upnp-org:device:basic:1\r\n\r\n"

// SSDPLocator multicasts an M-SEARCH and accepts the first reply whose SERVER header
// names the IpBridge firmware.
type SSDPLocator struct {
	target  string
	timeout time.Duration
}

func NewSSDPLocator(timeout time.Duration) *SSDPLocator {
	return &SSDPLocator{target: ssdpMulticast, timeout: timeout}
}

func (s *SSDPLocator) Locate(ctx context.Context) (string, error) {
	dest, err := net.ResolveUDPAddr("udp4", s.target)
	if err != nil {
		return "", &model.DiscoveryError{Reason: "ssdp address", Err: err}
	}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return "", &model.DiscoveryError{Reason: "ssdp socket", Err: err}
	}
	defer conn.Close()

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return "", &model.DiscoveryError{Reason: "ssdp socket", Err: err}
	}

	// Unblock the read loop if the caller gives up first.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	if _, err := conn.WriteToUDP([]byte(mSearch), dest); err != nil {
		return "", &model.DiscoveryError{Reason: "ssdp search", Err: err}
	}

	buf := make([]byte, 2048)
	for {
		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			return "", &model.DiscoveryError{Reason: "no bridge answered ssdp search", Err: err}
		}
		if host, ok := parseSSDPResponse(string(buf[:n]), src); ok {
			return host, nil
		}
	}
}

// parseSSDPResponse extracts the bridge host from an M-SEARCH reply, preferring
// the LOCATION header over the packet's source address.
func parseSSDPResponse(msg string, src *net.UDPAddr) (string, bool) {
	resp, err := http.ReadResponse(bufio.NewReader(strings.NewReader(msg)), nil)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if !strings.Contains(resp.Header.Get("Server"), "IpBridge") {
		return "", false
	}

	if loc, err := url.Parse(resp.Header.Get("Location")); err == nil && loc.Hostname() != "" {
		return loc.Hostname(), true
	}
	if src != nil {
		return src.IP.String(), true
	}
	return "", false
}
