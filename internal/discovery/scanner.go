package discovery

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/fcurrie/ledsign-golang/internal/types"
)

// Scanner probes the local IPv4 networks for hosts answering on the feed
// port, so a sign can find its text source without manual configuration.
type Scanner struct {
	config types.DiscoveryConfig
}

// NewScanner creates a new feed server scanner
func NewScanner(config types.DiscoveryConfig) *Scanner {
	return &Scanner{config: config}
}

// Result represents a host that accepted a connection on the feed port
type Result struct {
	Host string
	Port int
}

// Scan probes every reachable IPv4 network attached to this machine
func (s *Scanner) Scan(ctx context.Context) ([]Result, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get network interfaces: %w", err)
	}

	var results []Result
	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addresses, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addresses {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.To4() == nil || ipNet.IP.IsLinkLocalUnicast() {
				continue
			}
			found, err := s.scanRange(ctx, ipNet)
			if err != nil {
				return results, err
			}
			results = append(results, found...)
		}
	}
	return results, nil
}

// scanRange probes the last-octet host range of one /24-or-smaller network
func (s *Scanner) scanRange(ctx context.Context, ipNet *net.IPNet) ([]Result, error) {
	network := ipNet.IP.Mask(ipNet.Mask).To4()
	if network == nil {
		return nil, nil
	}

	timeout := time.Duration(s.config.Timeout) * time.Second
	found := make(chan Result, 254)
	var wg sync.WaitGroup

	for i := 1; i < 255; i++ {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		ip := make(net.IP, 4)
		copy(ip, network)
		ip[3] = byte(i)
		if ip.Equal(ipNet.IP.To4()) {
			continue // skip ourselves
		}

		wg.Add(1)
		go func(host string) {
			defer wg.Done()
			address := net.JoinHostPort(host, strconv.Itoa(s.config.Port))
			conn, err := net.DialTimeout("tcp", address, timeout)
			if err != nil {
				return
			}
			conn.Close()
			found <- Result{Host: host, Port: s.config.Port}
		}(ip.String())
	}

	wg.Wait()
	close(found)

	var results []Result
	for r := range found {
		results = append(results, r)
	}
	return results, nil
}
