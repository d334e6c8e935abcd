package sec4dev

import (
	"context"

	"github.com/sec4dev/sec4dev-go/internal/api"
)

// IPClassification is the primary category assigned to an IP address.
type IPClassification string

// Known classifications. The API may add more; compare against these but
// do not assume the set is closed.
const (
	ClassificationHosting     IPClassification = "hosting"
	ClassificationResidential IPClassification = "residential"
	ClassificationMobile      IPClassification = "mobile"
	ClassificationVPN         IPClassification = "vpn"
	ClassificationTor         IPClassification = "tor"
	ClassificationProxy       IPClassification = "proxy"
	ClassificationUnknown     IPClassification = "unknown"
)

// IPSignals holds the individual detection signals.
type IPSignals struct {
	IsHosting     bool `json:"is_hosting"`
	IsResidential bool `json:"is_residential"`
	IsMobile      bool `json:"is_mobile"`
	IsVPN         bool `json:"is_vpn"`
	IsTor         bool `json:"is_tor"`
	IsProxy       bool `json:"is_proxy"`
}

// IPNetwork describes the owning network. Nil fields were not reported.
type IPNetwork struct {
	ASN      *int    `json:"asn"`
	Org      *string `json:"org"`
	Provider *string `json:"provider"`
}

// IPGeo is coarse geolocation. Nil fields were not reported.
type IPGeo struct {
	Country *string `json:"country"`
	Region  *string `json:"region"`
}

// IPCheckResult is the outcome of an IP reputation check.
type IPCheckResult struct {
	IP             string           `json:"ip"`
	Classification IPClassification `json:"classification"`
	Confidence     float64          `json:"confidence"`
	Signals        IPSignals        `json:"signals"`
	Network        IPNetwork        `json:"network"`
	Geo            IPGeo            `json:"geo"`
}

// IPService looks up IP address reputation.
type IPService struct {
	api *api.Client
}

// Check validates ip locally (IPv4 or IPv6), then retrieves its reputation.
func (s *IPService) Check(ctx context.Context, ip string) (*IPCheckResult, error) {
	trimmed, err := validateIP(ip)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.CheckIP(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return newIPCheckResult(resp), nil
}

// IsHosting reports whether ip belongs to a hosting provider.
func (s *IPService) IsHosting(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsHosting })
}

// IsVPN reports whether ip is a known VPN exit.
func (s *IPService) IsVPN(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsVPN })
}

// IsTor reports whether ip is a Tor exit node.
func (s *IPService) IsTor(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsTor })
}

// IsResidential reports whether ip is a residential address.
func (s *IPService) IsResidential(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsResidential })
}

// IsMobile reports whether ip belongs to a mobile carrier.
func (s *IPService) IsMobile(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsMobile })
}

// IsProxy reports whether ip is a known proxy.
func (s *IPService) IsProxy(ctx context.Context, ip string) (bool, error) {
	return s.signal(ctx, ip, func(sig IPSignals) bool { return sig.IsProxy })
}

func (s *IPService) signal(ctx context.Context, ip string, pick func(IPSignals) bool) (bool, error) {
	result, err := s.Check(ctx, ip)
	if err != nil {
		return false, err
	}
	return pick(result.Signals), nil
}

func newIPCheckResult(resp *api.IPCheckResponse) *IPCheckResult {
	result := &IPCheckResult{
		IP:             resp.IP,
		Classification: IPClassification(resp.Classification),
		Confidence:     resp.Confidence,
	}
	if result.Classification == "" {
		result.Classification = ClassificationUnknown
	}
	if sig := resp.Signals; sig != nil {
		result.Signals = IPSignals(*sig)
	}
	if n := resp.Network; n != nil {
		result.Network = IPNetwork{ASN: n.ASN, Org: n.Org, Provider: n.Provider}
	}
	if g := resp.Geo; g != nil {
		result.Geo = IPGeo{Country: g.Country, Region: g.Region}
	}
	return result
}
