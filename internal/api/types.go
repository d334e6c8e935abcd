package api

// EmailCheckRequest represents the POST /email/check request.
type EmailCheckRequest struct {
	Email string `json:"email"`
}

// EmailCheckResponse represents the POST /email/check response.
// Every field is optional on the wire.
type EmailCheckResponse struct {
	Email        string `json:"email"`
	Domain       string `json:"domain"`
	IsDisposable bool   `json:"is_disposable"`
}

// IPCheckRequest represents the POST /ip/check request.
type IPCheckRequest struct {
	IP string `json:"ip"`
}

// IPCheckResponse represents the POST /ip/check response.
type IPCheckResponse struct {
	IP             string     `json:"ip"`
	Classification string     `json:"classification"`
	Confidence     float64    `json:"confidence"`
	Signals        *IPSignals `json:"signals"`
	Network        *IPNetwork `json:"network"`
	Geo            *IPGeo     `json:"geo"`
}

// IPSignals holds the boolean detection signals of an IP check.
type IPSignals struct {
	IsHosting     bool `json:"is_hosting"`
	IsResidential bool `json:"is_residential"`
	IsMobile      bool `json:"is_mobile"`
	IsVPN         bool `json:"is_vpn"`
	IsTor         bool `json:"is_tor"`
	IsProxy       bool `json:"is_proxy"`
}

// IPNetwork describes the network an IP belongs to.
type IPNetwork struct {
	ASN      *int    `json:"asn"`
	Org      *string `json:"org"`
	Provider *string `json:"provider"`
}

// IPGeo holds coarse geolocation for an IP.
type IPGeo struct {
	Country *string `json:"country"`
	Region  *string `json:"region"`
}
