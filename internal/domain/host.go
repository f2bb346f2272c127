package domain

// HostReport is the payload published to the inventory service.
type HostReport struct {
	AgentID      string           `json:"agent_id"`
	Fingerprint  string           `json:"fingerprint"`
	Hostname     string           `json:"hostname"`
	AgentVersion string           `json:"agent_version"`
	Report       CapabilityReport `json:"report"`
}
