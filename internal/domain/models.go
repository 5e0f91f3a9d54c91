// Package domain contains the models served by the discovery endpoint
package domain

// ServiceHost is the host part of every advertised address
const ServiceHost = "localhost"

// ServiceAddress is a host:port pair, always rendered as localhost:<port>
type ServiceAddress string

// NewServiceAddress builds the address for a port
func NewServiceAddress(port string) ServiceAddress {
	return ServiceAddress(ServiceHost + ":" + port)
}

// String returns the address as a string
func (a ServiceAddress) String() string {
	return string(a)
}

// Document is the response body of a discovery request
type Document struct {
	Main     ServiceAddress            `json:"main"`
	Projects map[string]ServiceAddress `json:"projects"`
}

// NewDocument creates a document for the main service. A nil projects map
// is replaced by an empty one so it encodes as {}.
func NewDocument(main ServiceAddress, projects map[string]ServiceAddress) *Document {
	if projects == nil {
		projects = make(map[string]ServiceAddress)
	}
	return &Document{
		Main:     main,
		Projects: projects,
	}
}
