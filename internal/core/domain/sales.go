package domain

// ChannelType is a sales channel a manager can be responsible for.
type ChannelType string

const (
	ChannelRetail       ChannelType = "Retail"
	ChannelKeyAccount   ChannelType = "Key Account"
	ChannelDistribution ChannelType = "Distribution"
)

// KnownChannelTypes lists the valid channel assignments.
var KnownChannelTypes = []ChannelType{ChannelRetail, ChannelKeyAccount, ChannelDistribution}

// Manager is a sales manager. Channel assignments are stored separately and
// replaced wholesale on every save.
type Manager struct {
	ManagerID string        `json:"managerID"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Country   string        `json:"country"`
	Region    string        `json:"region"`
	Channels  []ChannelType `json:"channels,omitempty"`
	AuditFields
}

// SalesRep is a field sales representative reporting to a manager.
type SalesRep struct {
	RepID     string `json:"repID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	ManagerID string `json:"managerID,omitempty"`
	AuditFields
}

// Client is a customer account visited by sales reps.
type Client struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Region   string `json:"region"`
	Address  string `json:"address,omitempty"`
	RepID    string `json:"repID,omitempty"` // Assigned sales rep
	AuditFields
}
